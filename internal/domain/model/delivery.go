package model

import "time"

// DeliveryResult describes one attempt to post a message.
type DeliveryResult struct {
	ID           string
	Succeeded    bool
	StatusCode   int
	ResponseBody string
	ErrorMessage string
	Duration     time.Duration
}
