package model

// SendType selects which build results produce a notification.
type SendType string

const (
	SendNever       SendType = "NEVER"
	SendAlways      SendType = "ALWAYS"
	SendOnlySuccess SendType = "ONLY_SUCCESS"
	SendOnlyFailure SendType = "ONLY_FAILURE"
)

// SendTypes lists every SendType in display order.
var SendTypes = []SendType{SendNever, SendAlways, SendOnlySuccess, SendOnlyFailure}

// PolicyConfig is the per-project notification setting. SendType holds the
// configured name as written so that unknown values can be reported when the
// policy is evaluated.
type PolicyConfig struct {
	SendType             string `mapstructure:"send_type" json:"sendType"`
	NotifyOnStatusChange bool   `mapstructure:"notify_on_status_change" json:"notifyOnStatusChange"`
	TokenName            string `mapstructure:"token_name" json:"tokenName"`
}
