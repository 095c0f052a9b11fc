package model

import "strings"

// Credential is a named LINE Notify access token.
type Credential struct {
	Name  string
	Token string
}

// Masked returns the token with everything but the last four characters hidden.
func (c Credential) Masked() string {
	if len(c.Token) <= 4 {
		return strings.Repeat("*", len(c.Token))
	}
	return strings.Repeat("*", len(c.Token)-4) + c.Token[len(c.Token)-4:]
}
