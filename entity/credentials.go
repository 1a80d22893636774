package entity

import (
	b64 "encoding/base64"
	"fmt"
)

type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

func (c *Credentials) IsComplete() bool {
	return c != nil && c.Username != "" && c.Password != ""
}

// AuthorizationHeader renders the pair as an HTTP Basic authorization value.
func (c *Credentials) AuthorizationHeader() string {
	token := b64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", c.Username, c.Password)))
	return fmt.Sprintf("Basic %s", token)
}
