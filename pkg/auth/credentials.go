// Package auth supplies the opaque request headers the API expects. It never
// stores credentials itself; they come from the config layer or environment.
package auth

import "fmt"

const clientSuffix = "habitick"

// Credentials identifies the authenticated user to the API.
type Credentials struct {
	UserID   string
	APIToken string
}

// Valid reports whether both halves of the credential pair are present.
func (c Credentials) Valid() bool {
	return c.UserID != "" && c.APIToken != ""
}

// Headers returns the auth headers attached to every request. The x-client
// value follows the service's "author-appname" convention.
func (c Credentials) Headers() map[string]string {
	return map[string]string{
		"x-api-user": c.UserID,
		"x-api-key":  c.APIToken,
		"x-client":   fmt.Sprintf("%s-%s", c.UserID, clientSuffix),
	}
}
