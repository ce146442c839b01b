// Package auth provides Expander API authorization header values.
package auth

// Credentials holds the long-lived bearer credential used to mint ID tokens.
type Credentials struct {
	Bearer string
}

// Header returns the Authorization header value for the ID token endpoint.
func (c *Credentials) Header() string {
	if c == nil {
		return ""
	}
	return "Bearer " + c.Bearer
}

// Valid reports whether a bearer credential is configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Bearer != ""
}

// Token is the short-lived ID token returned by the authentication endpoint.
// It is opaque to the client and never decoded or validated locally.
type Token string

// Header returns the Authorization header value for resource endpoints.
func (t Token) Header() string {
	return "JWT " + string(t)
}

// Valid reports whether a token is present.
func (t Token) Valid() bool {
	return t != ""
}
