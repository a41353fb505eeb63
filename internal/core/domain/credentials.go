package domain

// Credentials is a bearer token as returned by the login endpoints.
// The token is opaque to the client, claims are never inspected.
type Credentials struct {
	Token     string
	TokenType string
}

func (c Credentials) IsZero() bool {
	return c.Token == ""
}

// Header renders the Authorization header value.
func (c Credentials) Header() string {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + c.Token
}
