package api

import "regexp"

var (
	apiKeyRe   = regexp.MustCompile(`^[a-z0-9]+$`)
	passwordRe = regexp.MustCompile(`^\w+$`)
	emailRe    = regexp.MustCompile(`@`)
)

// Credentials holds the immutable account credentials a Session is built
// with. Use NewCredentials so a Credentials value is either fully valid or
// never observed.
type Credentials struct {
	apiKey   string
	email    string
	password string
}

// NewCredentials validates each field once, at construction time, and
// returns a *ValidationError on the first field that fails.
func NewCredentials(apiKey, email, password string) (Credentials, error) {
	if !apiKeyRe.MatchString(apiKey) {
		return Credentials{}, &ValidationError{Field: "apikey", Reason: "must be lowercase alphanumeric"}
	}
	if !emailRe.MatchString(email) {
		return Credentials{}, &ValidationError{Field: "email", Reason: "must contain @"}
	}
	if !passwordRe.MatchString(password) {
		return Credentials{}, &ValidationError{Field: "password", Reason: "must be non-empty word characters"}
	}
	return Credentials{apiKey: apiKey, email: email, password: password}, nil
}

// Email returns the account email the credentials were built with.
func (c Credentials) Email() string { return c.email }
