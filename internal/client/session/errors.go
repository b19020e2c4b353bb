package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/client"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyTaken       = errors.New("username or email already taken")
	ErrSessionChanged     = errors.New("you were signed out or switched accounts, try again")

	errNoToken = &client.Error{Err: client.ErrUnexpected, Cause: errors.New("response carried no token")}
)

// classifyLogin maps a failed login onto ErrInvalidCredentials when the
// server rejected the credentials. The client error stays in the chain.
func classifyLogin(err error) error {
	if errors.Is(err, client.ErrValidation) || errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return fmt.Errorf("login: %w", err)
}

// classifySignup recognises the "has already been taken" validation the
// server returns for duplicate usernames and emails.
func classifySignup(err error) error {
	var apiErr *client.Error
	if errors.As(err, &apiErr) && errors.Is(err, client.ErrValidation) {
		for _, field := range []string{"username", "email"} {
			for _, msg := range apiErr.Fields[field] {
				if strings.Contains(msg, "taken") {
					return fmt.Errorf("%w: %w", ErrAlreadyTaken, err)
				}
			}
		}
	}
	return fmt.Errorf("signup: %w", err)
}
