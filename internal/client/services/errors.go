package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/conduit/internal/client/client"
)

// FormErrors turns err into the lines a form shows above its inputs:
// one line per field message for validation failures, a single line
// otherwise.
func FormErrors(err error) []string {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return []string{"the server took too long to respond"}
	case errors.Is(err, context.Canceled):
		return []string{"cancelled"}
	}
	return client.Messages(err)
}
