package errors

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// common errors
	ErrConnectionTimeout = errors.New("connection timeout")

	// contact message errors
	ErrMessageNotFound  = errors.New("message not found")
	ErrInvalidMessageID = errors.New("invalid message id")
	ErrRateLimited      = errors.New("too many contact form submissions")

	// asset errors
	ErrAssetNotFound = errors.New("asset not found")
)

// FromStore maps a context deadline hit during a database call to the
// transient ErrConnectionTimeout sentinel; other errors pass through.
func FromStore(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrConnectionTimeout
	}
	return err
}
