package usecase

import (
	"errors"
	"fmt"

	"assistencia_os/internal/usecase/interfaces"
)

// Error taxonomy shared by every use case. Handlers map these with
// errors.Is; wrapped variants carry detail for the message.
var (
	ErrNotFound          = errors.New("not found")
	ErrOrderNotFound     = fmt.Errorf("order %w", ErrNotFound)
	ErrResaleNotFound    = fmt.Errorf("resale item %w", ErrNotFound)
	ErrShareNotFound     = fmt.Errorf("share snapshot %w", ErrNotFound)
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("operation not allowed in current state")
	ErrPhotoLimit        = errors.New("photo limit exceeded")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthenticated   = errors.New("authenticated session required")
	ErrForbidden         = errors.New("operation not allowed for role")
	ErrFetch             = errors.New("failed reading from store")
	ErrPersist           = errors.New("failed writing to store")
	ErrRejected          = errors.New("store rejected the record")
	ErrPublish           = errors.New("failed publishing share snapshot")
	ErrPayment           = errors.New("payment provider failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func fetchError(err error) error {
	return fmt.Errorf("%w: %w", ErrFetch, err)
}

// persistError wraps a repository write failure. Writes the store refused as
// invalid become ErrRejected so they are not offered for retry.
func persistError(err error) error {
	if errors.Is(err, interfaces.ErrRecordRejected) {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrPersist, err)
}
