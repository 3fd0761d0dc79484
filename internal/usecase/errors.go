package usecase

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all use cases. Handlers translate them to HTTP
// statuses with errors.Is; anything unmatched becomes a 500.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("please authenticate")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
)

// isNotFound distinguishes a missing row from an infrastructure failure, so
// only the former becomes a 404.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
