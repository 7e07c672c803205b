package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether the error means the referenced row is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
