package service

import (
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

// asNotFound renames a not-found error after the role the record plays in
// the request (an absent user becomes "Instructor not found").
func asNotFound(err error, entity string) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return domain.NewNotFoundError(entity)
	}
	return err
}
