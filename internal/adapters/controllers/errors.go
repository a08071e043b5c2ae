package controllers

import (
	"errors"

	"go.trai.ch/desk/internal/core/domain"
)

// joinResolveErr marks err as a resolution failure unless it already is one.
func joinResolveErr(err error) error {
	if errors.Is(err, domain.ErrControllerResolveFailed) {
		return err
	}
	return errors.Join(domain.ErrControllerResolveFailed, err)
}
