package settings

import (
	"context"
	"errors"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/models"
)

// Ensure returns the tenant's settings row, provisioning the defaults when
// none exists yet. Idempotent; called at signup and on first read.
func Ensure(
	ctx context.Context,
	repo domain.Repository,
	tenantID uint,
) (*models.Settings, error) {

	s, err := repo.GetSettings(ctx, tenantID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	s = models.DefaultSettings(tenantID)
	if createErr := repo.CreateSettings(ctx, s); createErr != nil {
		// Lost the provisioning race; the winner's row is authoritative.
		return repo.GetSettings(ctx, tenantID)
	}

	return s, nil
}
