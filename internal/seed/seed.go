package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/app/repositories"
	"github.com/kerem/campushub/internal/config"
	"github.com/kerem/campushub/internal/pkg/auth"
)

// EnsureDefaultAdmin creates the configured default admin account when the
// admins table is empty. Once any admin exists, even under a different
// username, nothing is created.
func EnsureDefaultAdmin(ctx context.Context, adminRepo repositories.IAdminRepository, cfg *config.Config, lgr zerolog.Logger) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		lgr.Debug().Int("admins", count).Msg("Admin account present, skipping default admin seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username: cfg.Admin.Username,
		Password: hashedPassword,
	}

	adminID, err := adminRepo.Create(ctx, admin)
	if err != nil {
		return err
	}

	lgr.Info().
		Int64("adminID", adminID).
		Str("username", cfg.Admin.Username).
		Msg("Default admin account created")

	return nil
}
