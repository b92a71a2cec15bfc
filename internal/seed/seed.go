package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData inserts the default position lookup rows if they are
// missing. Existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (positions)...")

	var finalErr error

	positions := []string{
		"HR Specialist",
		"Engineering Manager",
		"Software Engineer",
		"Recruiter",
	}
	for _, name := range positions {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO positions (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			lgr.Error().Err(err).Str("position", name).Msg("Error creating default position")
			finalErr = errors.Join(finalErr, err)
		}
	}

	appliedPositions := []string{
		"Backend Developer",
		"Frontend Developer",
		"DevOps Engineer",
		"Product Manager",
		"QA Engineer",
	}
	for _, name := range appliedPositions {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO applied_positions (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			lgr.Error().Err(err).Str("position", name).Msg("Error creating default applied position")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
