package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/SscSPs/costureira_pro/internal/models"
	"github.com/SscSPs/costureira_pro/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `profile_id, display_name, business_name, email, phone, created_at, last_updated_at`

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db DBTX) *PgxProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

// EnsureProfile inserts the profile on first sight and returns the stored row.
func (r *PgxProfileRepository) EnsureProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, bool, error) {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (profile_id) DO NOTHING;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ProfileID, m.DisplayName, m.BusinessName, m.Email, m.Phone, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return nil, false, apperrors.NewAppError(500, "failed to insert profile", err)
	}

	stored, err := r.FindProfileByID(ctx, profile.ProfileID)
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1;`
	rows, err := r.DB.Query(ctx, query, profileID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query profile", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan profile", err)
	}
	p := mapping.ToDomainProfile(m)
	return &p, nil
}

func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		UPDATE profiles
		SET display_name = $2, business_name = $3, email = $4, phone = $5, last_updated_at = $6
		WHERE profile_id = $1;
	`
	tag, err := r.DB.Exec(ctx, query, m.ProfileID, m.DisplayName, m.BusinessName, m.Email, m.Phone, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
