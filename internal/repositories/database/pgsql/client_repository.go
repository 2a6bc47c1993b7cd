package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/SscSPs/costureira_pro/internal/models"
	"github.com/SscSPs/costureira_pro/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `client_id, profile_id, name, phone, email, address, notes, is_favorite,
	total_spent, last_service_date, created_at, last_updated_at`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db DBTX) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Client, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query client", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan client", err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, profileID, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE profile_id = $1 AND client_id = $2;`
	return r.findOne(ctx, query, profileID, clientID)
}

// FindClientByName uses the same expression as clients_profile_name_key.
func (r *PgxClientRepository) FindClientByName(ctx context.Context, profileID, name string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE profile_id = $1 AND lower(name) = lower($2);`
	return r.findOne(ctx, query, profileID, domain.NormalizeName(name))
}

func (r *PgxClientRepository) ListClients(ctx context.Context, profileID string, filter domain.ClientFilter) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE profile_id = $1
		  AND ($2 = '' OR strpos(lower(name), lower($2)) > 0)
		  AND (NOT $3 OR is_favorite)
		ORDER BY lower(name), client_id
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.DB.Query(ctx, query, profileID, filter.Search, filter.FavoritesOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list clients", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan clients", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}

// InsertClientIfAbsent leans on clients_profile_name_key: a concurrent insert of
// the same name turns into a no-op instead of a unique violation.
func (r *PgxClientRepository) InsertClientIfAbsent(ctx context.Context, client domain.Client) (bool, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (profile_id, lower(name)) DO NOTHING;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ClientID, m.ProfileID, m.Name, m.Phone, m.Email, m.Address, m.Notes, m.IsFavorite,
		m.TotalSpent, m.LastServiceDate, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to insert client", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $3, phone = $4, email = $5, address = $6, notes = $7, is_favorite = $8, last_updated_at = $9
		WHERE profile_id = $1 AND client_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ProfileID, m.ClientID, m.Name, m.Phone, m.Email, m.Address, m.Notes, m.IsFavorite, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client named %q", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	// Keep the display copy on the counter in sync.
	_, err = r.DB.Exec(ctx,
		`UPDATE piece_counters SET client_name = $3 WHERE profile_id = $1 AND client_id = $2 AND client_name <> $3;`,
		m.ProfileID, m.ClientID, m.Name,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to sync counter client name", err)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, profileID, clientID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE profile_id = $1 AND client_id = $2;`, profileID, clientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockClientForUpdate must run inside a transaction; the lock is held until it ends.
func (r *PgxClientRepository) LockClientForUpdate(ctx context.Context, profileID, clientID string) error {
	var locked string
	err := r.DB.QueryRow(ctx,
		`SELECT client_id FROM clients WHERE profile_id = $1 AND client_id = $2 FOR UPDATE;`,
		profileID, clientID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock client", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClientStats(ctx context.Context, clientID string, stats domain.ClientStats, now time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE clients SET total_spent = $2, last_service_date = $3, last_updated_at = $4 WHERE client_id = $1;`,
		clientID, stats.TotalSpent, stats.LastServiceDate, now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update client statistics", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
