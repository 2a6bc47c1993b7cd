package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/SscSPs/costureira_pro/internal/models"
	"github.com/SscSPs/costureira_pro/internal/utils/mapping"
	"github.com/SscSPs/costureira_pro/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const counterColumns = `counter_id, profile_id, client_id, client_name, total_pieces, created_at, last_updated_at`

type PgxPieceCounterRepository struct {
	BaseRepository
}

func newPgxPieceCounterRepository(db DBTX) *PgxPieceCounterRepository {
	return &PgxPieceCounterRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PieceCounterRepositoryFacade = (*PgxPieceCounterRepository)(nil)

func (r *PgxPieceCounterRepository) findOne(ctx context.Context, query string, args ...any) (*domain.PieceCounter, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query piece counter", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PieceCounter])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan piece counter", err)
	}
	c := mapping.ToDomainPieceCounter(m)
	return &c, nil
}

func (r *PgxPieceCounterRepository) FindCounterByID(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	return r.findOne(ctx, `SELECT `+counterColumns+` FROM piece_counters WHERE profile_id = $1 AND counter_id = $2;`, profileID, counterID)
}

// LockCounterForUpdate must run inside a transaction; the lock is held until it ends.
func (r *PgxPieceCounterRepository) LockCounterForUpdate(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	return r.findOne(ctx, `SELECT `+counterColumns+` FROM piece_counters WHERE profile_id = $1 AND counter_id = $2 FOR UPDATE;`, profileID, counterID)
}

func (r *PgxPieceCounterRepository) FindCounterByClient(ctx context.Context, profileID, clientID string) (*domain.PieceCounter, error) {
	return r.findOne(ctx, `SELECT `+counterColumns+` FROM piece_counters WHERE profile_id = $1 AND client_id = $2;`, profileID, clientID)
}

func (r *PgxPieceCounterRepository) ListCounters(ctx context.Context, profileID string) ([]domain.PieceCounter, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+counterColumns+` FROM piece_counters WHERE profile_id = $1 ORDER BY lower(client_name), counter_id;`,
		profileID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list piece counters", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PieceCounter])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan piece counters", err)
	}
	return mapping.ToDomainPieceCounterSlice(ms), nil
}

func (r *PgxPieceCounterRepository) ListCounterEntries(ctx context.Context, profileID, counterID string, limit int, nextToken *string) ([]domain.PieceCounterEntry, *string, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT entry_id, counter_id, profile_id, delta, description, created_at
		FROM piece_counter_history
		WHERE profile_id = $1 AND counter_id = $2`)
	args := []any{profileID, counterID, limit + 1}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		sb.WriteString(` AND (created_at, entry_id) < ($4, $5)`)
		args = append(args, lastCreatedAt, lastID)
	}
	sb.WriteString(` ORDER BY created_at DESC, entry_id DESC LIMIT $3;`)

	rows, err := r.DB.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list counter history", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PieceCounterEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan counter history", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		nextTokenVal = &token
	}
	return mapping.ToDomainPieceCounterEntrySlice(ms), nextTokenVal, nil
}

func (r *PgxPieceCounterRepository) SumCounterEntries(ctx context.Context, counterID string) (int64, error) {
	var total int64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(delta), 0)::BIGINT FROM piece_counter_history WHERE counter_id = $1;`,
		counterID,
	).Scan(&total)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum counter history", err)
	}
	return total, nil
}

// InsertCounterIfAbsent relies on piece_counters_profile_client_key.
func (r *PgxPieceCounterRepository) InsertCounterIfAbsent(ctx context.Context, counter domain.PieceCounter) (bool, error) {
	m := mapping.ToModelPieceCounter(counter)
	tag, err := r.DB.Exec(ctx, `
		INSERT INTO piece_counters (`+counterColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (profile_id, client_id) DO NOTHING;`,
		m.CounterID, m.ProfileID, m.ClientID, m.ClientName, m.TotalPieces, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to insert piece counter", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxPieceCounterRepository) AppendCounterEntry(ctx context.Context, entry domain.PieceCounterEntry) error {
	m := mapping.ToModelPieceCounterEntry(entry)
	_, err := r.DB.Exec(ctx, `
		INSERT INTO piece_counter_history (entry_id, counter_id, profile_id, delta, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.EntryID, m.CounterID, m.ProfileID, m.Delta, m.Description, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append counter history", err)
	}
	return nil
}

// IncrementCounterTotal adds delta in the database, so concurrent increments never lose updates.
func (r *PgxPieceCounterRepository) IncrementCounterTotal(ctx context.Context, counterID string, delta int64, now time.Time) (int64, error) {
	var total int64
	err := r.DB.QueryRow(ctx, `
		UPDATE piece_counters
		SET total_pieces = total_pieces + $2, last_updated_at = $3
		WHERE counter_id = $1
		RETURNING total_pieces;`,
		counterID, delta, now,
	).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to increment piece counter", err)
	}
	return total, nil
}

func (r *PgxPieceCounterRepository) SetCounterTotal(ctx context.Context, counterID string, total int64, now time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE piece_counters SET total_pieces = $2, last_updated_at = $3 WHERE counter_id = $1;`,
		counterID, total, now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set piece counter total", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
