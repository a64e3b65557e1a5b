package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
)

var (
	ErrMatchPlayerInvalid = errors.New("match references an unknown player")
	ErrMatchSelfPlay      = errors.New("match winner and loser must differ")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	List(ctx context.Context, exec SQLExecutor) ([]*models.Match, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlMatchRepository struct {
	db *sql.DB
}

func NewMatchRepository(db *sql.DB) MatchRepository {
	return &sqlMatchRepository{db: db}
}

func (r *sqlMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	if match.ReportedAt.IsZero() {
		match.ReportedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO matches (winner_id, loser_id, reported_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := pickExecutor(r.db, exec).QueryRowContext(ctx, query,
		match.WinnerID,
		match.LoserID,
		match.ReportedAt,
	).Scan(&match.ID)
	return r.handleMatchError(err)
}

func (r *sqlMatchRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Match, error) {
	query := `
		SELECT id, winner_id, loser_id, reported_at
		FROM matches
		ORDER BY id ASC`
	rows, err := pickExecutor(r.db, exec).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", ClassifyError(err))
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.ReportedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", ClassifyError(err))
	}
	return matches, nil
}

func (r *sqlMatchRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	err := pickExecutor(r.db, exec).QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", ClassifyError(err))
	}
	return count, nil
}

func (r *sqlMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	result, err := pickExecutor(r.db, exec).ExecContext(ctx, `DELETE FROM matches`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", ClassifyError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return n, nil
}

func (r *sqlMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	err = ClassifyError(err)
	switch {
	case errors.Is(err, ErrForeignKeyViolation):
		return fmt.Errorf("%w: %w", ErrMatchPlayerInvalid, err)
	case errors.Is(err, ErrCheckViolation):
		return fmt.Errorf("%w: %w", ErrMatchSelfPlay, err)
	}
	return fmt.Errorf("failed to insert match: %w", err)
}
