package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	List(ctx context.Context) ([]*models.Player, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlPlayerRepository struct {
	db *sql.DB
}

func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlPlayerRepository{db: db}
}

func (r *sqlPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO players (name, created_at) VALUES ($1, $2) RETURNING id`
	err := pickExecutor(r.db, exec).QueryRowContext(ctx, query, player.Name, player.CreatedAt).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", ClassifyError(err))
	}
	return nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	query := `SELECT id, name, created_at FROM players WHERE id = $1`
	var p models.Player
	err := pickExecutor(r.db, exec).QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, ClassifyError(err))
	}
	return &p, nil
}

func (r *sqlPlayerRepository) List(ctx context.Context) ([]*models.Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM players ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", ClassifyError(err))
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", ClassifyError(err))
	}
	return players, nil
}

func (r *sqlPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	err := pickExecutor(r.db, exec).QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", ClassifyError(err))
	}
	return count, nil
}

// DeleteAll removes every player. Their matches go with them through ON DELETE CASCADE.
func (r *sqlPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	result, err := pickExecutor(r.db, exec).ExecContext(ctx, `DELETE FROM players`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete players: %w", ClassifyError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return n, nil
}
