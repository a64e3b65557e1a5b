package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

type StandingRepository interface {
	List(ctx context.Context, exec SQLExecutor) ([]models.Standing, error)
}

type sqlStandingRepository struct {
	db *sql.DB
}

func NewStandingRepository(db *sql.DB) StandingRepository {
	return &sqlStandingRepository{db: db}
}

// List reads the standings view. Ties on wins are broken by player id so the
// order, and therefore the pairings, are reproducible.
func (r *sqlStandingRepository) List(ctx context.Context, exec SQLExecutor) ([]models.Standing, error) {
	query := `
		SELECT id, name, wins, matches
		FROM standings
		ORDER BY wins DESC, id ASC`
	rows, err := pickExecutor(r.db, exec).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", ClassifyError(err))
	}
	defer rows.Close()

	standings := make([]models.Standing, 0)
	for rows.Next() {
		var s models.Standing
		if scanErr := rows.Scan(&s.ID, &s.Name, &s.Wins, &s.Matches); scanErr != nil {
			return nil, fmt.Errorf("failed to scan standing row: %w", scanErr)
		}
		standings = append(standings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during standing rows iteration: %w", ClassifyError(err))
	}
	return standings, nil
}
