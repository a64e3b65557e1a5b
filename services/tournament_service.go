package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
)

// EventPublisher receives a notification after every committed change.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

type TournamentService interface {
	DeleteMatches(ctx context.Context) error
	DeletePlayers(ctx context.Context) error
	CountPlayers(ctx context.Context) (int, error)
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]*models.Player, error)
	ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	PlayerStandings(ctx context.Context) ([]models.Standing, error)
	SwissPairings(ctx context.Context) ([]models.Pairing, error)
	Overview(ctx context.Context) (*models.Overview, error)
	Ping(ctx context.Context) error
}

type tournamentService struct {
	db           *sql.DB
	playerRepo   repositories.PlayerRepository
	matchRepo    repositories.MatchRepository
	standingRepo repositories.StandingRepository
	generator    brackets.PairingGenerator
	publisher    EventPublisher
	validate     *validator.Validate
	sanitizer    *bluemonday.Policy
	logger       *slog.Logger
}

// NewTournamentService wires the service. publisher may be nil when nobody
// listens for events.
func NewTournamentService(
	db *sql.DB,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
	generator brackets.PairingGenerator,
	publisher EventPublisher,
	logger *slog.Logger,
) TournamentService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &tournamentService{
		db:           db,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		generator:    generator,
		publisher:    publisher,
		validate:     newValidator(),
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

func (s *tournamentService) DeleteMatches(ctx context.Context) error {
	var deleted int64
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		n, err := s.matchRepo.DeleteAll(ctx, tx)
		if err != nil {
			return translateError(err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}

	s.logger.Info("matches deleted", slog.Int64("count", deleted))
	s.publisher.Publish(brackets.EventMatchesDeleted, map[string]int64{"deleted": deleted})
	return nil
}

// DeletePlayers removes every player together with their matches.
func (s *tournamentService) DeletePlayers(ctx context.Context) error {
	var deleted int64
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		n, err := s.playerRepo.DeleteAll(ctx, tx)
		if err != nil {
			return translateError(err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete players: %w", err)
	}

	s.logger.Info("players deleted", slog.Int64("count", deleted))
	s.publisher.Publish(brackets.EventPlayersDeleted, map[string]int64{"deleted": deleted})
	return nil
}

func (s *tournamentService) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.playerRepo.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("count players: %w", translateError(err))
	}
	return count, nil
}

func (s *tournamentService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	input := RegisterPlayerInput{Name: sanitizeName(s.sanitizer, name)}
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	player := &models.Player{Name: input.Name}
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		return translateError(s.playerRepo.Create(ctx, tx, player))
	})
	if err != nil {
		return nil, fmt.Errorf("register player: %w", err)
	}

	s.logger.Info("player registered", slog.Int("player_id", player.ID))
	s.publisher.Publish(brackets.EventPlayerRegistered, player)
	return player, nil
}

func (s *tournamentService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, translateError(err)
	}
	return player, nil
}

func (s *tournamentService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", translateError(err))
	}
	return players, nil
}

// ReportMatch records that winnerID beat loserID. Unknown ids fail with
// ErrUnknownPlayer and leave no row behind.
func (s *tournamentService) ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error) {
	input := ReportMatchInput{WinnerID: winnerID, LoserID: loserID}
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	match := &models.Match{WinnerID: input.WinnerID, LoserID: input.LoserID}
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		return translateError(s.matchRepo.Create(ctx, tx, match))
	})
	if err != nil {
		return nil, fmt.Errorf("report match %d vs %d: %w", winnerID, loserID, err)
	}

	s.logger.Info("match reported",
		slog.Int("match_id", match.ID),
		slog.Int("winner_id", match.WinnerID),
		slog.Int("loser_id", match.LoserID),
	)

	payload := map[string]interface{}{"match": match}
	if standings, err := s.standingRepo.List(ctx, nil); err != nil {
		s.logger.Warn("failed to load standings for match event", slog.Any("error", err))
	} else {
		payload["standings"] = standings
	}
	s.publisher.Publish(brackets.EventMatchReported, payload)
	return match, nil
}

func (s *tournamentService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", translateError(err))
	}
	return matches, nil
}

// PlayerStandings recomputes the standings from the stored matches, ordered by
// wins descending and player id ascending.
func (s *tournamentService) PlayerStandings(ctx context.Context) ([]models.Standing, error) {
	standings, err := s.standingRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("player standings: %w", translateError(err))
	}
	return standings, nil
}

func (s *tournamentService) SwissPairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := s.generator.GeneratePairings(ctx, standings)
	if err != nil {
		return nil, fmt.Errorf("%s pairings: %w", s.generator.GetName(), err)
	}
	return pairings, nil
}

// Overview loads counts, standings and matches in parallel. The reads are not
// one snapshot; a write landing in between shows up in some parts only.
func (s *tournamentService) Overview(ctx context.Context) (*models.Overview, error) {
	overview := &models.Overview{GeneratedAt: time.Now().UTC()}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountPlayers(gCtx)
		if err != nil {
			return err
		}
		overview.PlayerCount = count
		return nil
	})

	g.Go(func() error {
		standings, err := s.PlayerStandings(gCtx)
		if err != nil {
			return err
		}
		pairings, err := s.generator.GeneratePairings(gCtx, standings)
		if err != nil {
			return fmt.Errorf("%s pairings: %w", s.generator.GetName(), err)
		}
		overview.Standings = standings
		overview.Pairings = pairings
		return nil
	})

	g.Go(func() error {
		matches, err := s.ListMatches(gCtx)
		if err != nil {
			return err
		}
		overview.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	return overview, nil
}

func (s *tournamentService) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
