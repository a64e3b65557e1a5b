package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Dosada05/swiss-tournament/repositories"
)

// Общие ошибки, используемые в сервисе и маппинге HTTP.
var (
	// ErrStoreUnavailable: the database could not be reached. Nothing was changed.
	ErrStoreUnavailable = errors.New("tournament store is unavailable")

	// ErrUnknownPlayer: a match referenced a player id that is not registered.
	ErrUnknownPlayer = errors.New("player is not registered")

	ErrPlayerNotFound   = errors.New("player not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries per-field messages. errors.Is(err, ErrValidationFailed) holds.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// translateError turns repository and driver errors into service errors while
// keeping the cause in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	err = repositories.ClassifyError(err)
	switch {
	case errors.Is(err, repositories.ErrConnection):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	case errors.Is(err, repositories.ErrMatchPlayerInvalid):
		return fmt.Errorf("%w: %w", ErrUnknownPlayer, err)
	case errors.Is(err, repositories.ErrMatchSelfPlay):
		return &ValidationError{Fields: map[string]string{"loser_id": "must differ from winner_id"}}
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return fmt.Errorf("%w: %w", ErrPlayerNotFound, err)
	}
	return err
}
