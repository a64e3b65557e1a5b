package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
)

// PairingGenerator builds the next round from a standings snapshot.
type PairingGenerator interface {
	GeneratePairings(ctx context.Context, standings []models.Standing) ([]models.Pairing, error)

	GetName() string
}
