package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
)

type SwissGenerator struct{}

func NewSwissGenerator() PairingGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

func (g *SwissGenerator) GeneratePairings(ctx context.Context, standings []models.Standing) ([]models.Pairing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SwissPairings(standings), nil
}

// SwissPairings pairs neighbours in standings order: 1st with 2nd, 3rd with 4th
// and so on. The higher ranked player is always Player1. With an odd number of
// players the last one is left out of the round; there are no byes.
//
// Rematches are not avoided. The result depends only on the given standings.
func SwissPairings(standings []models.Standing) []models.Pairing {
	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i+1 < len(standings); i += 2 {
		p1, p2 := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			Player1ID:   p1.ID,
			Player1Name: p1.Name,
			Player2ID:   p2.ID,
			Player2Name: p2.Name,
		})
	}
	return pairings
}
