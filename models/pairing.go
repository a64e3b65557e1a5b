package models

import "time"

// Pairing is one game of the next round. Player1 is the higher ranked of the two.
type Pairing struct {
	Player1ID   int    `json:"player1_id"`
	Player1Name string `json:"player1_name"`
	Player2ID   int    `json:"player2_id"`
	Player2Name string `json:"player2_name"`
}

// Overview bundles everything a client needs to render the tournament state.
type Overview struct {
	PlayerCount int        `json:"player_count"`
	Standings   []Standing `json:"standings"`
	Pairings    []Pairing  `json:"pairings"`
	Matches     []*Match   `json:"matches"`
	GeneratedAt time.Time  `json:"generated_at"`
}
