package models

import "time"

// Match is an immutable result: WinnerID beat LoserID.
type Match struct {
	ID         int       `json:"id" db:"id"`
	WinnerID   int       `json:"winner_id" db:"winner_id"`
	LoserID    int       `json:"loser_id" db:"loser_id"`
	ReportedAt time.Time `json:"reported_at" db:"reported_at"`
}
