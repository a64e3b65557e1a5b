package models

import "encoding/json"

// Standing is a row of the standings view. It is derived on every read and
// never stored. Matches >= Wins >= 0.
type Standing struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Wins    int    `json:"wins" db:"wins"`
	Matches int    `json:"matches" db:"matches"`
}

func (s Standing) Losses() int {
	return s.Matches - s.Wins
}

func (s Standing) MarshalJSON() ([]byte, error) {
	type standing Standing
	return json.Marshal(struct {
		standing
		Losses int `json:"losses"`
	}{standing(s), s.Losses()})
}
