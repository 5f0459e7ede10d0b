package api

import "time"

type Performance struct {
	PlayID   string `json:"playID"`
	Audience int    `json:"audience"`
}

type StatementRequest struct {
	Customer     string        `json:"customer"`
	Performances []Performance `json:"performances"`
}

type StatementLine struct {
	PlayID   string `json:"play_id"`
	PlayName string `json:"play_name"`
	Type     string `json:"type"`
	Audience int    `json:"audience"`
	Charge   int64  `json:"charge_subunits"`
	Credits  int    `json:"credits"`
}

type Statement struct {
	ID           string          `json:"id,omitempty"`
	IssuedAt     *time.Time      `json:"issued_at,omitempty"`
	Customer     string          `json:"customer"`
	Lines        []StatementLine `json:"lines"`
	TotalCharge  int64           `json:"total_charge_subunits"`
	AmountOwed   string          `json:"amount_owed"`
	TotalCredits int             `json:"total_credits"`
}

type Play struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Error struct {
	Error string `json:"error"`
}
