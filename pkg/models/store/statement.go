package store

import "time"

type Play struct {
	ID    string
	Name  string
	Genre string
}

type StatementRecord struct {
	ID           string
	Customer     string
	TotalCharge  int64
	TotalCredits int
	Lines        []StatementLineRecord
	IssuedAt     time.Time
}

type StatementLineRecord struct {
	PlayID   string `json:"play_id"`
	PlayName string `json:"play_name"`
	Genre    string `json:"genre"`
	Audience int    `json:"audience"`
	Charge   int64  `json:"charge"`
	Credits  int    `json:"credits"`
}
