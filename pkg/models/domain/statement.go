package domain

import "time"

// StatementLine is the computed result for a single performance.
type StatementLine struct {
	PlayID   string
	PlayName string
	Genre    Genre
	Audience int
	Charge   Money
	Credits  int
}

// Statement is the aggregate produced for an invoice. Lines keep invoice order.
type Statement struct {
	Customer     string
	Lines        []StatementLine
	TotalCharge  Money
	TotalCredits int
}

// IssuedStatement is a statement that has been recorded in the history.
type IssuedStatement struct {
	ID       string
	IssuedAt time.Time
	Statement
}
