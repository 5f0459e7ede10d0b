// Package pricing computes performance charges and volume credits
// and folds them into an invoice statement.
package pricing

import (
	"github.com/de-tools/playbill/pkg/models/domain"
)

// Engine is stateless apart from its tariff and safe for concurrent use.
type Engine struct {
	tariff Tariff
}

// NewEngine rejects a tariff that fails Validate, so credits never divides by zero.
func NewEngine(tariff Tariff) (*Engine, error) {
	if err := tariff.Validate(); err != nil {
		return nil, err
	}
	return &Engine{tariff: tariff}, nil
}

// ChargeFor returns the charge in subunits for one performance of play.
func (e *Engine) ChargeFor(perf domain.Performance, play domain.Play) (domain.Money, error) {
	return e.charge(perf, play.Genre)
}

// VolumeCreditsFor returns the loyalty credits earned by one performance of play.
func (e *Engine) VolumeCreditsFor(perf domain.Performance, play domain.Play) (int, error) {
	if !play.Genre.Valid() {
		return 0, &domain.GenreError{Genre: play.Genre.String()}
	}
	return e.credits(perf, play.Genre), nil
}

// Summarize prices every performance of the invoice in order. The first
// unknown play or genre aborts the whole statement.
func (e *Engine) Summarize(invoice domain.Invoice, catalog domain.Catalog) (domain.Statement, error) {
	statement := domain.Statement{
		Customer: invoice.Customer,
		Lines:    make([]domain.StatementLine, 0, len(invoice.Performances)),
	}

	for _, perf := range invoice.Performances {
		play, err := catalog.Lookup(perf.PlayID)
		if err != nil {
			return domain.Statement{}, err
		}

		// charge owns the genre dispatch; credits only runs for a priced genre.
		amount, err := e.charge(perf, play.Genre)
		if err != nil {
			return domain.Statement{}, err
		}
		credits := e.credits(perf, play.Genre)

		statement.Lines = append(statement.Lines, domain.StatementLine{
			PlayID:   perf.PlayID,
			PlayName: play.Name,
			Genre:    play.Genre,
			Audience: perf.Audience,
			Charge:   amount,
			Credits:  credits,
		})
		statement.TotalCharge += amount
		statement.TotalCredits += credits
	}

	return statement, nil
}

func (e *Engine) charge(perf domain.Performance, genre domain.Genre) (domain.Money, error) {
	audience := int64(perf.Audience)

	var amount int64
	switch genre {
	case domain.GenreTragedy:
		rates := e.tariff.Tragedy
		amount = rates.Base
		if over := audience - int64(rates.Threshold); over > 0 {
			amount += rates.OverageRate * over
		}
	case domain.GenreComedy:
		rates := e.tariff.Comedy
		amount = rates.Base
		if over := audience - int64(rates.Threshold); over > 0 {
			amount += rates.OverageFlat + rates.OverageRate*over
		}
		// per-head fee applies on top of the tier, below the threshold too
		amount += rates.PerHeadRate * audience
	default:
		return 0, &domain.GenreError{Genre: genre.String()}
	}

	return domain.Money(amount), nil
}

func (e *Engine) credits(perf domain.Performance, genre domain.Genre) int {
	rules := e.tariff.Credits
	credits := max(perf.Audience-rules.BaseThreshold, 0)
	if genre == domain.GenreComedy {
		credits += perf.Audience / rules.ComedyBonusDivisor
	}
	return credits
}
