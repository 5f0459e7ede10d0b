package adapters

import (
	"fmt"

	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
)

func MapStatementRequestApiToDomain(req api.StatementRequest) (domain.Invoice, error) {
	invoice := domain.Invoice{
		Customer:     req.Customer,
		Performances: make([]domain.Performance, 0, len(req.Performances)),
	}
	for i, perf := range req.Performances {
		if perf.Audience < 0 {
			return domain.Invoice{}, fmt.Errorf("performance %d: %w: %d", i, domain.ErrInvalidAudience, perf.Audience)
		}
		invoice.Performances = append(invoice.Performances, domain.Performance{
			PlayID:   perf.PlayID,
			Audience: perf.Audience,
		})
	}
	return invoice, nil
}

func MapStatementDomainToApi(statement domain.Statement) api.Statement {
	out := api.Statement{
		Customer:     statement.Customer,
		Lines:        make([]api.StatementLine, 0, len(statement.Lines)),
		TotalCharge:  int64(statement.TotalCharge),
		AmountOwed:   statement.TotalCharge.Units().StringFixed(2),
		TotalCredits: statement.TotalCredits,
	}
	for _, line := range statement.Lines {
		out.Lines = append(out.Lines, api.StatementLine{
			PlayID:   line.PlayID,
			PlayName: line.PlayName,
			Type:     line.Genre.String(),
			Audience: line.Audience,
			Charge:   int64(line.Charge),
			Credits:  line.Credits,
		})
	}
	return out
}

func MapIssuedStatementDomainToApi(issued domain.IssuedStatement) api.Statement {
	out := MapStatementDomainToApi(issued.Statement)
	out.ID = issued.ID
	issuedAt := issued.IssuedAt
	out.IssuedAt = &issuedAt
	return out
}

func MapIssuedStatementDomainToStore(issued domain.IssuedStatement) store.StatementRecord {
	record := store.StatementRecord{
		ID:           issued.ID,
		Customer:     issued.Customer,
		TotalCharge:  int64(issued.TotalCharge),
		TotalCredits: issued.TotalCredits,
		Lines:        make([]store.StatementLineRecord, 0, len(issued.Lines)),
		IssuedAt:     issued.IssuedAt,
	}
	for _, line := range issued.Lines {
		record.Lines = append(record.Lines, store.StatementLineRecord{
			PlayID:   line.PlayID,
			PlayName: line.PlayName,
			Genre:    line.Genre.String(),
			Audience: line.Audience,
			Charge:   int64(line.Charge),
			Credits:  line.Credits,
		})
	}
	return record
}

func MapStatementRecordStoreToDomain(record store.StatementRecord) (domain.IssuedStatement, error) {
	issued := domain.IssuedStatement{
		ID:       record.ID,
		IssuedAt: record.IssuedAt,
		Statement: domain.Statement{
			Customer:     record.Customer,
			Lines:        make([]domain.StatementLine, 0, len(record.Lines)),
			TotalCharge:  domain.Money(record.TotalCharge),
			TotalCredits: record.TotalCredits,
		},
	}
	for _, line := range record.Lines {
		genre, err := domain.ParseGenre(line.Genre)
		if err != nil {
			return domain.IssuedStatement{}, fmt.Errorf("statement %s: %w", record.ID, err)
		}
		issued.Lines = append(issued.Lines, domain.StatementLine{
			PlayID:   line.PlayID,
			PlayName: line.PlayName,
			Genre:    genre,
			Audience: line.Audience,
			Charge:   domain.Money(line.Charge),
			Credits:  line.Credits,
		})
	}
	return issued, nil
}
