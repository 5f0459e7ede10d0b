package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/store/history"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Summarizer is the pricing engine as seen by the service.
type Summarizer interface {
	Summarize(invoice domain.Invoice, catalog domain.Catalog) (domain.Statement, error)
}

type Service interface {
	// Issue prices the invoice against the stored catalog and records the result.
	Issue(ctx context.Context, invoice domain.Invoice) (domain.IssuedStatement, error)
	History(ctx context.Context, customer string) ([]domain.IssuedStatement, error)
}

type service struct {
	engine  Summarizer
	catalog catalog.Service
	history history.Store

	now   func() time.Time
	newID func() string
}

func NewService(engine Summarizer, catalog catalog.Service, history history.Store) Service {
	return &service{
		engine:  engine,
		catalog: catalog,
		history: history,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *service) Issue(ctx context.Context, invoice domain.Invoice) (domain.IssuedStatement, error) {
	logger := zerolog.Ctx(ctx)

	plays, err := s.catalog.Catalog(ctx)
	if err != nil {
		return domain.IssuedStatement{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	statement, err := s.engine.Summarize(invoice, plays)
	if err != nil {
		return domain.IssuedStatement{}, err
	}

	issued := domain.IssuedStatement{
		ID:        s.newID(),
		IssuedAt:  s.now().UTC(),
		Statement: statement,
	}

	if err := s.history.Add(ctx, adapters.MapIssuedStatementDomainToStore(issued)); err != nil {
		return domain.IssuedStatement{}, fmt.Errorf("failed to record statement: %w", err)
	}

	logger.Info().
		Str("statement_id", issued.ID).
		Str("customer", issued.Customer).
		Int64("total_charge", int64(issued.TotalCharge)).
		Int("total_credits", issued.TotalCredits).
		Msg("statement issued")

	return issued, nil
}

func (s *service) History(ctx context.Context, customer string) ([]domain.IssuedStatement, error) {
	records, err := s.history.ListByCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	statements := make([]domain.IssuedStatement, 0, len(records))
	for _, rec := range records {
		issued, err := adapters.MapStatementRecordStoreToDomain(rec)
		if err != nil {
			return nil, err
		}
		statements = append(statements, issued)
	}
	return statements, nil
}
