package catalog

import (
	"context"
	"fmt"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
	catalogstore "github.com/de-tools/playbill/pkg/store/catalog"
	"github.com/rs/zerolog"
)

// Service exposes the stored play catalog as domain values.
type Service interface {
	ListPlays(ctx context.Context) ([]domain.Play, error)
	GetPlay(ctx context.Context, id string) (domain.Play, error)
	Catalog(ctx context.Context) (domain.Catalog, error)
	SavePlays(ctx context.Context, plays []domain.Play) error
}

type service struct {
	store catalogstore.Store
}

func NewService(store catalogstore.Store) Service {
	return &service{store: store}
}

func (s *service) ListPlays(ctx context.Context) ([]domain.Play, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plays: %w", err)
	}

	plays := make([]domain.Play, 0, len(records))
	for _, rec := range records {
		play, err := adapters.MapStorePlayToDomain(rec)
		if err != nil {
			return nil, err
		}
		plays = append(plays, play)
	}
	return plays, nil
}

// GetPlay fails with ErrUnknownPlay when the play is not stored.
func (s *service) GetPlay(ctx context.Context, id string) (domain.Play, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Play{}, fmt.Errorf("failed to get play: %w", err)
	}
	if record == nil {
		return domain.Play{}, &domain.PlayError{PlayID: id}
	}
	return adapters.MapStorePlayToDomain(*record)
}

func (s *service) Catalog(ctx context.Context) (domain.Catalog, error) {
	plays, err := s.ListPlays(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(domain.Catalog, len(plays))
	for _, play := range plays {
		catalog[play.ID] = play
	}
	return catalog, nil
}

func (s *service) SavePlays(ctx context.Context, plays []domain.Play) error {
	records := make([]store.Play, 0, len(plays))
	for _, play := range plays {
		if !play.Genre.Valid() {
			return fmt.Errorf("play %q: %w", play.ID, &domain.GenreError{Genre: play.Genre.String()})
		}
		records = append(records, adapters.MapDomainPlayToStore(play))
	}

	if err := s.store.Upsert(ctx, records); err != nil {
		return fmt.Errorf("failed to save plays: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("plays", len(records)).Msg("catalog updated")
	return nil
}
