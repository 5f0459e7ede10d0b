package adapters

import (
	"fmt"

	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
)

func MapStorePlayToDomain(play store.Play) (domain.Play, error) {
	genre, err := domain.ParseGenre(play.Genre)
	if err != nil {
		return domain.Play{}, fmt.Errorf("play %q: %w", play.ID, err)
	}
	return domain.Play{ID: play.ID, Name: play.Name, Genre: genre}, nil
}

func MapDomainPlayToStore(play domain.Play) store.Play {
	return store.Play{ID: play.ID, Name: play.Name, Genre: play.Genre.String()}
}

func MapApiPlayToDomain(id string, play api.Play) (domain.Play, error) {
	genre, err := domain.ParseGenre(play.Type)
	if err != nil {
		return domain.Play{}, err
	}
	return domain.Play{ID: id, Name: play.Name, Genre: genre}, nil
}

func MapDomainPlayToApi(play domain.Play) api.Play {
	return api.Play{ID: play.ID, Name: play.Name, Type: play.Genre.String()}
}
