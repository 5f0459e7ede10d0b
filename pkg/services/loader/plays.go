package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/models/domain"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

type playRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// LoadPlays reads a play catalog from a JSON, YAML or INI file.
func LoadPlays(path string) (domain.Catalog, error) {
	f, format, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodePlays(f, format)
}

func DecodePlays(r io.Reader, format Format) (domain.Catalog, error) {
	var records map[string]playRecord
	var err error

	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&records)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if err == io.EOF {
			err = nil
		}
	case FormatINI:
		records, err = decodeINI(r)
	default:
		return nil, fmt.Errorf("unsupported plays format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode plays: %w", err)
	}

	catalog := make(domain.Catalog, len(records))
	for id, rec := range records {
		genre, err := domain.ParseGenre(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("play %q: %w", id, err)
		}
		catalog[id] = domain.Play{ID: id, Name: rec.Name, Genre: genre}
	}
	return catalog, nil
}

// decodeINI reads one section per play:
//
//	[hamlet]
//	name = Hamlet
//	type = tragedy
func decodeINI(r io.Reader) (map[string]playRecord, error) {
	cfg, err := ini.Load(r)
	if err != nil {
		return nil, err
	}

	records := make(map[string]playRecord)
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		if section.Name() == ini.DefaultSection {
			return nil, fmt.Errorf("keys outside a [play] section: %v", section.KeyStrings())
		}
		records[section.Name()] = playRecord{
			Name: section.Key("name").String(),
			Type: section.Key("type").String(),
		}
	}
	return records, nil
}
