package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

type invoiceRecord struct {
	Customer     string              `json:"customer" yaml:"customer"`
	Performances []performanceRecord `json:"performances" yaml:"performances"`
}

type performanceRecord struct {
	PlayID   string `json:"playID" yaml:"playID"`
	Audience int    `json:"audience" yaml:"audience"`
}

// LoadInvoices reads a JSON or YAML list of invoices from path.
func LoadInvoices(path string) ([]domain.Invoice, error) {
	f, format, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeInvoices(f, format)
}

func DecodeInvoices(r io.Reader, format Format) ([]domain.Invoice, error) {
	var records []invoiceRecord
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode invoices: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode invoices: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported invoice format: %s", format)
	}

	invoices := make([]domain.Invoice, 0, len(records))
	for i, rec := range records {
		inv := domain.Invoice{
			Customer:     rec.Customer,
			Performances: make([]domain.Performance, 0, len(rec.Performances)),
		}
		for j, perf := range rec.Performances {
			if perf.Audience < 0 {
				return nil, fmt.Errorf("invoice %d, performance %d: %w: %d", i, j, domain.ErrInvalidAudience, perf.Audience)
			}
			inv.Performances = append(inv.Performances, domain.Performance{
				PlayID:   perf.PlayID,
				Audience: perf.Audience,
			})
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
