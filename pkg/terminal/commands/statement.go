package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/runtime/terminal/export"
	"github.com/de-tools/playbill/pkg/services/config"
	"github.com/de-tools/playbill/pkg/services/loader"
	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type StatementCmd struct {
	invoicesPath string
	playsPath    string
	configPath   string
	format       string
}

func NewStatementCmd() *cobra.Command {
	sc := &StatementCmd{}
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print billing statements for invoices",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.invoicesPath, "invoices", "", "Path to the invoices file (json or yaml)")
	cmd.Flags().StringVar(&sc.playsPath, "plays", "", "Path to the plays catalog (json, yaml or ini)")
	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to a tariff config file")
	cmd.Flags().StringVar(&sc.format, "format", string(export.FormatText), "Output format (text or json)")

	_ = cmd.MarkFlagRequired("invoices")
	_ = cmd.MarkFlagRequired("plays")

	return cmd
}

func (sc *StatementCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.Ctx(cmd.Context())

	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return err
	}
	engine, err := pricing.NewEngine(cfg.Tariff)
	if err != nil {
		return err
	}

	invoices, err := loader.LoadInvoices(sc.invoicesPath)
	if err != nil {
		return fmt.Errorf("failed to load invoices: %w", err)
	}
	catalog, err := loader.LoadPlays(sc.playsPath)
	if err != nil {
		return fmt.Errorf("failed to load plays: %w", err)
	}
	logger.Debug().Int("invoices", len(invoices)).Int("plays", len(catalog)).Msg("input loaded")

	out := cmd.OutOrStdout()
	reporter, err := export.NewReporter(out, export.Format(sc.format))
	if err != nil {
		return err
	}

	// A bad invoice is reported and skipped; the others still get statements.
	var errs []error
	printed := 0
	for i, invoice := range invoices {
		statement, err := engine.Summarize(invoice, catalog)
		if err != nil {
			logger.Error().Err(err).Str("customer", invoice.Customer).Msg("statement failed")
			errs = append(errs, fmt.Errorf("invoice %d (%s): %w", i, invoice.Customer, err))
			continue
		}
		if printed > 0 && sc.format == string(export.FormatText) {
			_, _ = io.WriteString(out, "\n")
		}
		if err := reporter.Handle(statement); err != nil {
			return fmt.Errorf("failed to render statement: %w", err)
		}
		printed++
	}

	return errors.Join(errs...)
}
