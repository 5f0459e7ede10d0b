package commands

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/loader"
	"github.com/spf13/cobra"
)

// CatalogOpener opens the catalog stored at dbPath. The returned func releases it.
type CatalogOpener func(ctx context.Context, dbPath string) (catalog.Service, func() error, error)

type PlaysCmd struct {
	dbPath    string
	playsPath string
	open      CatalogOpener
}

func NewPlaysCmd(open CatalogOpener) *cobra.Command {
	pc := &PlaysCmd{open: open}
	cmd := &cobra.Command{
		Use:   "plays",
		Short: "Manage the stored play catalog",
	}
	cmd.PersistentFlags().StringVar(&pc.dbPath, "db", "playbill.db", "Path to the DuckDB database")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import plays from a catalog file",
		RunE:  pc.runImport,
	}
	importCmd.Flags().StringVar(&pc.playsPath, "plays", "", "Path to the plays catalog (json, yaml or ini)")
	_ = importCmd.MarkFlagRequired("plays")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plays",
		RunE:  pc.runList,
	}

	cmd.AddCommand(importCmd, listCmd)
	return cmd
}

func (pc *PlaysCmd) runImport(cmd *cobra.Command, _ []string) (err error) {
	ctx := cmd.Context()

	plays, err := loader.LoadPlays(pc.playsPath)
	if err != nil {
		return fmt.Errorf("failed to load plays: %w", err)
	}

	svc, closeFn, err := pc.open(ctx, pc.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ordered := make([]domain.Play, 0, len(plays))
	for _, p := range plays {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	if err := svc.SavePlays(ctx, ordered); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d plays into %s\n", len(ordered), pc.dbPath)
	return nil
}

func (pc *PlaysCmd) runList(cmd *cobra.Command, _ []string) (err error) {
	ctx := cmd.Context()

	svc, closeFn, err := pc.open(ctx, pc.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	plays, err := svc.ListPlays(ctx)
	if err != nil {
		return err
	}
	if len(plays) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No plays found in %s\n", pc.dbPath)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE")
	for _, p := range plays {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Genre)
	}
	return w.Flush()
}
