package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/playbill/pkg/services/catalog"
	catalogstore "github.com/de-tools/playbill/pkg/store/catalog"
	"github.com/de-tools/playbill/pkg/store/duckdb"
	"github.com/de-tools/playbill/pkg/terminal/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger *zerolog.Logger
	// OpenCatalog defaults to a DuckDB-backed catalog.
	OpenCatalog commands.CatalogOpener
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.OpenCatalog == nil {
		opts.OpenCatalog = OpenDuckDBCatalog
	}

	cli := &CLI{logger: zerolog.Nop()}
	if opts.Logger != nil {
		cli.logger = *opts.Logger
	}

	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playbill",
		Short:         "Theater billing statements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.Output)

	cmd.AddCommand(commands.NewStatementCmd())
	cmd.AddCommand(commands.NewPlaysCmd(opts.OpenCatalog))

	return cmd
}

func OpenDuckDBCatalog(_ context.Context, dbPath string) (catalog.Service, func() error, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, nil, err
	}
	s, err := catalogstore.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return catalog.NewService(s), db.Close, nil
}
