package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/playbill/pkg/server"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/config"
	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/de-tools/playbill/pkg/services/statement"
	catalogstore "github.com/de-tools/playbill/pkg/store/catalog"
	"github.com/de-tools/playbill/pkg/store/duckdb"
	historystore "github.com/de-tools/playbill/pkg/store/history"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dbPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the playbill statement server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a tariff config file")
	rootCmd.Flags().StringVar(&dbPath, "db", "playbill.db", "Path to the DuckDB database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: dbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	plays, err := catalogstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}
	history, err := historystore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}

	engine, err := pricing.NewEngine(cfg.Tariff)
	if err != nil {
		return err
	}

	catalogSvc := catalog.NewService(plays)
	statementSvc := statement.NewService(engine, catalogSvc, history)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		return fmt.Errorf("SERVER_HOST and SERVER_PORT must be set")
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("Statements are stored in `%s`", dbPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Statements: statementSvc,
			Catalog:    catalogSvc,
		},
	})
	return api.Start()
}
