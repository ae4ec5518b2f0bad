package cli

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/BartekS5/itemexport/internal/config"
)

type ExtractOptions struct {
	ConnectionFile string
	CSVDir         string
	GzipDir        string
	MinItemID      int64
	MaxItemID      int64
	Driver         string
	SQLitePath     string
	MongoURI       string
	MongoDatabase  string
	LogLevel       string
	LogFile        string
	DryRun         bool
}

func NewExtractCmd() *cobra.Command {
	settings := config.LoadSettings()
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Export the latest live items to CSV and gzip",
		RunE: func(c *cobra.Command, args []string) error {
			return runExtract(c.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConnectionFile, "config", "c", settings.ConnectionFile, "Path to the connection file (HOST, PORT, DATABASE, USER, PASSWORD)")
	flags.StringVar(&opts.CSVDir, "csv-dir", settings.CSVDir, "Directory for CSV output")
	flags.StringVar(&opts.GzipDir, "gzip-dir", settings.GzipDir, "Directory for gzip output")
	flags.Int64Var(&opts.MinItemID, "min-item-id", math.MinInt64, "Lowest ItemId to export")
	flags.Int64Var(&opts.MaxItemID, "max-item-id", math.MaxInt64, "Highest ItemId to export")
	flags.StringVar(&opts.Driver, "driver", settings.Driver, "Database driver: sqlserver or sqlite")
	flags.StringVar(&opts.SQLitePath, "sqlite-path", settings.SQLitePath, "Database file when --driver=sqlite")
	flags.StringVar(&opts.MongoURI, "mongo-uri", settings.MongoConnString, "Mirror the export into MongoDB when set")
	flags.StringVar(&opts.MongoDatabase, "mongo-database", settings.MongoDatabase, "MongoDB database for the mirror")
	flags.StringVar(&opts.LogLevel, "log-level", settings.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", settings.LogFile, "Also write logs to this file")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Extract and count rows without writing files")

	return cmd
}
