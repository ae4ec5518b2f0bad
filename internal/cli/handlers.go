package cli

import (
	"context"
	"fmt"

	"github.com/BartekS5/itemexport/internal/config"
	"github.com/BartekS5/itemexport/internal/etl"
	"github.com/BartekS5/itemexport/pkg/database"
	"github.com/BartekS5/itemexport/pkg/logger"
)

func runExtract(ctx context.Context, opts *ExtractOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := logger.InitLogger(opts.LogFile, opts.LogLevel); err != nil {
		return etl.NewError(etl.KindConfig, err)
	}
	defer logger.Close()

	if opts.MinItemID > opts.MaxItemID {
		return etl.NewError(etl.KindConfig, fmt.Errorf("--min-item-id %d is greater than --max-item-id %d", opts.MinItemID, opts.MaxItemID))
	}

	dialect, err := etl.DialectFor(opts.Driver)
	if err != nil {
		return etl.NewError(etl.KindConfig, err)
	}

	dsn, err := resolveDSN(opts)
	if err != nil {
		return etl.NewError(etl.KindConfig, err)
	}

	connect := func(ctx context.Context) (etl.DB, error) {
		return database.ConnectSQL(ctx, opts.Driver, dsn)
	}

	extractor := etl.NewExtractor(connect, dialect, etl.Options{
		CSVDir:    opts.CSVDir,
		GzipDir:   opts.GzipDir,
		MinItemID: opts.MinItemID,
		MaxItemID: opts.MaxItemID,
		DryRun:    opts.DryRun,
	})

	if opts.MongoURI != "" && !opts.DryRun {
		client, err := database.ConnectMongo(ctx, opts.MongoURI)
		if err != nil {
			return etl.NewError(etl.KindMirror, err)
		}
		defer database.DisconnectMongo(client)
		extractor.Mirror = etl.NewMongoLoader(client, opts.MongoDatabase)
	}

	if _, err := extractor.Run(ctx); err != nil {
		return err
	}
	return nil
}

func resolveDSN(opts *ExtractOptions) (string, error) {
	if opts.Driver == database.DriverSQLite {
		logger.Infof("Using SQLite database %s", opts.SQLitePath)
		return opts.SQLitePath, nil
	}

	logger.Infof("Loading connection file: %s", opts.ConnectionFile)
	conn, err := config.LoadConnection(opts.ConnectionFile)
	if err != nil {
		return "", err
	}
	logger.Debugf("Connecting with %s", conn.Redacted())
	return conn.DSN(), nil
}
