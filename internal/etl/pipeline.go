package etl

import (
	"context"
	"math"
	"path/filepath"
	"time"

	"github.com/BartekS5/itemexport/pkg/logger"
)

// Options scope a single run. Nothing here is shared between runs.
type Options struct {
	CSVDir    string
	GzipDir   string
	MinItemID int64
	MaxItemID int64
	DryRun    bool
	// Now stamps the output file name; time.Now when nil.
	Now func() time.Time
}

// DefaultOptions exports every item into ./csv and ./gzip.
func DefaultOptions() Options {
	return Options{
		CSVDir:    "csv",
		GzipDir:   "gzip",
		MinItemID: math.MinInt64,
		MaxItemID: math.MaxInt64,
	}
}

// Result describes a finished run.
type Result struct {
	Date     string
	CSVPath  string
	GzipPath string
	Rows     int
}

// Extractor runs schema bootstrap, extraction, CSV export and compression
// once over a connection it owns for the duration of Run.
type Extractor struct {
	Connect     Connector
	Dialect     Dialect
	Options     Options
	Transformer *Transformer
	// Mirror, when set, receives the rows after the files are written.
	Mirror Loader

	db DB
}

func NewExtractor(connect Connector, dialect Dialect, opts Options) *Extractor {
	return &Extractor{
		Connect:     connect,
		Dialect:     dialect,
		Options:     opts,
		Transformer: NewTransformer(),
	}
}

func (e *Extractor) now() time.Time {
	if e.Options.Now != nil {
		return e.Options.Now()
	}
	return time.Now()
}

// Run executes the whole export. The connection is closed on every path.
func (e *Extractor) Run(ctx context.Context) (*Result, error) {
	logger.Infof("Starting extraction. Dialect: %s, ItemId range: [%d, %d], DryRun: %v",
		e.Dialect.Name, e.Options.MinItemID, e.Options.MaxItemID, e.Options.DryRun)
	startTime := time.Now()

	db, err := e.Connect(ctx)
	if err != nil {
		return nil, NewError(KindConnection, err)
	}
	e.db = db
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warnf("Closing database connection: %v", err)
		}
		e.db = nil
	}()

	if err := e.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := e.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Date: e.now().Format(dateLayout), Rows: len(rows)}
	if e.Options.DryRun {
		logger.Infof("[DRY RUN] Would export %d rows", len(rows))
		return result, nil
	}

	filename, err := e.WriteCSV(rows)
	if err != nil {
		return nil, err
	}
	result.CSVPath = filepath.Join(e.Options.CSVDir, filename)

	result.GzipPath, err = e.Compress(filename)
	if err != nil {
		return nil, err
	}

	if e.Mirror != nil {
		if err := e.Mirror.Load(ctx, result, rows); err != nil {
			return nil, NewError(KindMirror, err)
		}
	}

	logger.WithField("rows", result.Rows).
		WithField("elapsed", time.Since(startTime).Round(time.Millisecond)).
		Infof("Data extracted correctly! CSV file path: %s, GZ file path: %s", e.Options.CSVDir, e.Options.GzipDir)
	return result, nil
}
