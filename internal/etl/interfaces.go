package etl

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/BartekS5/itemexport/pkg/models"
)

// DB is the database capability the extractor needs. *sqlx.DB satisfies it.
type DB interface {
	sqlx.ExecerContext
	sqlx.QueryerContext
	Close() error
}

// Connector opens the connection used for one run.
type Connector func(ctx context.Context) (DB, error)

// Loader receives the exported rows once the files are written.
type Loader interface {
	Load(ctx context.Context, result *Result, rows []models.ResultRow) error
}
