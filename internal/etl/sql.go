package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/BartekS5/itemexport/pkg/logger"
	"github.com/BartekS5/itemexport/pkg/models"
)

// Dialect holds the statements for one database engine. The extraction
// query takes the inclusive ItemId range as its two parameters.
type Dialect struct {
	Name         string
	CustomerDDL  string
	ItemDDL      string
	ExtractQuery string
}

var SQLServer = Dialect{
	Name: "sqlserver",
	CustomerDDL: `
IF NOT EXISTS (
	SELECT * FROM INFORMATION_SCHEMA.TABLES
	WHERE TABLE_SCHEMA = 'dbo' AND TABLE_NAME = 'Customer'
)
CREATE TABLE [dbo].[Customer] (
	[CustomerId] [bigint] NOT NULL,
	[CustomerName] [varchar](500) NOT NULL,
	PRIMARY KEY CLUSTERED ([CustomerId] ASC)
)`,
	ItemDDL: `
IF NOT EXISTS (
	SELECT * FROM INFORMATION_SCHEMA.TABLES
	WHERE TABLE_SCHEMA = 'dbo' AND TABLE_NAME = 'Item'
)
CREATE TABLE [dbo].[Item] (
	[ItemId] [bigint] NOT NULL,
	[VersionNbr] [int] NOT NULL,
	[DeletedFlag] [tinyint] NOT NULL,
	[ItemDocumentNbr] [varchar](500) NOT NULL,
	[CustomerId] [bigint] NULL FOREIGN KEY REFERENCES [dbo].[Customer] ([CustomerId]),
	[CreateDate] [datetime] NOT NULL,
	[UpdateDate] [datetime] NOT NULL
)`,
	ExtractQuery: `
SELECT i.ItemId,
	i.ItemDocumentNbr,
	c.CustomerName,
	i.CreateDate,
	i.UpdateDate
FROM [dbo].[Item] i
	JOIN [dbo].[Customer] c ON i.CustomerId = c.CustomerId
WHERE i.DeletedFlag = 0
	AND i.ItemId BETWEEN @p1 AND @p2
	AND i.VersionNbr = (
		SELECT MAX(v.VersionNbr)
		FROM [dbo].[Item] v
		WHERE v.DeletedFlag = 0 AND v.ItemId = i.ItemId
	)
ORDER BY i.ItemId`,
}

var SQLite = Dialect{
	Name: "sqlite",
	CustomerDDL: `
CREATE TABLE IF NOT EXISTS Customer (
	CustomerId INTEGER NOT NULL PRIMARY KEY,
	CustomerName VARCHAR(500) NOT NULL
)`,
	ItemDDL: `
CREATE TABLE IF NOT EXISTS Item (
	ItemId INTEGER NOT NULL,
	VersionNbr INTEGER NOT NULL,
	DeletedFlag INTEGER NOT NULL,
	ItemDocumentNbr VARCHAR(500) NOT NULL,
	CustomerId INTEGER NULL REFERENCES Customer (CustomerId),
	CreateDate DATETIME NOT NULL,
	UpdateDate DATETIME NOT NULL
)`,
	ExtractQuery: `
SELECT i.ItemId,
	i.ItemDocumentNbr,
	c.CustomerName,
	i.CreateDate,
	i.UpdateDate
FROM Item i
	JOIN Customer c ON i.CustomerId = c.CustomerId
WHERE i.DeletedFlag = 0
	AND i.ItemId BETWEEN ? AND ?
	AND i.VersionNbr = (
		SELECT MAX(v.VersionNbr)
		FROM Item v
		WHERE v.DeletedFlag = 0 AND v.ItemId = i.ItemId
	)
ORDER BY i.ItemId`,
}

// DialectFor maps a database/sql driver name onto its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLServer.Name:
		return SQLServer, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported driver %q", driver)
	}
}

// EnsureSchema creates Customer and then Item when they do not exist yet.
func (e *Extractor) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []struct {
		table string
		ddl   string
	}{
		{"Customer", e.Dialect.CustomerDDL},
		{"Item", e.Dialect.ItemDDL},
	} {
		if err := e.exec(ctx, stmt.ddl); err != nil {
			return NewError(KindSchema, errors.Wrapf(err, "table %s", stmt.table))
		}
		logger.Debugf("Table %s checked.", stmt.table)
	}
	return nil
}

// FetchRows runs the extraction query and classifies every row.
func (e *Extractor) FetchRows(ctx context.Context) ([]models.ResultRow, error) {
	logger.Debugf("Executing query:\n%s", e.Dialect.ExtractQuery)
	start := time.Now()

	rows := []models.ResultRow{}
	err := sqlx.SelectContext(ctx, e.db, &rows, e.Dialect.ExtractQuery, e.Options.MinItemID, e.Options.MaxItemID)
	if err != nil {
		return nil, NewError(KindQuery, err)
	}
	logger.Debugf("Query executed. (%.2f seconds)", time.Since(start).Seconds())

	e.Transformer.Classify(rows)
	dumpRows(rows)
	return rows, nil
}

func (e *Extractor) exec(ctx context.Context, stmt string, args ...interface{}) error {
	logger.Debugf("Executing command:\n%s", stmt)
	start := time.Now()

	res, err := e.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return errors.Wrap(err, "command execution")
	}

	affected, _ := res.RowsAffected()
	logger.Debugf("Command executed. %d rows affected. (%.2f seconds)", affected, time.Since(start).Seconds())
	return nil
}

const dumpLimit = 10

func dumpRows(rows []models.ResultRow) {
	logger.Debugf("Extracted %d rows", len(rows))
	for i, r := range rows {
		if i == dumpLimit {
			logger.Debugf("... %d more", len(rows)-dumpLimit)
			break
		}
		logger.Debugf("%d;%s;%s;%s;%s;%s", r.ItemID, r.ItemDocumentNbr, r.CustomerName, r.CreateDate, r.UpdateDate, r.ItemSource)
	}
}
