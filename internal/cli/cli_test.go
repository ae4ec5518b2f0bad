package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/itemexport/internal/etl"
	"github.com/BartekS5/itemexport/pkg/database"
)

type dirs struct {
	root, csv, gzip string
}

func newDirs(t *testing.T) dirs {
	root := t.TempDir()
	return dirs{
		root: root,
		csv:  filepath.Join(root, "csv"),
		gzip: filepath.Join(root, "gzip"),
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func seedSQLite(t *testing.T, path string) {
	t.Helper()
	db, err := sqlx.Open(database.DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		etl.SQLite.CustomerDDL,
		etl.SQLite.ItemDDL,
		`INSERT INTO Customer VALUES (1, '99ACME')`,
		`INSERT INTO Customer VALUES (2, 'ABCME')`,
		`INSERT INTO Item VALUES (5, 1, 0, 'DOC-5', 1, '2024-01-01 00:00:00', '2024-01-01 00:00:00')`,
		`INSERT INTO Item VALUES (6, 1, 0, 'DOC-6', 2, '2024-01-01 00:00:00', '2024-01-01 00:00:00')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func TestExtractSQLite(t *testing.T) {
	d := newDirs(t)
	dbPath := filepath.Join(d.root, "items.db")
	seedSQLite(t, dbPath)

	err := execute(t, "extract",
		"--driver", "sqlite",
		"--sqlite-path", dbPath,
		"--csv-dir", d.csv,
		"--gzip-dir", d.gzip,
		"--mongo-uri", "",
		"--log-level", "debug",
	)
	require.NoError(t, err)

	name := etl.FileName(time.Now())
	data, err := os.ReadFile(filepath.Join(d.csv, name))
	require.NoError(t, err)
	assert.Equal(t,
		"ItemId;ItemDocumentNbr;CustomerName;CreateDate;UpdateDate;ItemSource\r\n"+
			"5;DOC-5;99ACME;2024-01-01 00:00:00;2024-01-01 00:00:00;Local\r\n"+
			"6;DOC-6;ABCME;2024-01-01 00:00:00;2024-01-01 00:00:00;External\r\n",
		string(data))
	assert.FileExists(t, filepath.Join(d.gzip, name+".gz"))
}

func TestExtractMissingConnectionFile(t *testing.T) {
	d := newDirs(t)

	err := execute(t, "extract",
		"--driver", "sqlserver",
		"--config", filepath.Join(d.root, "missing.json"),
		"--csv-dir", d.csv,
		"--gzip-dir", d.gzip,
		"--mongo-uri", "",
		"--log-level", "info",
	)
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindConfig))
	assert.NoDirExists(t, d.csv)
}

func TestExtractUnreachableServerWritesNothing(t *testing.T) {
	d := newDirs(t)
	conn := filepath.Join(d.root, "conn.json")
	require.NoError(t, os.WriteFile(conn, []byte(`{"HOST": "127.0.0.1", "PORT": 1, "DATABASE": "ITEMS", "USER": "sa", "PASSWORD": "x"}`), 0o600))

	err := execute(t, "extract",
		"--driver", "sqlserver",
		"--config", conn,
		"--csv-dir", d.csv,
		"--gzip-dir", d.gzip,
		"--mongo-uri", "",
		"--log-level", "info",
	)
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindConnection))
	assert.NoDirExists(t, d.csv)
	assert.NoDirExists(t, d.gzip)
}

func TestExtractRejectsBadArguments(t *testing.T) {
	d := newDirs(t)

	err := execute(t, "extract", "--driver", "oracle", "--csv-dir", d.csv, "--log-level", "info")
	assert.True(t, etl.IsKind(err, etl.KindConfig))

	err = execute(t, "extract", "--driver", "sqlite", "--min-item-id", "10", "--max-item-id", "1", "--log-level", "info")
	assert.True(t, etl.IsKind(err, etl.KindConfig))

	err = execute(t, "extract", "--log-level", "chatty")
	assert.True(t, etl.IsKind(err, etl.KindConfig))
}
