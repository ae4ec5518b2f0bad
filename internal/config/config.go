// Package config handles loading of runtime settings from the environment
// and of the database connection file.
package config

import (
	"os"
)

const (
	DefaultConnectionFile = "config/itemexport.json"
	DefaultCSVDir         = "csv"
	DefaultGzipDir        = "gzip"
	DefaultLogLevel       = "info"
	DefaultDriver         = "sqlserver"
	DefaultSQLitePath     = "itemexport.db"
	DefaultMongoDatabase  = "itemexport"
)

// Settings holds everything configurable through the environment
// (which may be populated by the .env file in main.go). Command flags
// default to these values.
type Settings struct {
	ConnectionFile  string
	CSVDir          string
	GzipDir         string
	LogLevel        string
	LogFile         string
	Driver          string
	SQLitePath      string
	MongoConnString string
	MongoDatabase   string
}

// LoadSettings reads settings from environment variables, falling back to defaults.
func LoadSettings() *Settings {
	return &Settings{
		ConnectionFile:  getenv("ITEMEXPORT_CONFIG", DefaultConnectionFile),
		CSVDir:          getenv("ITEMEXPORT_CSV_DIR", DefaultCSVDir),
		GzipDir:         getenv("ITEMEXPORT_GZIP_DIR", DefaultGzipDir),
		LogLevel:        getenv("ITEMEXPORT_LOG_LEVEL", DefaultLogLevel),
		LogFile:         os.Getenv("ITEMEXPORT_LOG_FILE"),
		Driver:          getenv("ITEMEXPORT_DRIVER", DefaultDriver),
		SQLitePath:      getenv("ITEMEXPORT_SQLITE_PATH", DefaultSQLitePath),
		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MongoDatabase:   getenv("MONGO_DATABASE", DefaultMongoDatabase),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
