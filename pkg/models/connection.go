package models

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/BartekS5/itemexport/pkg/utils"
)

// DefaultPort is the SQL Server listener port used when the config omits PORT.
const DefaultPort Port = 1433

// ConnectionConfig represents the connection file handed to the extractor.
type ConnectionConfig struct {
	Host     string `json:"HOST"`
	Port     Port   `json:"PORT"`
	Database string `json:"DATABASE"`
	User     string `json:"USER"`
	Password string `json:"PASSWORD"`
}

// Port accepts both `1433` and `"1433"` in the config file.
type Port int

func (p *Port) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = 0
		return nil
	}
	n, err := utils.ConvertToInt(raw)
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	*p = Port(n)
	return nil
}

func (c ConnectionConfig) url() *url.URL {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}

	query := url.Values{}
	query.Set("database", c.Database)
	query.Set("TrustServerCertificate", "true")

	return &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(int(port))),
		RawQuery: query.Encode(),
	}
}

// DSN returns the go-mssqldb URL connection string.
func (c ConnectionConfig) DSN() string {
	return c.url().String()
}

// Redacted is DSN with the password masked, safe for logs.
func (c ConnectionConfig) Redacted() string {
	return c.url().Redacted()
}
