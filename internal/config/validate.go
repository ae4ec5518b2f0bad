package config

import (
	"fmt"
	"strings"

	"github.com/BartekS5/itemexport/pkg/models"
)

// Validate checks that the required keys are present and fills in the default port.
func Validate(conn *models.ConnectionConfig) error {
	var missing []string
	if conn.Host == "" {
		missing = append(missing, "HOST")
	}
	if conn.Database == "" {
		missing = append(missing, "DATABASE")
	}
	if conn.User == "" {
		missing = append(missing, "USER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}

	if conn.Port == 0 {
		conn.Port = models.DefaultPort
	}
	if conn.Port < 1 || conn.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", conn.Port)
	}
	return nil
}
