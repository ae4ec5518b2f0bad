package config

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/BartekS5/itemexport/pkg/models"
)

// LoadConnection reads the HOST/PORT/DATABASE/USER/PASSWORD file at filePath.
// JSON and YAML are both accepted.
func LoadConnection(filePath string) (*models.ConnectionConfig, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read connection file '%s'", filePath)
	}

	var conn models.ConnectionConfig
	if err := yaml.Unmarshal(bytes, &conn); err != nil {
		return nil, errors.Wrapf(err, "failed to parse connection file '%s'", filePath)
	}

	if err := Validate(&conn); err != nil {
		return nil, errors.Wrapf(err, "invalid connection file '%s'", filePath)
	}
	return &conn, nil
}
