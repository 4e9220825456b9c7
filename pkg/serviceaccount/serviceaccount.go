package serviceaccount

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// EnvVar is the environment variable checked for the key content before
// falling back to a local key file. It holds the key JSON as plain text,
// e.g. export SERVICE_ACCOUNT_KEY="$(cat oportunidad-es-hoy-service-account.json)"
const EnvVar = "SERVICE_ACCOUNT_KEY"

// DefaultKeyFile is the name of the service-account key file handed to operators.
const DefaultKeyFile = "oportunidad-es-hoy-service-account.json"

// DefaultDatabase is used when the key does not name a database.
const DefaultDatabase = "oportunidad-es-hoy"

// Key holds the connection credentials for the platform database.
type Key struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// Resolve returns the service-account key, checking the SERVICE_ACCOUNT_KEY
// environment variable first and falling back to the key file at path.
func Resolve(path string) (*Key, error) {
	if raw := os.Getenv(EnvVar); raw != "" {
		key, err := parse([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid %s environment variable: %w", EnvVar, err)
		}
		return key, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}
	key, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid key file %s: %w", path, err)
	}
	return key, nil
}

// parse decodes the key JSON and applies the database fallback
func parse(raw []byte) (*Key, error) {
	var key Key
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, err
	}
	if key.URI == "" {
		return nil, errors.New("key is missing the uri field")
	}
	if key.Database == "" {
		key.Database = DefaultDatabase
	}
	return &key, nil
}

// EncodeKeyFile reads the key file at path and returns its base64 encoding.
func EncodeKeyFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
