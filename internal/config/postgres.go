package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const preparedBinaryResultParam = "disable_prepared_binary_result"

// PostgresDSN returns the connection string shared by the postgres roster
// backend and the migration tool. DB_URL may be a postgres:// URL or a
// key=value DSN. An explicit disable_prepared_binary_result always wins.
func (c Config) PostgresDSN() (string, error) {
	raw := strings.TrimSpace(c.DBURL)
	if raw == "" {
		return "", errors.New("DB_URL is empty")
	}

	if !isPostgresURL(raw) {
		if !c.DBDisablePreparedBinary || strings.Contains(raw, preparedBinaryResultParam+"=") {
			return raw, nil
		}
		return raw + " " + preparedBinaryResultParam + "=yes", nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		// url.Error repeats the URL, password included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", fmt.Errorf("parse DB_URL: %w", err)
	}
	if !c.DBDisablePreparedBinary {
		return raw, nil
	}

	query := parsed.Query()
	if query.Get(preparedBinaryResultParam) == "" {
		query.Set(preparedBinaryResultParam, "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// PostgresMigrationURL is PostgresDSN restricted to URL form, which is the
// only form golang-migrate understands.
func (c Config) PostgresMigrationURL() (string, error) {
	dsn, err := c.PostgresDSN()
	if err != nil {
		return "", err
	}
	if !isPostgresURL(dsn) {
		return "", errors.New("DB_URL must be a postgres:// URL to run migrations")
	}
	return dsn, nil
}

func isPostgresURL(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
