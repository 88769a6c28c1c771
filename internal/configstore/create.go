package configstore

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// maxCreateAttempts bounds CreateConfig's retry loop: three regenerations
// after the first attempt, four attempts total.
const maxCreateAttempts = 4

// CreatedConfig is the result of a successful CreateConfig call.
type CreatedConfig struct {
	ConfigID          int64
	ConfigKey         string
	ReadonlyConfigKey string
}

// CreateConfig inserts a new configuration row named name. It generates both
// keys, retrying up to maxCreateAttempts times on a unique-constraint
// collision (regenerating both keys each attempt). A collision that persists
// through the final attempt surfaces as a store_error: the store, not the
// generator, is the authority on uniqueness.
func (s *Store) CreateConfig(ctx context.Context, name string) (CreatedConfig, error) {
	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		key := s.keyGen.Generate(name)
		readonlyKey := s.keyGen.Generate(name)

		payload, err := NewDocument(name).MarshalJSON()
		if err != nil {
			s.state = StateFatal
			return CreatedConfig{}, newStoreError(KindFatal, "marshal new document: %v", err)
		}

		res, err := s.db.ExecContext(ctx, `
			INSERT INTO config (config_text, config_key, readonly_config_key)
			VALUES (?, ?, ?)
		`, payload, key, readonlyKey)
		if err == nil {
			id, err := res.LastInsertId()
			if err != nil {
				s.state = StateFatal
				return CreatedConfig{}, newStoreError(KindFatal, "read last insert id: %v", err)
			}
			s.state = StateGood
			return CreatedConfig{ConfigID: id, ConfigKey: key, ReadonlyConfigKey: readonlyKey}, nil
		}

		if !isUniqueViolation(err) {
			s.state = StateStoreError
			return CreatedConfig{}, newStoreError(KindStoreError, "create config: %v", err)
		}
		lastErr = err
	}

	s.state = StateStoreError
	return CreatedConfig{}, newStoreError(KindStoreError,
		"create config: exhausted %d attempts on key collisions: %v", maxCreateAttempts, lastErr)
}

// isUniqueViolation reports whether err is a SQLite unique-constraint error,
// the only collision CreateConfig's retry loop is meant to absorb.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}
