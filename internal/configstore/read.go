package configstore

import "context"

// GetConfigIDByKey resolves a config_key or readonly_config_key to its
// config_id. Fails with KindUnknownKey if no row matches either column.
func (s *Store) GetConfigIDByKey(ctx context.Context, key string) (int64, error) {
	count, err := s.countWhere(ctx, "config_key = ? OR readonly_config_key = ?", key, key)
	if err != nil {
		s.state = StateStoreError
		return 0, newStoreError(KindStoreError, "count config by key: %v", err)
	}
	if count == 0 {
		s.state = StateUnknownKey
		return 0, newStoreError(KindUnknownKey, "no configuration matches key")
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM config WHERE config_key = ? OR readonly_config_key = ? LIMIT 1
	`, key, key).Scan(&id)
	if err != nil {
		s.state = StateStoreError
		return 0, newStoreError(KindStoreError, "select config by key: %v", err)
	}

	s.state = StateGood
	return id, nil
}

// GetConfigName returns the CONFIG_NAME field of the document at configID.
// Fails with KindUnknownID if no row exists.
func (s *Store) GetConfigName(ctx context.Context, configID int64) (string, error) {
	doc, err := s.GetConfig(ctx, configID)
	if err != nil {
		return "", err
	}
	return doc.ConfigName, nil
}

// GetConfig returns the full document stored at configID. Fails with
// KindUnknownID if no row exists.
func (s *Store) GetConfig(ctx context.Context, configID int64) (Document, error) {
	count, err := s.countWhere(ctx, "id = ?", configID)
	if err != nil {
		s.state = StateStoreError
		return Document{}, newStoreError(KindStoreError, "count config by id: %v", err)
	}
	if count == 0 {
		s.state = StateUnknownID
		return Document{}, newStoreError(KindUnknownID, "no configuration with id %d", configID)
	}

	var text string
	err = s.db.QueryRowContext(ctx, `SELECT config_text FROM config WHERE id = ?`, configID).Scan(&text)
	if err != nil {
		s.state = StateStoreError
		return Document{}, newStoreError(KindStoreError, "select config: %v", err)
	}

	var doc Document
	if err := doc.UnmarshalJSON([]byte(text)); err != nil {
		s.state = StateFatal
		return Document{}, newStoreError(KindFatal, "decode document for config %d: %v", configID, err)
	}

	s.state = StateGood
	return doc, nil
}
