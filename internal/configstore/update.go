package configstore

import "context"

// UpdateConfig persists document verbatim at configID. Fails with
// KindUnknownID if no row exists.
func (s *Store) UpdateConfig(ctx context.Context, configID int64, document Document) error {
	count, err := s.countWhere(ctx, "id = ?", configID)
	if err != nil {
		s.state = StateStoreError
		return newStoreError(KindStoreError, "count config by id: %v", err)
	}
	if count == 0 {
		s.state = StateUnknownID
		return newStoreError(KindUnknownID, "no configuration with id %d", configID)
	}

	payload, err := document.MarshalJSON()
	if err != nil {
		s.state = StateFatal
		return newStoreError(KindFatal, "marshal document for config %d: %v", configID, err)
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE config SET config_text = ? WHERE id = ?`, payload, configID); err != nil {
		s.state = StateStoreError
		return newStoreError(KindStoreError, "update config: %v", err)
	}

	s.state = StateGood
	return nil
}
