package configstore

import "context"

// IncludeConfig appends srcID to dstID's include list (sorted ascending,
// deduplicated) and persists the result. Fails with KindUnknownID if either
// id does not exist. Returns the resulting list length.
func (s *Store) IncludeConfig(ctx context.Context, dstID, srcID int64) (int, error) {
	for _, id := range []int64{dstID, srcID} {
		count, err := s.countWhere(ctx, "id = ?", id)
		if err != nil {
			s.state = StateStoreError
			return 0, newStoreError(KindStoreError, "count config by id: %v", err)
		}
		if count == 0 {
			s.state = StateUnknownID
			return 0, newStoreError(KindUnknownID, "no configuration with id %d", id)
		}
	}

	dst, err := s.GetConfig(ctx, dstID)
	if err != nil {
		return 0, err
	}

	updated := dst.WithInclude(srcID)
	if err := s.UpdateConfig(ctx, dstID, updated); err != nil {
		return 0, err
	}

	s.state = StateGood
	return len(updated.Includes), nil
}
