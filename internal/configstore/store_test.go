package configstore

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM config").Scan(&count); err != nil {
		t.Fatalf("query config table: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()
}

func TestOpen_ThreeUniqueIndexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	rows, err := s.db.Query(`SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'config'`)
	if err != nil {
		t.Fatalf("query indexes: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan index name: %v", err)
		}
		names = append(names, name)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 unique indexes on config, got %d: %v", len(names), names)
	}
}

func TestCreateConfig_DistinctKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	created, err := s.CreateConfig(context.Background(), "ma_config")
	if err != nil {
		t.Fatalf("CreateConfig() failed: %v", err)
	}
	if created.ConfigKey == "" || created.ReadonlyConfigKey == "" {
		t.Fatalf("expected non-empty keys, got %+v", created)
	}
	if created.ConfigKey == created.ReadonlyConfigKey {
		t.Fatalf("config key and readonly key must differ")
	}
}

func TestCreateConfig_NameNotUnique(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	first, err := s.CreateConfig(context.Background(), "ma_config")
	if err != nil {
		t.Fatalf("first CreateConfig() failed: %v", err)
	}
	second, err := s.CreateConfig(context.Background(), "ma_config")
	if err != nil {
		t.Fatalf("second CreateConfig() failed: %v", err)
	}
	if second.ConfigID != first.ConfigID+1 {
		t.Fatalf("expected second id to be first+1, got first=%d second=%d", first.ConfigID, second.ConfigID)
	}
}

func TestGetConfigIDByKey_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	_, err = s.GetConfigIDByKey(context.Background(), "never-seen")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	var se *StoreError
	if !asStoreError(err, &se) || se.Kind != KindUnknownKey {
		t.Fatalf("expected KindUnknownKey, got %v", err)
	}
	if s.State() != StateUnknownKey {
		t.Fatalf("expected StateUnknownKey, got %v", s.State())
	}
}

func TestGetConfigIDByKey_ReadonlyKeyResolves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	created, err := s.CreateConfig(context.Background(), "ma_config")
	if err != nil {
		t.Fatalf("CreateConfig() failed: %v", err)
	}

	id, err := s.GetConfigIDByKey(context.Background(), created.ReadonlyConfigKey)
	if err != nil {
		t.Fatalf("GetConfigIDByKey() failed: %v", err)
	}
	if id != created.ConfigID {
		t.Fatalf("expected id %d, got %d", created.ConfigID, id)
	}
}

func TestIncludeConfig_DedupAndOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	dst, err := s.CreateConfig(ctx, "dst")
	if err != nil {
		t.Fatalf("CreateConfig(dst) failed: %v", err)
	}
	src, err := s.CreateConfig(ctx, "src")
	if err != nil {
		t.Fatalf("CreateConfig(src) failed: %v", err)
	}

	n, err := s.IncludeConfig(ctx, dst.ConfigID, dst.ConfigID)
	if err != nil {
		t.Fatalf("IncludeConfig(self) failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected nb_configs 1, got %d", n)
	}

	n, err = s.IncludeConfig(ctx, dst.ConfigID, dst.ConfigID)
	if err != nil {
		t.Fatalf("IncludeConfig(self, repeat) failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected dedup to keep nb_configs at 1, got %d", n)
	}

	n, err = s.IncludeConfig(ctx, dst.ConfigID, src.ConfigID)
	if err != nil {
		t.Fatalf("IncludeConfig(src) failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected nb_configs 2, got %d", n)
	}

	doc, err := s.GetConfig(ctx, dst.ConfigID)
	if err != nil {
		t.Fatalf("GetConfig(dst) failed: %v", err)
	}
	if len(doc.Includes) != 2 || doc.Includes[0] != dst.ConfigID || doc.Includes[1] != src.ConfigID {
		t.Fatalf("expected ascending includes [%d %d], got %v", dst.ConfigID, src.ConfigID, doc.Includes)
	}
}

func TestIncludeConfig_UnknownID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	dst, err := s.CreateConfig(ctx, "dst")
	if err != nil {
		t.Fatalf("CreateConfig(dst) failed: %v", err)
	}

	_, err = s.IncludeConfig(ctx, dst.ConfigID, 9999)
	if err == nil {
		t.Fatal("expected error for unknown source id")
	}
	var se *StoreError
	if !asStoreError(err, &se) || se.Kind != KindUnknownID {
		t.Fatalf("expected KindUnknownID, got %v", err)
	}
}

// asStoreError is a small type-assertion helper kept local to the test file
// for a single assertion shape. It does not unwrap: err itself must be a
// *StoreError, which is what every Store method returns on failure.
func asStoreError(err error, target **StoreError) bool {
	se, ok := err.(*StoreError)
	if !ok {
		return false
	}
	*target = se
	return true
}
