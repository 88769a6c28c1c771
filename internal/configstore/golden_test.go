package configstore

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestDocument_GoldenSnapshot pins the exact wire bytes a document produces,
// catching any accidental field reordering or renaming in documentWire.
func TestDocument_GoldenSnapshot(t *testing.T) {
	g := goldie.New(t)

	doc := Document{
		ConfigName: "demo",
		Settings:   map[string]string{"color": "blue", "level": "9"},
		Includes:   []int64{2, 5},
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	g.Assert(t, "document_snapshot", data)
}
