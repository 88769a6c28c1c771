package configstore

import (
	"encoding/json"
	"sort"
)

// Document is the JSON body stored in config.config_text.
//
// INCLUDES and OTHER_CONFIG are the same logical list under two historical
// names. Both fields are written on every Marshal and merged on every
// Unmarshal, so a reader that only knows one of the two names still sees a
// correct, deduplicated, ascending list.
type Document struct {
	ConfigName string
	Settings   map[string]string
	Includes   []int64
}

type documentWire struct {
	ConfigName  string            `json:"CONFIG_NAME"`
	Settings    map[string]string `json:"SETTINGS"`
	Includes    []int64           `json:"INCLUDES"`
	OtherConfig []int64           `json:"OTHER_CONFIG"`
}

// NewDocument builds the initial document for a freshly created configuration.
func NewDocument(name string) Document {
	return Document{
		ConfigName: name,
		Settings:   map[string]string{},
		Includes:   []int64{},
	}
}

func (d Document) MarshalJSON() ([]byte, error) {
	settings := d.Settings
	if settings == nil {
		settings = map[string]string{}
	}
	w := documentWire{
		ConfigName:  d.ConfigName,
		Settings:    settings,
		Includes:    d.Includes,
		OtherConfig: d.Includes,
	}
	return json.Marshal(w)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.ConfigName = w.ConfigName
	d.Settings = w.Settings
	if d.Settings == nil {
		d.Settings = map[string]string{}
	}
	d.Includes = mergeIncludeLists(w.Includes, w.OtherConfig)
	return nil
}

// WithInclude returns a copy of d with srcID appended to its include list,
// sorted ascending with duplicates removed.
func (d Document) WithInclude(srcID int64) Document {
	next := d
	next.Includes = mergeIncludeLists(d.Includes, []int64{srcID})
	return next
}

func mergeIncludeLists(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, list := range [][]int64{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
