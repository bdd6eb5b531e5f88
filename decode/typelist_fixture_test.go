package decode

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanegate/objprop/typelist"
)

// propFixture describes one property for newTestTypeList, mirroring the
// shape of a version-2 TypeList JSON document's property entry.
type propFixture struct {
	Type        string
	ID          uint32
	Flags       uint32
	Dynamic     bool
	Hash        uint32
	EnumOptions map[string]any
}

type classFixture struct {
	Hash  uint32
	Name  string
	Props map[string]propFixture
}

// newTestTypeList builds a *typelist.TypeList from a handful of class
// fixtures by round-tripping them through the same version-2 JSON shape
// typelist.Load parses in production, so tests exercise the real loader
// rather than poking at TypeList's unexported fields.
func newTestTypeList(t testing.TB, classes ...classFixture) *typelist.TypeList {
	t.Helper()

	classesDoc := make(map[string]any, len(classes))
	for _, c := range classes {
		props := make(map[string]any, len(c.Props))
		for name, p := range c.Props {
			entry := map[string]any{
				"type":    p.Type,
				"id":      p.ID,
				"flags":   p.Flags,
				"dynamic": p.Dynamic,
				"hash":    p.Hash,
			}
			if p.EnumOptions != nil {
				entry["enum_options"] = p.EnumOptions
			}
			props[name] = entry
		}

		classesDoc[strconv.FormatUint(uint64(c.Hash), 10)] = map[string]any{
			"name":       c.Name,
			"properties": props,
		}
	}

	doc := map[string]any{
		"version": 2,
		"classes": classesDoc,
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	tl, err := typelist.Load(data)
	require.NoError(t, err)

	return tl
}
