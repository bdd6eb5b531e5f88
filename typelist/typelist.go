// Package typelist loads and queries the JSON-described catalogue of
// class (TypeDef) and member (Property) metadata that the decoder uses to
// interpret a wire stream's type hashes.
package typelist

import (
	"fmt"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/arcanegate/objprop/errs"
	"github.com/arcanegate/objprop/format"
	"github.com/arcanegate/objprop/hash"
	"github.com/arcanegate/objprop/internal/collision"
)

func jsonUnmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

// TypeDef is a single class definition: its name and the properties
// declared on it, sorted by ascending Property.ID.
type TypeDef struct {
	Name       string
	Properties []Property
}

// TypeList is a read-only-after-construction mapping from type hash to
// TypeDef, built from one or more JSON documents.
type TypeList struct {
	classes   map[uint32]TypeDef
	collision *collision.Tracker
}

// New returns an empty TypeList.
func New() *TypeList {
	return &TypeList{
		classes:   make(map[uint32]TypeDef),
		collision: collision.NewTracker(),
	}
}

// Get looks up a TypeDef by its type hash.
func (t *TypeList) Get(typeHash uint32) (TypeDef, bool) {
	td, ok := t.classes[typeHash]
	return td, ok
}

// Len reports the number of classes known to the list.
func (t *TypeList) Len() int {
	return len(t.classes)
}

// HasCollision reports whether two distinct class names have ever hashed
// to the same type hash across everything loaded or merged into this
// list.
func (t *TypeList) HasCollision() bool {
	return t.collision.HasCollision()
}

// Merge inserts every entry of other into t, overwriting t's entry on a
// hash collision. Equivalent lists loaded from either on-disk schema
// produce equal merged results.
func (t *TypeList) Merge(other *TypeList) {
	for h, td := range other.classes {
		t.insert(h, td)
	}
}

func (t *TypeList) insert(h uint32, td TypeDef) {
	_ = t.collision.Track(h, td.Name)
	t.classes[h] = td
}

type rawProperty struct {
	Type        string                 `json:"type"`
	ID          uint32                 `json:"id"`
	Flags       uint32                 `json:"flags"`
	Dynamic     bool                   `json:"dynamic"`
	Hash        uint32                 `json:"hash"`
	EnumOptions map[string]StringOrInt `json:"enum_options"`
}

type rawTypeDefV1 struct {
	Properties map[string]rawProperty `json:"properties"`
}

type rawTypeDefV2 struct {
	Name       string                 `json:"name"`
	Properties map[string]rawProperty `json:"properties"`
}

// Load parses a TypeList JSON document in either the version-1 (flat
// name-keyed) or version-2 (`{version, classes}`) on-disk shape and
// returns the resulting in-memory TypeList.
func Load(data []byte) (*TypeList, error) {
	var probe struct {
		Version int               `json:"version"`
		Classes gojson.RawMessage `json:"classes"`
	}
	if err := jsonUnmarshal(data, &probe); err != nil {
		return nil, errFromJSON(err)
	}

	if probe.Version == 2 && probe.Classes != nil {
		return loadV2(probe.Classes)
	}

	return loadV1(data)
}

func loadV1(data []byte) (*TypeList, error) {
	var raw map[string]rawTypeDefV1
	if err := jsonUnmarshal(data, &raw); err != nil {
		return nil, errFromJSON(err)
	}

	tl := New()
	for name, rtd := range raw {
		h := hash.StringIDString(name)
		tl.insert(h, TypeDef{
			Name:       name,
			Properties: buildProperties(rtd.Properties),
		})
	}

	return tl, nil
}

func loadV2(classesData []byte) (*TypeList, error) {
	var raw map[string]rawTypeDefV2
	if err := jsonUnmarshal(classesData, &raw); err != nil {
		return nil, errFromJSON(err)
	}

	tl := New()
	for key, rtd := range raw {
		h, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, errs.ErrInvalidTypeList
		}
		tl.insert(uint32(h), TypeDef{
			Name:       rtd.Name,
			Properties: buildProperties(rtd.Properties),
		})
	}

	return tl, nil
}

func buildProperties(raw map[string]rawProperty) []Property {
	props := make([]Property, 0, len(raw))
	for name, rp := range raw {
		props = append(props, Property{
			Name:        name,
			Type:        rp.Type,
			ID:          rp.ID,
			Flags:       propertyFlags(rp.Flags),
			Dynamic:     rp.Dynamic,
			Hash:        rp.Hash,
			EnumOptions: rp.EnumOptions,
		})
	}

	sort.Slice(props, func(i, j int) bool { return props[i].ID < props[j].ID })

	return props
}

func propertyFlags(bits uint32) format.PropertyFlags {
	return format.PropertyFlags(bits)
}

func errFromJSON(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", errs.ErrInvalidTypeList, err)
}
