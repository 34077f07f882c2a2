package capabilities

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"

	"dario.cat/mergo"
	"github.com/pkg/errors"
)

// Set ordered capability name to value mapping. Values are strings, booleans,
// numbers, slices or nested objects (map[string]any or *Set).
type Set struct {
	keys   []string
	values map[string]any
}

func NewSet() *Set {
	return &Set{values: make(map[string]any)}
}

// FromMap creates Set out of plain map, keys are sorted to keep encoding stable
func FromMap(m map[string]any) *Set {
	s := NewSet()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Put(k, m[k])
	}
	return s
}

func (s *Set) Put(key string, value any) *Set {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return s
}

func (s *Set) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Set) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *Set) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool {
		return k == key
	})
}

func (s *Set) Keys() []string {
	return slices.Clone(s.keys)
}

func (s *Set) Len() int {
	return len(s.keys)
}

// Map returns deep copy of the set as plain map, nested sets are converted too
func (s *Set) Map() map[string]any {
	res := make(map[string]any, len(s.values))
	for k, v := range s.values {
		res[k] = plain(v)
	}
	return res
}

func (s *Set) Clone() *Set {
	c := &Set{
		keys:   slices.Clone(s.keys),
		values: make(map[string]any, len(s.values)),
	}
	for k, v := range s.values {
		if nested, ok := v.(*Set); ok {
			c.values[k] = nested.Clone()
			continue
		}
		c.values[k] = plain(v)
	}
	return c
}

// Merge deep merges src into s, src values win. Keys new to s are appended in src order.
func (s *Set) Merge(src *Set) error {
	if src == nil || src.Len() == 0 {
		return nil
	}
	dst := s.Map()
	if err := mergo.Merge(&dst, src.Map(), mergo.WithOverride); err != nil {
		return errors.Wrap(err, "failed to merge capabilities")
	}
	for _, k := range s.keys {
		s.values[k] = dst[k]
	}
	for _, k := range src.keys {
		s.Put(k, dst[k])
	}
	return nil
}

func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode capability %s", k)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func plain(v any) any {
	switch val := v.(type) {
	case *Set:
		return val.Map()
	case map[string]any:
		res := make(map[string]any, len(val))
		for k, vv := range val {
			res[k] = plain(vv)
		}
		return res
	case []any:
		res := make([]any, len(val))
		for i, vv := range val {
			res[i] = plain(vv)
		}
		return res
	default:
		return v
	}
}
