package metadata

import (
	"fmt"
	"strconv"

	"github.com/wavtools/wavmeta/internal/field"
)

// FieldMap is an ordered association from catalog fields to derived
// values. Internally it is keyed by field.Field; display-string keys
// appear only at the serialization boundary (DisplayMap, exporters).
//
// Values are int, float64, or string depending on the field.
type FieldMap struct {
	order  []field.Field
	values map[field.Field]any
}

func newFieldMap() *FieldMap {
	return &FieldMap{values: make(map[field.Field]any)}
}

// put appends f with v, or overwrites v in place if f is already
// present.
func (m *FieldMap) put(f field.Field, v any) {
	if _, ok := m.values[f]; !ok {
		m.order = append(m.order, f)
	}
	m.values[f] = v
}

// Len returns the number of fields in the map.
func (m *FieldMap) Len() int {
	return len(m.order)
}

// Fields returns the contained fields in insertion (catalog) order.
func (m *FieldMap) Fields() []field.Field {
	out := make([]field.Field, len(m.order))
	copy(out, m.order)
	return out
}

// Value returns the derived value for f and whether it is present.
func (m *FieldMap) Value(f field.Field) (any, bool) {
	v, ok := m.values[f]
	return v, ok
}

// DisplayMap converts to display-name keys for serialization. Ordering
// is the serializer's concern (encoding/json sorts map keys).
func (m *FieldMap) DisplayMap() map[string]any {
	out := make(map[string]any, len(m.order))
	for _, f := range m.order {
		out[f.DisplayName()] = m.values[f]
	}
	return out
}

// FormatValue renders a derived value the way it appears in CSV cells:
// integers verbatim, floats in the shortest exact form, strings as-is.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
