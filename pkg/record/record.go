package record

import (
	"github.com/basekick-labs/recwire/pkg/schema"
)

// Record is a positional, schema-typed container of field values. It stands
// in for a statically generated struct: values are addressed by position,
// and the positions follow the schema's declared field order.
//
// A Record is mutable and not safe for concurrent use. Readers that accept a
// Record for reuse overwrite its values in place.
type Record struct {
	st     *schema.StructType
	values []any
}

// New creates an empty record shaped by st. All positions start as nil.
func New(st *schema.StructType) *Record {
	return &Record{
		st:     st,
		values: make([]any, st.NumFields()),
	}
}

// Struct returns the schema this record was created from.
func (r *Record) Struct() *schema.StructType {
	return r.st
}

// Len returns the number of field positions.
func (r *Record) Len() int {
	return len(r.values)
}

// Get returns the value at position pos.
func (r *Record) Get(pos int) any {
	return r.values[pos]
}

// Set stores v at position pos.
func (r *Record) Set(pos int, v any) {
	r.values[pos] = v
}

// Map returns a name-keyed view of the record. Nested records are flattened
// into nested maps.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, v := range r.values {
		if nested, ok := v.(*Record); ok {
			v = nested.Map()
		}
		m[r.st.Field(i).Name] = v
	}
	return m
}
