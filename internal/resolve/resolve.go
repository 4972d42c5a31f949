// Package resolve maps structural schemas to reader trees. It owns the
// kind-to-reader decision so the reader package stays a pure decoding layer.
package resolve

import (
	"fmt"

	"github.com/basekick-labs/recwire/pkg/reader"
	"github.com/basekick-labs/recwire/pkg/schema"
)

// Options controls reader selection.
type Options struct {
	// ValidateTimeOfDay selects the checked time reader, which rejects
	// encoded time-of-day values outside [0, 24h).
	ValidateTimeOfDay bool
}

// Readers builds the struct reader for st, with one field reader per
// position in declared order. Nested struct fields recurse.
func Readers(st *schema.StructType, opts Options) (*reader.StructReader, error) {
	fieldReaders := make([]reader.ValueReader, 0, st.NumFields())
	for _, f := range st.Fields() {
		fr, err := fieldReader(f, opts)
		if err != nil {
			return nil, err
		}
		fieldReaders = append(fieldReaders, fr)
	}
	return reader.Struct(st, fieldReaders)
}

func fieldReader(f schema.Field, opts Options) (reader.ValueReader, error) {
	switch f.Kind {
	case schema.Int:
		return reader.Ints(), nil
	case schema.Long:
		return reader.Longs(), nil
	case schema.Float:
		return reader.Floats(), nil
	case schema.Double:
		return reader.Doubles(), nil
	case schema.Bool:
		return reader.Bools(), nil
	case schema.String:
		return reader.Strings(), nil
	case schema.Bytes:
		return reader.Bytes(), nil
	case schema.Date:
		return reader.Dates(), nil
	case schema.Time:
		if opts.ValidateTimeOfDay {
			return reader.TimesChecked(), nil
		}
		return reader.Times(), nil
	case schema.Timestamp:
		return reader.Timestamps(), nil
	case schema.TimestampTZ:
		return reader.TimestampsTZ(), nil
	case schema.Struct:
		if f.Nested == nil {
			return nil, fmt.Errorf("field %q: struct field has no nested schema", f.Name)
		}
		return Readers(f.Nested, opts)
	default:
		return nil, fmt.Errorf("field %q: no reader for kind %s", f.Name, f.Kind)
	}
}
