package reader

import (
	"fmt"

	"github.com/basekick-labs/recwire/pkg/decode"
	"github.com/basekick-labs/recwire/pkg/record"
	"github.com/basekick-labs/recwire/pkg/schema"
)

// StructReader decodes one composite value by invoking its field readers in
// declared order and assembling the results into a record. The schema is
// held only to allocate fresh records; it never drives reader selection,
// which is fixed at construction.
type StructReader struct {
	readers []ValueReader
	st      *schema.StructType
}

// Struct builds a StructReader from a schema and one field reader per
// position, in the schema's declared order.
func Struct(st *schema.StructType, readers []ValueReader) (*StructReader, error) {
	if len(readers) != st.NumFields() {
		return nil, fmt.Errorf("reader count %d does not match schema field count %d",
			len(readers), st.NumFields())
	}
	held := make([]ValueReader, len(readers))
	copy(held, readers)
	return &StructReader{readers: held, st: st}, nil
}

// Read decodes exactly one value per field, in order, and returns the
// populated record.
//
// If reuse is a *record.Record created from the same schema it is mutated in
// place and returned; anything else is ignored and a fresh record is
// allocated. The prior value at each position is passed down as the reuse
// hint for that field's reader, so nested records chain reuse.
//
// Mutation is immediate, not transactional: if a later field read fails, a
// reused record keeps the values written before the failure. Callers must
// treat a reused record as undefined after a failed Read.
func (r *StructReader) Read(d decode.Decoder, reuse any) (any, error) {
	rec := r.reuseOrCreate(reuse)
	for i, fr := range r.readers {
		v, err := fr.Read(d, rec.Get(i))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", r.st.Field(i).Name, err)
		}
		rec.Set(i, v)
	}
	return rec, nil
}

// reuseOrCreate returns reuse when it is a record of this reader's schema,
// and allocates otherwise. An incompatible reuse value is a performance
// miss, never an error.
func (r *StructReader) reuseOrCreate(reuse any) *record.Record {
	if rec, ok := reuse.(*record.Record); ok && rec != nil && rec.Struct() == r.st {
		return rec
	}
	return record.New(r.st)
}
