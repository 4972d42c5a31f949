package schema

// Kind identifies the wire type of a field value.
type Kind int

const (
	Invalid Kind = iota
	Int
	Long
	Float
	Double
	Bool
	String
	Bytes
	Date
	Time
	Timestamp
	TimestampTZ
	Struct
)

// String returns the lowercase name used in JSON schema documents.
func (k Kind) String() string {
	if k < Invalid || k > Struct {
		return "unknown"
	}
	return [...]string{
		"invalid", "int", "long", "float", "double", "bool",
		"string", "bytes", "date", "time", "timestamp", "timestamptz",
		"struct",
	}[k]
}

// Field describes one named, positioned field of a composite value.
// Nested is set only when Kind is Struct.
type Field struct {
	Name   string
	Kind   Kind
	Nested *StructType
}

// StructType is an ordered, immutable list of named fields. Field order is
// the wire order: encoded streams carry field values in exactly this
// sequence.
type StructType struct {
	fields []Field
}

// NewStruct builds a StructType from fields in declaration order.
func NewStruct(fields ...Field) *StructType {
	copied := make([]Field, len(fields))
	copy(copied, fields)
	return &StructType{fields: copied}
}

// NumFields returns the field count.
func (s *StructType) NumFields() int {
	return len(s.fields)
}

// Field returns the descriptor at position i.
func (s *StructType) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the field list.
func (s *StructType) Fields() []Field {
	copied := make([]Field, len(s.fields))
	copy(copied, s.fields)
	return copied
}
