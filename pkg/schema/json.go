package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSON schema document shape:
//
//	{"fields": [
//	  {"name": "ts", "type": "timestamp"},
//	  {"name": "point", "type": "struct", "fields": [...]}
//	]}
type jsonStruct struct {
	Fields []jsonField `json:"fields"`
}

type jsonField struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	Fields []jsonField `json:"fields,omitempty"`
}

var kindNames = map[string]Kind{
	"int":         Int,
	"long":        Long,
	"float":       Float,
	"double":      Double,
	"bool":        Bool,
	"string":      String,
	"bytes":       Bytes,
	"date":        Date,
	"time":        Time,
	"timestamp":   Timestamp,
	"timestamptz": TimestampTZ,
	"struct":      Struct,
}

// ParseJSON parses a JSON schema document into a StructType.
func ParseJSON(data []byte) (*StructType, error) {
	var doc jsonStruct
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema has no fields")
	}
	return buildStruct(doc.Fields)
}

func buildStruct(fields []jsonField) (*StructType, error) {
	built := make([]Field, 0, len(fields))
	for i, jf := range fields {
		if jf.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		kind, ok := kindNames[jf.Type]
		if !ok {
			return nil, fmt.Errorf("field %q: unknown type %q", jf.Name, jf.Type)
		}

		f := Field{Name: jf.Name, Kind: kind}
		if kind == Struct {
			if len(jf.Fields) == 0 {
				return nil, fmt.Errorf("field %q: struct type requires nested fields", jf.Name)
			}
			nested, err := buildStruct(jf.Fields)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", jf.Name, err)
			}
			f.Nested = nested
		} else if len(jf.Fields) > 0 {
			return nil, fmt.Errorf("field %q: nested fields only allowed on struct type", jf.Name)
		}
		built = append(built, f)
	}
	return NewStruct(built...), nil
}
