package record

import (
	"testing"

	"github.com/basekick-labs/recwire/pkg/schema"
)

func testStruct() *schema.StructType {
	return schema.NewStruct(
		schema.Field{Name: "host", Kind: schema.String},
		schema.Field{Name: "usage", Kind: schema.Double},
	)
}

func TestNew(t *testing.T) {
	st := testStruct()
	r := New(st)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.Struct() != st {
		t.Fatal("Struct() should return the constructing schema")
	}
	for i := 0; i < r.Len(); i++ {
		if r.Get(i) != nil {
			t.Fatalf("position %d should start nil, got %v", i, r.Get(i))
		}
	}
}

func TestGetSet(t *testing.T) {
	r := New(testStruct())

	r.Set(0, "server01")
	r.Set(1, 90.5)

	if r.Get(0) != "server01" {
		t.Fatalf("Get(0) = %v, want server01", r.Get(0))
	}
	if r.Get(1) != 90.5 {
		t.Fatalf("Get(1) = %v, want 90.5", r.Get(1))
	}

	// Overwrite in place
	r.Set(1, 12.25)
	if r.Get(1) != 12.25 {
		t.Fatalf("Get(1) after overwrite = %v, want 12.25", r.Get(1))
	}
}

func TestMap(t *testing.T) {
	r := New(testStruct())
	r.Set(0, "server01")
	r.Set(1, 90.5)

	m := r.Map()
	if m["host"] != "server01" {
		t.Fatalf("Map()[host] = %v, want server01", m["host"])
	}
	if m["usage"] != 90.5 {
		t.Fatalf("Map()[usage] = %v, want 90.5", m["usage"])
	}
}

func TestMap_NestedRecord(t *testing.T) {
	inner := schema.NewStruct(
		schema.Field{Name: "lat", Kind: schema.Double},
		schema.Field{Name: "lon", Kind: schema.Double},
	)
	outer := schema.NewStruct(
		schema.Field{Name: "name", Kind: schema.String},
		schema.Field{Name: "point", Kind: schema.Struct, Nested: inner},
	)

	p := New(inner)
	p.Set(0, 47.6)
	p.Set(1, -122.3)

	r := New(outer)
	r.Set(0, "seattle")
	r.Set(1, p)

	m := r.Map()
	point, ok := m["point"].(map[string]any)
	if !ok {
		t.Fatalf("Map()[point] = %T, want nested map", m["point"])
	}
	if point["lat"] != 47.6 {
		t.Fatalf("point[lat] = %v, want 47.6", point["lat"])
	}
}
