package grid

import "testing"

func TestValueDisplay(t *testing.T) {
	tests := []struct {
		name     string
		val      Value
		expected string
	}{
		{"string", S("Berlin"), "Berlin"},
		{"integer number", N(42), "42"},
		{"fractional number", N(2.5), "2.5"},
		{"bool true", B(true), "true"},
		{"bool false", B(false), "false"},
		{"null", Null(), ""},
		{"zero value", Value{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.expected {
				t.Fatalf("String()=%q want=%q", got, tt.expected)
			}
		})
	}
}

func TestRowField(t *testing.T) {
	r := Row{ID: "r1", Fields: map[string]Value{"name": S("Mara Graf")}}
	if got := r.Field("name").Str(); got != "Mara Graf" {
		t.Fatalf("Field(name)=%q", got)
	}
	if !r.Field("missing").IsNull() {
		t.Fatal("absent field must read as null")
	}
	var empty Row
	if !empty.Field("name").IsNull() {
		t.Fatal("nil field map must read as null")
	}
}

func TestColumnCellRenderHint(t *testing.T) {
	c := Column{ID: "c-age", Field: "age", Render: func(v Value) string {
		if v.IsNull() {
			return "-"
		}
		return v.String() + "y"
	}}
	r := Row{ID: "r1", Fields: map[string]Value{"age": N(30)}}
	if got := c.Cell(r); got != "30y" {
		t.Fatalf("Cell=%q want=30y", got)
	}
	if got := c.Cell(Row{ID: "r2"}); got != "-" {
		t.Fatalf("Cell for null=%q want=-", got)
	}
}

func TestIndexOf(t *testing.T) {
	rows := []Row{{ID: "a"}, {ID: "b"}}
	if i := IndexOfRow(rows, "b"); i != 1 {
		t.Fatalf("IndexOfRow=%d want 1", i)
	}
	if i := IndexOfRow(rows, "zz"); i != -1 {
		t.Fatalf("IndexOfRow missing=%d want -1", i)
	}
	cols := []Column{{ID: "c-a"}, {ID: "c-b"}}
	if i := IndexOfColumn(cols, "c-a"); i != 0 {
		t.Fatalf("IndexOfColumn=%d want 0", i)
	}
	if i := IndexOfColumn(cols, "c-z"); i != -1 {
		t.Fatalf("IndexOfColumn missing=%d want -1", i)
	}
}
