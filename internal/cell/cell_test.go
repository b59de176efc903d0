package cell

import (
	"fmt"
	"testing"
)

func describe(c Cell) string {
	return Match(c,
		func(i int32) string { return fmt.Sprintf("int %d", i) },
		func(f float64) string { return fmt.Sprintf("float %g", f) },
		func(s string) string { return "text " + s },
	)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		cell     Cell
		wantKind Kind
		want     string
	}{
		{Int(3), KindInt, "int 3"},
		{Float(10.12), KindFloat, "float 10.12"},
		{Text("blue"), KindText, "text blue"},
	}
	for _, tt := range tests {
		if got := tt.cell.Kind(); got != tt.wantKind {
			t.Errorf("%#v.Kind() = %s, want %s", tt.cell, got, tt.wantKind)
		}
		if got := describe(tt.cell); got != tt.want {
			t.Errorf("describe(%#v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

// Every declared kind must have a variant that Match dispatches.
func TestMatchIsExhaustive(t *testing.T) {
	samples := map[Kind]Cell{
		KindInt:   Int(0),
		KindFloat: Float(0),
		KindText:  Text(""),
	}
	if len(samples) != len(Kinds()) {
		t.Fatalf("samples cover %d kinds, Kinds() has %d", len(samples), len(Kinds()))
	}
	for _, k := range Kinds() {
		c, ok := samples[k]
		if !ok {
			t.Fatalf("no sample for kind %s", k)
		}
		got := Match(c,
			func(int32) Kind { return KindInt },
			func(float64) Kind { return KindFloat },
			func(string) Kind { return KindText },
		)
		if got != k {
			t.Errorf("Match dispatched %s to %s", k, got)
		}
	}
}

func TestMatchNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Match(nil) did not panic")
		}
	}()
	describe(nil)
}

func TestRow(t *testing.T) {
	row := Row(Int(3), Text("blue"), Float(10.12))
	want := []Kind{KindInt, KindText, KindFloat}
	if len(row) != len(want) {
		t.Fatalf("len(row) = %d", len(row))
	}
	for i, c := range row {
		if c.Kind() != want[i] {
			t.Errorf("row[%d].Kind() = %s, want %s", i, c.Kind(), want[i])
		}
	}
}
