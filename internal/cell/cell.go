// Package cell defines a spreadsheet cell: a value that is exactly one
// of an integer, a floating-point number or a piece of text.
package cell

import "fmt"

// Kind names a Cell variant.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindText  Kind = "text"
)

// Kinds lists every variant, in declaration order.
func Kinds() []Kind { return []Kind{KindInt, KindFloat, KindText} }

// Cell is implemented only by Int, Float and Text.
type Cell interface {
	Kind() Kind
	sealed()
}

type (
	Int   int32
	Float float64
	Text  string
)

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Text) Kind() Kind  { return KindText }

func (Int) sealed()   {}
func (Float) sealed() {}
func (Text) sealed()  {}

// Match calls the handler for c's variant. Every handler is required,
// so adding a variant breaks each call site until it is handled.
func Match[R any](c Cell, onInt func(int32) R, onFloat func(float64) R, onText func(string) R) R {
	switch v := c.(type) {
	case Int:
		return onInt(int32(v))
	case Float:
		return onFloat(float64(v))
	case Text:
		return onText(string(v))
	}
	panic(fmt.Sprintf("cell: unknown variant %T", c))
}

// Row collects cells of mixed kinds.
func Row(cells ...Cell) []Cell { return cells }
