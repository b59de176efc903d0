// internal/demo/demo.go
//
// Scripted walkthrough of the vec and cell packages.
// Steps:
//   1. Build [1 2 3 4 5].
//   2. Read index 2 directly (At) and through a safe lookup (Ref.Get).
//   3. Print every element through a shared view.
//   4. Release every shared view.
//   5. Add 10 to each element in place through the exclusive view, printing it.
//   6. Build one row of mixed spreadsheet cells.
//
// Output is fixed: the same bytes on every run.

package demo

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/drills/internal/cell"
	"github.com/robalobadob/drills/internal/vec"
)

// Position looked up in step 2.
const third = 2

// Run writes the walkthrough to w.
func Run(w io.Writer) error {
	v := vec.From(1, 2, 3, 4, 5)

	direct := v.At(third)
	log.Debug().Int("index", third).Int("value", direct).Msg("direct access")

	view, err := v.Borrow()
	if err != nil {
		return err
	}
	if x, ok := view.Get(third); ok {
		if _, err := fmt.Fprintf(w, "The third element is %d\n", x); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "There is no third element."); err != nil {
			return err
		}
	}

	if err := printAll(w, v); err != nil {
		return err
	}

	// BorrowMut below fails while view is live.
	view.Release()

	m, err := v.BorrowMut()
	if err != nil {
		return err
	}
	defer m.Release()
	for p := range m.All() {
		*p += 10
		if _, err := fmt.Fprintln(w, *p); err != nil {
			return err
		}
	}

	row := cell.Row(cell.Int(3), cell.Text("blue"), cell.Float(10.12))
	log.Debug().Int("cells", len(row)).Msg("built row")
	return nil
}

// printAll prints each element of v through its own shared view.
func printAll(w io.Writer, v *vec.Vec[int]) error {
	r, err := v.Borrow()
	if err != nil {
		return err
	}
	defer r.Release()
	for x := range r.All() {
		if _, err := fmt.Fprintln(w, x); err != nil {
			return err
		}
	}
	return nil
}
