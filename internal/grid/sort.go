package grid

import (
	"errors"
	"sort"

	"github.com/go-logr/logr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction selects the sort order for a single-key sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ErrUnknownColumn is returned when a sort targets a column that does not
// exist or has no field accessor. The row sequence is left unchanged.
var ErrUnknownColumn = errors.New("unknown sort column")

// Engine performs single-key stable sorts over row sequences. String
// comparison is locale-aware via a collator.
type Engine struct {
	log      logr.Logger
	collator *collate.Collator
}

func NewEngine(log logr.Logger) *Engine {
	return &Engine{log: log, collator: collate.New(language.English)}
}

// SortRows returns a new row sequence ordered by the given column. The
// result replaces the caller's row collection; no sort indicator persists.
//
// Comparator policy, applied pairwise:
//   - null values sort after non-null values in BOTH directions
//   - two strings compare via the collator, reversed when descending
//   - two numbers compare numerically, reversed when descending
//   - two bools order false before true ascending, reversed when descending
//   - mixed kinds compare equal, keeping their original relative order
func (e *Engine) SortRows(rows []Row, cols []Column, columnID string, dir Direction) ([]Row, error) {
	i := IndexOfColumn(cols, columnID)
	if i < 0 || cols[i].Field == "" {
		e.log.Info("sort skipped: column not sortable", "column", columnID)
		return rows, ErrUnknownColumn
	}
	field := cols[i].Field

	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(a, b int) bool {
		return e.compare(out[a].Field(field), out[b].Field(field), dir) < 0
	})
	return out, nil
}

func (e *Engine) compare(a, b Value, dir Direction) int {
	// Nulls last, independent of direction.
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return 1
	case b.IsNull():
		return -1
	}
	if a.Kind() != b.Kind() {
		return 0
	}
	c := 0
	switch a.Kind() {
	case KindString:
		c = e.collator.CompareString(a.Str(), b.Str())
	case KindNumber:
		switch {
		case a.Num() < b.Num():
			c = -1
		case a.Num() > b.Num():
			c = 1
		}
	case KindBool:
		switch {
		case !a.Bool() && b.Bool():
			c = -1
		case a.Bool() && !b.Bool():
			c = 1
		}
	}
	if dir == Descending {
		c = -c
	}
	return c
}
