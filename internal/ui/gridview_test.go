package ui

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/eeperfume/datagrid/internal/grid"
)

func testGrid() *GridView {
	g := NewGridView(grid.NewGenerator(1), grid.NewEngine(logr.Discard()), 0)
	g.cols = []grid.Column{
		{ID: "c-name", Title: "Name", Field: "name"},
		{ID: "c-age", Title: "Age", Field: "age"},
	}
	g.rows = []grid.Row{
		{ID: "r1", Fields: map[string]grid.Value{"name": grid.S("alice"), "age": grid.N(30)}},
		{ID: "r2", Fields: map[string]grid.Value{"name": grid.S("bob"), "age": grid.Null()}},
		{ID: "r3", Fields: map[string]grid.Value{"name": grid.S("carol"), "age": grid.N(25)}},
	}
	g.SetSize(60, 10)
	return g
}

func rowIDs(g *GridView) string { return strings.Join(grid.RowIDs(g.Rows()), ",") }

func colIDs(g *GridView) string {
	ids := make([]string, len(g.Columns()))
	for i, c := range g.Columns() {
		ids[i] = c.ID
	}
	return strings.Join(ids, ",")
}

func TestGridReorderRow(t *testing.T) {
	g := testGrid()
	if !g.ReorderRow("r1", "r3") {
		t.Fatal("ReorderRow failed for live IDs")
	}
	if got := rowIDs(g); got != "r2,r3,r1" {
		t.Errorf("rows=%s, want r2,r3,r1", got)
	}
	if g.ReorderRow("r1", "gone") {
		t.Error("ReorderRow succeeded for an unknown target")
	}
	if got := rowIDs(g); got != "r2,r3,r1" {
		t.Errorf("rows changed by failed reorder: %s", got)
	}
}

func TestGridReorderColumn(t *testing.T) {
	g := testGrid()
	if !g.ReorderColumn("c-age", "c-name") {
		t.Fatal("ReorderColumn failed for live IDs")
	}
	if got := colIDs(g); got != "c-age,c-name" {
		t.Errorf("cols=%s, want c-age,c-name", got)
	}
	if g.ReorderColumn("c-age", "c-age") {
		t.Error("ReorderColumn succeeded for identical source and target")
	}
}

func TestGridToggleSelectAllCycle(t *testing.T) {
	g := testGrid()

	g.ToggleSelectAll()
	if got := g.Selection().Count(); got != 3 {
		t.Fatalf("selected=%d after select all, want 3", got)
	}
	g.ToggleSelectAll()
	if got := g.Selection().Count(); got != 0 {
		t.Fatalf("selected=%d after second toggle, want 0", got)
	}

	// A partial selection selects the rest, it does not clear.
	g.ToggleRow("r2")
	g.ToggleSelectAll()
	if got := g.Selection().Count(); got != 3 {
		t.Errorf("selected=%d after toggle with partial selection, want 3", got)
	}
}

func TestGridRemoveSelected(t *testing.T) {
	g := testGrid()
	g.ToggleRow("r1")
	g.ToggleRow("r3")

	if n := g.RemoveSelected(); n != 2 {
		t.Fatalf("RemoveSelected=%d, want 2", n)
	}
	if got := rowIDs(g); got != "r2" {
		t.Errorf("rows=%s, want r2", got)
	}
	if got := g.Selection().Count(); got != 0 {
		t.Errorf("stale selection entries remain: %d", got)
	}

	if n := g.RemoveSelected(); n != 0 {
		t.Errorf("RemoveSelected with empty selection=%d, want 0", n)
	}
}

func TestGridRemoveColumn(t *testing.T) {
	g := testGrid()
	if g.RemoveColumn("c-missing") {
		t.Error("RemoveColumn succeeded for an unknown ID")
	}
	if !g.RemoveColumn("c-age") {
		t.Fatal("RemoveColumn failed for a live ID")
	}
	if got := colIDs(g); got != "c-name" {
		t.Errorf("cols=%s, want c-name", got)
	}
	if _, ok := g.widths["c-age"]; ok {
		t.Error("width cache entry survived column removal")
	}
}

func TestGridSortByUnknownColumn(t *testing.T) {
	g := testGrid()
	before := rowIDs(g)
	if err := g.SortBy("c-missing", grid.Ascending); err == nil {
		t.Fatal("SortBy succeeded for an unknown column")
	}
	if got := rowIDs(g); got != before {
		t.Errorf("rows changed by failed sort: %s", got)
	}
}

func TestGridSortByAgeNullsLast(t *testing.T) {
	g := testGrid()
	if err := g.SortBy("c-age", grid.Ascending); err != nil {
		t.Fatal(err)
	}
	if got := rowIDs(g); got != "r3,r1,r2" {
		t.Errorf("ascending=%s, want r3,r1,r2", got)
	}
	if err := g.SortBy("c-age", grid.Descending); err != nil {
		t.Fatal(err)
	}
	if got := rowIDs(g); got != "r1,r3,r2" {
		t.Errorf("descending=%s, want r1,r3,r2 (null still last)", got)
	}
}

func TestGridRegenerateResets(t *testing.T) {
	g := testGrid()
	g.ToggleRow("r1")
	g.SetCursor(2)

	g.Regenerate(5)
	if len(g.Rows()) != 5 {
		t.Fatalf("rows=%d after regenerate, want 5", len(g.Rows()))
	}
	if g.Selection().Count() != 0 {
		t.Error("selection survived regenerate")
	}
	if g.cursor != 0 || g.top != 0 {
		t.Errorf("cursor/top=(%d,%d) after regenerate, want (0,0)", g.cursor, g.top)
	}
}

func TestGridHitTesting(t *testing.T) {
	g := testGrid()
	g.View()

	if !g.SelectAllHit(handleW, 0) {
		t.Error("header checkbox not hit at its own coordinates")
	}
	if g.SelectAllHit(handleW, 1) {
		t.Error("header checkbox hit on a body row")
	}

	firstCol := g.layout.cols[0]
	id, r, ok := g.HeaderHit(firstCol.x, 0)
	if !ok || id != "c-name" {
		t.Fatalf("HeaderHit=(%q,%v), want c-name", id, ok)
	}
	if r.Y != 0 || r.H != 1 || r.X != firstCol.x {
		t.Errorf("header bounds=%+v", r)
	}
	if _, _, ok := g.HeaderHit(0, 0); ok {
		t.Error("HeaderHit matched the fixed handle area")
	}

	if id, ok := g.RowAt(1); !ok || id != "r1" {
		t.Errorf("RowAt(1)=(%q,%v), want r1", id, ok)
	}
	if _, ok := g.RowAt(4); ok {
		t.Error("RowAt matched below the last row")
	}

	tests := []struct {
		x    int
		zone rowZone
	}{
		{0, zoneHandle},
		{handleW, zoneCheckbox},
		{firstCol.x, zoneCell},
	}
	for _, tc := range tests {
		if _, zone, ok := g.RowHit(tc.x, 2); !ok || zone != tc.zone {
			t.Errorf("RowHit(%d,2) zone=%v, want %v", tc.x, zone, tc.zone)
		}
	}

	if id, ok := g.ColumnAt(g.layout.cols[1].x); !ok || id != "c-age" {
		t.Errorf("ColumnAt=(%q,%v), want c-age", id, ok)
	}
}

func TestComputeFitWidths(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		desired []int
		min     int
		want    []int
	}{
		{name: "fits unchanged", total: 30, desired: []int{5, 10}, min: 3, want: []int{5, 10}},
		{name: "floors applied when fitting", total: 30, desired: []int{1, 10}, min: 3, want: []int{3, 10}},
		{name: "scaled down to total", total: 20, desired: []int{10, 10, 10}, min: 3, want: []int{7, 7, 6}},
		{name: "empty", total: 10, desired: nil, min: 3, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := computeFitWidths(tc.total, tc.desired, tc.min)
			if len(got) != len(tc.want) {
				t.Fatalf("len=%d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("widths=%v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestCellPad(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"ab", 5, "ab   "},
		{"abcdefgh", 5, "ab..."},
		{"abc", 3, "abc"},
		{"abcdef", 2, ".."},
		{"abc", 0, ""},
	}
	for _, tc := range tests {
		if got := cellPad(tc.in, tc.w); got != tc.want {
			t.Errorf("cellPad(%q,%d)=%q, want %q", tc.in, tc.w, got, tc.want)
		}
	}
}
