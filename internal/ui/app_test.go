package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

func testApp() *App {
	a := NewApp()
	a.width, a.height = 80, 24
	a.grid = testGrid()
	return a
}

func TestCompleteDragRejectsMismatches(t *testing.T) {
	tests := []struct {
		name string
		src  Ref
		dst  Ref
	}{
		{name: "kind mismatch", src: Ref{Kind: RefRow, ID: "r1"}, dst: Ref{Kind: RefColumn, ID: "c-age"}},
		{name: "zero target", src: Ref{Kind: RefRow, ID: "r1"}, dst: Ref{}},
		{name: "zero source", src: Ref{}, dst: Ref{Kind: RefRow, ID: "r2"}},
		{name: "dropped on itself", src: Ref{Kind: RefRow, ID: "r1"}, dst: Ref{Kind: RefRow, ID: "r1"}},
		{name: "stale source", src: Ref{Kind: RefRow, ID: "gone"}, dst: Ref{Kind: RefRow, ID: "r2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testApp()
			before := rowIDs(a.grid)
			a.completeDrag(tc.src, tc.dst)
			if got := rowIDs(a.grid); got != before {
				t.Errorf("rows=%s, want unchanged %s", got, before)
			}
		})
	}
}

func TestCompleteDragReordersRows(t *testing.T) {
	a := testApp()
	a.completeDrag(Ref{Kind: RefRow, ID: "r1"}, Ref{Kind: RefRow, ID: "r3"})
	if got := rowIDs(a.grid); got != "r2,r3,r1" {
		t.Errorf("rows=%s, want r2,r3,r1", got)
	}
}

func TestMenuActionDeleteColumn(t *testing.T) {
	a := testApp()
	a.menu.Open("c-age", Rect{X: 6, Y: 0, W: 10, H: 1})

	// The click lands on the delete item; the menu closes itself as part of
	// interpreting it.
	x, y := a.menu.box.X+1, a.menu.box.Y+1+itemDelete
	model, _ := a.mousePress(x, y, 0)
	a = model.(*App)

	if a.menu.IsOpen() {
		t.Error("menu still open after delete")
	}
	if got := colIDs(a.grid); got != "c-name" {
		t.Errorf("cols=%s, want c-name", got)
	}
}

func TestMenuActionSort(t *testing.T) {
	a := testApp()
	a.menu.Open("c-age", Rect{X: 6, Y: 0, W: 10, H: 1})
	a.menu.Motion(a.menu.box.X+1, a.menu.box.Y+1+itemSort)

	x, y := a.menu.sub.X+1, a.menu.sub.Y+1+itemAsc
	model, _ := a.mousePress(x, y, 0)
	a = model.(*App)

	if a.menu.IsOpen() {
		t.Error("menu still open after sort")
	}
	if got := rowIDs(a.grid); got != "r3,r1,r2" {
		t.Errorf("rows=%s, want r3,r1,r2", got)
	}
}

func TestOutsideClickOnlyClosesMenu(t *testing.T) {
	a := testApp()
	a.grid.View()
	a.menu.Open("c-age", Rect{X: 6, Y: 0, W: 10, H: 1})
	before := rowIDs(a.grid)

	// The click lands on a body row, but an open menu swallows it.
	model, _ := a.mousePress(0, 2, 0)
	a = model.(*App)

	if a.menu.IsOpen() {
		t.Error("menu still open after outside click")
	}
	if a.drag.Dragging() {
		t.Error("outside click reached the grid and started a drag")
	}
	if got := rowIDs(a.grid); got != before {
		t.Errorf("rows=%s, want unchanged", got)
	}
}

func TestRegenerateClosesMenuAndClearsSelection(t *testing.T) {
	a := testApp()
	a.grid.ToggleRow("r1")
	a.menu.Open("c-age", Rect{X: 6, Y: 0, W: 10, H: 1})

	a.regenerate()

	if a.menu.IsOpen() {
		t.Error("menu survived regenerate")
	}
	if a.grid.Selection().Count() != 0 {
		t.Error("selection survived regenerate")
	}
}

func TestInspectWithoutRows(t *testing.T) {
	a := testApp()
	a.grid.rows = nil
	if cmd := a.inspectCurrentRow(); cmd != nil {
		t.Error("inspect produced a command without a focused row")
	}
	if a.modalManager.IsModalVisible() {
		t.Error("modal opened without a focused row")
	}
}

func TestInspectOpensModal(t *testing.T) {
	a := testApp()
	a.inspectCurrentRow()
	if !a.modalManager.IsModalVisible() {
		t.Fatal("inspector modal not visible")
	}
	m := a.modalManager.GetActiveModal()
	if m.title != "Row r1" {
		t.Errorf("modal title=%q, want Row r1", m.title)
	}
}

func TestDropTargetResolution(t *testing.T) {
	a := testApp()
	a.grid.View()

	if got := a.dropTargetAt(RefRow, 0, 3); got != (Ref{Kind: RefRow, ID: "r3"}) {
		t.Errorf("row drop target=%+v, want r3", got)
	}
	if got := a.dropTargetAt(RefColumn, a.grid.layout.cols[1].x, 0); got != (Ref{Kind: RefColumn, ID: "c-age"}) {
		t.Errorf("column drop target=%+v, want c-age", got)
	}
	// The handle and checkbox area belongs to no dynamic column.
	if got := a.dropTargetAt(RefColumn, 0, 0); !got.IsZero() {
		t.Errorf("drop target over the fixed area=%+v, want zero", got)
	}
	if got := a.dropTargetAt(RefNone, 5, 2); !got.IsZero() {
		t.Errorf("drop target without a drag=%+v, want zero", got)
	}
}

func TestHeaderReleaseWithoutMotionOpensMenu(t *testing.T) {
	a := testApp()
	a.grid.View()
	hx := a.grid.layout.cols[1].x

	model, _ := a.mousePress(hx, 0, tea.MouseLeft)
	a = model.(*App)
	if !a.drag.Dragging() {
		t.Fatal("header press did not arm a drag")
	}

	model, _ = a.mouseRelease(hx, 0)
	a = model.(*App)
	if a.drag.Dragging() {
		t.Error("drag still active after release")
	}
	if !a.menu.IsOpen() || a.menu.ColumnID() != "c-age" {
		t.Errorf("release in place did not open the menu for c-age (open=%v id=%q)", a.menu.IsOpen(), a.menu.ColumnID())
	}
}

func TestHeaderDragReordersColumns(t *testing.T) {
	a := testApp()
	a.grid.View()
	srcX := a.grid.layout.cols[1].x
	dstX := a.grid.layout.cols[0].x

	model, _ := a.mousePress(srcX, 0, tea.MouseLeft)
	a = model.(*App)
	a.drag.Track(srcX+1, 0)
	model, _ = a.mouseRelease(dstX, 0)
	a = model.(*App)

	if got := colIDs(a.grid); got != "c-age,c-name" {
		t.Errorf("cols=%s, want c-age,c-name", got)
	}
	if a.menu.IsOpen() {
		t.Error("menu opened after a real drag")
	}
}

func TestFunctionKeyClickAddsRow(t *testing.T) {
	a := testApp()
	// F4 "+Row" is the fourth span on the bar.
	x := 0
	for _, k := range a.functionKeys()[:3] {
		x += lipgloss.Width(renderFunctionKey(k))
	}
	before := len(a.grid.Rows())
	a.handleFunctionKeyClick(x)
	if got := len(a.grid.Rows()); got != before+1 {
		t.Errorf("rows=%d after F4 click, want %d", got, before+1)
	}
}
