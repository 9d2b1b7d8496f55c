package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/eeperfume/datagrid/internal/grid"
)

const (
	handleW   = 2 // drag handle column: "≡ "
	checkboxW = 4 // checkbox column: "[x] "
	minColW   = 3
)

type span struct{ x, w int }

func (s span) contains(x int) bool { return x >= s.x && x < s.x+s.w }

// rowZone classifies where inside a body row a pointer event landed.
type rowZone int

const (
	zoneHandle rowZone = iota
	zoneCheckbox
	zoneCell
)

// gridLayout is the cell geometry of the last render, kept for mouse
// hit-testing.
type gridLayout struct {
	headerY  int
	bodyY    int
	bodyH    int
	checkbox span
	cols     []span // aligned with the dynamic column sequence
}

// GridView owns the grid state: dynamic columns and rows in display order,
// the selection, and the scroll window. The two ordered sequences are the
// sole source of truth for display order.
type GridView struct {
	cols   []grid.Column
	rows   []grid.Row
	sel    grid.Selection
	gen    *grid.Generator
	engine *grid.Engine

	cursor int // absolute focused row index
	top    int // absolute index of the first visible row

	width, height int

	layout gridLayout
	widths map[string]int // incremental width cache by column ID

	dragSource Ref
	dropTarget Ref
}

func NewGridView(gen *grid.Generator, engine *grid.Engine, batch int) *GridView {
	g := &GridView{
		cols:   grid.DefaultColumns(),
		sel:    grid.NewSelection(),
		gen:    gen,
		engine: engine,
		widths: make(map[string]int),
	}
	g.rows = gen.Batch(batch)
	return g
}

func (g *GridView) SetSize(w, h int) {
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	g.width, g.height = w, h
	g.clampScroll()
}

func (g *GridView) Rows() []grid.Row          { return g.rows }
func (g *GridView) Columns() []grid.Column    { return g.cols }
func (g *GridView) Selection() grid.Selection { return g.sel }
func (g *GridView) RowIDs() []string          { return grid.RowIDs(g.rows) }

// CurrentRow returns the focused row, if any.
func (g *GridView) CurrentRow() (grid.Row, bool) {
	if g.cursor < 0 || g.cursor >= len(g.rows) {
		return grid.Row{}, false
	}
	return g.rows[g.cursor], true
}

// --- data mutations -------------------------------------------------------

// Regenerate replaces the whole row collection with a fresh batch. The new
// rows have new IDs, so the selection is reset rather than pruned.
func (g *GridView) Regenerate(n int) {
	g.rows = g.gen.Batch(n)
	g.sel = grid.NewSelection()
	g.cursor, g.top = 0, 0
}

func (g *GridView) AddRow() grid.Row {
	r := g.gen.NewRow()
	g.rows = append(g.rows, r)
	return r
}

func (g *GridView) AddColumn() grid.Column {
	c := g.gen.NewColumn()
	g.cols = append(g.cols, c)
	return c
}

// RemoveColumn deletes a dynamic column. Unknown IDs are a no-op.
func (g *GridView) RemoveColumn(id string) bool {
	i := grid.IndexOfColumn(g.cols, id)
	if i < 0 {
		return false
	}
	g.cols = append(g.cols[:i:i], g.cols[i+1:]...)
	delete(g.widths, id)
	return true
}

// RemoveSelected deletes every selected row and drops their selection
// entries, so no stale IDs remain selected. Returns the number removed.
func (g *GridView) RemoveSelected() int {
	ids := g.sel.SelectedOf(grid.RowIDs(g.rows))
	if len(ids) == 0 {
		return 0
	}
	kept := make([]grid.Row, 0, len(g.rows)-len(ids))
	for _, r := range g.rows {
		if !g.sel.IsSelected(r.ID) {
			kept = append(kept, r)
		}
	}
	g.rows = kept
	g.sel.SetAll(ids, false)
	g.clampScroll()
	return len(ids)
}

// SortBy replaces the row collection with a sorted copy. An unknown column
// leaves the rows unchanged and returns the engine's error.
func (g *GridView) SortBy(columnID string, dir grid.Direction) error {
	sorted, err := g.engine.SortRows(g.rows, g.cols, columnID, dir)
	if err != nil {
		return err
	}
	g.rows = sorted
	return nil
}

// ReorderRow moves the row srcID to the position of dstID. Either ID not
// resolving aborts silently: the gesture that produced a stale reference is
// already being discarded.
func (g *GridView) ReorderRow(srcID, dstID string) bool {
	from := grid.IndexOfRow(g.rows, srcID)
	to := grid.IndexOfRow(g.rows, dstID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	g.rows = grid.Reorder(g.rows, from, to)
	return true
}

// ReorderColumn moves the dynamic column srcID to the position of dstID.
func (g *GridView) ReorderColumn(srcID, dstID string) bool {
	from := grid.IndexOfColumn(g.cols, srcID)
	to := grid.IndexOfColumn(g.cols, dstID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	g.cols = grid.Reorder(g.cols, from, to)
	return true
}

// --- selection ------------------------------------------------------------

func (g *GridView) ToggleRow(id string) { g.sel.Toggle(id) }

// ToggleSelectAll flips the header checkbox: everything selected clears,
// anything less selects all.
func (g *GridView) ToggleSelectAll() {
	ids := grid.RowIDs(g.rows)
	if g.sel.AllSelected(ids) {
		g.sel.SetAll(ids, false)
		return
	}
	g.sel.SetAll(ids, true)
}

// --- cursor & scrolling (window over the row sequence) --------------------

func (g *GridView) bodyHeight() int {
	h := g.height - 1 // header line
	if h < 1 {
		h = 1
	}
	return h
}

func (g *GridView) MoveUp() {
	if g.cursor > 0 {
		g.cursor--
	}
	g.clampScroll()
}

func (g *GridView) MoveDown() {
	if g.cursor+1 < len(g.rows) {
		g.cursor++
	}
	g.clampScroll()
}

func (g *GridView) PageUp() {
	g.cursor -= g.bodyHeight()
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.clampScroll()
}

func (g *GridView) PageDown() {
	g.cursor += g.bodyHeight()
	if g.cursor >= len(g.rows) {
		g.cursor = len(g.rows) - 1
	}
	g.clampScroll()
}

func (g *GridView) Home() { g.cursor = 0; g.clampScroll() }

func (g *GridView) End() {
	if len(g.rows) > 0 {
		g.cursor = len(g.rows) - 1
	}
	g.clampScroll()
}

// SetCursor focuses the row at the absolute index, clamped to bounds.
func (g *GridView) SetCursor(i int) {
	g.cursor = i
	g.clampScroll()
}

func (g *GridView) clampScroll() {
	n := len(g.rows)
	if n == 0 {
		g.cursor, g.top = 0, 0
		return
	}
	if g.cursor >= n {
		g.cursor = n - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	h := g.bodyHeight()
	maxTop := n - h
	if maxTop < 0 {
		maxTop = 0
	}
	if g.top > maxTop {
		g.top = maxTop
	}
	if g.cursor < g.top {
		g.top = g.cursor
	}
	if g.cursor >= g.top+h {
		g.top = g.cursor - (h - 1)
	}
}

// --- drag highlight -------------------------------------------------------

// SetDragMarks highlights the drag source and the current drop target
// while a drag is in flight.
func (g *GridView) SetDragMarks(src, dst Ref) {
	g.dragSource, g.dropTarget = src, dst
}

func (g *GridView) ClearDragMarks() {
	g.dragSource, g.dropTarget = Ref{}, Ref{}
}

// --- hit-testing (valid after the last View) ------------------------------

// SelectAllHit reports whether (x, y) is on the header checkbox.
func (g *GridView) SelectAllHit(x, y int) bool {
	return y == g.layout.headerY && g.layout.checkbox.contains(x)
}

// HeaderHit resolves (x, y) to a dynamic column header and its on-screen
// bounds, used both as drag source and as popover anchor.
func (g *GridView) HeaderHit(x, y int) (string, Rect, bool) {
	if y != g.layout.headerY {
		return "", Rect{}, false
	}
	for i, sp := range g.layout.cols {
		if sp.contains(x) {
			return g.cols[i].ID, Rect{X: sp.x, Y: g.layout.headerY, W: sp.w, H: 1}, true
		}
	}
	return "", Rect{}, false
}

// RowHit resolves (x, y) to a body row and the zone within it.
func (g *GridView) RowHit(x, y int) (string, rowZone, bool) {
	id, ok := g.RowAt(y)
	if !ok {
		return "", zoneCell, false
	}
	switch {
	case x < handleW:
		return id, zoneHandle, true
	case g.layout.checkbox.contains(x):
		return id, zoneCheckbox, true
	}
	return id, zoneCell, true
}

// RowAt resolves a y coordinate to the row rendered there.
func (g *GridView) RowAt(y int) (string, bool) {
	if y < g.layout.bodyY || y >= g.layout.bodyY+g.layout.bodyH {
		return "", false
	}
	i := g.top + (y - g.layout.bodyY)
	if i < 0 || i >= len(g.rows) {
		return "", false
	}
	return g.rows[i].ID, true
}

// ColumnAt resolves an x coordinate to the dynamic column rendered there.
func (g *GridView) ColumnAt(x int) (string, bool) {
	for i, sp := range g.layout.cols {
		if sp.contains(x) {
			return g.cols[i].ID, true
		}
	}
	return "", false
}

// --- rendering ------------------------------------------------------------

// View renders header plus body window and records the layout for
// hit-testing.
func (g *GridView) View() string {
	g.clampScroll()
	widths := g.fitWidths()

	g.layout = gridLayout{
		headerY:  0,
		bodyY:    1,
		bodyH:    g.bodyHeight(),
		checkbox: span{x: handleW, w: checkboxW - 1},
		cols:     make([]span, len(g.cols)),
	}
	x := handleW + checkboxW
	for i, w := range widths {
		g.layout.cols[i] = span{x: x, w: w}
		x += w + 1
	}

	var b strings.Builder
	b.WriteString(g.renderHeader(widths))
	end := g.top + g.layout.bodyH
	if end > len(g.rows) {
		end = len(g.rows)
	}
	for i := g.top; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(g.renderRow(g.rows[i], i, widths))
	}
	for i := end - g.top; i < g.layout.bodyH; i++ {
		b.WriteString("\n")
		b.WriteString(GridRowStyle.Width(g.width).Render(""))
	}
	return b.String()
}

func (g *GridView) renderHeader(widths []int) string {
	ids := grid.RowIDs(g.rows)
	// Indeterminate wins over checked whenever not all rows are checked.
	glyph := "[ ]"
	switch {
	case g.sel.AllSelected(ids):
		glyph = "[x]"
	case g.sel.SomeSelected(ids):
		glyph = "[-]"
	}

	cells := []string{strings.Repeat(" ", handleW) + glyph + " "}
	for i, c := range g.cols {
		st := GridHeaderStyle
		switch {
		case g.dragSource.Kind == RefColumn && g.dragSource.ID == c.ID:
			st = GridDragSourceStyle
		case g.dropTarget.Kind == RefColumn && g.dropTarget.ID == c.ID:
			st = GridDropTargetStyle
		}
		cells = append(cells, st.Render(cellPad(c.Title, widths[i]))+" ")
	}
	line := strings.Join(cells, "")
	return GridHeaderStyle.Width(g.width).Render(line)
}

func (g *GridView) renderRow(r grid.Row, idx int, widths []int) string {
	glyph := "[ ]"
	if g.sel.IsSelected(r.ID) {
		glyph = "[x]"
	}
	cells := []string{"≡ " + glyph + " "}
	for i, c := range g.cols {
		cells = append(cells, cellPad(c.Cell(r), widths[i])+" ")
	}
	line := strings.Join(cells, "")

	st := GridRowStyle
	switch {
	case g.dropTarget.Kind == RefRow && g.dropTarget.ID == r.ID:
		st = GridDropTargetStyle
	case idx == g.cursor:
		st = GridCursorStyle
	case g.sel.IsSelected(r.ID):
		st = GridSelectedStyle
	}
	return st.Width(g.width).Render(line)
}

// fitWidths sizes the dynamic columns: an incremental cache keeps the
// widest plain content seen per column, then the desired widths are scaled
// into the available space.
func (g *GridView) fitWidths() []int {
	end := g.top + g.bodyHeight()
	if end > len(g.rows) {
		end = len(g.rows)
	}
	for _, c := range g.cols {
		if w := lipgloss.Width(c.Title); w > g.widths[c.ID] {
			g.widths[c.ID] = w
		}
		for i := g.top; i < end; i++ {
			if w := lipgloss.Width(c.Cell(g.rows[i])); w > g.widths[c.ID] {
				g.widths[c.ID] = w
			}
		}
	}
	desired := make([]int, len(g.cols))
	for i, c := range g.cols {
		desired[i] = g.widths[c.ID]
	}
	avail := g.width - handleW - checkboxW - len(g.cols)
	return computeFitWidths(avail, desired, minColW)
}

// computeFitWidths distributes total over the desired widths, scaling
// proportionally when they do not fit, never below minCol.
func computeFitWidths(total int, desired []int, minCol int) []int {
	n := len(desired)
	if n == 0 {
		return nil
	}
	if minCol < 1 {
		minCol = 1
	}
	sumDesired := 0
	for _, d := range desired {
		if d < minCol {
			d = minCol
		}
		sumDesired += d
	}
	out := make([]int, n)
	if sumDesired <= total {
		for i, d := range desired {
			if d < minCol {
				d = minCol
			}
			out[i] = d
		}
		return out
	}
	base := 0
	for i, d := range desired {
		if d < minCol {
			d = minCol
		}
		q := d * total / sumDesired
		if q < minCol {
			q = minCol
		}
		out[i] = q
		base += q
	}
	for rem := total - base; rem > 0; {
		for i := range out {
			if rem == 0 {
				break
			}
			out[i]++
			rem--
		}
	}
	return out
}

// cellPad truncates with an ASCII tail and pads to exactly w columns.
func cellPad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) > w {
		if w <= 3 {
			return strings.Repeat(".", w)
		}
		s = truncate.StringWithTail(s, uint(w), "...")
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
