package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/eeperfume/datagrid/internal/overlay"
)

// Rect is a cell-grid rectangle used for anchoring and hit tests.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MenuAction is the outcome of a click inside the column menu.
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionDeleteColumn
	ActionSortAscending
	ActionSortDescending
)

type menuLevel int

const (
	menuClosed menuLevel = iota
	menuLevel1
	menuLevel2
)

const (
	itemSort   = 0
	itemDelete = 1
	itemAsc    = 0
	itemDesc   = 1
)

var (
	level1Items = []string{"Sort        ▸", "Delete column"}
	level2Items = []string{"Ascending", "Descending"}
)

// ColumnMenu is the two-level header popover: level 1 offers sort/delete,
// hovering "Sort" opens level 2 with the directions. At most one level pair
// is open at a time and closing either level closes both. Mouse motion is
// only consulted while a level is open (WantsMotion), so no hover tracking
// leaks once the menu closes.
type ColumnMenu struct {
	level    menuLevel
	columnID string
	box      Rect // level-1 surface, borders included
	sub      Rect // level-2 surface
	hover1   int
	hover2   int
}

// Open shows level 1 for the given column, anchored under the header
// bounds. Any previously open menu is replaced.
func (m *ColumnMenu) Open(columnID string, anchor Rect) {
	m.level = menuLevel1
	m.columnID = columnID
	m.box = Rect{
		X: anchor.X,
		Y: anchor.Y + anchor.H,
		W: menuWidth(level1Items),
		H: len(level1Items) + 2,
	}
	m.sub = Rect{}
	m.hover1 = 0
	m.hover2 = 0
}

func (m *ColumnMenu) IsOpen() bool     { return m.level != menuClosed }
func (m *ColumnMenu) ColumnID() string { return m.columnID }

// WantsMotion gates hover handling: the motion listener is scoped to the
// lifetime of an open menu.
func (m *ColumnMenu) WantsMotion() bool { return m.level != menuClosed }

// Close collapses both levels.
func (m *ColumnMenu) Close() {
	m.level = menuClosed
	m.columnID = ""
	m.box = Rect{}
	m.sub = Rect{}
}

// ColumnRemoved closes the menu when the column it acts on is deleted out
// from under it.
func (m *ColumnMenu) ColumnRemoved(columnID string) {
	if m.IsOpen() && m.columnID == columnID {
		m.Close()
	}
}

// openLevel2 anchors the direction submenu beside the sort trigger row.
func (m *ColumnMenu) openLevel2() {
	m.level = menuLevel2
	m.sub = Rect{
		X: m.box.X + m.box.W - 1,
		Y: m.box.Y + itemSort,
		W: menuWidth(level2Items),
		H: len(level2Items) + 2,
	}
	m.hover2 = 0
}

// Motion updates hover state. Hovering the sort trigger opens level 2;
// hovering another level-1 item collapses it back to level 1.
func (m *ColumnMenu) Motion(x, y int) {
	if m.level == menuClosed {
		return
	}
	if m.level == menuLevel2 && m.sub.Contains(x, y) {
		if i, ok := itemAt(m.sub, y); ok {
			m.hover2 = i
		}
		return
	}
	if m.box.Contains(x, y) {
		i, ok := itemAt(m.box, y)
		if !ok {
			return
		}
		m.hover1 = i
		if i == itemSort {
			if m.level != menuLevel2 {
				m.openLevel2()
			}
		} else if m.level == menuLevel2 {
			m.level = menuLevel1
			m.sub = Rect{}
		}
	}
}

// Click interprets a pointer press. The second return is false when the
// press landed outside both surfaces: the menu closes and the caller must
// treat the event as an outside click. A press on the sort trigger is
// inside level 1 by rect containment, so the level-1-to-2 transition can
// never be taken for an outside click.
func (m *ColumnMenu) Click(x, y int) (MenuAction, bool) {
	if m.level == menuClosed {
		return ActionNone, false
	}
	if m.level == menuLevel2 && m.sub.Contains(x, y) {
		i, ok := itemAt(m.sub, y)
		if !ok {
			return ActionNone, true
		}
		m.Close()
		if i == itemAsc {
			return ActionSortAscending, true
		}
		return ActionSortDescending, true
	}
	if m.box.Contains(x, y) {
		i, ok := itemAt(m.box, y)
		if !ok {
			return ActionNone, true
		}
		switch i {
		case itemSort:
			if m.level != menuLevel2 {
				m.openLevel2()
			}
			return ActionNone, true
		case itemDelete:
			m.Close()
			return ActionDeleteColumn, true
		}
		return ActionNone, true
	}
	m.Close()
	return ActionNone, false
}

// View composites the open menu levels over the base view.
func (m *ColumnMenu) View(base string) string {
	if m.level == menuClosed {
		return base
	}
	out := overlay.At(renderMenu(level1Items, m.hover1), base, m.box.X, m.box.Y)
	if m.level == menuLevel2 {
		out = overlay.At(renderMenu(level2Items, m.hover2), out, m.sub.X, m.sub.Y)
	}
	return out
}

// itemAt maps a y coordinate inside a menu rect to an item index,
// accounting for the top border.
func itemAt(box Rect, y int) (int, bool) {
	i := y - box.Y - 1
	if i < 0 || i >= box.H-2 {
		return 0, false
	}
	return i, true
}

func menuWidth(items []string) int {
	w := 0
	for _, it := range items {
		if lw := lipgloss.Width(it); lw > w {
			w = lw
		}
	}
	// item padding (2) + borders (2)
	return w + 4
}

func renderMenu(items []string, hover int) string {
	inner := menuWidth(items) - 4
	rows := make([]string, len(items))
	for i, it := range items {
		st := MenuItemStyle
		if i == hover {
			st = MenuItemHoverStyle
		}
		rows[i] = st.Width(inner + 2).Render(it)
	}
	return MenuBorderStyle.Render(strings.Join(rows, "\n"))
}
