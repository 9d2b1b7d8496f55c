package ui

// RefKind tags a drag token as a row or a column. Carrying the kind
// explicitly (instead of encoding it in an ID prefix) rules out collisions
// between the row and column ID namespaces.
type RefKind int

const (
	RefNone RefKind = iota
	RefRow
	RefColumn
)

// Ref identifies one draggable entity.
type Ref struct {
	Kind RefKind
	ID   string
}

func (r Ref) IsZero() bool { return r.Kind == RefNone && r.ID == "" }

// Axis constrains pointer motion during a drag.
type Axis int

const (
	AxisFree Axis = iota
	AxisVertical
	AxisHorizontal
)

// axisFor derives the motion constraint from the dragged kind: rows move
// vertically, columns horizontally.
func axisFor(kind RefKind) Axis {
	switch kind {
	case RefRow:
		return AxisVertical
	case RefColumn:
		return AxisHorizontal
	}
	return AxisFree
}

// DragController tracks a single pointer drag gesture:
// idle -> dragging(active) -> idle. It only interprets coordinates; the
// caller resolves drop targets and performs the reorder.
type DragController struct {
	active Ref
	axis   Axis
	startX int
	startY int
	moved  bool
}

// Start records the pressed entity. The gesture is not yet a drag; it
// becomes one once the pointer leaves the start cell.
func (d *DragController) Start(ref Ref, x, y int) {
	d.active = ref
	d.axis = axisFor(ref.Kind)
	d.startX, d.startY = x, y
	d.moved = false
}

func (d *DragController) Dragging() bool { return !d.active.IsZero() }
func (d *DragController) Active() Ref    { return d.active }
func (d *DragController) Axis() Axis     { return d.axis }

// Moved reports whether the pointer left the start cell at any point, which
// distinguishes a drag from a plain click on the same element.
func (d *DragController) Moved() bool { return d.moved }

// Track constrains the pointer position to the drag axis and flags motion.
func (d *DragController) Track(x, y int) (int, int) {
	if d.active.IsZero() {
		return x, y
	}
	if x != d.startX || y != d.startY {
		d.moved = true
	}
	switch d.axis {
	case AxisVertical:
		return d.startX, y
	case AxisHorizontal:
		return x, d.startY
	}
	return x, y
}

// End clears the gesture on every exit path and returns the entity that
// was being dragged.
func (d *DragController) End() Ref {
	ref := d.active
	d.active = Ref{}
	d.axis = AxisFree
	d.moved = false
	return ref
}
