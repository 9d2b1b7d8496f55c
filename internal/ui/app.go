package ui

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/eeperfume/datagrid/internal/grid"
	"github.com/eeperfume/datagrid/internal/logging"
	"github.com/eeperfume/datagrid/pkg/appconfig"
)

// EscTimeoutMsg ends an Esc+digit sequence that was never completed.
type EscTimeoutMsg struct{}

type showToastMsg struct {
	text  string
	ttl   time.Duration
	isErr bool
}
type toastTickMsg struct{}

// App is the top-level model: the grid, the column menu, the drag state and
// the modal stack, with all mouse routing between them.
type App struct {
	grid         *GridView
	menu         *ColumnMenu
	drag         *DragController
	modalManager *ModalManager

	cfg *appconfig.Config
	log logr.Logger

	width  int
	height int

	escPressed bool

	// column header press bookkeeping: a release without motion opens the
	// menu instead of completing a drag
	pressedHeader Rect

	// Toast notification state (auto-dismiss)
	toastActive bool
	toastText   string
	toastIsErr  bool
	toastUntil  time.Time
	toastLogger *ToastLogger

	// Double-click detection
	lastClickTime  time.Time
	lastClickRowID string
}

func NewApp() *App {
	log := logging.New()
	app := &App{
		menu:         &ColumnMenu{},
		drag:         &DragController{},
		modalManager: NewModalManager(),
		cfg:          appconfig.Default(),
		log:          log,
	}
	app.grid = NewGridView(grid.NewGenerator(uint64(time.Now().UnixNano())), grid.NewEngine(log), app.cfg.Data.BatchSize)
	app.toastLogger = NewToastLogger(app, 2*time.Second)
	app.setupModals()
	return app
}

func (a *App) setupModals() {
	for _, name := range []string{"help", "inspector"} {
		m := NewModal("", NewPager(""))
		m.SetBackgroundProvider(a.renderMain)
		a.modalManager.Register(name, m)
	}
}

func (a *App) Init() tea.Cmd {
	cfg, err := appconfig.Load()
	if err != nil {
		a.log.Error(err, "config load failed, using defaults")
	}
	a.cfg = cfg
	return nil
}

// ShowToast returns a Cmd to display a transient notification.
func (a *App) ShowToast(text string, ttl time.Duration) tea.Cmd {
	return func() tea.Msg { return showToastMsg{text: text, ttl: ttl} }
}

// ShowErrorToast is ShowToast in the error color.
func (a *App) ShowErrorToast(text string, ttl time.Duration) tea.Cmd {
	return func() tea.Msg { return showToastMsg{text: text, ttl: ttl, isErr: true} }
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		msg.Width = max(40, msg.Width)
		msg.Height = max(5, msg.Height)
		a.width = msg.Width
		a.height = msg.Height
		if m := a.modalManager.GetActiveModal(); m != nil {
			m.SetDimensions(a.width, a.height)
			m.SetWindow(a.dialogWidth(), a.dialogHeight())
		}
		return a, nil

	case showToastMsg:
		a.toastActive = true
		a.toastText = msg.text
		a.toastIsErr = msg.isErr
		a.toastUntil = time.Now().Add(msg.ttl)
		return a, tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return toastTickMsg{} })
	case toastTickMsg:
		if a.toastActive {
			if time.Now().After(a.toastUntil) {
				a.toastActive = false
			} else {
				return a, tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return toastTickMsg{} })
			}
		}
		return a, nil

	case EscTimeoutMsg:
		a.escPressed = false
		return a, nil
	}

	// An open modal owns all input until it closes.
	if a.modalManager.IsModalVisible() {
		model, cmd := a.modalManager.Update(msg)
		a.modalManager = model.(*ModalManager)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.updateKey(msg)
	case tea.MouseMsg:
		return a.updateMouse(msg)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		if a.menu.IsOpen() {
			a.menu.Close()
			return a, nil
		}
		a.escPressed = true
		return a, tea.Tick(time.Second, func(time.Time) tea.Msg { return EscTimeoutMsg{} })
	}
	if a.escPressed {
		// Esc+digit doubles as the function key row.
		a.escPressed = false
		switch key {
		case "1":
			return a, a.showHelp()
		case "2":
			return a, a.regenerate()
		case "3":
			return a, a.inspectCurrentRow()
		case "4":
			return a, a.addRow()
		case "5":
			return a, a.copySelection()
		case "6":
			return a, a.addColumn()
		case "8":
			return a, a.deleteSelected()
		case "0":
			return a, tea.Quit
		}
		return a, nil
	}

	switch key {
	case "f10", "ctrl+q", "q":
		return a, tea.Quit
	case "f1":
		return a, a.showHelp()
	case "f2":
		return a, a.regenerate()
	case "f3", "enter":
		return a, a.inspectCurrentRow()
	case "f4":
		return a, a.addRow()
	case "f5":
		return a, a.copySelection()
	case "f6":
		return a, a.addColumn()
	case "f8", "delete":
		return a, a.deleteSelected()
	case "up":
		a.grid.MoveUp()
	case "down":
		a.grid.MoveDown()
	case "pgup":
		a.grid.PageUp()
	case "pgdown":
		a.grid.PageDown()
	case "home":
		a.grid.Home()
	case "end":
		a.grid.End()
	case "ctrl+t", "insert":
		if r, ok := a.grid.CurrentRow(); ok {
			a.grid.ToggleRow(r.ID)
			a.grid.MoveDown()
		}
	case "ctrl+a":
		a.grid.ToggleSelectAll()
	}
	return a, nil
}

func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch e := msg.(type) {
	case tea.MouseWheelMsg:
		m := e.Mouse()
		switch m.Button {
		case tea.MouseWheelUp:
			a.grid.MoveUp()
		case tea.MouseWheelDown:
			a.grid.MoveDown()
		}
		return a, nil

	case tea.MouseMotionMsg:
		m := e.Mouse()
		// The motion listener only exists while a menu or a drag is live.
		if a.menu.WantsMotion() {
			a.menu.Motion(m.X, m.Y)
			return a, nil
		}
		if a.drag.Dragging() {
			x, y := a.drag.Track(m.X, m.Y)
			a.grid.SetDragMarks(a.drag.Active(), a.dropTargetAt(a.drag.Active().Kind, x, y))
		}
		return a, nil

	case tea.MouseClickMsg:
		m := e.Mouse()
		return a.mousePress(m.X, m.Y, m.Button)

	case tea.MouseReleaseMsg:
		m := e.Mouse()
		return a.mouseRelease(m.X, m.Y)
	}
	return a, nil
}

func (a *App) mousePress(x, y int, button tea.MouseButton) (tea.Model, tea.Cmd) {
	// An open menu captures the click wherever it lands. The column ID is
	// taken before the click is interpreted, since a selecting click also
	// closes the menu.
	if a.menu.IsOpen() {
		columnID := a.menu.ColumnID()
		action, _ := a.menu.Click(x, y)
		return a, a.runMenuAction(columnID, action)
	}
	if button == tea.MouseRight {
		if id, anchor, ok := a.grid.HeaderHit(x, y); ok {
			a.menu.Open(id, anchor)
		}
		return a, nil
	}
	if button != tea.MouseLeft {
		return a, nil
	}
	if y == a.height-1 {
		// Function key bar acts on release.
		return a, nil
	}
	if a.grid.SelectAllHit(x, y) {
		a.grid.ToggleSelectAll()
		return a, nil
	}
	if id, anchor, ok := a.grid.HeaderHit(x, y); ok {
		// Press arms a column drag; release decides drag vs menu.
		a.pressedHeader = anchor
		a.drag.Start(Ref{Kind: RefColumn, ID: id}, x, y)
		a.grid.SetDragMarks(a.drag.Active(), Ref{})
		return a, nil
	}
	if id, zone, ok := a.grid.RowHit(x, y); ok {
		switch zone {
		case zoneHandle:
			a.drag.Start(Ref{Kind: RefRow, ID: id}, x, y)
			a.grid.SetDragMarks(a.drag.Active(), Ref{})
			return a, nil
		case zoneCheckbox:
			a.grid.ToggleRow(id)
			return a, nil
		}
		if i := grid.IndexOfRow(a.grid.Rows(), id); i >= 0 {
			a.grid.SetCursor(i)
		}
		now := time.Now()
		timeout := a.cfg.Input.Mouse.DoubleClickTimeout.Duration
		if a.lastClickRowID == id && now.Sub(a.lastClickTime) <= timeout {
			a.lastClickTime = time.Time{}
			a.lastClickRowID = ""
			return a, a.inspectCurrentRow()
		}
		a.lastClickTime = now
		a.lastClickRowID = id
	}
	return a, nil
}

func (a *App) mouseRelease(x, y int) (tea.Model, tea.Cmd) {
	if a.drag.Dragging() {
		moved := a.drag.Moved()
		cx, cy := a.drag.Track(x, y)
		src := a.drag.End()
		a.grid.ClearDragMarks()
		if !moved && src.Kind == RefColumn {
			// A press and release in place is a click: open the menu.
			a.menu.Open(src.ID, a.pressedHeader)
			return a, nil
		}
		a.completeDrag(src, a.dropTargetAt(src.Kind, cx, cy))
		return a, nil
	}
	if y == a.height-1 {
		return a, a.handleFunctionKeyClick(x)
	}
	return a, nil
}

// dropTargetAt resolves the element of the dragged kind under the
// constrained pointer position.
func (a *App) dropTargetAt(kind RefKind, x, y int) Ref {
	switch kind {
	case RefColumn:
		if id, ok := a.grid.ColumnAt(x); ok {
			return Ref{Kind: RefColumn, ID: id}
		}
	case RefRow:
		if id, ok := a.grid.RowAt(y); ok {
			return Ref{Kind: RefRow, ID: id}
		}
	}
	return Ref{}
}

// completeDrag applies a finished drag. Anything that does not resolve to a
// same-kind pair of live elements is dropped without feedback: the gesture
// is already over.
func (a *App) completeDrag(src, dst Ref) {
	if src.IsZero() || dst.IsZero() || src.Kind != dst.Kind || src.ID == dst.ID {
		return
	}
	switch src.Kind {
	case RefRow:
		a.grid.ReorderRow(src.ID, dst.ID)
	case RefColumn:
		a.grid.ReorderColumn(src.ID, dst.ID)
	}
}

func (a *App) runMenuAction(columnID string, action MenuAction) tea.Cmd {
	switch action {
	case ActionSortAscending:
		return a.sortBy(columnID, grid.Ascending)
	case ActionSortDescending:
		return a.sortBy(columnID, grid.Descending)
	case ActionDeleteColumn:
		if a.grid.RemoveColumn(columnID) {
			a.menu.ColumnRemoved(columnID)
			return a.toastLogger.Infof("Deleted column %s", columnID)
		}
	}
	return nil
}

func (a *App) sortBy(columnID string, dir grid.Direction) tea.Cmd {
	if err := a.grid.SortBy(columnID, dir); err != nil {
		a.log.Error(err, "sort failed", "column", columnID, "direction", dir.String())
		return a.toastLogger.Errorf("Sort failed: %v", err)
	}
	return nil
}

// --- actions --------------------------------------------------------------

func (a *App) regenerate() tea.Cmd {
	a.menu.Close()
	a.grid.Regenerate(a.cfg.Data.BatchSize)
	return a.toastLogger.Infof("Regenerated %d rows", a.cfg.Data.BatchSize)
}

func (a *App) addRow() tea.Cmd {
	r := a.grid.AddRow()
	return a.toastLogger.Infof("Added row %s", r.ID)
}

func (a *App) addColumn() tea.Cmd {
	c := a.grid.AddColumn()
	return a.toastLogger.Infof("Added column %s", c.Title)
}

func (a *App) deleteSelected() tea.Cmd {
	n := a.grid.RemoveSelected()
	if n == 0 {
		return a.toastLogger.Infof("No rows selected")
	}
	return a.toastLogger.Infof("Deleted %d rows", n)
}

// copySelection writes the selected rows (or the focused row when nothing
// is selected) to the system clipboard as tab-separated text with a header
// line, columns in display order.
func (a *App) copySelection() tea.Cmd {
	rows := a.grid.Rows()
	ids := a.grid.Selection().SelectedOf(grid.RowIDs(rows))
	if len(ids) == 0 {
		r, ok := a.grid.CurrentRow()
		if !ok {
			return nil
		}
		ids = []string{r.ID}
	}
	cols := a.grid.Columns()
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(c.Title)
	}
	b.WriteByte('\n')
	for _, id := range ids {
		r := rows[grid.IndexOfRow(rows, id)]
		for i, c := range cols {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(c.Cell(r))
		}
		b.WriteByte('\n')
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		a.log.Error(err, "clipboard write failed")
		return a.toastLogger.Errorf("Copy failed: %v", err)
	}
	return a.toastLogger.Infof("Copied %d rows", len(ids))
}

func (a *App) inspectCurrentRow() tea.Cmd {
	r, ok := a.grid.CurrentRow()
	if !ok {
		return nil
	}
	a.menu.Close()
	modal := a.modalManager.modals["inspector"]
	modal.title = "Row " + r.ID
	modal.SetContent(NewPager(renderRowYAML(r, a.grid.Columns(), a.cfg.Viewer.Theme)))
	modal.SetDimensions(a.width, a.height)
	modal.SetWindow(a.dialogWidth(), a.dialogHeight())
	a.modalManager.Show("inspector")
	return nil
}

func (a *App) showHelp() tea.Cmd {
	a.menu.Close()
	modal := a.modalManager.modals["help"]
	modal.title = "Help"
	modal.SetContent(NewPager(helpText))
	modal.SetDimensions(a.width, a.height)
	modal.SetWindow(a.dialogWidth(), a.dialogHeight())
	a.modalManager.Show("help")
	return nil
}

const helpText = `Mouse

  Drag the ≡ handle to reorder rows.
  Drag a column header to reorder columns.
  Click a column header to open its menu (Sort, Delete column).
  Click a checkbox to select a row; the header checkbox selects all.
  Double-click a row to inspect it.

Keys

  Up/Down, PgUp/PgDn, Home/End   move the cursor
  Insert, Ctrl+T                 toggle selection
  Ctrl+A                         select/deselect all
  Enter, F3                      inspect row
  F2                             regenerate rows
  F4 / F6                        add row / add column
  F5                             copy selection
  F8                             delete selected rows
  F10, Q                         quit

Esc followed by a digit works as the matching function key.`

// Window size for dialogs: 60% of the screen, with floors for small
// terminals.
func (a *App) dialogWidth() int {
	w := a.width * 6 / 10
	if w < 40 {
		w = 40
	}
	return min(w, a.width)
}

func (a *App) dialogHeight() int {
	h := a.height * 6 / 10
	if h < 8 {
		h = 8
	}
	return min(h, a.height-1)
}

// --- rendering ------------------------------------------------------------

func (a *App) View() (string, *tea.Cursor) {
	if a.modalManager.IsModalVisible() {
		return a.modalManager.View(), nil
	}
	return a.renderMain(), nil
}

func (a *App) renderMain() string {
	// Reserve space for the function key bar and an optional toast line.
	reserved := 1
	if a.toastActive {
		reserved++
	}
	a.grid.SetSize(a.width, a.height-reserved)

	parts := []string{a.grid.View()}
	if a.toastActive {
		msg := a.toastText
		if lipgloss.Width(msg) > a.width {
			msg = cellPad(msg, a.width)
		}
		st := ToastInfoStyle
		if a.toastIsErr {
			st = ToastStyle
		}
		parts = append(parts, st.Width(a.width).Render(msg))
	}
	parts = append(parts, a.renderFunctionKeys())
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return a.menu.View(out)
}

type functionKey struct {
	key     string
	label   string
	enabled bool
	action  func() tea.Cmd
}

func (a *App) functionKeys() []functionKey {
	hasRow := len(a.grid.Rows()) > 0
	hasSelection := a.grid.Selection().Count() > 0
	return []functionKey{
		{"F1", "Help", true, a.showHelp},
		{"F2", "Regen", true, a.regenerate},
		{"F3", "View", hasRow, a.inspectCurrentRow},
		{"F4", "+Row", true, a.addRow},
		{"F5", "Copy", hasRow, a.copySelection},
		{"F6", "+Col", true, a.addColumn},
		{"F8", "Delete", hasSelection, a.deleteSelected},
		{"F10", "Quit", true, func() tea.Cmd { return tea.Quit }},
	}
}

func renderFunctionKey(k functionKey) string {
	desc := FunctionKeyDescriptionStyle
	if !k.enabled {
		desc = FunctionKeyDisabledStyle
	}
	return FunctionKeyStyle.Render(k.key) + desc.Render(k.label)
}

// renderFunctionKeys renders the function key bar with the app title
// right-aligned.
func (a *App) renderFunctionKeys() string {
	var keys []string
	for _, k := range a.functionKeys() {
		keys = append(keys, renderFunctionKey(k))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Left, keys...)

	title := fmt.Sprintf(" Data Grid · %d rows ", len(a.grid.Rows()))
	titleStyle := FunctionKeyTitleStyle.
		Align(lipgloss.Right).
		Width(max(0, a.width-lipgloss.Width(joined)-1))
	return FunctionKeyBarStyle.Width(a.width).Align(lipgloss.Left).Render(joined + " " + titleStyle.Render(title))
}

// handleFunctionKeyClick maps an x coordinate on the bar to a key action by
// accumulating the rendered widths, mirroring renderFunctionKeys.
func (a *App) handleFunctionKeyClick(x int) tea.Cmd {
	acc := 0
	for _, k := range a.functionKeys() {
		w := lipgloss.Width(renderFunctionKey(k))
		if x >= acc && x < acc+w {
			if k.enabled && k.action != nil {
				return k.action()
			}
			return nil
		}
		acc += w
	}
	return nil
}

// Run starts the application.
func Run() error {
	app := NewApp()

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	defer func() {
		fmt.Print("\033[?1049l") // Exit alternate screen
		fmt.Print("\033[?25h")   // Show cursor
		fmt.Print("\033[0m")     // Reset all attributes
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
