package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/eeperfume/datagrid/internal/overlay"
)

// Modal is a centered dialog window rendered over the grid.
type Modal struct {
	title   string
	content tea.Model
	width   int
	height  int
	visible bool
	onClose func() tea.Cmd

	winWidth  int
	winHeight int
	// full-screen base to composite the window onto, re-read each render
	backgroundFunc func() string
}

// ModalFooterHints allows content to contribute footer key hints
// rendered next to the default "Esc Close".
type ModalFooterHints interface {
	// FooterHints returns a list of key,label pairs to render in the footer.
	FooterHints() [][2]string
}

func NewModal(title string, content tea.Model) *Modal {
	return &Modal{title: title, content: content}
}

func (m *Modal) Init() tea.Cmd { return m.content.Init() }

// SetContent replaces the content model inside the modal.
func (m *Modal) SetContent(content tea.Model) { m.content = content }

func (m *Modal) Show()           { m.visible = true }
func (m *Modal) Hide()           { m.visible = false }
func (m *Modal) IsVisible() bool { return m.visible }

// SetDimensions sets the full-screen dimensions the modal renders into.
func (m *Modal) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// SetWindow sets the dialog window size, clamped to the screen at render
// time.
func (m *Modal) SetWindow(w, h int) {
	m.winWidth, m.winHeight = w, h
}

// SetBackgroundProvider sets the function producing the full-screen base
// view the window is composited onto.
func (m *Modal) SetBackgroundProvider(f func() string) { m.backgroundFunc = f }

// SetOnClose sets the callback for when the modal is closed.
func (m *Modal) SetOnClose(callback func() tea.Cmd) { m.onClose = callback }

func (m *Modal) close() tea.Cmd {
	m.Hide()
	if m.onClose != nil {
		return m.onClose()
	}
	return nil
}

// Update handles messages and updates the modal state.
func (m *Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "f10":
			return m, m.close()
		}
	}
	model, cmd := m.content.Update(msg)
	m.content = model
	return m, cmd
}

// View renders the dialog window centered over the background.
func (m *Modal) View() string {
	if !m.visible {
		return ""
	}
	base := ""
	if m.backgroundFunc != nil {
		base = m.backgroundFunc()
	}
	if base == "" {
		base = lipgloss.NewStyle().Width(m.width).Height(m.height).Render("")
	}

	winW := min(m.winWidth, m.width)
	winH := min(m.winHeight, m.height-1) // leave room for the footer line
	innerW := max(1, winW-2)
	innerH := max(1, winH-2)
	if setter, ok := m.content.(interface{ SetDimensions(int, int) }); ok {
		setter.SetDimensions(innerW, innerH)
	}
	inner := ""
	if viewable, ok := m.content.(interface{ View() string }); ok {
		inner = viewable.View()
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Black).
		BorderBackground(lipgloss.Cyan).
		Background(lipgloss.Cyan).
		Width(winW).
		Height(winH)

	// Title chip centered in the top border.
	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBlack)).
		Background(lipgloss.Color(ColorWhite)).
		Padding(0, 1).
		Render(m.title)
	border := boxStyle.GetBorderStyle()
	topBorderStyler := lipgloss.NewStyle().
		Foreground(boxStyle.GetBorderTopForeground()).
		Background(boxStyle.GetBorderTopBackground()).
		Render
	topLeft := topBorderStyler(border.TopLeft)
	topRight := topBorderStyler(border.TopRight)
	available := winW - lipgloss.Width(topLeft+topRight)
	lw := lipgloss.Width(label)
	var top string
	if lw >= available {
		gap := strings.Repeat(border.Top, max(0, available-lw))
		top = topLeft + label + topBorderStyler(gap) + topRight
	} else {
		total := available - lw
		left := total / 2
		right := total - left
		top = topLeft + topBorderStyler(strings.Repeat(border.Top, left)) + label + topBorderStyler(strings.Repeat(border.Top, right)) + topRight
	}

	inner = lipgloss.NewStyle().
		Background(lipgloss.Cyan).
		Foreground(lipgloss.Black).
		Width(innerW).
		Height(innerH).
		Render(inner)
	winBottom := boxStyle.
		BorderTop(false).
		Width(winW).
		Height(winH - 1).
		Render(inner)
	winFrame := top + "\n" + winBottom

	composed := overlay.Composite(
		winFrame,
		base,
		overlay.Center, overlay.Center,
		0, -1, // lift by 1 to keep the footer free
	)

	footer := FunctionKeyStyle.Render("Esc") + FunctionKeyDescriptionStyle.Render("Close")
	if provider, ok := m.content.(ModalFooterHints); ok {
		for _, kv := range provider.FooterHints() {
			footer += " " + FunctionKeyStyle.Render(kv[0]) + FunctionKeyDescriptionStyle.Render(kv[1])
		}
	}
	lines := strings.Split(composed, "\n")
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	lines[m.height-1] = FunctionKeyBarStyle.Width(m.width).Render(footer)
	return strings.Join(lines, "\n")
}

// ModalManager tracks registered modals and which one is on top.
type ModalManager struct {
	modals map[string]*Modal
	stack  []string // top-most is last
}

func NewModalManager() *ModalManager {
	return &ModalManager{modals: make(map[string]*Modal)}
}

func (mm *ModalManager) Init() tea.Cmd { return nil }

func (mm *ModalManager) Register(name string, modal *Modal) {
	mm.modals[name] = modal
}

// Show shows a modal by name.
func (mm *ModalManager) Show(name string) {
	modal, exists := mm.modals[name]
	if !exists {
		return
	}
	modal.Show()
	if len(mm.stack) > 0 && mm.stack[len(mm.stack)-1] == name {
		return
	}
	mm.stack = append(mm.stack, name)
}

// Hide hides the top-most modal.
func (mm *ModalManager) Hide() {
	if len(mm.stack) == 0 {
		return
	}
	top := mm.stack[len(mm.stack)-1]
	if modal, exists := mm.modals[top]; exists {
		modal.Hide()
	}
	mm.stack = mm.stack[:len(mm.stack)-1]
}

func (mm *ModalManager) IsModalVisible() bool { return len(mm.stack) > 0 }

func (mm *ModalManager) GetActiveModal() *Modal {
	if len(mm.stack) == 0 {
		return nil
	}
	return mm.modals[mm.stack[len(mm.stack)-1]]
}

// Update routes messages to the top-most modal and pops it when it closed
// itself.
func (mm *ModalManager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(mm.stack) == 0 {
		return mm, nil
	}
	name := mm.stack[len(mm.stack)-1]
	modal, exists := mm.modals[name]
	if !exists {
		return mm, nil
	}
	model, cmd := modal.Update(msg)
	mm.modals[name] = model.(*Modal)
	if !modal.IsVisible() && len(mm.stack) > 0 && mm.stack[len(mm.stack)-1] == name {
		mm.stack = mm.stack[:len(mm.stack)-1]
	}
	return mm, cmd
}

func (mm *ModalManager) View() string {
	if len(mm.stack) == 0 {
		return ""
	}
	if modal, exists := mm.modals[mm.stack[len(mm.stack)-1]]; exists {
		return modal.View()
	}
	return ""
}
