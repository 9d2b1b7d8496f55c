package ui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	viewport "github.com/charmbracelet/bubbles/v2/viewport"
)

// Pager is a scrollable text view used as modal content.
type Pager struct {
	vp    viewport.Model
	text  string
	hints [][2]string
}

func NewPager(text string) *Pager {
	vp := viewport.New(viewport.WithWidth(40), viewport.WithHeight(10))
	vp.SoftWrap = false
	vp.SetHorizontalStep(8)
	vp.SetContent(text)
	return &Pager{vp: vp, text: text}
}

func (p *Pager) Init() tea.Cmd { return nil }

// SetHints sets extra footer hints shown next to "Esc Close".
func (p *Pager) SetHints(hints [][2]string) { p.hints = hints }

func (p *Pager) FooterHints() [][2]string { return p.hints }

func (p *Pager) SetText(text string) {
	p.text = text
	p.vp.SetContent(text)
	p.vp.GotoTop()
}

func (p *Pager) SetDimensions(w, h int) {
	p.vp.SetWidth(w)
	p.vp.SetHeight(h)
}

func (p *Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p *Pager) View() string {
	return PagerContentStyle.Render(p.vp.View())
}
