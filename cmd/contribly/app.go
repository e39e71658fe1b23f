package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/contribly/contribly-widget/pkg/widget"
)

// demoApp is the reference host adapter: it owns the widget's lifecycle the
// way a framework wrapper component would, forwarding messages in and calling
// Destroy on teardown.
type demoApp struct {
	widget *widget.Widget
	width  int
	height int
}

func newDemoApp(w *widget.Widget) *demoApp {
	return &demoApp{widget: w}
}

func (a *demoApp) Init() tea.Cmd {
	return a.widget.Init()
}

func (a *demoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.widget.Destroy()
			return a, tea.Quit
		}
	}

	return a, a.widget.Update(msg)
}

func (a *demoApp) View() string {
	content := a.widget.View()
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
