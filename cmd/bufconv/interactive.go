package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bytebuf/buffer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	encStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(11)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var swapWidths = []int{0, 16, 32, 64}

type interactiveModel struct {
	input   textinput.Model
	encs    []buffer.Encoding
	rows    []rendering
	from    int
	swapIdx int
}

func newInteractiveModel(initial string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type some input"
	ti.Prompt = "> "
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()

	m := &interactiveModel{
		input: ti,
		encs:  buffer.Encodings(),
	}
	m.refresh()
	return m
}

func (m *interactiveModel) fromEncoding() buffer.Encoding {
	return m.encs[m.from]
}

func (m *interactiveModel) swap() int {
	return swapWidths[m.swapIdx]
}

func (m *interactiveModel) refresh() {
	m.rows = renderAll(m.input.Value(), m.fromEncoding(), m.swap())
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.from = (m.from + 1) % len(m.encs)
			m.refresh()
			return m, nil

		case "shift+tab":
			m.from = (m.from + len(m.encs) - 1) % len(m.encs)
			m.refresh()
			return m, nil

		case "ctrl+s":
			m.swapIdx = (m.swapIdx + 1) % len(swapWidths)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Buffer Converter"))
	b.WriteString("\n\n")

	b.WriteString("input as ")
	for i, enc := range m.encs {
		if i == m.from {
			b.WriteString(selectedStyle.Render(" " + enc.String() + " "))
		} else {
			b.WriteString(" " + enc.String() + " ")
		}
	}
	if w := m.swap(); w != 0 {
		b.WriteString(fmt.Sprintf("  swap%d", w))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, row := range m.rows {
		b.WriteString(encStyle.Render(row.enc.String()))
		if row.err != nil {
			b.WriteString(errorStyle.Render(row.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(row.out))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab input encoding • ctrl+s swap • esc quit"))

	return b.String()
}

func runInteractive(initial string) error {
	p := tea.NewProgram(newInteractiveModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
