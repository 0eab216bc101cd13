package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/valwire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// treeNode is one row of the browsable value tree.
type treeNode struct {
	val      valwire.Value
	label    string // role of this node under its parent, e.g. "key"
	children []*treeNode
	depth    int
	expanded bool
}

func buildTree(v valwire.Value, label string, depth int) *treeNode {
	n := &treeNode{val: v, label: label, depth: depth, expanded: depth < 2}

	switch v.Kind() {
	case valwire.KindOptional:
		if inner, ok := v.Inner(); ok {
			n.children = append(n.children, buildTree(inner, "", depth+1))
		}
	case valwire.KindVector:
		for i, e := range v.Elems() {
			n.children = append(n.children, buildTree(e, fmt.Sprintf("%d", i), depth+1))
		}
	case valwire.KindHashMap:
		for _, p := range v.Pairs() {
			n.children = append(n.children, buildTree(p.Key, "key", depth+1))
			n.children = append(n.children, buildTree(p.Val, "value", depth+1))
		}
	}
	return n
}

func (n *treeNode) visible() []*treeNode {
	out := []*treeNode{n}
	if !n.expanded {
		return out
	}
	for _, c := range n.children {
		out = append(out, c.visible()...)
	}
	return out
}

func (n *treeNode) setExpanded(expanded bool) {
	n.expanded = expanded
	for _, c := range n.children {
		c.setExpanded(expanded)
	}
}

func (n *treeNode) line() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", n.depth))

	if len(n.children) > 0 {
		if n.expanded {
			b.WriteString("- ")
		} else {
			b.WriteString("+ ")
		}
	} else {
		b.WriteString("  ")
	}

	if n.label != "" {
		b.WriteString(n.label)
		b.WriteString(": ")
	}

	b.WriteString(n.val.Kind().String())
	switch n.val.Kind() {
	case valwire.KindSlice, valwire.KindSliceLike:
		bts, _ := n.val.AsBytes()
		b.WriteString(" " + formatBytes(bts))
	case valwire.KindOptional:
		if n.val.IsNone() {
			b.WriteString(" none")
		}
	case valwire.KindVector:
		fmt.Fprintf(&b, " (%d elements)", n.val.Len())
	case valwire.KindHashMap:
		fmt.Fprintf(&b, " (%d pairs)", n.val.Len())
	default:
		b.WriteString(" " + scalarText(n.val))
	}

	return b.String()
}

type browserModel struct {
	err      error
	name     string
	root     *treeNode
	rows     []*treeNode
	cursor   int
	showHex  bool
	viewport viewport.Model
	ready    bool
}

func newBrowserModel(name string, data []byte) *browserModel {
	m := &browserModel{name: name}

	v, _, err := valwire.DecodeNext(data)
	if err != nil {
		m.err = err
		return m
	}
	m.root = buildTree(v, "", 0)
	m.rows = m.root.visible()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title, help line, and the optional hex panel live outside the viewport
		height := msg.Height - 4
		if m.showHex {
			height -= 3
		}
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.refresh()
			}

		case "enter", " ":
			if m.cursor < len(m.rows) && len(m.rows[m.cursor].children) > 0 {
				n := m.rows[m.cursor]
				n.expanded = !n.expanded
				m.rows = m.root.visible()
				m.refresh()
			}

		case "e":
			if m.root != nil {
				m.root.setExpanded(true)
				m.rows = m.root.visible()
				m.refresh()
			}

		case "c":
			if m.root != nil {
				m.root.setExpanded(false)
				m.rows = m.root.visible()
				m.cursor = 0
				m.refresh()
			}

		case "x":
			m.showHex = !m.showHex
			m.refresh()
		}
	}

	return m, nil
}

func (m *browserModel) refresh() {
	if !m.ready || m.root == nil {
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}

	var b strings.Builder
	for i, n := range m.rows {
		line := n.line()
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.viewport.SetContent(b.String())

	// Keep the cursor row inside the visible window
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *browserModel) selectedHex() string {
	if m.cursor >= len(m.rows) {
		return ""
	}
	data, err := valwire.Encode(m.rows[m.cursor].val)
	if err != nil {
		return fmt.Sprintf("encode: %v", err)
	}
	if len(data) > 64 {
		return fmt.Sprintf("% x... (%d bytes)", data[:64], len(data))
	}
	return fmt.Sprintf("% x (%d bytes)", data, len(data))
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			helpStyle.Render("q quit") + "\n"
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("valwire inspect"))
	b.WriteString(" ")
	b.WriteString(m.name)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.showHex {
		b.WriteString("\n")
		b.WriteString(hexStyle.Render(m.selectedHex()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • enter expand/collapse • e/c all • x hex • q quit"))
	return b.String()
}

func runInteractive(name string, data []byte) error {
	p := tea.NewProgram(newBrowserModel(name, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
