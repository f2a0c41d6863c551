package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcast/pkg/cloud"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// inspectCommand creates the inspect command for browsing a layout.
func (c *CLI) inspectCommand() *cobra.Command {
	var f optionFlags

	cmd := &cobra.Command{
		Use:   "inspect [words-file]",
		Short: "Browse placed and unplaced words interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			res, err := c.computeLayout(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewInspectModel(res), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	addLayoutFlags(cmd, &f)
	return cmd
}

// =============================================================================
// InspectModel - Interactive layout browser
// =============================================================================

const (
	tabPlaced = iota
	tabUnplaced
	tabCount
)

// InspectModel is the bubbletea model listing a layout's placed and unplaced
// words. Tab switches between the two lists.
type InspectModel struct {
	Placed   []cloud.PlacedWord
	Unplaced []cloud.Word
	Tab      int
	Cursor   [tabCount]int
	Offset   [tabCount]int
	Height   int
}

// NewInspectModel creates a model over res.
func NewInspectModel(res cloud.Result) InspectModel {
	return InspectModel{
		Placed:   res.Placed,
		Unplaced: res.Unplaced,
		Height:   15,
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) count() int {
	if m.Tab == tabUnplaced {
		return len(m.Unplaced)
	}
	return len(m.Placed)
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.Tab = (m.Tab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.Tab = (m.Tab + tabCount - 1) % tabCount
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-m.Cursor[m.Tab])
		case "end", "G":
			m.move(m.count() - 1 - m.Cursor[m.Tab])
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor of the active list by delta, clamped to the list,
// and scrolls the window to keep it visible.
func (m *InspectModel) move(delta int) {
	n := m.count()
	if n == 0 {
		return
	}
	cur := min(max(m.Cursor[m.Tab]+delta, 0), n-1)
	m.Cursor[m.Tab] = cur
	if cur < m.Offset[m.Tab] {
		m.Offset[m.Tab] = cur
	}
	if cur >= m.Offset[m.Tab]+m.Height {
		m.Offset[m.Tab] = cur - m.Height + 1
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout"))
	b.WriteString("  ")
	b.WriteString(m.tabLabel(tabPlaced, fmt.Sprintf("Placed (%d)", len(m.Placed))))
	b.WriteString("  ")
	b.WriteString(m.tabLabel(tabUnplaced, fmt.Sprintf("Unplaced (%d)", len(m.Unplaced))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab switch list  q quit"))
	b.WriteString("\n\n")

	n := m.count()
	if n == 0 {
		b.WriteString(listDimStyle.Render("  (none)"))
		b.WriteString("\n")
		return b.String()
	}

	offset := m.Offset[m.Tab]
	end := min(offset+m.Height, n)
	for i := offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor[m.Tab] {
			cursor = "▸ "
		}
		line := cursor + m.line(i)
		if i == m.Cursor[m.Tab] {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Tab == tabPlaced {
		b.WriteString(m.detail(m.Placed[m.Cursor[tabPlaced]]))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor[m.Tab]+1, n)))

	return b.String()
}

func (m InspectModel) tabLabel(tab int, label string) string {
	if m.Tab == tab {
		return tabActiveStyle.Render(label)
	}
	return tabInactiveStyle.Render(label)
}

func (m InspectModel) line(i int) string {
	if m.Tab == tabUnplaced {
		return m.Unplaced[i].Text
	}
	p := m.Placed[i]
	return fmt.Sprintf("%-24s %3d", p.Text, p.FontSize)
}

func (m InspectModel) detail(p cloud.PlacedWord) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Color))).Render("■")
	return listDimStyle.Render(fmt.Sprintf("  %s %s  center (%.1f, %.1f)  box %.1f×%.1f",
		swatch, p.Color, p.Box.CenterX(), p.Box.CenterY(), p.Box.Width(), p.Box.Height()))
}
