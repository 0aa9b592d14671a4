package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/speedo/pkg/dashboard"
	"github.com/matzehuels/speedo/pkg/gauge"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GaugePickerModel - Interactive gauge selection for dashboard --pick
// =============================================================================

// GaugePickerModel is the bubbletea model for choosing which dashboard
// gauges to render. All gauges start selected.
type GaugePickerModel struct {
	Gauges    []dashboard.Gauge
	Cursor    int
	Chosen    []bool
	Confirmed bool
}

// NewGaugePickerModel creates a picker over gauges.
func NewGaugePickerModel(gauges []dashboard.Gauge) GaugePickerModel {
	chosen := make([]bool, len(gauges))
	for i := range chosen {
		chosen[i] = true
	}
	return GaugePickerModel{Gauges: gauges, Chosen: chosen}
}

// Selected returns the indices of the chosen gauges, or nil when the
// picker was cancelled.
func (m GaugePickerModel) Selected() []int {
	if !m.Confirmed {
		return nil
	}
	var out []int
	for i, ok := range m.Chosen {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (m GaugePickerModel) Init() tea.Cmd {
	return nil
}

func (m GaugePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Gauges)-1 {
			m.Cursor++
		}
	case " ", "x":
		if len(m.Chosen) > 0 {
			m.Chosen = toggled(m.Chosen, m.Cursor)
		}
	case "a":
		all := !allTrue(m.Chosen)
		chosen := make([]bool, len(m.Chosen))
		for i := range chosen {
			chosen[i] = all
		}
		m.Chosen = chosen
	case "enter":
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m GaugePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Gauges"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Gauges))
	for i, g := range m.Gauges {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := "[ ]"
		if m.Chosen[i] {
			check = "[x]"
		}
		title := g.Title
		if title == "" {
			title = "(untitled)"
		}
		rows[i] = []string{cursor, check, title, gauge.ValueLine(g.Value, g.Unit), fmt.Sprint(g.Max)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Gauge", "Value", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle()
			if row >= len(m.Gauges) {
				return base
			}
			if !m.Chosen[row] {
				base = base.Foreground(colorDim)
			} else if col == 1 {
				base = base.Foreground(colorGreen)
			}
			if row == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d selected", countTrue(m.Chosen), len(m.Gauges))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func toggled(chosen []bool, i int) []bool {
	out := append([]bool(nil), chosen...)
	out[i] = !out[i]
	return out
}

func allTrue(bs []bool) bool {
	return countTrue(bs) == len(bs)
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
