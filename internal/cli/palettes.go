package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/speedo/pkg/colors"
	"github.com/matzehuels/speedo/pkg/gauge"
)

// swatchWidth is the number of cells in a palette preview.
const swatchWidth = 24

// palettesCommand creates the palettes command listing gradient ramps.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List gradient palettes and themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := palettesTable()
			if err != nil {
				return err
			}
			fmt.Println(out)
			printNewline()
			printKeyValue("themes", strings.Join(gauge.ThemeNames(), ", "))
			return nil
		},
	}
}

// palettesTable renders one row per palette with a color preview.
func palettesTable() (string, error) {
	var rows [][]string
	for _, name := range colors.Names() {
		ramp, err := colors.Lookup(name)
		if err != nil {
			return "", err
		}
		def := ""
		if name == colors.DefaultRamp {
			def = iconSuccess
		}
		rows = append(rows, []string{name, swatch(ramp), fmt.Sprint(ramp.Stops()), def})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Palette", "Preview", "Stops", "Default").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return styleIconSuccess
			}
			return lipgloss.NewStyle()
		})
	return t.Render(), nil
}

// swatch samples a palette into a row of colored blocks.
func swatch(p gauge.Palette) string {
	var b strings.Builder
	for i := range swatchWidth {
		c := p.At(float64(i) / float64(swatchWidth-1))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Hex(c))).Render("█"))
	}
	return b.String()
}
