package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcast/pkg/cloud"
	"github.com/matzehuels/wordcast/pkg/pipeline"
)

// layoutCommand creates the layout command for printing a computed layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var f optionFlags

	cmd := &cobra.Command{
		Use:   "layout [words-file]",
		Short: "Compute a layout and print the placement as a table",
		Long: `Compute a layout and print the placement as a table.

Each placed word is listed in placement order with its font size, color
and center position. Words that found no free spot are listed below the
table. Nothing is written to disk; use 'render -f json' for a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			res, err := c.computeLayout(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			printLayout(res)
			return nil
		},
	}

	addLayoutFlags(cmd, &f)
	return cmd
}

// computeLayout loads the words file and runs the placement engine.
func (c *CLI) computeLayout(ctx context.Context, input string, opts pipeline.Options) (cloud.Result, error) {
	logger := loggerFromContext(ctx)

	words, err := readWords(input)
	if err != nil {
		return cloud.Result{}, fmt.Errorf("load words %s: %w", input, err)
	}

	prog := newProgress(logger)
	res, err := c.newRunner().Layout(ctx, words, opts)
	if err != nil {
		return cloud.Result{}, fmt.Errorf("layout: %w", err)
	}
	prog.done(fmt.Sprintf("Placed %d of %d words", len(res.Placed), len(words)))
	return res, nil
}

// layoutRows formats placed words as table rows.
func layoutRows(res cloud.Result) [][]string {
	rows := make([][]string, 0, len(res.Placed))
	for i, p := range res.Placed {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Text,
			strconv.Itoa(p.FontSize),
			string(p.Color),
			fmt.Sprintf("(%.1f, %.1f)", p.Box.CenterX(), p.Box.CenterY()),
		})
	}
	return rows
}

func printLayout(res cloud.Result) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := layoutRows(res)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Word", "Size", "Color", "Center").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0, 2:
				return base.Foreground(colorDim).Align(lipgloss.Right)
			case 3:
				if row < len(rows) {
					return base.Foreground(lipgloss.Color(rows[row][3]))
				}
			}
			return base
		})

	fmt.Println(t.Render())

	if len(res.Unplaced) > 0 {
		printWarning("%d words did not fit", len(res.Unplaced))
		for _, w := range res.Unplaced {
			printDetail("%s", w.Text)
		}
	}
	if res.BudgetExhausted {
		printWarning("evaluation budget exhausted after %d candidates", res.Evaluations)
	}
}
