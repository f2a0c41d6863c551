package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fontsCommand creates the fonts command listing available font families.
func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the embedded font families",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, family := range c.Fonts.Families() {
				data, err := c.Fonts.Lookup(family)
				if err != nil {
					return err
				}
				printKeyValue(family, fmt.Sprintf("%d KiB", len(data)/1024))
			}
			return nil
		},
	}
}
