package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hotpixel/thermoview/pkg/palette"
)

func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the built-in color palettes",
		Run: func(cmd *cobra.Command, args []string) {
			var names []string
			for name := range palette.Palettes {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(w, "Name\tColors")
			_, _ = fmt.Fprintln(w, "----\t------")
			for _, name := range names {
				_, _ = fmt.Fprintf(w, "%s\t%d\n", name, len(palette.Palettes[name]))
			}
			_ = w.Flush()
		},
	}
}
