package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/core/catalog"
	"unitconv/core/types"
	"unitconv/core/ui"
	"unitconv/internal/config"
	"unitconv/internal/errors"
)

func newUnitsCommand() *cobra.Command {
	var family string

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the supported units",
		Long: `List every unit family with its units, abbreviations and aliases.

Units with regional variants show one ratio per variant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			families := c.Families()
			if family != "" {
				f, ok := c.Family(family)
				if !ok {
					return errors.Usage(fmt.Sprintf("unknown unit family %q", family))
				}
				families = []*types.Family{f}
			}

			out := cmd.OutOrStdout()
			w := ui.NewWriter(out, config.Get().Output.NoColor || !ui.IsTerminal(out))
			for i, f := range families {
				if i > 0 {
					w.Println("")
				}
				w.Header(f.Name)
				table := w.NewTable("UNIT", "ABBR", "ALIASES", "RULE")
				for _, u := range f.Units {
					table.AddRow(u.Name, u.Abbr, strings.Join(u.Aliases, ", "), describeRule(u))
				}
				table.Render()
			}
			return nil
		},
	}

	unitsCmd.Flags().StringVar(&family, "family", "", "only list one family (e.g. length, \"digital storage\")")
	return unitsCmd
}

// describeRule renders a unit's ratios, or "formula"
func describeRule(u *types.UnitDefinition) string {
	ratios, ok := u.Ratios()
	if !ok {
		return "formula"
	}
	parts := make([]string, len(ratios))
	for i, r := range ratios {
		value := fmt.Sprintf("%g", r.Value)
		if r.Variant != "" {
			value = r.Variant + " " + value
		}
		parts[i] = value
	}
	return strings.Join(parts, ", ")
}
