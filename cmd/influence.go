package cmd

import (
	"github.com/alexiusacademia/movload/internal/config"
	"github.com/alexiusacademia/movload/internal/report"
	"github.com/spf13/cobra"
)

var (
	influenceSection float64
	influenceSteps   int
)

var influenceCmd = &cobra.Command{
	Use:   "influence",
	Short: "Tabulate shear and moment influence lines at a section",
	Long: `Tabulate the influence line ordinates for shear and bending
moment at a section, for a unit load placed at evenly spaced
positions from support A to support B.

Shear jumps by 1 at the section; the table reports the value
with the load just past the section.

Examples:
  # Section 4 m from A on a 10 m span, every 1 m
  movload influence --span 10 --w1 3 --w2 1 --spacing 4 --section 4

  # Finer table
  movload influence -L 10 --w1 3 --w2 1 -x 4 -s 4 --steps 40`,
	RunE: runInfluence,
}

func init() {
	rootCmd.AddCommand(influenceCmd)

	influenceCmd.Flags().Float64VarP(&influenceSection, "section", "s", 0, "Section distance from support A (m) [required]")
	influenceCmd.Flags().IntVarP(&influenceSteps, "steps", "n", 10, "Number of intervals between A and B")

	influenceCmd.MarkFlagRequired("section")
}

func runInfluence(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, func(o *config.CLIOverrides) {
		if cmd.Flags().Changed("steps") {
			o.Steps = &influenceSteps
		}
	})
	if err != nil {
		return err
	}
	defer s.close()

	rows, err := s.problem.InfluenceTable(influenceSection, s.cfg.Steps)
	if err != nil {
		return err
	}

	if outputJSON {
		return report.JSON(cmd.OutOrStdout(), rows)
	}
	return report.Influence(cmd.OutOrStdout(), influenceSection, rows, s.cfg.Precision)
}
