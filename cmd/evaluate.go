package cmd

import (
	"github.com/alexiusacademia/movload/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	evaluateSection  float64
	evaluatePosition float64
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Shear and bending moment at a section for one load position",
	Long: `Compute the shear force and bending moment at a section with
W1 at a given distance from support A and W2 at that distance
plus the spacing. A load beyond either support contributes nothing.

Examples:
  # Section at midspan, W1 at 2 m (W2 at 6 m)
  movload evaluate --span 10 --w1 3 --w2 1 --spacing 4 --section 5 --position 2`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().Float64VarP(&evaluateSection, "section", "s", 0, "Section distance from support A (m) [required]")
	evaluateCmd.Flags().Float64VarP(&evaluatePosition, "position", "a", 0, "Distance of W1 from support A (m) [required]")

	evaluateCmd.MarkFlagRequired("section")
	evaluateCmd.MarkFlagRequired("position")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, nil)
	if err != nil {
		return err
	}
	defer s.close()

	e := report.Evaluation{
		Section:  evaluateSection,
		Position: evaluatePosition,
		Shear:    s.problem.ShearAt(evaluateSection, evaluatePosition),
		Moment:   s.problem.BendingMomentAt(evaluateSection, evaluatePosition),
	}
	s.logger.Debug("evaluated load position",
		zap.Float64("section_m", e.Section),
		zap.Float64("w1_at_m", e.Position),
		zap.Float64("w2_at_m", e.Position+s.problem.Spacing()),
	)

	if outputJSON {
		return report.JSON(cmd.OutOrStdout(), e)
	}
	return report.Point(cmd.OutOrStdout(), e, s.cfg.Precision)
}
