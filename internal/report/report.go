// Package report renders moving load results as text tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/movload/internal/movingload"
)

// Analysis writes the full envelope report for a summary. Values are printed
// with the given number of decimal places.
func Analysis(w io.Writer, s movingload.Summary, precision int) error {
	var sb strings.Builder

	sb.WriteString(header("SIMPLY SUPPORTED BEAM - TWO MOVING POINT LOADS"))

	sb.WriteString(section("INPUT DATA"))
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Span (L):\t%.*f m\n", precision, s.Span)
	fmt.Fprintf(tw, "  Leading load (W1):\t%.*f N\n", precision, s.W1)
	fmt.Fprintf(tw, "  Trailing load (W2):\t%.*f N\n", precision, s.W2)
	fmt.Fprintf(tw, "  Spacing (x):\t%.*f m", precision, s.Spacing)
	if s.Valid {
		fmt.Fprintf(tw, " ✓")
	} else {
		fmt.Fprintf(tw, " ⚠ (x ≥ L)")
	}
	fmt.Fprintln(tw)
	tw.Flush()
	sb.WriteString("\n")

	sb.WriteString(section("SUPPORT REACTIONS"))
	tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Maximum reaction at A:\t%.*f N\n", precision, s.MaxReactionA)
	fmt.Fprintf(tw, "  Maximum reaction at B:\t%.*f N\n", precision, s.MaxReactionB)
	tw.Flush()
	sb.WriteString("\n")

	sb.WriteString(section("MIDSPAN"))
	tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Bending moment:\t%.*f N·m\n", precision, s.MidspanBendingMoment)
	fmt.Fprintf(tw, "  Shear force:\t%.*f N\n", precision, s.MidspanShear)
	tw.Flush()
	sb.WriteString("\n")

	sb.WriteString(section("CRITICAL POINTS (BENDING MOMENT)"))
	tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tSection (m)\tW1 at (m)\tM (N·m)\n")
	fmt.Fprintf(tw, "  ─\t───────────\t─────────\t───────\n")
	for _, cp := range s.CriticalPoints {
		marker := ""
		if cp.Index == s.GoverningPoint {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(tw, "  %d\t%.*f\t%.*f\t%.*f%s\n",
			cp.Index, precision, cp.Section, precision, cp.Position, precision, cp.Moment, marker)
	}
	tw.Flush()
	sb.WriteString("\n")

	sb.WriteString(SummaryBox("ENVELOPE", []string{
		fmt.Sprintf("Max shear force   = %.*f N at %.*f m from A", precision, s.MaxShear, precision, s.MaxShearPosition),
		fmt.Sprintf("Max bending moment = %.*f N·m at %.*f m from A", precision, s.MaxMoment, precision, s.MaxMomentPosition),
	}))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Influence writes the unit influence ordinates at a section.
func Influence(w io.Writer, sectionAt float64, rows []movingload.InfluenceOrdinate, precision int) error {
	var sb strings.Builder

	sb.WriteString(header(fmt.Sprintf("INFLUENCE LINES AT %.*f m FROM A", precision, sectionAt)))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Unit load at (m)\tShear\tMoment (m)\n")
	fmt.Fprintf(tw, "  ────────────────\t─────\t──────────\n")
	for _, row := range rows {
		fmt.Fprintf(tw, "  %.*f\t%.*f\t%.*f\n", precision, row.Position, precision, row.Shear, precision, row.Moment)
	}
	tw.Flush()
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Evaluation is the response at one section for one position of the load pair.
type Evaluation struct {
	Section  float64 `json:"section_m"`
	Position float64 `json:"position_m"`
	Shear    float64 `json:"shear_n"`
	Moment   float64 `json:"moment_nm"`
}

// Point writes the shear and moment of a single evaluation.
func Point(w io.Writer, e Evaluation, precision int) error {
	var sb strings.Builder

	sb.WriteString(section("RESPONSE"))
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Section:\t%.*f m from A\n", precision, e.Section)
	fmt.Fprintf(tw, "  W1 position:\t%.*f m from A\n", precision, e.Position)
	fmt.Fprintf(tw, "  Shear force:\t%.*f N\n", precision, e.Shear)
	fmt.Fprintf(tw, "  Bending moment:\t%.*f N·m\n", precision, e.Moment)
	tw.Flush()
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
