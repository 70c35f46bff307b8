package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/movload/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "movload",
	Short: "Moving load envelope tool for simply supported beams",
	Long: `movload - Two Moving Point Loads on a Simply Supported Beam

A CLI tool that uses influence lines to compute envelope values
for two point loads travelling together at a fixed spacing
(Hibbeler, Structural Analysis, section 6.6).

This tool computes:
  - Maximum reactions at supports A and B
  - Governing bending moment and shear at midspan
  - Maximum shear force and where it occurs
  - Absolute maximum bending moment and where it occurs
  - Influence line ordinates at any section

Loads are entered in kN and reported in N; lengths are in m.

Inputs can also come from a YAML file (--config) or from
MOVLOAD_SPAN, MOVLOAD_W1, MOVLOAD_W2 and MOVLOAD_SPACING.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   movload v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Moving Load Envelopes for Simply Supported Beams        ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Influence line analysis of two point loads moving together")
		fmt.Fprintln(out, "  across a simply supported span.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Commands:")
		fmt.Fprintln(out, "    • analyze    envelope reactions, shear and bending moment")
		fmt.Fprintln(out, "    • influence  influence line ordinates at a section")
		fmt.Fprintln(out, "    • evaluate   shear and moment for one load position")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'movload --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Problem inputs shared by every subcommand
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to YAML configuration file")
	flags.Float64VarP(&inputSpan, "span", "L", 0, "Beam span L (m)")
	flags.Float64Var(&inputW1, "w1", 0, "Leading load W1 (kN)")
	flags.Float64Var(&inputW2, "w2", 0, "Trailing load W2 (kN)")
	flags.Float64VarP(&inputSpacing, "spacing", "x", 0, "Spacing x between the loads (m)")

	// Options
	flags.IntVarP(&outputPrecision, "precision", "p", 2, "Decimal places in reports")
	flags.BoolVar(&strictSpacing, "strict", false, "Reject a spacing equal to or longer than the span")
	flags.BoolVar(&outputJSON, "json", false, "Print results as JSON")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
}
