package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmaydwell1/eliteprep/internal/config"
	"github.com/jmaydwell1/eliteprep/internal/gateway"
	"github.com/jmaydwell1/eliteprep/internal/readiness"
)

var statusJSONOutput bool

var statusCmd = &cobra.Command{
	Use:   "status <email>",
	Short: "Show readiness and per-trait averages",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false,
		"Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := newGateway(cfg)
	averages, err := client.PerformanceAverages(cmd.Context(), args[0])
	if err != nil {
		// A user with no check-ins yet is an expected state, not a failure.
		if errors.Is(err, gateway.ErrNoData) {
			fmt.Fprintln(cmd.OutOrStdout(), gateway.UserMessage(err))
			return nil
		}
		return fmt.Errorf("%s", gateway.UserMessage(err))
	}

	proj := readiness.Project(averages)

	if statusJSONOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"score":    proj.Score,
			"progress": proj.Progress,
			"traits": map[string]float64{
				"focus":      proj.Traits.Focus,
				"anxiety":    proj.Traits.Anxiety,
				"enjoyment":  proj.Traits.Enjoyment,
				"burnout":    proj.Traits.Burnout,
				"confidence": proj.Traits.Confidence,
			},
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Readiness: %d/10  %s\n\n", proj.Score, progressBar(proj.Progress))

	w := newTabWriter(out)
	fmt.Fprintln(w, "TRAIT\tAVERAGE")
	fmt.Fprintf(w, "Focus\t%.1f\n", proj.Traits.Focus)
	fmt.Fprintf(w, "Confidence\t%.1f\n", proj.Traits.Confidence)
	fmt.Fprintf(w, "Anxiety\t%.1f\n", proj.Traits.Anxiety)
	fmt.Fprintf(w, "Enjoyment\t%.1f\n", proj.Traits.Enjoyment)
	fmt.Fprintf(w, "Burnout\t%.1f\n", proj.Traits.Burnout)
	return w.Flush()
}

// progressBar renders the 0-1 progress fraction as a 20-cell bar.
func progressBar(progress float64) string {
	const cells = 20
	filled := int(progress * cells)
	if filled > cells {
		filled = cells
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
