package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jmaydwell1/eliteprep/internal/config"
	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/practice"
	"github.com/jmaydwell1/eliteprep/internal/wizard"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Log a practice session",
	Long: "Time a practice session and walk through the reflection flow: " +
		"practice type, per-shot reflections, session feedback, and takeaways.",
	RunE: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

func runPractice(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session := draft.NewSession()
	engine, err := wizard.NewEngine(session, wizard.StepHome)
	if err != nil {
		return err
	}

	// Enter the practice flow, then run until it routes back home.
	enter := wizard.Form{}
	enter.Set("action", "practice")
	if errs := engine.Submit(enter); len(errs) > 0 {
		return fmt.Errorf("could not start practice flow")
	}

	// The stopwatch ticks for as long as the flow is on screen and is torn
	// down with the command context when the flow ends.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watch := practice.NewStopwatch()
	watch.Start()
	go watch.Run(ctx)

	sessionID := practice.NewSessionID()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Practice session %s started.\n", sessionID)

	runner := newFlowRunner(cmd.InOrStdin(), out, newGateway(cfg), engine)
	if err := runner.run(ctx); err != nil {
		return err
	}

	watch.Stop()
	cancel()

	route := engine.Route()
	fmt.Fprintf(out, "\nSession complete in %s", practice.FormatElapsed(watch.Elapsed()))
	if route.Location != "" {
		fmt.Fprintf(out, " (%s)", route.Location)
	}
	fmt.Fprintln(out)

	if len(route.Reflections) > 0 {
		fmt.Fprintln(out, "Reflections:")
		keys := make([]string, 0, len(route.Reflections))
		for k := range route.Reflections {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %v\n", k, route.Reflections[k])
		}
	}
	return nil
}
