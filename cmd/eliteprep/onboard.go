package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmaydwell1/eliteprep/internal/config"
	"github.com/jmaydwell1/eliteprep/internal/draft"
	"github.com/jmaydwell1/eliteprep/internal/wizard"
)

var onboardLogin bool

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Walk through the onboarding flow",
	Long: "Register (or sign in with --login), build your profile step by step, " +
		"and submit your baseline questionnaire.",
	RunE: runOnboard,
}

func init() {
	onboardCmd.Flags().BoolVar(&onboardLogin, "login", false,
		"Sign in to an existing account instead of registering")
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	start := wizard.StepCreateAccount
	if onboardLogin {
		start = wizard.StepLogin
	}

	session := draft.NewSession()
	engine, err := wizard.NewEngine(session, start)
	if err != nil {
		return err
	}

	runner := newFlowRunner(cmd.InOrStdin(), cmd.OutOrStdout(), newGateway(cfg), engine)
	if err := runner.run(cmd.Context()); err != nil {
		return err
	}

	d := session.Draft()
	fmt.Fprintf(cmd.OutOrStdout(), "\nYou're all set, %s. Run %q to see your readiness.\n",
		displayName(d), "eliteprep status "+d.Email)
	return nil
}

func displayName(d draft.Draft) string {
	if d.Name != "" {
		return d.Name
	}
	return d.Email
}
