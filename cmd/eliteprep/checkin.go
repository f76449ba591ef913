package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmaydwell1/eliteprep/internal/config"
	"github.com/jmaydwell1/eliteprep/internal/gateway"
)

var checkinAnswers gateway.SliderAnswers

var checkinCmd = &cobra.Command{
	Use:   "checkin <email>",
	Short: "Submit a performance check-in",
	Long: "Record today's slider readings for the account. Values are 0-10 " +
		"and are rounded to whole numbers before submission.",
	Args: cobra.ExactArgs(1),
	RunE: runCheckin,
}

func init() {
	checkinCmd.Flags().Float64Var(&checkinAnswers.Focus, "focus", 5, "Focus (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Confidence, "confidence", 5, "Confidence (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Anxiety, "anxiety", 5, "Anxiety (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Enjoyment, "enjoyment", 5, "Enjoyment (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Burnout, "burnout", 5, "Burnout (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Effort, "effort", 5, "Effort (0-10)")
	checkinCmd.Flags().Float64Var(&checkinAnswers.Motivation, "motivation", 5, "Motivation (0-10)")
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := newGateway(cfg)
	ack, err := client.SubmitQuestionnaire(cmd.Context(), args[0], checkinAnswers)
	if err != nil {
		return fmt.Errorf("%s", gateway.UserMessage(err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), ack.Message)
	return nil
}
