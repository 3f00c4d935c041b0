package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nursen/oriki/internal/server"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the quiz questions as served to the frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeStructured(cmd.OutOrStdout(), format, server.QuestionsPayload())
	},
}

func init() {
	questionsCmd.Flags().StringP("format", "o", "json", "Output format: json or yaml")
}
