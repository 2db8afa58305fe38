package cmd

import (
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	quizCmd.Flags().String("style", "visual", "Question phrasing style: visual or auditory")
}
