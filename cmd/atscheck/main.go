package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "atscheck",
	Short:        "Score a resume against a job description with Gemini",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newAnalyzeCmd(), newPromptCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
