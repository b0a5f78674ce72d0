package cmd

import (
	"github.com/Rupesh023/Question-gen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qgen",
	Short: "Generate math question variations with an LLM",
	Long: "Qgen takes a set of base math questions and uses an LLM to produce fresh\n" +
		"variations of each one, rendered as a printable worksheet with a teacher\n" +
		"answer key or a student-facing copy.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides QGEN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest priority),
// then QGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
