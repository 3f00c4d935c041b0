package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nursen/oriki/internal/config"
	"github.com/nursen/oriki/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "oriki",
	Short: "Personalized praise poetry and affirmations",
	Long: "Oriki turns a short values quiz into a praise poem in a chosen cultural style, " +
		"paired with daily affirmations.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default ./oriki.yaml if present)")
	pf.String("env-file", "", "Path to .env file (default ./.env if present)")
	pf.String("db", "", "Path to SQLite database file (overrides ORIKI_DB env var)")
	pf.String("provider", "", "LLM provider: openai, anthropic, gemini, openrouter or mock")
	pf.String("log-mode", "", "Log mode: development or production")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration with the command's flags bound over
// file and environment values.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(config.LoadOptions{
		ConfigFile: cfgFile,
		EnvFile:    envFile,
		Flags:      cmd.Flags(),
	})
}

// resolveDBPath returns the database path using --db or store.path
// (highest priority), then ORIKI_DB env var, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
