package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glassquiz/glassquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "glassquiz",
	Short:        "Terminal quiz with a glassy look",
	Long:         "GlassQuiz: pick a topic, answer four-option questions, review your mistakes and climb the session ranking.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("catalog", "", "Catalog file: .yaml, .db or .xlsx (overrides "+config.EnvCatalog+")")
	flags.String("log-file", "", "Write logs to this file (overrides "+config.EnvLogFile+")")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	flags.Bool("no-sound", false, "Disable the answer bell (overrides "+config.EnvSound+")")
}

// resolveConfig layers command-line flags (highest priority) over
// GLASSQUIZ_* env vars over the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if p, _ := flags.GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := flags.GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if off, _ := flags.GetBool("no-sound"); off {
		cfg.Sound = false
	}
	return cfg, nil
}
