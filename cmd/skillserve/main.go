package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillserve/skillserve/pkg/config"
	"github.com/skillserve/skillserve/pkg/logger"
	"github.com/skillserve/skillserve/pkg/presenter"
	"github.com/skillserve/skillserve/pkg/skills"
)

// envFileName is the optional repo-local env file applied before root
// resolution. Variables already set in the process environment win.
const envFileName = ".skillserve/env"

var rootCmd = &cobra.Command{
	Use:   "skillserve",
	Short: "Discover and serve agent skills",
	Long: `Skillserve discovers skills (directories containing a SKILL.md instruction
file) across configured search roots and serves them to AI agents over the
Model Context Protocol. It also provides CLI commands to list, read, install,
and diagnose skills, and to manage the scanned directories.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if level := viper.GetString("log_level"); level != "" {
			if err := logger.SetLogLevel(level); err != nil {
				presenter.Warning("Invalid log level: " + level)
			}
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}

		if err := config.LoadEnvFile(envFileName); err != nil {
			logger.G(cmd.Context()).WithError(err).Warn("failed to load env file")
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	viper.SetEnvPrefix("SKILLSERVE")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillserve")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

// effectiveRoots resolves the search roots from defaults, the persisted path
// list, and the environment. Store failures degrade to the default roots.
func effectiveRoots() []string {
	var stored []string
	if store, err := config.DefaultPathStore(); err == nil {
		if loaded, err := store.Load(); err == nil {
			stored = loaded
		} else {
			presenter.Warning("Stored skill paths could not be read: " + err.Error())
		}
	}
	return config.ResolveRoots(os.Getenv, stored)
}

func newScanner() *skills.Scanner {
	return skills.NewScanner()
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
