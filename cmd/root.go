package cmd

import (
	"context"
	"fmt"
	"os"

	"squire/pkg/config"
	"squire/pkg/log"
	"squire/pkg/prompt"
	"squire/pkg/session"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	logger   log.Logger
	prompter prompt.Prompter = prompt.New()
	rootCmd                  = &cobra.Command{
		Use:   "squire",
		Short: "squire greets you and squares a number",
		Long: `An interactive session: squire asks for your name, greets you,
then asks for a number and prints its square.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
			}
			level, err := log.ParseLevel(settings.LogLevel)
			if err != nil {
				return err
			}
			writer := cmd.ErrOrStderr()
			logger = log.NewSlogLogger(level, settings.LogFormat, writer)
			ctx := context.WithValue(cmd.Context(), "logger", logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cmd.Context().Value("logger").(log.Logger)
			sess := session.New(prompter, cmd.OutOrStdout(), logger)
			return sess.Run()
		},
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./squire.yaml", "settings file (default is ./squire.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
