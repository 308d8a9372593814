package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harrisonrobin/habitick/pkg/api"
	"github.com/harrisonrobin/habitick/pkg/config"
	"github.com/harrisonrobin/habitick/pkg/report"
	"github.com/harrisonrobin/habitick/pkg/session"
	"github.com/harrisonrobin/habitick/pkg/snapshot"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "habitick",
	Short: "Habitica from the terminal",
	Long: `habitick pulls your Habitica tasks, buckets them by type and status,
and shows the damage your due dailies will cause at the next cron.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch, categorize and display your tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		result, err := s.Categorize(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(report.Render(result))
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Categorize and write the result as JSON to the snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		result, err := s.Categorize(cmd.Context())
		if err != nil {
			return err
		}

		snap, err := snapshot.New()
		if err != nil {
			return fmt.Errorf("failed to open snapshot: %w", err)
		}
		snap.Record(result, time.Now())
		if err := snap.Save(); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		fmt.Printf("Snapshot written to %s\n", snap.Path)
		return nil
	},
}

var (
	loginUser  string
	loginToken string
	loginURL   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your user ID and API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &config.Config{UserID: loginUser, APIToken: loginToken, BaseURL: loginURL}
		if !cfg.Credentials().Valid() {
			return fmt.Errorf("both --user and --token are required")
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		path, _ := config.GetConfigPath()
		fmt.Printf("Credentials saved to %s\n", path)
		return nil
	},
}

func newSession() (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	creds := cfg.Credentials()
	if !creds.Valid() {
		return nil, fmt.Errorf("no credentials: run 'habitick login' or set HABITICA_USER_ID and HABITICA_API_TOKEN")
	}

	client, err := api.New(cfg.BaseURL, creds, api.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return session.New(client, logger), nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	loginCmd.Flags().StringVar(&loginUser, "user", "", "Habitica user ID")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Habitica API token")
	loginCmd.Flags().StringVar(&loginURL, "url", "", "API root (defaults to production)")

	rootCmd.AddCommand(statusCmd, dumpCmd, loginCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
