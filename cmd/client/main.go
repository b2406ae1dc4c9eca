package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"simplesocial/cmd/app"
	"simplesocial/internal/config"
	"simplesocial/internal/transform"
	"simplesocial/internal/ui"
)

var (
	verbose bool
	params  string
	caption string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "simplesocial",
	Short: "Terminal client for the Simple Social feed",
	Long: `simplesocial signs in to a Simple Social backend and lets you browse the
shared feed, post photos and videos, and delete your own posts.

The backend address comes from WEBSITE_BASE_URL (default localhost:8000).
Logs go to LOG_FILE so the terminal stays free for the interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// setting up config
		cfg = config.LoadConfig()

		var err error
		logger, err = app.Logger(cfg.Log, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var urlCmd = &cobra.Command{
	Use:   "url <media-url>",
	Short: "Print the display URL for a CDN media link",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	urlCmd.Flags().StringVar(&params, "params", "", "Transformation parameters, e.g. w-400,h-200")
	urlCmd.Flags().StringVar(&caption, "caption", "", "Caption rendered as a text overlay (overrides --params)")

	rootCmd.AddCommand(urlCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, _, services := app.App(cfg, logger)
	logger.Info("client started", zap.String("backend", cfg.Backend.BaseURL))

	p := tea.NewProgram(ui.NewModel(ctx, services, store), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface stopped: %w", err)
	}

	logger.Info("client stopped")
	return nil
}

func runURL(cmd *cobra.Command, args []string) error {
	displayURL, err := transform.BuildURL(args[0], params, caption)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), displayURL)
	return nil
}
