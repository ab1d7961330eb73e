package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"goods/internal/client"
	"goods/internal/dashboard"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		backendURL string
		timeout    time.Duration
		limit      int
		once       bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Browse goods and lock or unlock them",
		Long:          "Interactive terminal dashboard for the goods service: search, page through goods and toggle their lock status.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := dashboard.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if env := strings.TrimSpace(os.Getenv("BACKEND_URL")); env != "" {
				cfg.BackendURL = env
			}
			if cmd.Flags().Changed("backend-url") {
				cfg.BackendURL = backendURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if cmd.Flags().Changed("limit") {
				cfg.Limit = limit
			}
			if cfg.Limit < 1 || cfg.Limit > dashboard.MaxLimit {
				return fmt.Errorf("--limit must be between 1 and %d", dashboard.MaxLimit)
			}

			s := dashboard.NewSession(client.New(cfg.BackendURL, cfg.Timeout), cfg.Limit)
			s.Debug = debug

			if once {
				fetchErr := s.Fetch(cmd.Context())
				if err := dashboard.Render(cmd.OutOrStdout(), s); err != nil {
					return err
				}
				return fetchErr
			}
			return dashboard.Run(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&backendURL, "backend-url", "", "Base URL of the goods service (overrides config and BACKEND_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Per-request timeout")
	cmd.Flags().IntVar(&limit, "limit", dashboard.DefaultLimit, "Items per page (1-100)")
	cmd.Flags().BoolVar(&once, "once", false, "Render the first page and exit")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show response details")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show dashboard version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dashboard %s (%s)\n", version, commit)
			return nil
		},
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
