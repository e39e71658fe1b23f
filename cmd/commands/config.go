package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contribly/contribly-widget/internal/cli"
	"github.com/contribly/contribly-widget/pkg/api"
)

var (
	configToken   string
	configBaseURL string
	configOutput  string
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Fetch the widget configuration for a merchant token",
		Long: `Fetch the remote widget configuration and print it.

Examples:
  # Print the configuration as YAML
  contribly config

  # Print as JSON for a specific token
  contribly config --token wt_123 --base-url https://api.example.com -o json`,
		RunE: runConfig,
	}

	cmd.Flags().StringVar(&configToken, "token", "", "Widget token (defaults to $CONTRIBLY_TOKEN)")
	cmd.Flags().StringVar(&configBaseURL, "base-url", "", "API base URL (defaults to $CONTRIBLY_BASE_URL)")
	cmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "Output format (yaml, json)")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	token, baseURL, err := cli.Credentials(configToken, configBaseURL)
	if err != nil {
		return err
	}

	client := api.NewClient(baseURL, token, nil)
	cfg, err := client.FetchConfig(context.Background())
	if err != nil {
		return err
	}

	if !cfg.HasActiveProjects {
		fmt.Fprintln(os.Stderr, "Warning: this token has no active projects; the widget will refuse to render")
	}

	return cli.OutputResults(os.Stdout, configOutput, cfg)
}
