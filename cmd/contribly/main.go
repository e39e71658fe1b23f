package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/contribly/contribly-widget/cmd/commands"
	"github.com/contribly/contribly-widget/internal/cli"
	"github.com/contribly/contribly-widget/pkg/widget"
	"github.com/contribly/contribly-widget/pkg/widget/mount"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "contribly",
	Short: "Embeddable contribution widget for terminal applications",
	Long:  `Contribly renders a payment-contribution widget for a merchant token: it fetches the remote configuration, shows preset and custom amounts, and submits card or mobile-money contributions to the backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.LoadEnv()
		token, baseURL, err := cli.Credentials("", "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		host := mount.Register(mount.DefaultHostID)
		w, err := widget.New(widget.Options{
			WidgetToken: token,
			BaseURL:     baseURL,
			Container:   host,
			OnContribution: func(ev widget.ContributionEvent) {
				// The demo has no UI of its own for this; real adapters
				// forward it to the host application.
			},
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p := tea.NewProgram(newDemoApp(w), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Contribly",
	Long:  `Display the current version of the Contribly CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Contribly version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewPayCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
