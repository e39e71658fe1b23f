package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/contribly/contribly-widget/internal/cli"
	"github.com/contribly/contribly-widget/pkg/api"
)

var (
	payToken   string
	payBaseURL string
	payNoCopy  bool
)

// NewPayCommand creates the pay command
func NewPayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay <amount>",
		Short: "Create a card payment link for an amount",
		Long: `Create a hosted card payment link for the given contribution amount
and copy it to the clipboard.

Examples:
  # Create a link for 5.00
  contribly pay 5

  # Create a link without touching the clipboard
  contribly pay 2.50 --no-copy`,
		Args: cobra.ExactArgs(1),
		RunE: runPay,
	}

	cmd.Flags().StringVar(&payToken, "token", "", "Widget token (defaults to $CONTRIBLY_TOKEN)")
	cmd.Flags().StringVar(&payBaseURL, "base-url", "", "API base URL (defaults to $CONTRIBLY_BASE_URL)")
	cmd.Flags().BoolVar(&payNoCopy, "no-copy", false, "Do not copy the payment URL to the clipboard")

	return cmd
}

func runPay(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	token, baseURL, err := cli.Credentials(payToken, payBaseURL)
	if err != nil {
		return err
	}

	client := api.NewClient(baseURL, token, nil)
	link, err := client.CreatePaymentLink(context.Background(), amount)
	if err != nil {
		return err
	}

	fmt.Println(link.PaymentURL)
	if link.ProjectName != "" {
		fmt.Fprintf(os.Stderr, "Supporting: %s\n", link.ProjectName)
	}

	if !payNoCopy {
		if err := clipboard.WriteAll(link.PaymentURL); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "✓ Payment URL copied to clipboard")
		}
	}
	return nil
}
