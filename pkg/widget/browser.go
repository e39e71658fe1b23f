package widget

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// openPaymentURL hands the hosted payment page to the user: it launches the
// system browser and, when that is not possible (headless terminals, SSH
// sessions), copies the URL to the clipboard instead.
func openPaymentURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		if clipErr := clipboard.WriteAll(url); clipErr != nil {
			return fmt.Errorf("failed to open payment page: %w", err)
		}
		return nil
	}
	return nil
}
