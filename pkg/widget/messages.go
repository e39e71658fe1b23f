package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contribly/contribly-widget/pkg/api"
)

// Label restore delays after a payment attempt resolves.
const (
	successRestoreDelay = 3 * time.Second
	errorRestoreDelay   = 4 * time.Second
)

// Messages produced by the widget's async commands. Ordering between these
// and user input is whatever the bubbletea queue delivers; every handler
// checks the instance's alive flag before touching render state.

type configLoadedMsg struct {
	cfg *api.Config
}

type configFailedMsg struct {
	err error
}

type cardLinkCreatedMsg struct {
	link   *api.PaymentLink
	amount float64
}

type cardLinkFailedMsg struct {
	err error
}

type mobileMoneyInitiatedMsg struct {
	payment *api.MobileMoneyPayment
	amount  float64
}

type mobileMoneyFailedMsg struct {
	err error
}

type restoreButtonMsg struct{}

func restoreButtonAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return restoreButtonMsg{}
	})
}
