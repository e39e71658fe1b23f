package widget

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contribly/contribly-widget/pkg/api"
)

// Both payment flows share one shape: mark Processing, relabel the control,
// issue a single request, branch on the outcome. The processing guard is
// enforced by submitContribution, not here.

const labelProcessing = "Processing..."

// startCardFlow requests a hosted card payment page for the amount.
func (w *Widget) startCardFlow(amount float64) tea.Cmd {
	w.isProcessing = true
	w.setButtonOverride(labelProcessing, buttonProcessing)

	client := w.client
	return func() tea.Msg {
		link, err := client.CreatePaymentLink(context.Background(), amount)
		if err != nil {
			return cardLinkFailedMsg{err: err}
		}
		return cardLinkCreatedMsg{link: link, amount: amount}
	}
}

func (w *Widget) handleCardSuccess(msg cardLinkCreatedMsg) tea.Cmd {
	w.isProcessing = false
	if !w.alive {
		return nil
	}

	if err := openPaymentURL(msg.link.PaymentURL); err != nil {
		log.Printf("contribly: %v", err)
	}

	project := msg.link.ProjectName
	if project == "" {
		project = w.config.ProjectName
	}
	w.opts.OnContribution(ContributionEvent{
		Amount:      msg.amount,
		Currency:    w.config.Currency,
		PaymentURL:  msg.link.PaymentURL,
		ProjectName: project,
	})

	w.setButtonOverride("✓ Thank you!", buttonSuccess)
	return restoreButtonAfter(successRestoreDelay)
}

// handleModalProceed is the modal's proceed callback: hide the modal, then
// initiate the mobile-money payment with the collected form values.
func (w *Widget) handleModalProceed(form MobileMoneyForm) tea.Cmd {
	if w.modal != nil {
		w.modal.Hide()
	}
	if w.isProcessing {
		return nil
	}

	amount := w.currentAmount()
	w.isProcessing = true
	w.setButtonOverride(labelProcessing, buttonProcessing)

	req := api.MobileMoneyRequest{
		Amount:         amount,
		MobileNumber:   form.Number,
		MobileProvider: form.Provider,
	}
	if !form.Anonymous && form.Name != "" {
		name := form.Name
		req.CustomerName = &name
	}

	client := w.client
	return func() tea.Msg {
		payment, err := client.InitiateMobileMoneyPayment(context.Background(), req)
		if err != nil {
			return mobileMoneyFailedMsg{err: err}
		}
		return mobileMoneyInitiatedMsg{payment: payment, amount: amount}
	}
}

func (w *Widget) handleMobileMoneySuccess(msg mobileMoneyInitiatedMsg) tea.Cmd {
	w.isProcessing = false
	if !w.alive {
		return nil
	}

	w.opts.OnContribution(ContributionEvent{
		Amount:       msg.amount,
		Currency:     w.config.Currency,
		PaymentToken: msg.payment.PaymentToken,
	})

	// The control keeps the processing label here; the payment resolves out
	// of band on the provider side.
	return nil
}

// handlePaymentFailure is shared by both flows: surface the error, show the
// failure label, restore the live amount label after the fixed delay.
func (w *Widget) handlePaymentFailure(err error) tea.Cmd {
	w.isProcessing = false
	if !w.alive {
		return nil
	}

	w.opts.OnError(err)
	w.setButtonOverride("× Payment failed", buttonError)
	return restoreButtonAfter(errorRestoreDelay)
}
