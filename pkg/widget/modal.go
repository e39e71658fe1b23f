package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MobileMoneyForm carries the values the modal collected for submission.
type MobileMoneyForm struct {
	Number    string
	Name      string
	Provider  string
	Anonymous bool
}

// ModalCallbacks is the contract the widget registers with the modal
// collaborator. Change notifications mirror the transient form state into the
// widget; OnProceed carries the final values; OnHide resets the transient
// state.
type ModalCallbacks struct {
	OnNameChange     func(string)
	OnNumberChange   func(string)
	OnProviderChange func(string)
	OnProceed        func(MobileMoneyForm) tea.Cmd
	OnHide           func()
}

// ModalShowOptions tells the modal what contribution it is collecting
// details for.
type ModalShowOptions struct {
	Amount         float64
	CurrencySymbol string
}

// Modal is the optional mobile-money collaborator. The widget treats it as an
// injected capability: when none can be resolved the mobile-money flow is
// disabled and everything else keeps working.
type Modal interface {
	Show(ModalShowOptions)
	Hide()
	SetCallbacks(ModalCallbacks)
	Active() bool
	Update(tea.Msg) tea.Cmd
	View() string
}

// ModalFactory resolves a Modal at widget construction time.
type ModalFactory func() (Modal, error)

// Providers the built-in modal cycles through.
var mobileMoneyProviders = []string{"MTN", "Vodafone", "AirtelTigo"}

// modal focus targets
const (
	modalFocusNumber = iota
	modalFocusName
	modalFocusProvider
	modalFocusAnonymous
	modalFocusCount
)

// MobileMoneyModal is the built-in terminal implementation of the Modal
// contract: phone number and name inputs, a provider selector, and an
// anonymous toggle.
type MobileMoneyModal struct {
	active      bool
	callbacks   ModalCallbacks
	show        ModalShowOptions
	numberInput textinput.Model
	nameInput   textinput.Model
	providerIdx int
	anonymous   bool
	focus       int
}

// NewMobileMoneyModal creates the built-in modal. It is the factory used when
// Options.Modal is nil.
func NewMobileMoneyModal() (Modal, error) {
	number := textinput.New()
	number.Placeholder = "024 000 0000"
	number.CharLimit = 15
	number.Width = 24

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 60
	name.Width = 24

	return &MobileMoneyModal{
		numberInput: number,
		nameInput:   name,
	}, nil
}

// Show activates the modal for the given contribution and resets its fields.
func (m *MobileMoneyModal) Show(opts ModalShowOptions) {
	m.active = true
	m.show = opts
	m.focus = modalFocusNumber
	m.providerIdx = 0
	m.anonymous = false
	m.numberInput.SetValue("")
	m.nameInput.SetValue("")
	m.numberInput.Focus()
	m.nameInput.Blur()
}

// Hide deactivates the modal and notifies the widget so transient form state
// resets.
func (m *MobileMoneyModal) Hide() {
	if !m.active {
		return
	}
	m.active = false
	m.numberInput.Blur()
	m.nameInput.Blur()
	if m.callbacks.OnHide != nil {
		m.callbacks.OnHide()
	}
}

// SetCallbacks registers the widget's callback contract.
func (m *MobileMoneyModal) SetCallbacks(cb ModalCallbacks) {
	m.callbacks = cb
}

// Active returns whether the modal is currently shown.
func (m *MobileMoneyModal) Active() bool {
	return m.active
}

func (m *MobileMoneyModal) form() MobileMoneyForm {
	return MobileMoneyForm{
		Number:    strings.TrimSpace(m.numberInput.Value()),
		Name:      strings.TrimSpace(m.nameInput.Value()),
		Provider:  mobileMoneyProviders[m.providerIdx],
		Anonymous: m.anonymous,
	}
}

func (m *MobileMoneyModal) setFocus(focus int) {
	m.focus = focus
	m.numberInput.Blur()
	m.nameInput.Blur()
	switch focus {
	case modalFocusNumber:
		m.numberInput.Focus()
	case modalFocusName:
		m.nameInput.Focus()
	}
}

// Update handles input while the modal is active.
func (m *MobileMoneyModal) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		m.Hide()
		return nil

	case "enter":
		form := m.form()
		if form.Number == "" {
			return nil
		}
		if m.callbacks.OnProceed != nil {
			return m.callbacks.OnProceed(form)
		}
		return nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % modalFocusCount)
		return nil

	case "shift+tab", "up":
		m.setFocus((m.focus + modalFocusCount - 1) % modalFocusCount)
		return nil
	}

	switch m.focus {
	case modalFocusNumber:
		var cmd tea.Cmd
		m.numberInput, cmd = m.numberInput.Update(msg)
		if m.callbacks.OnNumberChange != nil {
			m.callbacks.OnNumberChange(m.numberInput.Value())
		}
		return cmd

	case modalFocusName:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		if m.callbacks.OnNameChange != nil {
			m.callbacks.OnNameChange(m.nameInput.Value())
		}
		return cmd

	case modalFocusProvider:
		switch keyMsg.String() {
		case "left", "h":
			m.providerIdx = (m.providerIdx + len(mobileMoneyProviders) - 1) % len(mobileMoneyProviders)
		case "right", "l", " ":
			m.providerIdx = (m.providerIdx + 1) % len(mobileMoneyProviders)
		default:
			return nil
		}
		if m.callbacks.OnProviderChange != nil {
			m.callbacks.OnProviderChange(mobileMoneyProviders[m.providerIdx])
		}
		return nil

	case modalFocusAnonymous:
		if keyMsg.String() == " " {
			m.anonymous = !m.anonymous
		}
		return nil
	}

	return nil
}

// View renders the modal dialog.
func (m *MobileMoneyModal) View() string {
	if !m.active {
		return ""
	}

	label := func(focus int, text string) string {
		if m.focus == focus {
			return ModalFocusedLabelStyle.Render("> " + text)
		}
		return ModalLabelStyle.Render("  " + text)
	}

	anonymousBox := "[ ]"
	if m.anonymous {
		anonymousBox = "[x]"
	}

	var content strings.Builder
	content.WriteString(ModalTitleStyle.Render("Mobile Money"))
	content.WriteString("\n")
	content.WriteString(ModalLabelStyle.Render("Contributing " + FormatAmount(m.show.CurrencySymbol, m.show.Amount)))
	content.WriteString("\n\n")
	content.WriteString(label(modalFocusNumber, "Phone number"))
	content.WriteString("\n")
	content.WriteString("  " + m.numberInput.View())
	content.WriteString("\n")
	content.WriteString(label(modalFocusName, "Name"))
	content.WriteString("\n")
	content.WriteString("  " + m.nameInput.View())
	content.WriteString("\n")
	content.WriteString(label(modalFocusProvider, "Provider: ← "+mobileMoneyProviders[m.providerIdx]+" →"))
	content.WriteString("\n")
	content.WriteString(label(modalFocusAnonymous, anonymousBox+" Contribute anonymously"))
	content.WriteString("\n\n")
	content.WriteString(ModalHelpStyle.Render("enter proceed • tab next field • esc cancel"))

	return ModalBorderStyle.Render(lipgloss.NewStyle().Width(40).Render(content.String()))
}
