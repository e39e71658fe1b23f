package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func newTestModal(t *testing.T) *MobileMoneyModal {
	t.Helper()
	m, err := NewMobileMoneyModal()
	assert.NoError(t, err)
	return m.(*MobileMoneyModal)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMobileMoneyModal_ShowResetsFields(t *testing.T) {
	m := newTestModal(t)

	m.Show(ModalShowOptions{Amount: 2, CurrencySymbol: "GH₵"})
	m.numberInput.SetValue("0240000000")
	m.anonymous = true
	m.providerIdx = 2

	m.Show(ModalShowOptions{Amount: 3, CurrencySymbol: "GH₵"})

	assert.True(t, m.Active())
	assert.Empty(t, m.numberInput.Value())
	assert.False(t, m.anonymous)
	assert.Equal(t, 0, m.providerIdx)
	assert.Equal(t, modalFocusNumber, m.focus)
}

func TestMobileMoneyModal_ProceedRequiresNumber(t *testing.T) {
	m := newTestModal(t)
	proceeded := false
	m.SetCallbacks(ModalCallbacks{
		OnProceed: func(MobileMoneyForm) tea.Cmd {
			proceeded = true
			return nil
		},
	})
	m.Show(ModalShowOptions{Amount: 2})

	m.Update(keyMsg("enter"))
	assert.False(t, proceeded, "proceed without a phone number is ignored")

	m.numberInput.SetValue("0240000000")
	m.Update(keyMsg("enter"))
	assert.True(t, proceeded)
}

func TestMobileMoneyModal_ProceedCarriesFinalValues(t *testing.T) {
	m := newTestModal(t)
	var got MobileMoneyForm
	m.SetCallbacks(ModalCallbacks{
		OnProceed: func(form MobileMoneyForm) tea.Cmd {
			got = form
			return nil
		},
	})
	m.Show(ModalShowOptions{Amount: 2})

	m.numberInput.SetValue(" 0240000000 ")
	m.nameInput.SetValue("Ama Mensah")
	m.providerIdx = 1
	m.anonymous = true

	m.Update(keyMsg("enter"))

	assert.Equal(t, MobileMoneyForm{
		Number:    "0240000000",
		Name:      "Ama Mensah",
		Provider:  "Vodafone",
		Anonymous: true,
	}, got)
}

func TestMobileMoneyModal_EscHidesAndNotifies(t *testing.T) {
	m := newTestModal(t)
	hidden := false
	m.SetCallbacks(ModalCallbacks{OnHide: func() { hidden = true }})
	m.Show(ModalShowOptions{Amount: 2})

	m.Update(keyMsg("esc"))

	assert.False(t, m.Active())
	assert.True(t, hidden)
}

func TestMobileMoneyModal_ProviderCycling(t *testing.T) {
	m := newTestModal(t)
	var notified []string
	m.SetCallbacks(ModalCallbacks{OnProviderChange: func(p string) { notified = append(notified, p) }})
	m.Show(ModalShowOptions{Amount: 2})

	m.setFocus(modalFocusProvider)

	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("left"))

	assert.Equal(t, []string{"Vodafone", "AirtelTigo", "MTN", "AirtelTigo"}, notified)
}

func TestMobileMoneyModal_AnonymousToggle(t *testing.T) {
	m := newTestModal(t)
	m.Show(ModalShowOptions{Amount: 2})
	m.setFocus(modalFocusAnonymous)

	m.Update(keyMsg(" "))
	assert.True(t, m.anonymous)

	m.Update(keyMsg(" "))
	assert.False(t, m.anonymous)
}

func TestMobileMoneyModal_ChangeNotifications(t *testing.T) {
	m := newTestModal(t)
	var numbers, names []string
	m.SetCallbacks(ModalCallbacks{
		OnNumberChange: func(s string) { numbers = append(numbers, s) },
		OnNameChange:   func(s string) { names = append(names, s) },
	})
	m.Show(ModalShowOptions{Amount: 2})

	m.Update(keyMsg("0"))
	m.Update(keyMsg("2"))
	m.setFocus(modalFocusName)
	m.Update(keyMsg("A"))

	assert.Equal(t, []string{"0", "02"}, numbers)
	assert.Equal(t, []string{"A"}, names)
}

func TestMobileMoneyModal_ViewOnlyWhenActive(t *testing.T) {
	m := newTestModal(t)
	assert.Empty(t, m.View())

	m.Show(ModalShowOptions{Amount: 2, CurrencySymbol: "GH₵"})
	view := m.View()
	assert.Contains(t, view, "Mobile Money")
	assert.Contains(t, view, "GH₵2.00")
}
