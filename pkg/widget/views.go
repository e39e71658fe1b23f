package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// buttonMode selects how the contribute control renders.
type buttonMode int

const (
	buttonEnabled buttonMode = iota
	buttonDisabled
	buttonProcessing
	buttonSuccess
	buttonError
)

// viewState is a snapshot of everything the views need. Rendering is pure:
// the state machine builds a snapshot, the views turn it into text.
type viewState struct {
	projectName    string
	currencySymbol string
	amounts        []float64
	selectedAmount float64
	isCustom       bool
	customInput    string
	buttonLabel    string
	buttonMode     buttonMode
	width          int
}

const defaultViewWidth = 44

func viewWidth(w int) int {
	if w <= 0 {
		return defaultViewWidth
	}
	return w
}

// renderLoading is the view shown between mount and config arrival.
func renderLoading() string {
	return WidgetBorderStyle.Render(LoadingStyle.Render("Loading contribution widget..."))
}

// renderErrorPanel is the view for configuration failures and the terminal
// no-active-projects state.
func renderErrorPanel(message string, width int) string {
	wrapped := wordwrap.String(message, viewWidth(width)-8)
	return ErrorPanelStyle.Render(wrapped)
}

// renderAmountRow renders the preset amounts, highlighting the selected one
// unless a custom amount is active.
func renderAmountRow(vs viewState) string {
	cells := make([]string, 0, len(vs.amounts))
	for _, amount := range vs.amounts {
		label := FormatAmount(vs.currencySymbol, amount)
		if !vs.isCustom && amount == vs.selectedAmount {
			cells = append(cells, AmountSelectedStyle.Render(label))
		} else {
			cells = append(cells, AmountStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderButton renders the contribute control for the given mode.
func renderButton(label string, mode buttonMode) string {
	switch mode {
	case buttonDisabled, buttonProcessing:
		return ContributeDisabledStyle.Render(label)
	case buttonSuccess:
		return ContributeSuccessStyle.Render(label)
	case buttonError:
		return ContributeErrorStyle.Render(label)
	default:
		return ContributeEnabledStyle.Render(label)
	}
}

// renderControls renders just the amount-dependent section: preset row,
// custom input, contribute button. Selection changes refresh only this part.
func renderControls(vs viewState) string {
	var b strings.Builder
	b.WriteString(renderAmountRow(vs))
	b.WriteString("\n")
	b.WriteString(CustomInputLabelStyle.Render("Custom: "))
	b.WriteString(vs.customInput)
	b.WriteString("\n\n")
	b.WriteString(renderButton(vs.buttonLabel, vs.buttonMode))
	return b.String()
}

// renderHeader renders the static header. Recomputed only on full renders.
func renderHeader(vs viewState) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Make a contribution"))
	if vs.projectName != "" {
		b.WriteString("\n")
		b.WriteString(ProjectStyle.Render("Supporting " + vs.projectName))
	}
	return b.String()
}

// renderFooter renders the static footer.
func renderFooter() string {
	return FooterStyle.Render("Powered by Contribly")
}

// renderInteractive composes the full interactive view from already rendered
// sections.
func renderInteractive(header, controls, footer string) string {
	content := header + "\n\n" + controls + "\n\n" + footer
	return WidgetBorderStyle.Render(content)
}
