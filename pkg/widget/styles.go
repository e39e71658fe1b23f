package widget

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for the selected amount
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange for warnings
	ColorError    = "196" // Red for errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorPrimary  = "33"  // Blue for the contribute action
)

// Common styles
var (
	WidgetBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	ProjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	AmountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 1)

	AmountSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorActive)).
				Bold(true).
				Padding(0, 1)

	CustomInputLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ContributeEnabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary)).
				Bold(true).
				Padding(0, 2)

	ContributeDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Background(lipgloss.Color(ColorDark)).
				Padding(0, 2)

	ContributeSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorSuccess)).
				Bold(true).
				Padding(0, 2)

	ContributeErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorError)).
				Bold(true).
				Padding(0, 2)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Padding(1, 2)

	ErrorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color(ColorError)).
			Padding(1, 2)

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive)).
			Italic(true)

	ModalBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ModalLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	ModalFocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))
)
