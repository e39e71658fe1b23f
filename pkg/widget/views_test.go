package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testViewState() viewState {
	return viewState{
		projectName:    "Clean Water",
		currencySymbol: "$",
		amounts:        []float64{1, 2, 3, 4, 5},
		selectedAmount: 2,
		customInput:    "",
		buttonLabel:    "Contribute $2.00",
		buttonMode:     buttonEnabled,
	}
}

func TestRenderAmountRow_HighlightsSelection(t *testing.T) {
	vs := testViewState()
	row := renderAmountRow(vs)

	for _, label := range []string{"$1.00", "$2.00", "$3.00", "$4.00", "$5.00"} {
		assert.Contains(t, row, label)
	}
}

func TestRenderButton_ModesKeepLabel(t *testing.T) {
	for _, mode := range []buttonMode{buttonEnabled, buttonDisabled, buttonProcessing, buttonSuccess, buttonError} {
		assert.Contains(t, renderButton("Contribute $2.00", mode), "Contribute $2.00")
	}
}

func TestRenderErrorPanel_WrapsLongMessages(t *testing.T) {
	msg := "failed to fetch configuration because the backend is unreachable from this network location"
	panel := renderErrorPanel(msg, 0)

	assert.Contains(t, panel, "failed to fetch configuration")
	assert.Greater(t, len(strings.Split(panel, "\n")), 3, "long messages wrap across lines")
}

func TestRenderInteractive_ComposesSections(t *testing.T) {
	vs := testViewState()
	view := renderInteractive(renderHeader(vs), renderControls(vs), renderFooter())

	assert.Contains(t, view, "Make a contribution")
	assert.Contains(t, view, "Supporting Clean Water")
	assert.Contains(t, view, "Contribute $2.00")
	assert.Contains(t, view, "Powered by Contribly")
}

func TestRenderLoading(t *testing.T) {
	assert.Contains(t, renderLoading(), "Loading contribution widget")
}
