package widget

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/contribly/contribly-widget/pkg/api"
	"github.com/contribly/contribly-widget/pkg/widget/mount"
)

// State is the widget lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateError
	StateReady
)

// Currency whose contributions route through the mobile-money flow. This is
// a hard switch, not configurable.
const mobileMoneyCurrency = "GHS"

const noActiveProjectsMessage = "No active projects are available for contributions"

// Widget is the contribution widget state machine. It owns amount selection,
// the processing guard, and the mobile-money form mirror; it orchestrates the
// mount registry, the API client, the views, and the two payment flows.
//
// A Widget is driven from a single bubbletea loop: Init starts mounting and
// the config fetch, Update consumes input and async completions, View exposes
// the render root's content to the embedding adapter.
type Widget struct {
	opts   Options
	client *api.Client
	host   *mount.Host
	root   *mount.Root
	modal  Modal

	state   State
	errText string
	config  *api.Config
	amounts []float64

	presetIdx   int
	selected    float64
	isCustom    bool
	customInput textinput.Model
	focusCustom bool

	momoForm MobileMoneyForm

	isProcessing   bool
	buttonOverride string
	overrideMode   buttonMode

	// cached static sections; amount changes refresh only the controls
	header   string
	controls string
	footer   string

	alive bool
	width int
}

// New constructs a widget. Missing WidgetToken or BaseURL is fatal: no
// partial instance is created and no network call is made. Resolving no host
// is tolerated; Init will log and leave the widget uninitialized.
func New(opts Options) (*Widget, error) {
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("missing required widget options: %w", err)
	}
	opts = opts.withDefaults()

	input := textinput.New()
	input.Placeholder = "other amount"
	input.CharLimit = 12
	input.Width = 14

	w := &Widget{
		opts:        opts,
		client:      api.NewClient(opts.BaseURL, opts.WidgetToken, opts.HTTPClient),
		host:        opts.resolveHost(),
		state:       StateUninitialized,
		customInput: input,
		alive:       true,
	}

	// Resolve the optional mobile-money collaborator. Best effort: a failure
	// only disables that flow.
	factory := opts.Modal
	if factory == nil {
		factory = NewMobileMoneyModal
	}
	modal, err := factory()
	if err != nil {
		log.Printf("contribly: mobile money modal unavailable: %v", err)
	} else {
		w.modal = modal
		w.modal.SetCallbacks(ModalCallbacks{
			OnNumberChange:   func(s string) { w.momoForm.Number = s },
			OnNameChange:     func(s string) { w.momoForm.Name = s },
			OnProviderChange: func(s string) { w.momoForm.Provider = s },
			OnProceed:        w.handleModalProceed,
			OnHide:           func() { w.momoForm = MobileMoneyForm{} },
		})
	}

	return w, nil
}

// State returns the current lifecycle state.
func (w *Widget) State() State {
	return w.state
}

// Init acquires the render root and starts the configuration fetch.
func (w *Widget) Init() tea.Cmd {
	if !w.alive {
		return nil
	}
	if w.host == nil {
		log.Printf("contribly: no mount host found, widget not initialized")
		return nil
	}

	root, err := w.opts.Registry.AcquireRoot(w.host)
	if err != nil {
		log.Printf("contribly: %v", err)
		return nil
	}
	w.root = root
	w.state = StateLoading
	w.root.SetContent(renderLoading())

	return w.fetchConfigCmd()
}

func (w *Widget) fetchConfigCmd() tea.Cmd {
	client := w.client
	return func() tea.Msg {
		cfg, err := client.FetchConfig(context.Background())
		if err != nil {
			return configFailedMsg{err: err}
		}
		return configLoadedMsg{cfg: cfg}
	}
}

// Update consumes bubbletea messages: user input, async completions, and the
// label restore ticks.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return nil

	case configLoadedMsg:
		return w.handleConfigLoaded(msg.cfg)

	case configFailedMsg:
		if !w.alive {
			return nil
		}
		w.state = StateError
		w.errText = msg.err.Error()
		w.renderErrorState()
		w.opts.OnError(msg.err)
		return nil

	case cardLinkCreatedMsg:
		return w.handleCardSuccess(msg)

	case cardLinkFailedMsg:
		return w.handlePaymentFailure(msg.err)

	case mobileMoneyInitiatedMsg:
		return w.handleMobileMoneySuccess(msg)

	case mobileMoneyFailedMsg:
		return w.handlePaymentFailure(msg.err)

	case restoreButtonMsg:
		if !w.alive {
			return nil
		}
		w.buttonOverride = ""
		w.refreshControls()
		return nil

	case tea.KeyMsg:
		if w.modal != nil && w.modal.Active() {
			return w.modal.Update(msg)
		}
		return w.handleKey(msg)
	}

	return nil
}

func (w *Widget) handleConfigLoaded(cfg *api.Config) tea.Cmd {
	if !w.alive {
		return nil
	}
	if !cfg.HasActiveProjects {
		// Terminal state: fixing it requires new configuration upstream.
		// Renders the panel without invoking the error callback.
		w.state = StateError
		w.errText = noActiveProjectsMessage
		w.renderErrorState()
		return nil
	}

	w.config = cfg
	w.amounts = DerivePredefinedAmounts(cfg.MinAmount, cfg.MaxAmount)
	w.selected = cfg.DefaultAmount
	w.presetIdx = w.nearestPreset(cfg.DefaultAmount)
	w.isCustom = false
	w.customInput.SetValue("")
	w.state = StateReady
	w.fullRender()
	return nil
}

func (w *Widget) nearestPreset(amount float64) int {
	for i, a := range w.amounts {
		if a == amount {
			return i
		}
	}
	return 0
}

// handleKey drives amount selection and submission while Ready.
func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	if w.state != StateReady {
		return nil
	}

	switch msg.String() {
	case "enter":
		return w.submitContribution()
	case "tab":
		w.focusCustom = !w.focusCustom
		if w.focusCustom {
			w.customInput.Focus()
		} else {
			w.customInput.Blur()
		}
		w.refreshControls()
		return nil
	}

	if w.focusCustom {
		var cmd tea.Cmd
		w.customInput, cmd = w.customInput.Update(msg)
		w.onCustomAmountChanged()
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		w.selectPreset(w.presetIdx - 1)
	case "right", "l":
		w.selectPreset(w.presetIdx + 1)
	case "1", "2", "3", "4", "5":
		w.selectPreset(int(msg.String()[0] - '1'))
	}
	return nil
}

// selectPreset activates a predefined amount: custom text clears and the
// preset becomes the current amount.
func (w *Widget) selectPreset(i int) {
	if i < 0 || i >= len(w.amounts) {
		return
	}
	w.presetIdx = i
	w.selected = w.amounts[i]
	w.isCustom = false
	w.customInput.SetValue("")
	w.refreshControls()
}

// onCustomAmountChanged re-evaluates the custom field. Any non-empty text
// deselects the presets; whether it is a valid amount only matters for the
// contribute button.
func (w *Widget) onCustomAmountChanged() {
	w.isCustom = w.customInput.Value() != ""
	w.refreshControls()
}

// currentAmount is the single active amount: the parsed custom value when
// custom is active, the selected preset otherwise.
func (w *Widget) currentAmount() float64 {
	if w.isCustom {
		return parseAmount(w.customInput.Value())
	}
	return w.selected
}

// submitContribution is the top-level guard and currency branch for both
// payment flows.
func (w *Widget) submitContribution() tea.Cmd {
	if w.state != StateReady || w.config == nil {
		return nil
	}
	if w.isProcessing {
		// at most one submission in flight
		return nil
	}

	amount := w.currentAmount()
	if amount < w.config.MinAmount {
		w.opts.OnError(fmt.Errorf("minimum contribution is %s", FormatAmount(w.config.CurrencySymbol, w.config.MinAmount)))
		return nil
	}

	if w.config.Currency == mobileMoneyCurrency {
		if w.modal == nil {
			log.Printf("contribly: mobile money flow is disabled, no modal collaborator")
			return nil
		}
		w.modal.Show(ModalShowOptions{Amount: amount, CurrencySymbol: w.config.CurrencySymbol})
		return nil
	}

	return w.startCardFlow(amount)
}

// Destroy tears the instance down: the root's content is cleared but the
// root itself stays attached to its host, since a later instance may mount
// onto the same host. Safe to call repeatedly and before Init completes.
func (w *Widget) Destroy() {
	w.alive = false
	if w.root != nil {
		w.root.Clear()
		w.root = nil
	}
}

// UpdateConfig shallow-merges a partial config and re-renders. A no-op until
// the initial fetch has completed.
func (w *Widget) UpdateConfig(patch api.ConfigPatch) {
	if w.config == nil {
		return
	}
	w.config.Merge(patch)
	if w.state == StateReady {
		w.fullRender()
	}
}

// View exposes the render root's content, overlaying the modal when active.
func (w *Widget) View() string {
	if w.root == nil {
		return ""
	}
	content := w.root.Content()
	if w.modal != nil && w.modal.Active() {
		return lipgloss.JoinVertical(lipgloss.Left, content, w.modal.View())
	}
	return content
}

// buttonState computes the contribute control's label and mode. An override
// (processing/success/error) wins; otherwise the label tracks the current
// amount and enablement tracks the configured minimum.
func (w *Widget) buttonState() (string, buttonMode) {
	if w.buttonOverride != "" {
		return w.buttonOverride, w.overrideMode
	}
	amount := w.currentAmount()
	label := "Contribute " + FormatAmount(w.config.CurrencySymbol, amount)
	if amount >= w.config.MinAmount {
		return label, buttonEnabled
	}
	return label, buttonDisabled
}

func (w *Widget) setButtonOverride(label string, mode buttonMode) {
	w.buttonOverride = label
	w.overrideMode = mode
	w.refreshControls()
}

func (w *Widget) snapshot() viewState {
	label, mode := w.buttonState()
	return viewState{
		projectName:    w.config.ProjectName,
		currencySymbol: w.config.CurrencySymbol,
		amounts:        w.amounts,
		selectedAmount: w.selected,
		isCustom:       w.isCustom,
		customInput:    w.customInput.View(),
		buttonLabel:    label,
		buttonMode:     mode,
		width:          w.width,
	}
}

// fullRender recomputes every section and replaces the root content.
func (w *Widget) fullRender() {
	if w.root == nil || w.config == nil {
		return
	}
	vs := w.snapshot()
	w.header = renderHeader(vs)
	w.controls = renderControls(vs)
	w.footer = renderFooter()
	w.root.SetContent(renderInteractive(w.header, w.controls, w.footer))
}

// refreshControls recomputes only the amount-dependent controls, reusing the
// cached header and footer.
func (w *Widget) refreshControls() {
	if w.root == nil || w.config == nil || w.state != StateReady {
		return
	}
	w.controls = renderControls(w.snapshot())
	w.root.SetContent(renderInteractive(w.header, w.controls, w.footer))
}

func (w *Widget) renderErrorState() {
	if w.root == nil {
		return
	}
	w.root.SetContent(renderErrorPanel(w.errText, w.width))
}
