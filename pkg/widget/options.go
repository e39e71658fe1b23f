package widget

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/contribly/contribly-widget/pkg/widget/mount"
)

// ContributionEvent is delivered to OnContribution when a payment request
// succeeds. PaymentURL is set by the card flow, PaymentToken by the
// mobile-money flow.
type ContributionEvent struct {
	Amount       float64
	Currency     string
	PaymentURL   string
	PaymentToken string
	ProjectName  string
}

// Options configures a Widget. WidgetToken and BaseURL are required;
// everything else has a usable default. Options are immutable after
// construction except for host resolution.
type Options struct {
	// WidgetToken identifies the merchant configuration on the backend.
	WidgetToken string `validate:"required"`

	// BaseURL is the backend the widget talks to, e.g. "https://api.example.com".
	BaseURL string `validate:"required"`

	// Container is the explicit mount host. When nil, Selector is looked up
	// in the registry; when that is empty too, the conventional default host
	// id is tried. The widget tolerates resolving to no host (it logs and
	// stays uninitialized).
	Container *mount.Host

	// Selector names a registered host to mount into.
	Selector string

	// Registry resolves selectors and owns host roots. Defaults to
	// mount.DefaultRegistry.
	Registry *mount.Registry

	// Modal locates the mobile-money modal collaborator. A nil factory uses
	// the built-in terminal modal; a factory error disables the mobile-money
	// flow without failing construction.
	Modal ModalFactory

	// HTTPClient overrides the API client's transport. Nil uses a default
	// client with a 30s timeout.
	HTTPClient *http.Client

	// OnContribution fires when a payment request succeeds.
	OnContribution func(ContributionEvent)

	// OnToggle is part of the public contract for host adapters. No internal
	// transition drives it in this version.
	OnToggle func(visible bool)

	// OnError fires for configuration fetch failures and payment submission
	// failures, so the host application can present its own messaging.
	OnError func(error)
}

var validate = validator.New()

// validateOptions checks required options. Failures are fatal: no partial
// widget is constructed and no network call is made.
func validateOptions(opts Options) error {
	return validate.Struct(opts)
}

// withDefaults fills in the no-op callbacks and the default registry.
func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = mount.DefaultRegistry
	}
	if o.OnContribution == nil {
		o.OnContribution = func(ContributionEvent) {}
	}
	if o.OnToggle == nil {
		o.OnToggle = func(bool) {}
	}
	if o.OnError == nil {
		o.OnError = func(err error) {
			log.Printf("contribly: %v", err)
		}
	}
	return o
}

// resolveHost finds the mount host: explicit reference first, then the
// selector, then the conventional default id. May return nil.
func (o Options) resolveHost() *mount.Host {
	if o.Container != nil {
		return o.Container
	}
	if o.Selector != "" {
		return o.Registry.Lookup(o.Selector)
	}
	return o.Registry.Lookup(mount.DefaultHostID)
}
