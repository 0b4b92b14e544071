package services

import (
	"github.com/ghuser/electrocart/pkg/app"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Receipt *ReceiptService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Receipt: NewReceiptService(
			a.Logger,
			a.EventBus,
			a.Cache,
			a.Metrics,
			a.Receipts.Width,
			a.Receipts.StrictOverrides,
		),
	}
}
