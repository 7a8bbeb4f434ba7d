package handlers

import (
	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/config"
	"github.com/delvaty/construccion-easy/internal/realtime"
)

type Handlers struct {
	User     *UserHandler
	Intake   *IntakeHandler
	Client   *ClientHandler
	Document *DocumentHandler
	Payment  *PaymentHandler
	Ticket   *TicketHandler
	Audit    *AuditHandler
	Catalog  *CatalogHandler
	Events   *EventsHandler
}

func New(svc *application.Services, hub *realtime.Hub, catalog *config.StageCatalog) *Handlers {
	return &Handlers{
		User:     NewUserHandler(svc.User),
		Intake:   NewIntakeHandler(svc.Intake),
		Client:   NewClientHandler(svc.Client),
		Document: NewDocumentHandler(svc.Document, svc.Client),
		Payment:  NewPaymentHandler(svc.Payment, svc.Client),
		Ticket:   NewTicketHandler(svc.Ticket),
		Audit:    NewAuditHandler(svc.Audit),
		Catalog:  NewCatalogHandler(catalog),
		Events:   NewEventsHandler(hub),
	}
}
