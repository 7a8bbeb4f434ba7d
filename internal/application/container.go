package application

import (
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/storage"
)

type Services struct {
	User     *UserService
	Intake   *IntakeService
	Client   *ClientService
	Document *DocumentService
	Payment  *PaymentService
	Ticket   *TicketService
	Audit    *AuditService
}

func New(repos *repository.Repos, store storage.ObjectStore, feed realtime.Publisher) *Services {
	return &Services{
		User:     NewUserService(repos),
		Intake:   NewIntakeService(repos, store, feed),
		Client:   NewClientService(repos),
		Document: NewDocumentService(repos, store, feed),
		Payment:  NewPaymentService(repos, feed),
		Ticket:   NewTicketService(repos, feed),
		Audit:    NewAuditService(repos),
	}
}
