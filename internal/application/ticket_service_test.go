package application

import (
	"errors"
	"testing"

	"github.com/delvaty/construccion-easy/internal/domain/ticket"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTicketServiceMocks(t *testing.T) (*TicketService, *mock.MockTicketRepo, *fakeFeed) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	feed := &fakeFeed{}
	repos := &repository.Repos{Ticket: mockTicket}
	return NewTicketService(repos, feed), mockTicket, feed
}

func TestCreateTicket_Success(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.TicketStatusOpen, tk.Status)
		assert.Equal(t, uint(1), tk.UserID)
		return nil
	})

	tk, err := svc.CreateTicket(1, ticket.CreateTicketInput{Subject: "Payment question", Description: "..."})
	assert.NoError(t, err)
	assert.Equal(t, "Payment question", tk.Subject)
}

func TestGetTicket_NotFound(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().FindByID(uint(5)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.GetTicket(5)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestUpdateTicketStatus_Success(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := ticket.Ticket{Model: gorm.Model{ID: 5}, UserID: 2, Status: ticket.TicketStatusOpen}
	mockTicket.EXPECT().FindByID(uint(5)).Return(existing, nil)
	mockTicket.EXPECT().SaveTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		assert.Equal(t, ticket.TicketStatusResolved, tk.Status)
		return nil
	})

	tk, err := svc.UpdateTicketStatus(5, string(ticket.TicketStatusResolved))
	assert.NoError(t, err)
	assert.Equal(t, ticket.TicketStatusResolved, tk.Status)
}

func TestAddMessage_NotifiesTicketOwner(t *testing.T) {
	svc, mockTicket, feed := setupTicketServiceMocks(t)

	existing := ticket.Ticket{Model: gorm.Model{ID: 5}, UserID: 2, Status: ticket.TicketStatusInProgress}
	mockTicket.EXPECT().FindByID(uint(5)).Return(existing, nil)
	mockTicket.EXPECT().CreateMessage(gomock.Any()).Return(nil)

	// An admin (user 1) answers; the event targets the requester (user 2).
	msg, err := svc.AddMessage(5, 1, "we are on it")
	assert.NoError(t, err)
	assert.Equal(t, uint(5), msg.TicketID)
	assert.Len(t, feed.events, 1)
	assert.Equal(t, realtime.EventTicketMessage, feed.events[0].Type)
	assert.Equal(t, uint(2), feed.events[0].UserID)
}

func TestAddMessage_ClosedTicket(t *testing.T) {
	svc, mockTicket, feed := setupTicketServiceMocks(t)

	existing := ticket.Ticket{Model: gorm.Model{ID: 5}, UserID: 2, Status: ticket.TicketStatusClosed}
	mockTicket.EXPECT().FindByID(uint(5)).Return(existing, nil)

	_, err := svc.AddMessage(5, 2, "reopening?")
	assert.ErrorIs(t, err, ErrTicketClosed)
	assert.Empty(t, feed.events)
}

func TestAddMessage_CreateFails(t *testing.T) {
	svc, mockTicket, feed := setupTicketServiceMocks(t)

	existing := ticket.Ticket{Model: gorm.Model{ID: 5}, UserID: 2, Status: ticket.TicketStatusOpen}
	mockTicket.EXPECT().FindByID(uint(5)).Return(existing, nil)
	mockTicket.EXPECT().CreateMessage(gomock.Any()).Return(errors.New("db error"))

	_, err := svc.AddMessage(5, 2, "hello")
	assert.EqualError(t, err, "db error")
	assert.Empty(t, feed.events)
}
