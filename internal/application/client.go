package application

import (
	"errors"

	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/internal/repository"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	Repos *repository.Repos
}

func NewClientService(repos *repository.Repos) *ClientService {
	return &ClientService{Repos: repos}
}

func (s *ClientService) ListClients(page, limit int) ([]client.Client, error) {
	return s.Repos.Client.ListClients(page, limit)
}

func (s *ClientService) GetClient(id uint) (client.Client, error) {
	c, err := s.Repos.Client.GetClientByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return client.Client{}, ErrClientNotFound
	}
	return c, err
}

// MyClients returns the caller's own client records for the dashboard.
func (s *ClientService) MyClients(userID uint) ([]client.Client, error) {
	return s.Repos.Client.GetClientsByUserID(userID)
}

// GetDetail assembles the base row, its process-specific extension and the
// sub-list rows.
func (s *ClientService) GetDetail(id uint) (client.Detail, error) {
	base, err := s.GetClient(id)
	if err != nil {
		return client.Detail{}, err
	}

	detail := client.Detail{Client: base}
	switch intake.ProcessType(base.ProcessType) {
	case intake.ProcessTypeNew:
		if d, err := s.Repos.Client.GetNewProcessDetail(id); err == nil {
			detail.New = &d
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return client.Detail{}, err
		}
		if detail.Tattoos, err = s.Repos.Client.ListTattoos(id); err != nil {
			return client.Detail{}, err
		}
		if detail.Travels, err = s.Repos.Client.ListTravels(id); err != nil {
			return client.Detail{}, err
		}
		if detail.Relatives, err = s.Repos.Client.ListRelatives(id); err != nil {
			return client.Detail{}, err
		}
	case intake.ProcessTypeOngoing:
		if d, err := s.Repos.Client.GetOngoingProcessDetail(id); err == nil {
			detail.Ongoing = &d
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return client.Detail{}, err
		}
	}
	return detail, nil
}

func (s *ClientService) UpdateClient(id uint, input client.UpdateClientInput) (client.Client, error) {
	c, err := s.GetClient(id)
	if err != nil {
		return client.Client{}, err
	}

	if input.FullName != nil {
		c.FullName = *input.FullName
	}
	if input.LastName != nil {
		c.LastName = *input.LastName
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Status != nil {
		c.Status = client.ClientStatus(*input.Status)
	}

	if err := s.Repos.Client.SaveClient(&c); err != nil {
		return client.Client{}, err
	}
	return c, nil
}

func (s *ClientService) RemoveClient(id uint) error {
	if _, err := s.GetClient(id); err != nil {
		return err
	}
	return s.Repos.Client.DeleteClient(id)
}

// OwnsClient reports whether the client record belongs to the user.
func (s *ClientService) OwnsClient(userID, clientID uint) (bool, error) {
	c, err := s.GetClient(clientID)
	if err != nil {
		return false, err
	}
	return c.UserID == userID, nil
}
