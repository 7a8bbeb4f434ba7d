package application

import (
	"testing"

	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupClientServiceMocks(t *testing.T) (*ClientService, *mock.MockClientRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockClient := mock.NewMockClientRepo(ctrl)
	repos := &repository.Repos{Client: mockClient}
	return NewClientService(repos), mockClient
}

func TestGetClient_NotFound(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	mockClient.EXPECT().GetClientByID(uint(9)).Return(client.Client{}, gorm.ErrRecordNotFound)

	_, err := svc.GetClient(9)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetDetail_NewProcess(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	base := client.Client{Model: gorm.Model{ID: 7}, ProcessType: string(intake.ProcessTypeNew)}
	mockClient.EXPECT().GetClientByID(uint(7)).Return(base, nil)
	mockClient.EXPECT().GetNewProcessDetail(uint(7)).Return(client.NewProcessDetail{ClientID: 7, City: "Madrid"}, nil)
	mockClient.EXPECT().ListTattoos(uint(7)).Return([]client.Tattoo{{ClientID: 7, Location: "arm"}}, nil)
	mockClient.EXPECT().ListTravels(uint(7)).Return(nil, nil)
	mockClient.EXPECT().ListRelatives(uint(7)).Return(nil, nil)

	detail, err := svc.GetDetail(7)
	assert.NoError(t, err)
	assert.NotNil(t, detail.New)
	assert.Equal(t, "Madrid", detail.New.City)
	assert.Nil(t, detail.Ongoing)
	assert.Len(t, detail.Tattoos, 1)
}

func TestGetDetail_OngoingProcess(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	base := client.Client{Model: gorm.Model{ID: 8}, ProcessType: string(intake.ProcessTypeOngoing)}
	mockClient.EXPECT().GetClientByID(uint(8)).Return(base, nil)
	mockClient.EXPECT().GetOngoingProcessDetail(uint(8)).Return(client.OngoingProcessDetail{ClientID: 8, ExpedientNumber: "EXP-1"}, nil)

	detail, err := svc.GetDetail(8)
	assert.NoError(t, err)
	assert.NotNil(t, detail.Ongoing)
	assert.Equal(t, "EXP-1", detail.Ongoing.ExpedientNumber)
	assert.Nil(t, detail.New)
	assert.Empty(t, detail.Tattoos)
}

func TestGetDetail_MissingExtensionRowTolerated(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	base := client.Client{Model: gorm.Model{ID: 8}, ProcessType: string(intake.ProcessTypeOngoing)}
	mockClient.EXPECT().GetClientByID(uint(8)).Return(base, nil)
	mockClient.EXPECT().GetOngoingProcessDetail(uint(8)).Return(client.OngoingProcessDetail{}, gorm.ErrRecordNotFound)

	detail, err := svc.GetDetail(8)
	assert.NoError(t, err)
	assert.Nil(t, detail.Ongoing)
}

func TestUpdateClient_PartialUpdate(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	base := client.Client{Model: gorm.Model{ID: 7}, FullName: "Maria", Phone: "111"}
	mockClient.EXPECT().GetClientByID(uint(7)).Return(base, nil)
	mockClient.EXPECT().SaveClient(gomock.Any()).Return(nil)

	phone := "222"
	updated, err := svc.UpdateClient(7, client.UpdateClientInput{Phone: &phone})
	assert.NoError(t, err)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, "Maria", updated.FullName)
}

func TestOwnsClient(t *testing.T) {
	svc, mockClient := setupClientServiceMocks(t)

	mockClient.EXPECT().GetClientByID(uint(7)).Return(client.Client{Model: gorm.Model{ID: 7}, UserID: 2}, nil).Times(2)

	owns, err := svc.OwnsClient(2, 7)
	assert.NoError(t, err)
	assert.True(t, owns)

	owns, err = svc.OwnsClient(3, 7)
	assert.NoError(t, err)
	assert.False(t, owns)
}
