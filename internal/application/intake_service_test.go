package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/internal/domain/document"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/repository/mock"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Test doubles ---------------------

// fakeStore records uploads without touching object storage.
type fakeStore struct {
	uploads []string
	err     error
}

func (f *fakeStore) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeStore) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://example.test/" + key, nil
}

func (f *fakeStore) Remove(_ context.Context, _ string) error { return nil }

// fakeFeed records published events.
type fakeFeed struct {
	events []realtime.Event
}

func (f *fakeFeed) Publish(ev realtime.Event) { f.events = append(f.events, ev) }

type intakeMocks struct {
	intake   *mock.MockIntakeRepo
	client   *mock.MockClientRepo
	document *mock.MockDocumentRepo
	store    *fakeStore
	feed     *fakeFeed
}

func setupIntakeServiceMocks(t *testing.T) (*IntakeService, *intakeMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &intakeMocks{
		intake:   mock.NewMockIntakeRepo(ctrl),
		client:   mock.NewMockClientRepo(ctrl),
		document: mock.NewMockDocumentRepo(ctrl),
		store:    &fakeStore{},
		feed:     &fakeFeed{},
	}
	repos := &repository.Repos{
		Intake:   m.intake,
		Client:   m.client,
		Document: m.document,
	}

	// Audit rows are written fire-and-forget; keep tests deterministic.
	oldLog := utils.LogAudit
	utils.LogAudit = func(uint, string, string, string, any, any, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAudit = oldLog })

	return NewIntakeService(repos, m.store, m.feed), m
}

func sessionWithRecord(t *testing.T, pt intake.ProcessType, step int, rec intake.Record) intake.Session {
	t.Helper()
	sess := intake.Session{
		Model:       gorm.Model{ID: 10},
		UserID:      1,
		ProcessType: string(pt),
		Step:        step,
		State:       intake.SessionStateActive,
	}
	assert.NoError(t, sess.EncodeRecord(rec))
	return sess
}

// --------------------- StartSession ---------------------

func TestStartSession_ReturnsOpenDraft(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	existing := sessionWithRecord(t, intake.ProcessTypeNew, 3, intake.Record{FullName: "Maria"})
	m.intake.EXPECT().GetOpenSessionByUserID(uint(1)).Return(existing, nil)

	sess, err := svc.StartSession(1)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, sess.ID)
	assert.Equal(t, 3, sess.Step)
}

func TestStartSession_CreatesFreshDraft(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	m.intake.EXPECT().GetOpenSessionByUserID(uint(1)).Return(intake.Session{}, gorm.ErrRecordNotFound)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.intake.EXPECT().CreateSession(gomock.Any()).DoAndReturn(func(s *intake.Session) error {
		s.ID = 42
		return nil
	})

	sess, err := svc.StartSession(1)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), sess.ID)
	assert.Equal(t, intake.SessionStateSelection, sess.State)
	assert.Equal(t, 1, sess.Step)
}

func TestStartSession_BlockedWhenIntakeAlreadyCompleted(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	m.intake.EXPECT().GetOpenSessionByUserID(uint(1)).Return(intake.Session{}, gorm.ErrRecordNotFound)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(true, nil)
	m.intake.EXPECT().CreateSession(gomock.Any()).Return(nil)

	sess, err := svc.StartSession(1)
	assert.NoError(t, err)
	assert.Equal(t, intake.SessionStateBlocked, sess.State)
}

func TestStartSession_GuardFailsOpen(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	m.intake.EXPECT().GetOpenSessionByUserID(uint(1)).Return(intake.Session{}, gorm.ErrRecordNotFound)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, errors.New("gateway down"))
	m.intake.EXPECT().CreateSession(gomock.Any()).Return(nil)

	sess, err := svc.StartSession(1)
	assert.NoError(t, err)
	assert.Equal(t, intake.SessionStateSelection, sess.State)
}

// --------------------- Session access ---------------------

func TestGetSession_WrongOwner(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 1, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)

	_, err := svc.GetSession(99, 10)
	assert.ErrorIs(t, err, ErrNotYourSession)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(intake.Session{}, gorm.ErrRecordNotFound)

	_, err := svc.GetSession(1, 10)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectProcess_BlockedSessionRefusesEdits(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNone, 1, intake.Record{})
	sess.State = intake.SessionStateBlocked
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)

	_, err := svc.SelectProcess(1, 10, intake.ProcessTypeNew)
	assert.ErrorIs(t, err, ErrSessionBlocked)
}

func TestSelectProcess_ResetsDraft(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeOngoing, 5, intake.Record{FullName: "Old"})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	got, err := svc.SelectProcess(1, 10, intake.ProcessTypeNew)
	assert.NoError(t, err)
	assert.Equal(t, string(intake.ProcessTypeNew), got.ProcessType)
	assert.Equal(t, 1, got.Step)
	assert.Equal(t, intake.SessionStateActive, got.State)

	rec, err := got.DecodeRecord()
	assert.NoError(t, err)
	assert.Equal(t, intake.Record{}, rec)
}

// --------------------- Sub-list editing ---------------------

func TestAddEntry_UnknownListRejected(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 4, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	// No SaveSession: nothing was changed.

	_, err := svc.AddEntry(1, 10, "pets")
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestUpdateEntry_UnknownIDSavesUnchanged(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{HasTattoos: true, Tattoos: []intake.TattooEntry{{ID: "a", Location: "arm"}}}
	sess := sessionWithRecord(t, intake.ProcessTypeNew, 4, rec)
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	got, err := svc.UpdateEntry(1, 10, intake.UpdateEntryInput{
		List: intake.ListTattoos, ID: "missing", Field: "location", Value: "changed",
	})
	assert.NoError(t, err)

	after, _ := got.DecodeRecord()
	assert.Equal(t, "arm", after.Tattoos[0].Location)
}

// --------------------- Next ---------------------

func TestNext_ValidationFailureKeepsStep(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{HasTattoos: true, Tattoos: []intake.TattooEntry{{ID: "a"}}}
	sess := sessionWithRecord(t, intake.ProcessTypeNew, 4, rec)
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	// No SaveSession on validation failure.

	got, err := svc.Next(1, 10)
	assert.ErrorIs(t, err, intake.ErrTattooIncomplete)
	assert.Equal(t, 4, got.Step)
}

func TestNext_Advances(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeOngoing, 2, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	got, err := svc.Next(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.Step)
}

// --------------------- Submit: new process, no flags ---------------------

func TestSubmit_NewProcessWithoutSubLists(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{
		FullName:       "Maria",
		LastName:       "Garcia",
		Email:          "maria@test.com",
		PassportNumber: "P123",
	}
	sess := sessionWithRecord(t, intake.ProcessTypeNew, 7, rec)

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)

	m.client.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		assert.False(t, c.Completed)
		c.ID = 7
		return nil
	})
	m.client.EXPECT().CreateNewProcessDetail(gomock.Any()).Return(nil)
	m.document.EXPECT().CreateDocument(gomock.Any()).DoAndReturn(func(d *document.Document) error {
		assert.Equal(t, document.KindPassport, d.Kind)
		assert.Equal(t, uint(7), d.ClientID)
		return nil
	})
	// Completed flag flips only as the final protocol step.
	m.client.EXPECT().SaveClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		assert.True(t, c.Completed)
		return nil
	})
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	files := map[string]FileUpload{
		FilePassport: {FileName: "passport.pdf", ContentType: "application/pdf", Size: 4, Content: strings.NewReader("data")},
	}
	got, err := svc.Submit(context.Background(), 1, 10, files)
	assert.NoError(t, err)
	assert.Equal(t, intake.SessionStateSubmitted, got.State)
	assert.NotNil(t, got.ClientID)
	assert.Equal(t, uint(7), *got.ClientID)

	assert.Len(t, m.store.uploads, 1)
	assert.Len(t, m.feed.events, 1)
	assert.Equal(t, realtime.EventIntakeSubmitted, m.feed.events[0].Type)
}

// --------------------- Submit: new process with travels ---------------------

func TestSubmit_NewProcessWithTravelList(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{
		FullName:                 "Maria",
		HasTraveledLastFiveYears: true,
		Travels: []intake.TravelEntry{
			{ID: "t1", StartDate: "2021-01-01", EndDate: "2021-02-01", Country: "France", Reason: "tourism"},
		},
		// Flag toggled off: the entries stay in the draft but are excluded.
		HasTattoos: false,
		Tattoos:    []intake.TattooEntry{{ID: "x", Location: "arm"}},
	}
	sess := sessionWithRecord(t, intake.ProcessTypeNew, 7, rec)

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.client.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		c.ID = 7
		return nil
	})
	m.client.EXPECT().CreateNewProcessDetail(gomock.Any()).Return(nil)
	m.client.EXPECT().BulkInsertTravels(gomock.Any()).DoAndReturn(func(rows []client.Travel) error {
		assert.Len(t, rows, 1)
		assert.Equal(t, "France", rows[0].Country)
		assert.Equal(t, uint(7), rows[0].ClientID)
		return nil
	})
	// No BulkInsertTattoos: flag is off.
	m.client.EXPECT().SaveClient(gomock.Any()).Return(nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.NoError(t, err)
	assert.Empty(t, m.store.uploads)
}

// --------------------- Submit: ongoing process ---------------------

func TestSubmit_OngoingProcessSplitsName(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{
		FullName:        "Maria Garcia Lopez",
		ExpedientNumber: "EXP-9",
		CurrentStage:    "fingerprints",
	}
	sess := sessionWithRecord(t, intake.ProcessTypeOngoing, 7, rec)

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.client.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		c.ID = 8
		return nil
	})
	m.client.EXPECT().CreateOngoingProcessDetail(gomock.Any()).DoAndReturn(func(d *client.OngoingProcessDetail) error {
		assert.Equal(t, "Maria", d.FirstName)
		assert.Equal(t, "Garcia Lopez", d.LastName)
		assert.Equal(t, "EXP-9", d.ExpedientNumber)
		return nil
	})
	m.document.EXPECT().CreateDocument(gomock.Any()).Times(2).Return(nil)
	m.client.EXPECT().SaveClient(gomock.Any()).Return(nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	files := map[string]FileUpload{
		FilePassport:  {FileName: "passport.jpg", Size: 3, Content: strings.NewReader("abc")},
		FileSecondary: {FileName: "bill.pdf", Size: 3, Content: strings.NewReader("def")},
	}
	_, err := svc.Submit(context.Background(), 1, 10, files)
	assert.NoError(t, err)
	assert.Len(t, m.store.uploads, 2)
}

func TestSubmit_OngoingKeepsExplicitLastName(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	rec := intake.Record{FullName: "Maria Garcia", LastName: "Lopez"}
	sess := sessionWithRecord(t, intake.ProcessTypeOngoing, 7, rec)

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.client.EXPECT().CreateClient(gomock.Any()).Return(nil)
	m.client.EXPECT().CreateOngoingProcessDetail(gomock.Any()).DoAndReturn(func(d *client.OngoingProcessDetail) error {
		assert.Equal(t, "Maria Garcia", d.FirstName)
		assert.Equal(t, "Lopez", d.LastName)
		return nil
	})
	m.client.EXPECT().SaveClient(gomock.Any()).Return(nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).Return(nil)

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.NoError(t, err)
}

// --------------------- Submit: guard and gating ---------------------

func TestSubmit_GuardBlocksBeforeAnyWrite(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 7, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(true, nil)
	m.intake.EXPECT().SaveSession(gomock.Any()).DoAndReturn(func(s *intake.Session) error {
		assert.Equal(t, intake.SessionStateBlocked, s.State)
		return nil
	})
	// No CreateClient, no detail rows, no uploads.

	got, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, ErrSessionBlocked)
	assert.Equal(t, intake.SessionStateBlocked, got.State)
	assert.Empty(t, m.store.uploads)
	assert.Empty(t, m.feed.events)
}

func TestSubmit_RequiresFinalStep(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 5, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, ErrNotFinalStep)
}

func TestSubmit_RequiresProcessSelection(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNone, 1, intake.Record{})
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, intake.ErrNoProcessSelected)
}

func TestSubmit_AlreadySubmittedSession(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 7, intake.Record{})
	sess.State = intake.SessionStateSubmitted
	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, ErrSessionNotEditable)
}

// --------------------- Submit: mid-protocol failure ---------------------

func TestSubmit_DetailFailureLeavesSessionRetryable(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 7, intake.Record{FullName: "Maria"})

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.client.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		c.ID = 7
		return nil
	})
	gatewayErr := errors.New("gateway timeout")
	m.client.EXPECT().CreateNewProcessDetail(gomock.Any()).Return(gatewayErr)
	m.intake.EXPECT().SaveSession(gomock.Any()).DoAndReturn(func(s *intake.Session) error {
		assert.Equal(t, intake.SessionStateFailed, s.State)
		assert.Equal(t, "gateway timeout", s.LastError)
		return nil
	})
	// No SaveClient: the client row stays incomplete, so a retry is not
	// blocked by the duplicate guard.

	_, err := svc.Submit(context.Background(), 1, 10, nil)
	assert.ErrorIs(t, err, gatewayErr)
	assert.Empty(t, m.feed.events)
}

func TestSubmit_UploadFailureRecordsStep(t *testing.T) {
	svc, m := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeOngoing, 7, intake.Record{FullName: "Maria Garcia"})

	m.intake.EXPECT().GetSessionByID(uint(10)).Return(sess, nil)
	m.client.EXPECT().HasCompletedClient(uint(1)).Return(false, nil)
	m.client.EXPECT().CreateClient(gomock.Any()).Return(nil)
	m.client.EXPECT().CreateOngoingProcessDetail(gomock.Any()).Return(nil)
	m.store.err = errors.New("minio unreachable")
	m.intake.EXPECT().SaveSession(gomock.Any()).DoAndReturn(func(s *intake.Session) error {
		assert.Equal(t, intake.SessionStateFailed, s.State)
		return nil
	})

	files := map[string]FileUpload{
		FilePassport: {FileName: "p.jpg", Size: 1, Content: strings.NewReader("x")},
	}
	_, err := svc.Submit(context.Background(), 1, 10, files)
	assert.EqualError(t, err, "minio unreachable")
}

// --------------------- View ---------------------

func TestView_ProgressDerivation(t *testing.T) {
	svc, _ := setupIntakeServiceMocks(t)

	sess := sessionWithRecord(t, intake.ProcessTypeNew, 4, intake.Record{})
	view, err := svc.View(sess)
	assert.NoError(t, err)
	assert.Equal(t, 7, view.TotalSteps)
	assert.Equal(t, 50, view.Progress)

	sess = sessionWithRecord(t, intake.ProcessTypeNone, 1, intake.Record{})
	view, err = svc.View(sess)
	assert.NoError(t, err)
	assert.Equal(t, 1, view.TotalSteps)
	assert.Equal(t, 0, view.Progress)
}
