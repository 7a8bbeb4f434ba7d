package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/internal/domain/document"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/storage"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound    = errors.New("intake session not found")
	ErrNotYourSession     = errors.New("intake session does not belong to this user")
	ErrSessionBlocked     = errors.New("an intake was already completed for this account")
	ErrSessionNotEditable = errors.New("intake session can no longer be edited")
	ErrNotFinalStep       = errors.New("submission is only available on the final step")
	ErrUnknownList        = errors.New("unknown sub-list name")
)

// FileUpload carries one multipart file into the submission protocol.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Multipart field names accepted by Submit.
const (
	FilePassport  = "passport"
	FileSecondary = "secondary_document"
)

type IntakeService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
	Feed  realtime.Publisher
}

func NewIntakeService(repos *repository.Repos, store storage.ObjectStore, feed realtime.Publisher) *IntakeService {
	return &IntakeService{Repos: repos, Store: store, Feed: feed}
}

// checkCompleted is the duplicate-submission guard. A lookup failure is logged
// and treated as not blocked: availability wins over strict duplicate
// prevention here.
func (s *IntakeService) checkCompleted(userID uint) bool {
	done, err := s.Repos.Client.HasCompletedClient(userID)
	if err != nil {
		log.Printf("duplicate guard lookup failed for user %d: %v (allowing)", userID, err)
		return false
	}
	return done
}

// StartSession returns the user's open draft, or creates a fresh one. The
// duplicate guard runs here once; a blocked session only offers a redirect.
func (s *IntakeService) StartSession(userID uint) (intake.Session, error) {
	if sess, err := s.Repos.Intake.GetOpenSessionByUserID(userID); err == nil {
		return sess, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return intake.Session{}, err
	}

	sess := intake.Session{
		UserID: userID,
		Step:   1,
		State:  intake.SessionStateSelection,
	}
	if s.checkCompleted(userID) {
		sess.State = intake.SessionStateBlocked
	}
	if err := sess.EncodeRecord(intake.Record{}); err != nil {
		return intake.Session{}, err
	}
	if err := s.Repos.Intake.CreateSession(&sess); err != nil {
		return intake.Session{}, err
	}
	return sess, nil
}

func (s *IntakeService) GetSession(userID, id uint) (intake.Session, error) {
	sess, err := s.Repos.Intake.GetSessionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return intake.Session{}, ErrSessionNotFound
		}
		return intake.Session{}, err
	}
	if sess.UserID != userID {
		return intake.Session{}, ErrNotYourSession
	}
	return sess, nil
}

func (s *IntakeService) editableSession(userID, id uint) (intake.Session, error) {
	sess, err := s.GetSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}
	switch sess.State {
	case intake.SessionStateBlocked:
		return intake.Session{}, ErrSessionBlocked
	case intake.SessionStateSubmitted:
		return intake.Session{}, ErrSessionNotEditable
	}
	return sess, nil
}

// SelectProcess resets the draft to defaults for the chosen branch and enters
// step 1.
func (s *IntakeService) SelectProcess(userID, id uint, pt intake.ProcessType) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}

	var w intake.Wizard
	w.SelectProcess(pt)

	sess.ProcessType = string(pt)
	sess.Step = w.Step
	sess.State = intake.SessionStateActive
	sess.LastError = ""
	if err := sess.EncodeRecord(w.Record); err != nil {
		return intake.Session{}, err
	}
	return sess, s.Repos.Intake.SaveSession(&sess)
}

// UpdateRecord replaces the whole draft record. No validation runs here; the
// step boundary is where validation happens.
func (s *IntakeService) UpdateRecord(userID, id uint, rec intake.Record) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}
	if err := sess.EncodeRecord(rec); err != nil {
		return intake.Session{}, err
	}
	return sess, s.Repos.Intake.SaveSession(&sess)
}

// AddEntry appends a blank entry to the named sub-list.
func (s *IntakeService) AddEntry(userID, id uint, list string) (intake.Session, error) {
	return s.mutateRecord(userID, id, func(rec *intake.Record) error {
		if _, ok := rec.AddEntry(list); !ok {
			return ErrUnknownList
		}
		return nil
	})
}

// UpdateEntry replaces a single field of one entry. Unknown ids are ignored.
func (s *IntakeService) UpdateEntry(userID, id uint, input intake.UpdateEntryInput) (intake.Session, error) {
	return s.mutateRecord(userID, id, func(rec *intake.Record) error {
		rec.UpdateEntry(input.List, input.ID, input.Field, input.Value)
		return nil
	})
}

// RemoveEntry filters one entry out. Unknown ids are ignored.
func (s *IntakeService) RemoveEntry(userID, id uint, list, entryID string) (intake.Session, error) {
	return s.mutateRecord(userID, id, func(rec *intake.Record) error {
		rec.RemoveEntry(list, entryID)
		return nil
	})
}

func (s *IntakeService) mutateRecord(userID, id uint, fn func(*intake.Record) error) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}
	rec, err := sess.DecodeRecord()
	if err != nil {
		return intake.Session{}, err
	}
	if err := fn(&rec); err != nil {
		return intake.Session{}, err
	}
	if err := sess.EncodeRecord(rec); err != nil {
		return intake.Session{}, err
	}
	return sess, s.Repos.Intake.SaveSession(&sess)
}

// Next runs the step-local validation and advances the wizard.
func (s *IntakeService) Next(userID, id uint) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}
	rec, err := sess.DecodeRecord()
	if err != nil {
		return intake.Session{}, err
	}

	w := intake.Wizard{ProcessType: intake.ProcessType(sess.ProcessType), Step: sess.Step, Record: rec}
	if err := w.Next(); err != nil {
		return sess, err
	}
	sess.Step = w.Step
	return sess, s.Repos.Intake.SaveSession(&sess)
}

// Previous steps back without validation, floored at step 1.
func (s *IntakeService) Previous(userID, id uint) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}
	w := intake.Wizard{ProcessType: intake.ProcessType(sess.ProcessType), Step: sess.Step}
	w.Previous()
	sess.Step = w.Step
	return sess, s.Repos.Intake.SaveSession(&sess)
}

// Submit runs the submission protocol: a strictly sequential pipeline of
// remote writes, each issued only after the previous one succeeded. There is
// no rollback; a mid-pipeline failure leaves earlier rows in place and the
// session retryable.
func (s *IntakeService) Submit(ctx context.Context, userID, id uint, files map[string]FileUpload) (intake.Session, error) {
	sess, err := s.editableSession(userID, id)
	if err != nil {
		return intake.Session{}, err
	}

	pt := intake.ProcessType(sess.ProcessType)
	if pt == intake.ProcessTypeNone {
		return sess, intake.ErrNoProcessSelected
	}
	if sess.Step < intake.TotalSteps(pt) {
		return sess, ErrNotFinalStep
	}

	// Defense in depth: a second tab may have completed an intake since this
	// session was opened.
	if s.checkCompleted(userID) {
		sess.State = intake.SessionStateBlocked
		if err := s.Repos.Intake.SaveSession(&sess); err != nil {
			log.Printf("failed to persist blocked intake session %d: %v", sess.ID, err)
		}
		return sess, ErrSessionBlocked
	}

	rec, err := sess.DecodeRecord()
	if err != nil {
		return intake.Session{}, err
	}

	w := intake.Wizard{ProcessType: pt, Step: sess.Step, Record: rec}
	if err := w.ValidateStep(); err != nil {
		return sess, err
	}

	base := client.Client{
		UserID:         userID,
		FullName:       rec.FullName,
		LastName:       rec.LastName,
		Email:          rec.Email,
		Phone:          rec.Phone,
		BirthDate:      rec.BirthDate,
		Nationality:    rec.Nationality,
		PassportNumber: rec.PassportNumber,
		ProcessType:    string(pt),
	}
	if err := s.Repos.Client.CreateClient(&base); err != nil {
		return sess, s.failSubmission(&sess, "create client", err)
	}

	switch pt {
	case intake.ProcessTypeNew:
		if err := s.submitNewProcess(ctx, &sess, &base, rec, files); err != nil {
			return sess, err
		}
	case intake.ProcessTypeOngoing:
		if err := s.submitOngoingProcess(ctx, &sess, &base, rec, files); err != nil {
			return sess, err
		}
	}

	base.Completed = true
	if err := s.Repos.Client.SaveClient(&base); err != nil {
		return sess, s.failSubmission(&sess, "mark client completed", err)
	}

	sess.State = intake.SessionStateSubmitted
	sess.LastError = ""
	sess.ClientID = &base.ID
	if err := s.Repos.Intake.SaveSession(&sess); err != nil {
		return sess, s.failSubmission(&sess, "finalize session", err)
	}

	s.Feed.Publish(realtime.Event{
		Type:    realtime.EventIntakeSubmitted,
		UserID:  userID,
		Payload: map[string]uint{"client_id": base.ID, "session_id": sess.ID},
	})
	utils.LogAudit(userID, "intake.submit", "client", fmt.Sprint(base.ID), nil, base,
		"intake submitted", s.Repos.Audit)
	return sess, nil
}

func (s *IntakeService) submitNewProcess(ctx context.Context, sess *intake.Session, base *client.Client, rec intake.Record, files map[string]FileUpload) error {
	detail := client.NewProcessDetail{
		ClientID:                 base.ID,
		PassportExpiry:           rec.PassportExpiry,
		Province:                 rec.Province,
		City:                     rec.City,
		Address:                  rec.Address,
		PostalCode:               rec.PostalCode,
		EntryDate:                rec.EntryDate,
		EntryPort:                rec.EntryPort,
		VisaType:                 rec.VisaType,
		HasTattoos:               rec.HasTattoos,
		HasTraveledLastFiveYears: rec.HasTraveledLastFiveYears,
		HasRelativesInCountry:    rec.HasRelativesInCountry,
	}
	if err := s.Repos.Client.CreateNewProcessDetail(&detail); err != nil {
		return s.failSubmission(sess, "create new process detail", err)
	}

	if f, ok := files[FilePassport]; ok {
		if err := s.storeDocument(ctx, base.ID, document.KindPassport, f); err != nil {
			return s.failSubmission(sess, "upload passport", err)
		}
	}

	if rec.HasTattoos && len(rec.Tattoos) > 0 {
		rows := make([]client.Tattoo, 0, len(rec.Tattoos))
		for _, t := range rec.Tattoos {
			rows = append(rows, client.Tattoo{ClientID: base.ID, Location: t.Location})
		}
		if err := s.Repos.Client.BulkInsertTattoos(rows); err != nil {
			return s.failSubmission(sess, "insert tattoos", err)
		}
	}
	if rec.HasTraveledLastFiveYears && len(rec.Travels) > 0 {
		rows := make([]client.Travel, 0, len(rec.Travels))
		for _, t := range rec.Travels {
			rows = append(rows, client.Travel{
				ClientID:  base.ID,
				StartDate: t.StartDate,
				EndDate:   t.EndDate,
				Country:   t.Country,
				Reason:    t.Reason,
			})
		}
		if err := s.Repos.Client.BulkInsertTravels(rows); err != nil {
			return s.failSubmission(sess, "insert travels", err)
		}
	}
	if rec.HasRelativesInCountry && len(rec.Relatives) > 0 {
		rows := make([]client.Relative, 0, len(rec.Relatives))
		for _, rel := range rec.Relatives {
			rows = append(rows, client.Relative{
				ClientID:        base.ID,
				Relationship:    rel.Relationship,
				FullName:        rel.FullName,
				ResidencyStatus: rel.ResidencyStatus,
			})
		}
		if err := s.Repos.Client.BulkInsertRelatives(rows); err != nil {
			return s.failSubmission(sess, "insert relatives", err)
		}
	}
	return nil
}

func (s *IntakeService) submitOngoingProcess(ctx context.Context, sess *intake.Session, base *client.Client, rec intake.Record, files map[string]FileUpload) error {
	first, last := rec.FullName, rec.LastName
	if strings.TrimSpace(last) == "" {
		first, last = intake.SplitFullName(rec.FullName)
	}

	detail := client.OngoingProcessDetail{
		ClientID:         base.ID,
		FirstName:        first,
		LastName:         last,
		ExpedientNumber:  rec.ExpedientNumber,
		CurrentStage:     rec.CurrentStage,
		ProcessStartDate: rec.ProcessStartDate,
		Notes:            rec.Notes,
	}
	if err := s.Repos.Client.CreateOngoingProcessDetail(&detail); err != nil {
		return s.failSubmission(sess, "create ongoing process detail", err)
	}

	if f, ok := files[FilePassport]; ok {
		if err := s.storeDocument(ctx, base.ID, document.KindPassport, f); err != nil {
			return s.failSubmission(sess, "upload passport", err)
		}
	}
	if f, ok := files[FileSecondary]; ok {
		if err := s.storeDocument(ctx, base.ID, document.KindSecondary, f); err != nil {
			return s.failSubmission(sess, "upload secondary document", err)
		}
	}
	return nil
}

// storeDocument uploads the blob, then registers the document row pointing at
// it. Two sequential gateway calls, like every other protocol step.
func (s *IntakeService) storeDocument(ctx context.Context, clientID uint, kind document.Kind, f FileUpload) error {
	key := fmt.Sprintf("clients/%d/%s-%s%s", clientID, kind, uuid.New().String(), path.Ext(f.FileName))
	storedKey, err := s.Store.Upload(ctx, key, f.Content, f.Size, f.ContentType)
	if err != nil {
		return err
	}
	doc := document.Document{
		ClientID:    clientID,
		Kind:        kind,
		FileName:    f.FileName,
		ObjectKey:   storedKey,
		ContentType: f.ContentType,
		SizeBytes:   f.Size,
		Status:      document.StatusPending,
	}
	return s.Repos.Document.CreateDocument(&doc)
}

// failSubmission records which protocol step failed so operators can triage
// orphaned rows, then leaves the session retryable.
func (s *IntakeService) failSubmission(sess *intake.Session, step string, err error) error {
	log.Printf("intake submission failed at step %q for session %d: %v", step, sess.ID, err)
	sess.State = intake.SessionStateFailed
	sess.LastError = err.Error()
	if saveErr := s.Repos.Intake.SaveSession(sess); saveErr != nil {
		log.Printf("failed to persist failed intake session %d: %v", sess.ID, saveErr)
	}
	utils.LogAudit(sess.UserID, "intake.submit.failed", "intake_session", fmt.Sprint(sess.ID),
		nil, nil, "failed step: "+step, s.Repos.Audit)
	return err
}

// View derives the wizard display state from the stored draft.
func (s *IntakeService) View(sess intake.Session) (intake.SessionView, error) {
	rec, err := sess.DecodeRecord()
	if err != nil {
		return intake.SessionView{}, err
	}
	total := intake.TotalSteps(intake.ProcessType(sess.ProcessType))
	return intake.SessionView{
		ID:          sess.ID,
		ProcessType: sess.ProcessType,
		Step:        sess.Step,
		TotalSteps:  total,
		Progress:    intake.Progress(sess.Step, total),
		State:       sess.State,
		Record:      rec,
		LastError:   sess.LastError,
	}, nil
}
