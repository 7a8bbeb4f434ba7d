package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type sessionView struct {
	ID          uint   `json:"id"`
	ProcessType string `json:"process_type"`
	Step        int    `json:"step"`
	TotalSteps  int    `json:"total_steps"`
	Progress    int    `json:"progress"`
	State       string `json:"state"`
	Record      struct {
		FullName        string `json:"full_name"`
		ExpedientNumber string `json:"expedient_number"`
		HasTattoos      bool   `json:"has_tattoos"`
		Tattoos         []struct {
			ID       string `json:"id"`
			Location string `json:"location"`
		} `json:"tattoos"`
	} `json:"record"`
	LastError string `json:"last_error,omitempty"`
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) sessionView {
	t.Helper()
	var view sessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

// --------------------- Ongoing-process walkthrough ---------------------

func TestIntakeOngoingFlow(t *testing.T) {
	token := loginForTests(t, "maria", "123456")

	w := doRequest(t, "POST", "/intake/sessions", token, nil, http.StatusOK)
	sess := decodeSession(t, w)
	require.Equal(t, "selection", sess.State)
	require.Equal(t, 1, sess.TotalSteps)
	base := fmt.Sprintf("/intake/sessions/%d", sess.ID)

	// Reopening the wizard returns the same draft.
	w = doRequest(t, "POST", "/intake/sessions", token, nil, http.StatusOK)
	require.Equal(t, sess.ID, decodeSession(t, w).ID)

	w = doRequest(t, "PUT", base+"/process", token,
		map[string]string{"process_type": "ongoing"}, http.StatusOK)
	sess = decodeSession(t, w)
	require.Equal(t, "ongoing", sess.ProcessType)
	require.Equal(t, 1, sess.Step)
	require.Equal(t, 7, sess.TotalSteps)
	require.Equal(t, 0, sess.Progress)

	w = doRequest(t, "PUT", base+"/record", token, map[string]interface{}{
		"full_name":          "Maria Garcia Lopez",
		"email":              "maria@example.com",
		"phone":              "+34911222333",
		"nationality":        "Cuban",
		"passport_number":    "X1234567",
		"expedient_number":   "EXP-2024-0042",
		"current_stage":      "resolution",
		"process_start_date": "2024-03-01",
		"accept_terms":       true,
	}, http.StatusOK)
	require.Equal(t, "Maria Garcia Lopez", decodeSession(t, w).Record.FullName)

	for step := 2; step <= 7; step++ {
		w = doRequest(t, "POST", base+"/next", token, nil, http.StatusOK)
		require.Equal(t, step, decodeSession(t, w).Step)
	}

	// Already at the final step.
	doRequest(t, "POST", base+"/next", token, nil, http.StatusBadRequest)

	// Stepping back and forward again is allowed before submission.
	w = doRequest(t, "POST", base+"/previous", token, nil, http.StatusOK)
	require.Equal(t, 6, decodeSession(t, w).Step)
	doRequest(t, "POST", base+"/next", token, nil, http.StatusOK)

	w = doRequest(t, "POST", base+"/submit", token, nil, http.StatusOK)
	sess = decodeSession(t, w)
	require.Equal(t, "submitted", sess.State)
	require.Equal(t, 100, sess.Progress)

	// The submitted data landed as a completed client with the name split.
	w = doRequest(t, "GET", "/clients/mine", token, nil, http.StatusOK)
	var mine []struct {
		ID          uint   `json:"ID"`
		FullName    string `json:"full_name"`
		LastName    string `json:"last_name"`
		ProcessType string `json:"process_type"`
		Completed   bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	require.Equal(t, "Maria", mine[0].FullName)
	require.Equal(t, "Garcia Lopez", mine[0].LastName)
	require.Equal(t, "ongoing", mine[0].ProcessType)
	require.True(t, mine[0].Completed)

	// A submitted session is frozen.
	doRequest(t, "POST", base+"/next", token, nil, http.StatusBadRequest)
	doRequest(t, "POST", base+"/submit", token, nil, http.StatusBadRequest)

	// The duplicate guard blocks any fresh draft from here on.
	w = doRequest(t, "POST", "/intake/sessions", token, nil, http.StatusOK)
	blocked := decodeSession(t, w)
	require.Equal(t, "blocked", blocked.State)
	doRequest(t, "PUT", fmt.Sprintf("/intake/sessions/%d/process", blocked.ID), token,
		map[string]string{"process_type": "new"}, http.StatusConflict)
}

// --------------------- New-process walkthrough ---------------------

func TestIntakeNewFlowWithUploads(t *testing.T) {
	token := loginForTests(t, "jorge", "123456")

	w := doRequest(t, "POST", "/intake/sessions", token, nil, http.StatusOK)
	sess := decodeSession(t, w)
	base := fmt.Sprintf("/intake/sessions/%d", sess.ID)

	doRequest(t, "PUT", base+"/process", token,
		map[string]string{"process_type": "new"}, http.StatusOK)

	doRequest(t, "PUT", base+"/record", token, map[string]interface{}{
		"full_name":       "Jorge",
		"last_name":       "Perez",
		"email":           "jorge@example.com",
		"nationality":     "Venezuelan",
		"passport_number": "Y7654321",
		"entry_date":      "2025-01-15",
		"entry_port":      "Madrid-Barajas",
		"visa_type":       "tourist",
		"has_tattoos":     true,
		"accept_terms":    true,
	}, http.StatusOK)

	// Reach the tattoos step and manage its sub-list.
	for step := 2; step <= 4; step++ {
		doRequest(t, "POST", base+"/next", token, nil, http.StatusOK)
	}

	w = doRequest(t, "POST", base+"/entries", token,
		map[string]string{"list": "tattoos"}, http.StatusOK)
	sess = decodeSession(t, w)
	require.Len(t, sess.Record.Tattoos, 1)
	entryID := sess.Record.Tattoos[0].ID

	// An empty tattoo entry blocks the step.
	doRequest(t, "POST", base+"/next", token, nil, http.StatusBadRequest)

	doRequest(t, "PUT", base+"/entries", token, map[string]string{
		"list": "tattoos", "id": entryID, "field": "location", "value": "left forearm",
	}, http.StatusOK)

	// A second entry added and removed again.
	w = doRequest(t, "POST", base+"/entries", token,
		map[string]string{"list": "tattoos"}, http.StatusOK)
	sess = decodeSession(t, w)
	require.Len(t, sess.Record.Tattoos, 2)
	doRequest(t, "DELETE",
		fmt.Sprintf("%s/entries?list=tattoos&id=%s", base, sess.Record.Tattoos[1].ID),
		token, nil, http.StatusOK)

	for step := 5; step <= 7; step++ {
		doRequest(t, "POST", base+"/next", token, nil, http.StatusOK)
	}

	// Submit with a passport scan attached.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("passport", "passport.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake scan"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", base+"/submit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "submitted", decodeSession(t, rec).State)

	w = doRequest(t, "GET", "/clients/mine", token, nil, http.StatusOK)
	var mine []struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)

	// The passport document was registered during submission.
	w = doRequest(t, "GET", fmt.Sprintf("/clients/%d/documents", mine[0].ID), token, nil, http.StatusOK)
	var docs []struct {
		Kind     string `json:"kind"`
		FileName string `json:"file_name"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "passport", docs[0].Kind)
	require.Equal(t, "passport.pdf", docs[0].FileName)
	require.Equal(t, "pending", docs[0].Status)
}

// --------------------- Access control ---------------------

func TestIntakeSessionIsolation(t *testing.T) {
	mariaToken := loginForTests(t, "maria", "123456")
	adminToken := loginForTests(t, "admin", "123456")

	w := doRequest(t, "POST", "/intake/sessions", mariaToken, nil, http.StatusOK)
	id := decodeSession(t, w).ID

	// Another account cannot read the draft, admin or not.
	doRequest(t, "GET", fmt.Sprintf("/intake/sessions/%d", id), adminToken, nil, http.StatusForbidden)

	doRequest(t, "GET", "/intake/sessions/99999", mariaToken, nil, http.StatusNotFound)
	doRequest(t, "GET", fmt.Sprintf("/intake/sessions/%d", id), "", nil, http.StatusUnauthorized)
}
