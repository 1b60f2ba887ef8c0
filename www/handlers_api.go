package www

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"preopedge/checklist"
	"preopedge/events"
	"preopedge/form"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) apiSubmitChecklist(w http.ResponseWriter, r *http.Request) {
	var sub checklist.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.deps.Controller.SetDraft(sub)
	res := h.deps.Controller.Submit(r.Context())

	switch res.Outcome {
	case form.OutcomeInvalid:
		writeJSONStatus(w, http.StatusBadRequest, res)
	case form.OutcomeBusy:
		writeJSONStatus(w, http.StatusConflict, res)
	default:
		writeJSON(w, res)
	}
}

func (h *Handlers) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"online":     h.deps.Status.Online(),
		"pending":    h.deps.Queue.Len(),
		"configured": h.deps.Remote.IsConfigured(),
	})
}

// apiReportStatus receives reachability transitions from the browser
// runtime (window online/offline events).
func (h *Handlers) apiReportStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.deps.Status.SetOnline(req.Online)
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handlers) apiListPending(w http.ResponseWriter, r *http.Request) {
	entries := h.deps.Queue.List()
	writeJSON(w, map[string]interface{}{
		"pending": len(entries),
		"entries": entries,
	})
}

func (h *Handlers) apiRemovePending(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.deps.Queue.Remove(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handlers) apiClearPending(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Queue.ClearAll(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// apiSyncPending drains the queue to the remote service. This is the only
// retry path; it runs exclusively on operator request.
func (h *Handlers) apiSyncPending(w http.ResponseWriter, r *http.Request) {
	if !h.deps.Remote.IsConfigured() {
		writeError(w, http.StatusConflict, "Airtable is not configured")
		return
	}

	entries := make(map[string]checklist.Submission)
	for _, e := range h.deps.Queue.List() {
		entries[e.ID] = e.Data
	}

	results := h.deps.Syncer.SyncAll(r.Context())

	synced := 0
	for _, res := range results {
		if res.Error != "" {
			continue
		}
		synced++
		if h.deps.DB != nil {
			err := h.deps.DB.AppendResult(events.SubmissionResultEvent{
				Outcome:    "synced",
				Message:    fmt.Sprintf("Synced from pending queue. Record ID: %s", res.RecordID),
				RecordID:   res.RecordID,
				QueueID:    res.ID,
				Submission: entries[res.ID],
			})
			if err != nil {
				h.deps.Log.Errorf("log synced entry %s: %v", res.ID, err)
			}
		}
	}

	writeJSON(w, map[string]interface{}{
		"synced":  synced,
		"failed":  len(results) - synced,
		"results": results,
	})
}

func (h *Handlers) apiRecentLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.deps.DB.RecentLog(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"entries": entries})
}
