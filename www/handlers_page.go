package www

import (
	"io/fs"
	"net/http"

	"preopedge/checklist"
)

func (h *Handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	draft, showGuidance := h.deps.Controller.Draft()

	data := map[string]interface{}{
		"Items":        checklist.Items,
		"EmployeeIDs":  checklist.EmployeeIDs,
		"Draft":        draft,
		"ShowGuidance": showGuidance,
		"Online":       h.deps.Status.Online(),
		"Pending":      h.deps.Queue.Len(),
		"Configured":   h.deps.Remote.IsConfigured(),
	}
	h.renderTemplate(w, "index.html", data)
}

func (h *Handlers) handleOfflinePage(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, "offline.html", nil)
}

func (h *Handlers) handleServiceWorker(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(staticFS, "static/sw.js")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

func (h *Handlers) handleManifest(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(staticFS, "static/manifest.webmanifest")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/manifest+json")
	w.Write(data)
}
