package www

import (
	"html/template"
	"net/http"

	"preopedge/events"
	"preopedge/form"
	"preopedge/offline"
	"preopedge/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Deps holds everything the HTTP layer needs.
type Deps struct {
	Controller *form.Controller
	Queue      *offline.Store
	Status     *offline.Monitor
	Syncer     *offline.Syncer
	Remote     form.Remote
	DB         *store.DB
	Bus        *events.Bus
	Log        *logrus.Logger
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	deps Deps
	tmpl *template.Template
	hub  *Hub
}

// NewRouter creates the chi router and returns it along with a stop function.
func NewRouter(deps Deps) (http.Handler, func()) {
	h := &Handlers{
		deps: deps,
		hub:  NewHub(deps.Bus),
	}
	h.tmpl = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files and the PWA surface. The service worker must be served
	// from the root so its scope covers the whole app.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS()))))
	r.Get("/sw.js", h.handleServiceWorker)
	r.Get("/manifest.webmanifest", h.handleManifest)
	r.Get("/offline", h.handleOfflinePage)

	// SSE (live status, pending count, submit results)
	r.Get("/events", h.hub.HandleSSE)

	// The checklist form
	r.Get("/", h.handleForm)

	r.Route("/api", func(r chi.Router) {
		r.Post("/checklist", h.apiSubmitChecklist)
		r.Get("/status", h.apiStatus)
		r.Post("/status", h.apiReportStatus)
		r.Get("/pending", h.apiListPending)
		r.Delete("/pending/{id}", h.apiRemovePending)
		r.Post("/pending/clear", h.apiClearPending)
		r.Post("/pending/sync", h.apiSyncPending)
		r.Get("/log", h.apiRecentLog)
	})

	return r, func() {
		h.hub.Stop()
	}
}

func (h *Handlers) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
