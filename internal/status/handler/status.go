package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "stlucia/pkg/errors"
	httputil "stlucia/pkg/http"
	"stlucia/pkg/logger"
)

const (
	RootMessage = "St. Lucia Tours & Rentals Backend running"

	BackendRunning       = "✅ Running"
	DatabaseConnected    = "✅ Connected"
	DatabaseNotAvailable = "❌ Not Available"
	databaseErrorPrefix  = "⚠️ "

	maxDiagnosticErrorLength = 80
)

// StoreInspector is the view of the document store used by the diagnostic
// and probe endpoints.
type StoreInspector interface {
	Connected() bool
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

type RootResponse struct {
	Message string `json:"message"`
}

// DiagnosticResponse omits collections unless the listing succeeded, in which
// case an empty store still renders as [].
type DiagnosticResponse struct {
	Backend     string    `json:"backend"`
	Database    string    `json:"database"`
	Collections *[]string `json:"collections,omitempty"`
}

type StatusHandler struct {
	store StoreInspector
	log   *logger.Logger
}

func NewStatusHandler(store StoreInspector, log *logger.Logger) *StatusHandler {
	return &StatusHandler{
		store: store,
		log:   log,
	}
}

func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, RootResponse{Message: RootMessage}); err != nil {
		h.log.Error("failed to write success response", "handler", "Root", "operation", "WriteSuccess", "error", err)
	}
}

// Diagnostic always answers 200; store problems are reported in the body.
func (h *StatusHandler) Diagnostic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.diagnose(r.Context())); err != nil {
		h.log.Error("failed to write success response", "handler", "Diagnostic", "operation", "WriteSuccess", "error", err)
	}
}

func (h *StatusHandler) diagnose(ctx context.Context) DiagnosticResponse {
	resp := DiagnosticResponse{Backend: BackendRunning}

	if h.store == nil || !h.store.Connected() {
		resp.Database = DatabaseNotAvailable
		return resp
	}

	collections, err := h.store.ListCollectionNames(ctx)
	if err != nil {
		h.log.Warn("Store diagnostic failed", "error", err)
		resp.Database = databaseErrorPrefix + apperrors.Truncate(err.Error(), maxDiagnosticErrorLength)
		return resp
	}

	if collections == nil {
		collections = []string{}
	}
	resp.Database = DatabaseConnected
	resp.Collections = &collections
	return resp
}

func (h *StatusHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Diagnostic)
}
