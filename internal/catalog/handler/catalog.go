package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stlucia/internal/catalog/service"
	httputil "stlucia/pkg/http"
	"stlucia/pkg/logger"
)

type SeedResponse struct {
	Status  string              `json:"status"`
	Created *service.SeedResult `json:"created"`
}

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours, err := h.service.ListTours(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListTours", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tours); err != nil {
		h.log.Error("failed to write success response", "handler", "ListTours", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vehicles, err := h.service.ListVehicles(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListVehicles", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, vehicles); err != nil {
		h.log.Error("failed to write success response", "handler", "ListVehicles", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Seed", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, SeedResponse{
		Status:  httputil.StatusOK,
		Created: result,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Seed", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/tours", h.ListTours)
	router.GET("/vehicles", h.ListVehicles)
	router.POST("/seed", h.Seed)
}
