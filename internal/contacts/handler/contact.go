package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ijuruhub/internal/contacts/service"
	apperrors "ijuruhub/pkg/errors"
	httputil "ijuruhub/pkg/http"
	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"

	"github.com/gorilla/mux"
)

type ContactHandler struct {
	service service.ContactService
	log     *logger.Logger
}

func NewContactHandler(service service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

func (h *ContactHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/contact", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/contact", h.List).Methods(http.MethodGet)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact model.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		h.writeJSON(w, "Create", http.StatusBadRequest, httputil.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if _, err := h.service.Create(r.Context(), &contact); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteMessage(w, http.StatusCreated, "Thank you for contacting us. We will get back to you soon."); err != nil {
		h.log.Error("failed to write response", "handler", "Create", "error", err)
	}
}

type contactListResponse struct {
	Success  bool             `json:"success"`
	Contacts []*model.Contact `json:"contacts"`
	Count    int              `json:"count"`
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.writeError(w, "List", apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", s)))
			return
		}
		limit = v
	}

	contacts, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	h.writeJSON(w, "List", http.StatusOK, contactListResponse{
		Success:  true,
		Contacts: contacts,
		Count:    len(contacts),
	})
}

func (h *ContactHandler) writeJSON(w http.ResponseWriter, handlerName string, statusCode int, data any) {
	if err := httputil.WriteJSON(w, statusCode, data); err != nil {
		h.log.Error("failed to write response", "handler", handlerName, "error", err)
	}
}

func (h *ContactHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
