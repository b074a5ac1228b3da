package handler

import (
	"encoding/json"
	"net/http"

	bookingsvc "ijuruhub/internal/bookings/service"
	"ijuruhub/internal/spaces/service"
	httputil "ijuruhub/pkg/http"
	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"

	"github.com/gorilla/mux"
)

type SpaceHandler struct {
	spaces      service.SpaceService
	coordinator bookingsvc.BookingService
	log         *logger.Logger
}

func NewSpaceHandler(spaces service.SpaceService, coordinator bookingsvc.BookingService, log *logger.Logger) *SpaceHandler {
	return &SpaceHandler{
		spaces:      spaces,
		coordinator: coordinator,
		log:         log,
	}
}

// RegisterRoutes mounts the space registry routes. Static paths are
// registered before the {spaceId} wildcard so "stats" never resolves as an ID.
func (h *SpaceHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/spaces", h.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/api/spaces/stats", h.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/spaces/type/{type}", h.GetByType).Methods(http.MethodGet)
	r.HandleFunc("/api/spaces/manual-booking", h.ManualBooking).Methods(http.MethodPost)
	r.HandleFunc("/api/spaces/reset", h.Reset).Methods(http.MethodPost)
	r.HandleFunc("/api/spaces/{spaceId}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/spaces/{spaceId}/occupant", h.Occupy).Methods(http.MethodPut)
	r.HandleFunc("/api/spaces/{spaceId}/occupant", h.Vacate).Methods(http.MethodDelete)
}

type groupedSpacesResponse struct {
	Success bool                 `json:"success"`
	Spaces  *model.GroupedSpaces `json:"spaces"`
}

func (h *SpaceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.spaces.GetAll(r.Context())
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	h.writeJSON(w, "GetAll", http.StatusOK, groupedSpacesResponse{Success: true, Spaces: grouped})
}

type spacesByTypeResponse struct {
	Success   bool           `json:"success"`
	Spaces    []*model.Space `json:"spaces"`
	Available int            `json:"available"`
	Total     int            `json:"total"`
}

func (h *SpaceHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	typeSlug := mux.Vars(r)["type"]

	spaces, available, total, err := h.spaces.GetByType(r.Context(), typeSlug)
	if err != nil {
		h.writeError(w, "GetByType", err)
		return
	}

	h.writeJSON(w, "GetByType", http.StatusOK, spacesByTypeResponse{
		Success:   true,
		Spaces:    spaces,
		Available: available,
		Total:     total,
	})
}

type spaceResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Space   *model.Space `json:"space"`
}

func (h *SpaceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["spaceId"]

	space, err := h.spaces.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	h.writeJSON(w, "GetByID", http.StatusOK, spaceResponse{Success: true, Space: space})
}

type spaceStatsResponse struct {
	Success bool              `json:"success"`
	Stats   *model.SpaceStats `json:"stats"`
}

func (h *SpaceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.spaces.Stats(r.Context())
	if err != nil {
		h.writeError(w, "Stats", err)
		return
	}

	h.writeJSON(w, "Stats", http.StatusOK, spaceStatsResponse{Success: true, Stats: stats})
}

type occupySpaceResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Space   *model.Space   `json:"space"`
	Booking *model.Booking `json:"booking"`
}

// Occupy assigns an occupant to a space. The coordinator records a confirmed
// backing booking alongside the occupancy.
func (h *SpaceHandler) Occupy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["spaceId"]

	var occupant model.Occupant
	if err := json.NewDecoder(r.Body).Decode(&occupant); err != nil {
		h.writeInvalidBody(w, "Occupy")
		return
	}

	space, booking, err := h.coordinator.OccupySpace(r.Context(), id, &occupant)
	if err != nil {
		h.writeError(w, "Occupy", err)
		return
	}

	h.writeJSON(w, "Occupy", http.StatusOK, occupySpaceResponse{
		Success: true,
		Message: "Space occupied successfully",
		Space:   space,
		Booking: booking,
	})
}

func (h *SpaceHandler) Vacate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["spaceId"]

	space, err := h.coordinator.VacateSpace(r.Context(), id)
	if err != nil {
		h.writeError(w, "Vacate", err)
		return
	}

	h.writeJSON(w, "Vacate", http.StatusOK, spaceResponse{
		Success: true,
		Message: "Space vacated successfully",
		Space:   space,
	})
}

type manualBookingRequest struct {
	SpaceID string `json:"spaceId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type manualBookingResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Booking *model.Booking `json:"booking"`
	Space   *model.Space   `json:"space"`
}

func (h *SpaceHandler) ManualBooking(w http.ResponseWriter, r *http.Request) {
	var req manualBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidBody(w, "ManualBooking")
		return
	}

	booking, space, err := h.coordinator.CreateManual(r.Context(), req.SpaceID, req.Name, req.Phone, req.Email)
	if err != nil {
		h.writeError(w, "ManualBooking", err)
		return
	}

	h.writeJSON(w, "ManualBooking", http.StatusCreated, manualBookingResponse{
		Success: true,
		Message: "Manual booking created successfully",
		Booking: booking,
		Space:   space,
	})
}

func (h *SpaceHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.spaces.Reset(r.Context()); err != nil {
		h.writeError(w, "Reset", err)
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "All spaces reset to available"); err != nil {
		h.log.Error("failed to write response", "handler", "Reset", "error", err)
	}
}

func (h *SpaceHandler) writeJSON(w http.ResponseWriter, handlerName string, statusCode int, data any) {
	if err := httputil.WriteJSON(w, statusCode, data); err != nil {
		h.log.Error("failed to write response", "handler", handlerName, "error", err)
	}
}

func (h *SpaceHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *SpaceHandler) writeInvalidBody(w http.ResponseWriter, handlerName string) {
	h.writeJSON(w, handlerName, http.StatusBadRequest, httputil.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}
