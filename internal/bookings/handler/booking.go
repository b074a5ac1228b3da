package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ijuruhub/internal/bookings/service"
	apperrors "ijuruhub/pkg/errors"
	httputil "ijuruhub/pkg/http"
	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/booking", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/booking", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/booking/stats", h.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/booking/date-range", h.DateRange).Methods(http.MethodGet)
	r.HandleFunc("/api/booking/bulk-update", h.BulkUpdate).Methods(http.MethodPatch)
	r.HandleFunc("/api/booking/reference/{reference}", h.GetByReference).Methods(http.MethodGet)
	r.HandleFunc("/api/booking/{id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/booking/{id}", h.Cancel).Methods(http.MethodDelete)
	r.HandleFunc("/api/booking/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
}

type bookingResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Booking *model.Booking `json:"booking"`
}

// createBookingRequest is the public creation payload. Status and payment
// fields are deliberately absent, those belong to the service.
type createBookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	SpaceID  string `json:"spaceId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Price    string `json:"price"`
	Message  string `json:"message"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidBody(w, "Create")
		return
	}

	date, err := parseBookingDate(req.Date)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	booking := &model.Booking{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		SpaceID:  req.SpaceID,
		Date:     date,
		Time:     req.Time,
		Duration: req.Duration,
		Price:    req.Price,
		Message:  req.Message,
	}

	created, err := h.service.Create(r.Context(), booking)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	h.writeJSON(w, "Create", http.StatusCreated, bookingResponse{
		Success: true,
		Message: "Booking created successfully",
		Booking: created,
	})
}

type bookingListResponse struct {
	Success    bool                `json:"success"`
	Bookings   []*model.Booking    `json:"bookings"`
	Pagination httputil.Pagination `json:"pagination"`
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := httputil.ExtractPageLimit(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	query := r.URL.Query()
	filter := &model.BookingFilter{
		Status:        query.Get("status"),
		PaymentStatus: query.Get("paymentStatus"),
		Search:        query.Get("search"),
	}

	bookings, total, err := h.service.List(r.Context(), filter, page, limit)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	h.writeJSON(w, "List", http.StatusOK, bookingListResponse{
		Success:  true,
		Bookings: bookings,
		Pagination: httputil.Pagination{
			Current:       page,
			Total:         totalPages,
			Count:         len(bookings),
			TotalBookings: total,
		},
	})
}

type bookingStatsResponse struct {
	Success bool                `json:"success"`
	Stats   *model.BookingStats `json:"stats"`
}

func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, "Stats", err)
		return
	}

	h.writeJSON(w, "Stats", http.StatusOK, bookingStatsResponse{Success: true, Stats: stats})
}

type bookingRangeResponse struct {
	Success  bool             `json:"success"`
	Bookings []*model.Booking `json:"bookings"`
	Count    int              `json:"count"`
}

// DateRange lists bookings between two calendar dates, both inclusive.
// Query params are startDate/endDate/status/spaceType; the short forms
// start/end/type are accepted as aliases.
func (h *BookingHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := parseDate(queryParam(query, "startDate", "start"))
	if err != nil {
		h.writeError(w, "DateRange", err)
		return
	}
	end, err := parseDate(queryParam(query, "endDate", "end"))
	if err != nil {
		h.writeError(w, "DateRange", err)
		return
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	bookings, err := h.service.ListByDateRange(r.Context(), start, end, query.Get("status"), queryParam(query, "spaceType", "type"))
	if err != nil {
		h.writeError(w, "DateRange", err)
		return
	}

	h.writeJSON(w, "DateRange", http.StatusOK, bookingRangeResponse{
		Success:  true,
		Bookings: bookings,
		Count:    len(bookings),
	})
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	h.writeJSON(w, "GetByID", http.StatusOK, bookingResponse{Success: true, Booking: booking})
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		h.writeError(w, "GetByReference", err)
		return
	}

	h.writeJSON(w, "GetByReference", http.StatusOK, bookingResponse{Success: true, Booking: booking})
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var updates model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeInvalidBody(w, "UpdateStatus")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	h.writeJSON(w, "UpdateStatus", http.StatusOK, bookingResponse{
		Success: true,
		Message: "Booking updated successfully",
		Booking: updated,
	})
}

type bulkUpdateRequest struct {
	BookingIDs    []string `json:"bookingIds"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
}

type bulkUpdateResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Updated  int              `json:"updated"`
	Bookings []*model.Booking `json:"bookings"`
}

func (h *BookingHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeInvalidBody(w, "BulkUpdate")
		return
	}

	updates := &model.BookingUpdate{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	}

	updated, err := h.service.BulkUpdate(r.Context(), req.BookingIDs, updates)
	if err != nil {
		h.writeError(w, "BulkUpdate", err)
		return
	}

	h.writeJSON(w, "BulkUpdate", http.StatusOK, bulkUpdateResponse{
		Success:  true,
		Message:  fmt.Sprintf("%d booking(s) updated", len(updated)),
		Updated:  len(updated),
		Bookings: updated,
	})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel is the soft delete: the booking stays in the ledger as cancelled.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req cancelRequest
	if r.Body != nil {
		// The reason body is optional.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	cancelled, err := h.service.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	h.writeJSON(w, "Cancel", http.StatusOK, bookingResponse{
		Success: true,
		Message: "Booking cancelled successfully",
		Booking: cancelled,
	})
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.InvalidInput("Start and end dates are required")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid date: %s, expected YYYY-MM-DD", value))
	}
	return t, nil
}

// parseBookingDate accepts the date-only form a calendar picker submits as
// well as a full RFC3339 timestamp. An empty date is passed through as zero
// so the validator reports the missing field.
func parseBookingDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid date: %s, expected YYYY-MM-DD", value))
}

func queryParam(query url.Values, name, alias string) string {
	if v := query.Get(name); v != "" {
		return v
	}
	return query.Get(alias)
}

func (h *BookingHandler) writeJSON(w http.ResponseWriter, handlerName string, statusCode int, data any) {
	if err := httputil.WriteJSON(w, statusCode, data); err != nil {
		h.log.Error("failed to write response", "handler", handlerName, "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *BookingHandler) writeInvalidBody(w http.ResponseWriter, handlerName string) {
	h.writeJSON(w, handlerName, http.StatusBadRequest, httputil.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}
