package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	bookingserrors "ijuruhub/internal/bookings/errors"
	"ijuruhub/internal/bookings/repository"
	"ijuruhub/internal/bookings/validator"
	spaceserrors "ijuruhub/internal/spaces/errors"
	spacesrepo "ijuruhub/internal/spaces/repository"
	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
	"ijuruhub/pkg/model"
	"ijuruhub/pkg/notify"
	"ijuruhub/pkg/sanitizer"
)

// ManualBookingEmail is the placeholder contact for walk-in bookings recorded
// by staff without a customer email.
const ManualBookingEmail = "manual@booking.local"

// DefaultCancellationReason is recorded when a cancellation arrives without
// an explicit reason.
const DefaultCancellationReason = "Cancelled by admin"

const maxReferenceAttempts = 3

// BookingService coordinates the booking ledger and the space registry.
// Every occupancy transition goes through here, paired with exactly one
// active booking, so the two collections cannot drift apart.
type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	CreateManual(ctx context.Context, spaceID, name, phone, email string) (*model.Booking, *model.Space, error)
	OccupySpace(ctx context.Context, spaceID string, occupant *model.Occupant) (*model.Space, *model.Booking, error)
	VacateSpace(ctx context.Context, spaceID string) (*model.Space, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)
	List(ctx context.Context, filter *model.BookingFilter, page, limit int) ([]*model.Booking, int64, error)
	ListByDateRange(ctx context.Context, start, end time.Time, status, spaceType string) ([]*model.Booking, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	BulkUpdate(ctx context.Context, ids []string, updates *model.BookingUpdate) ([]*model.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*model.Booking, error)
	Stats(ctx context.Context) (*model.BookingStats, error)
}

type bookingService struct {
	bookings   repository.BookingRepository
	spaces     spacesrepo.SpaceRepository
	validator  *validator.BookingValidator
	dispatcher *notify.Dispatcher
	cfg        *config.Config
}

func NewBookingService(
	bookings repository.BookingRepository,
	spaces spacesrepo.SpaceRepository,
	v *validator.BookingValidator,
	dispatcher *notify.Dispatcher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		bookings:   bookings,
		spaces:     spaces,
		validator:  v,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// Create records a public booking request and occupies its space. The space
// must be available at the moment of the conditional occupy; losing that race
// rolls the just-inserted booking back out of the ledger.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	s.sanitizeBooking(booking)

	space, err := s.getSpace(ctx, booking.SpaceID)
	if err != nil {
		return nil, err
	}
	if space.Status == model.SpaceStatusOccupied {
		return nil, apperrors.Conflict("This space is currently occupied. Please choose another space.")
	}

	s.applySpaceDetails(booking, space)
	s.applyDefaults(booking)

	if err := s.validator.Validate(booking); err != nil {
		return nil, validationError(err)
	}

	created, err := s.insertWithOccupy(ctx, booking, &model.Occupant{Name: booking.Name, Phone: booking.Phone})
	if err != nil {
		return nil, err
	}

	s.dispatcher.BookingCreated(created)
	s.cfg.Log.Info("Booking created",
		"reference", created.BookingReference,
		"space_id", created.SpaceID,
		"status", created.Status,
	)
	return created, nil
}

// CreateManual records a walk-in booking on behalf of staff. The booking is
// confirmed immediately and carries a placeholder email when none is given.
func (s *bookingService) CreateManual(ctx context.Context, spaceID, name, phone, email string) (*model.Booking, *model.Space, error) {
	name = sanitizer.Name(name)
	phone = sanitizer.Phone(phone)
	if name == "" || phone == "" {
		return nil, nil, apperrors.Validation("Name and phone are required", nil)
	}
	if email == "" {
		email = ManualBookingEmail
	}

	space, err := s.getSpace(ctx, spaceID)
	if err != nil {
		return nil, nil, err
	}
	if space.Status == model.SpaceStatusOccupied {
		return nil, nil, apperrors.Conflict("Space is already occupied")
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		Name:          name,
		Email:         sanitizer.Email(email),
		Phone:         phone,
		SpaceID:       space.ID,
		SpaceName:     space.Name,
		SpaceType:     space.Type,
		Date:          now,
		Time:          now.Format("15:04"),
		Duration:      config.DefaultBookingDuration,
		Price:         spacePrice(space),
		Status:        model.BookingStatusConfirmed,
		PaymentStatus: model.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.insertManualWithOccupy(ctx, booking, &model.Occupant{Name: name, Phone: phone})
	if err != nil {
		return nil, nil, err
	}

	occupied, err := s.spaces.Get(ctx, space.ID)
	if err != nil {
		occupied = space
	}

	s.cfg.Log.Info("Manual booking created", "reference", created.BookingReference, "space_id", space.ID)
	return created, occupied, nil
}

// OccupySpace assigns an occupant directly. A backing booking is created so
// the occupied space still has exactly one active booking.
func (s *bookingService) OccupySpace(ctx context.Context, spaceID string, occupant *model.Occupant) (*model.Space, *model.Booking, error) {
	if occupant == nil || sanitizer.Name(occupant.Name) == "" || sanitizer.Phone(occupant.Phone) == "" {
		return nil, nil, apperrors.Validation("Occupant name and phone are required", nil)
	}

	booking, space, err := s.CreateManual(ctx, spaceID, occupant.Name, occupant.Phone, "")
	if err != nil {
		return nil, nil, err
	}
	return space, booking, nil
}

// VacateSpace frees a space directly. The active booking holding it, if any,
// is closed as completed so the ledger agrees with the registry.
func (s *bookingService) VacateSpace(ctx context.Context, spaceID string) (*model.Space, error) {
	space, err := s.spaces.Vacate(ctx, spaceID)
	if err != nil {
		switch {
		case errors.Is(err, spaceserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Space", spaceID)
		case errors.Is(err, spaceserrors.ErrAlreadyAvailable):
			return nil, apperrors.Conflict("Space is already available")
		}
		s.cfg.Log.Error("Failed to vacate space", "space_id", spaceID, "error", err)
		return nil, apperrors.Internal("Failed to vacate space", err)
	}

	active, err := s.bookings.FindActiveBySpace(ctx, spaceID)
	if err != nil {
		if !errors.Is(err, bookingserrors.ErrNotFound) {
			s.cfg.Log.Error("Failed to look up active booking for vacated space", "space_id", spaceID, "error", err)
		}
		return space, nil
	}

	if _, err := s.bookings.Update(ctx, active.ID, &model.BookingUpdate{Status: model.BookingStatusCompleted}); err != nil {
		s.cfg.Log.Error("Failed to complete booking for vacated space",
			"space_id", spaceID,
			"booking_id", active.ID,
			"error", err,
		)
	}

	return space, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}
	return booking, nil
}

func (s *bookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	if reference == "" {
		return nil, apperrors.InvalidInput("Booking reference cannot be empty")
	}

	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Booking")
		}
		s.cfg.Log.Error("Failed to find booking by reference", "reference", reference, "error", err)
		return nil, apperrors.Internal("Failed to fetch booking", err)
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, filter *model.BookingFilter, page, limit int) ([]*model.Booking, int64, error) {
	page = config.NormalizePage(page)
	limit = config.NormalizeLimit(limit)

	bookings, total, err := s.bookings.Find(ctx, filter, page, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, 0, apperrors.Internal("Failed to fetch bookings", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, total, nil
}

func (s *bookingService) ListByDateRange(ctx context.Context, start, end time.Time, status, spaceType string) ([]*model.Booking, error) {
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.InvalidInput("Start and end dates are required")
	}
	if end.Before(start) {
		return nil, apperrors.InvalidInput("End date must not be before start date")
	}
	if status != "" && status != model.FilterAll && !model.IsValidBookingStatus(status) {
		return nil, apperrors.InvalidInput("Invalid booking status: " + status)
	}
	if spaceType != "" && !model.IsValidSpaceType(spaceType) {
		return nil, apperrors.InvalidInput("Invalid space type: " + spaceType)
	}

	bookings, err := s.bookings.FindByDateRange(ctx, start, end, status, spaceType)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by date range", "error", err)
		return nil, apperrors.Internal("Failed to fetch bookings", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

// Update applies a partial update. Moving an active booking to a terminal
// status releases its space.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}
	wasActive := existing.IsActive()

	if updates.Status == model.BookingStatusCancelled && updates.CancelledAt == nil {
		now := time.Now().UTC()
		updates.CancelledAt = &now
	}

	updated, err := s.bookings.Update(ctx, id, updates)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	if wasActive && !updated.IsActive() {
		s.releaseSpace(ctx, updated.SpaceID, updated.ID)
	}

	if updates.Status == model.BookingStatusCancelled {
		s.dispatcher.BookingCancelled(updated, updates.CancellationReason)
	} else {
		s.dispatcher.BookingUpdated(updated, updates)
	}

	s.cfg.Log.Info("Booking updated", "booking_id", updated.ID, "reference", updated.BookingReference)
	return updated, nil
}

// BulkUpdate applies one update to many bookings. Validation is all-or-
// nothing: an unknown ID fails the whole batch before anything is written.
func (s *bookingService) BulkUpdate(ctx context.Context, ids []string, updates *model.BookingUpdate) ([]*model.Booking, error) {
	if len(ids) == 0 {
		return nil, apperrors.InvalidInput("At least one booking ID is required")
	}
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.bookings.FindManyByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID")
		}
		s.cfg.Log.Error("Failed to load bookings for bulk update", "error", err)
		return nil, apperrors.Internal("Failed to fetch bookings", err)
	}
	if len(existing) != len(uniqueIDs(ids)) {
		return nil, apperrors.NotFound("One or more bookings")
	}

	activeBefore := make(map[string]*model.Booking)
	for _, b := range existing {
		if b.IsActive() {
			activeBefore[b.ID] = b
		}
	}

	if updates.Status == model.BookingStatusCancelled {
		if updates.CancelledAt == nil {
			now := time.Now().UTC()
			updates.CancelledAt = &now
		}
		if updates.CancellationReason == "" {
			updates.CancellationReason = DefaultCancellationReason
		}
	}

	if _, err := s.bookings.UpdateMany(ctx, ids, updates); err != nil {
		s.cfg.Log.Error("Failed to bulk update bookings", "error", err)
		return nil, apperrors.Internal("Failed to update bookings", err)
	}

	updated, err := s.bookings.FindManyByIDs(ctx, ids)
	if err != nil {
		s.cfg.Log.Error("Failed to reload bookings after bulk update", "error", err)
		return nil, apperrors.Internal("Failed to fetch updated bookings", err)
	}

	for _, b := range updated {
		if _, was := activeBefore[b.ID]; was && !b.IsActive() {
			s.releaseSpace(ctx, b.SpaceID, b.ID)
		}
		if updates.Status == model.BookingStatusCancelled {
			s.dispatcher.BookingCancelled(b, updates.CancellationReason)
		} else {
			s.dispatcher.BookingUpdated(b, updates)
		}
	}

	s.cfg.Log.Info("Bulk booking update applied", "count", len(updated))
	return updated, nil
}

// Cancel marks a booking cancelled and releases its space if it was active.
// Cancellation is terminal; cancelling twice is a conflict.
func (s *bookingService) Cancel(ctx context.Context, id, reason string) (*model.Booking, error) {
	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}
	if existing.Status == model.BookingStatusCancelled {
		return nil, apperrors.Conflict("Booking is already cancelled")
	}
	wasActive := existing.IsActive()

	reason = sanitizer.Text(reason)
	if reason == "" {
		reason = DefaultCancellationReason
	}

	now := time.Now().UTC()
	updates := &model.BookingUpdate{
		Status:             model.BookingStatusCancelled,
		CancellationReason: reason,
		CancelledAt:        &now,
	}

	cancelled, err := s.bookings.Update(ctx, id, updates)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}

	if wasActive {
		s.releaseSpace(ctx, cancelled.SpaceID, cancelled.ID)
	}

	s.dispatcher.BookingCancelled(cancelled, updates.CancellationReason)
	s.cfg.Log.Info("Booking cancelled", "booking_id", cancelled.ID, "reference", cancelled.BookingReference)
	return cancelled, nil
}

// Stats aggregates the whole ledger. Revenue is the sum of the numeric part
// of each paid booking's display price.
func (s *bookingService) Stats(ctx context.Context) (*model.BookingStats, error) {
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings for stats", "error", err)
		return nil, apperrors.Internal("Failed to fetch booking statistics", err)
	}

	stats := &model.BookingStats{
		Total:      len(bookings),
		SpaceTypes: make(map[string]int),
	}

	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusPending:
			stats.Pending++
		case model.BookingStatusConfirmed:
			stats.Confirmed++
		case model.BookingStatusCompleted:
			stats.Completed++
		case model.BookingStatusCancelled:
			stats.Cancelled++
		}

		switch b.PaymentStatus {
		case model.PaymentStatusPending:
			stats.PendingPayments++
		case model.PaymentStatusPaid:
			stats.PaidBookings++
			stats.Revenue += parsePrice(b.Price)
		case model.PaymentStatusFailed:
			stats.FailedPayments++
		}

		if b.SpaceType != "" {
			stats.SpaceTypes[b.SpaceType]++
		}
	}

	return stats, nil
}

// insertWithOccupy writes the booking, retrying reference collisions, then
// occupies the space. If the occupy loses the race the booking is deleted.
func (s *bookingService) insertWithOccupy(ctx context.Context, booking *model.Booking, occupant *model.Occupant) (*model.Booking, error) {
	return s.insert(ctx, booking, occupant, func() string {
		return NewBookingReference(booking.SpaceType)
	})
}

func (s *bookingService) insertManualWithOccupy(ctx context.Context, booking *model.Booking, occupant *model.Occupant) (*model.Booking, error) {
	return s.insert(ctx, booking, occupant, NewManualReference)
}

func (s *bookingService) insert(ctx context.Context, booking *model.Booking, occupant *model.Occupant, newReference func() string) (*model.Booking, error) {
	var created *model.Booking
	var err error

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		booking.BookingReference = newReference()
		created, err = s.bookings.Insert(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingserrors.ErrDuplicateReference) {
			s.cfg.Log.Error("Failed to insert booking", "error", err)
			return nil, apperrors.Internal("Failed to create booking", err)
		}
		s.cfg.Log.Warn("Booking reference collision, regenerating", "reference", booking.BookingReference)
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to generate a unique booking reference", err)
	}

	if _, err := s.spaces.Occupy(ctx, booking.SpaceID, occupant.Name, occupant.Phone); err != nil {
		s.rollbackBooking(ctx, created.ID)
		switch {
		case errors.Is(err, spaceserrors.ErrAlreadyOccupied):
			return nil, apperrors.Conflict("This space is currently occupied. Please choose another space.")
		case errors.Is(err, spaceserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Space", booking.SpaceID)
		}
		s.cfg.Log.Error("Failed to occupy space for booking", "space_id", booking.SpaceID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	return created, nil
}

func (s *bookingService) rollbackBooking(ctx context.Context, id string) {
	if err := s.bookings.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to roll back booking after occupy failure", "booking_id", id, "error", err)
	}
}

// releaseSpace vacates a booking's space after the booking closed. A space
// that is already available is fine; anything else is logged and swallowed,
// the booking update has already happened.
func (s *bookingService) releaseSpace(ctx context.Context, spaceID, bookingID string) {
	if spaceID == "" {
		return
	}
	if _, err := s.spaces.Vacate(ctx, spaceID); err != nil {
		if errors.Is(err, spaceserrors.ErrAlreadyAvailable) || errors.Is(err, spaceserrors.ErrNotFound) {
			return
		}
		s.cfg.Log.Error("Failed to release space for closed booking",
			"space_id", spaceID,
			"booking_id", bookingID,
			"error", err,
		)
	}
}

func (s *bookingService) getSpace(ctx context.Context, spaceID string) (*model.Space, error) {
	if spaceID == "" {
		return nil, apperrors.Validation("Space ID is required", nil)
	}

	space, err := s.spaces.Get(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spaceserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Space", spaceID)
		}
		s.cfg.Log.Error("Failed to fetch space", "space_id", spaceID, "error", err)
		return nil, apperrors.Internal("Failed to fetch space", err)
	}
	return space, nil
}

func (s *bookingService) sanitizeBooking(booking *model.Booking) {
	booking.Name = sanitizer.Name(booking.Name)
	booking.Email = sanitizer.Email(booking.Email)
	booking.Phone = sanitizer.Phone(booking.Phone)
	booking.Message = sanitizer.Text(booking.Message)
	booking.Time = sanitizer.Text(booking.Time)
	booking.SpaceID = sanitizer.Text(booking.SpaceID)
}

// applySpaceDetails pins name, type and price to the registry record so the
// client cannot book one space under another's label.
func (s *bookingService) applySpaceDetails(booking *model.Booking, space *model.Space) {
	booking.SpaceName = space.Name
	booking.SpaceType = space.Type
	if booking.Price == "" {
		booking.Price = spacePrice(space)
	}
}

// applyDefaults resets the server-owned fields. Status and paymentStatus are
// never taken from the request; a client-supplied terminal status would leave
// the space occupied with no active booking to release it.
func (s *bookingService) applyDefaults(booking *model.Booking) {
	now := time.Now().UTC()
	if booking.Duration <= 0 {
		booking.Duration = config.DefaultBookingDuration
	}
	if s.cfg.BookingAutoConfirm {
		booking.Status = model.BookingStatusConfirmed
	} else {
		booking.Status = model.BookingStatusPending
	}
	booking.PaymentStatus = model.PaymentStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.ID = ""
	booking.CancellationReason = ""
	booking.CancelledAt = nil
}

func (s *bookingService) mapLookupError(err error, id string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid booking ID")
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Booking", id)
	}
	s.cfg.Log.Error("Booking lookup failed", "booking_id", id, "error", err)
	return apperrors.Internal("Failed to fetch booking", err)
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		message := "Validation failed"
		if len(verrs) == 1 {
			message = verrs[0].Message
		}
		return apperrors.Validation(message, details)
	}
	return apperrors.Validation(err.Error(), nil)
}

func spacePrice(space *model.Space) string {
	if space.Price != "" {
		return space.Price
	}
	return config.DefaultBookingPrice
}

var nonNumericPrice = regexp.MustCompile(`[^0-9.]`)

// parsePrice extracts the numeric amount out of a display price like
// "5,000 RWF/hour". Unparseable prices count as zero.
func parsePrice(price string) float64 {
	cleaned := nonNumericPrice.ReplaceAllString(price, "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
