package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// FilterAll is the sentinel query value meaning "no predicate".
const FilterAll = "all"

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds a claim on its space.
// Completed and cancelled bookings are closed.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Booking is one reservation attempt. Bookings are never hard-deleted through
// the public API; cancellation is the terminal soft-delete. The only hard
// delete is the coordinator rolling back a record whose space occupation
// failed mid-flight.
type Booking struct {
	ID               string    `json:"id,omitempty" bson:"_id,omitempty"`
	BookingReference string    `json:"bookingReference" bson:"bookingReference"`
	Name             string    `json:"name" bson:"name" validate:"required"`
	Email            string    `json:"email" bson:"email" validate:"required,email"`
	Phone            string    `json:"phone" bson:"phone" validate:"required"`
	SpaceID          string    `json:"spaceId" bson:"spaceId" validate:"required"`
	SpaceName        string    `json:"spaceName" bson:"spaceName" validate:"required"`
	SpaceType        string    `json:"spaceType" bson:"spaceType" validate:"required"`
	Date             time.Time `json:"date" bson:"date" validate:"required"`
	Time             string    `json:"time" bson:"time" validate:"required"`
	Duration         int       `json:"duration" bson:"duration"`
	Price            string    `json:"price" bson:"price"`
	Message          string    `json:"message" bson:"message"`

	Status        string `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string `json:"paymentStatus" bson:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`

	CancellationReason string     `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BookingUpdate carries the mutable subset for partial updates. Nil or empty
// fields are left untouched.
type BookingUpdate struct {
	Status             string     `json:"status,omitempty" bson:"status,omitempty"`
	PaymentStatus      string     `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	Date               *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Time               string     `json:"time,omitempty" bson:"time,omitempty"`
	Duration           *int       `json:"duration,omitempty" bson:"duration,omitempty"`
	Price              string     `json:"price,omitempty" bson:"price,omitempty"`
	Message            string     `json:"message,omitempty" bson:"message,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}

// IsZero reports whether the update would change nothing.
func (u *BookingUpdate) IsZero() bool {
	return u.Status == "" && u.PaymentStatus == "" && u.Date == nil && u.Time == "" &&
		u.Duration == nil && u.Price == "" && u.Message == "" &&
		u.CancellationReason == "" && u.CancelledAt == nil
}

// BookingFilter is the conjunction of optional predicates for ledger listing.
// Status and PaymentStatus accept FilterAll (or empty) to mean no predicate;
// Search is a case-insensitive substring matched against name, email,
// bookingReference and spaceName.
type BookingFilter struct {
	Status        string
	PaymentStatus string
	Search        string
}

// BookingStats aggregates ledger counts. Revenue sums the numeric value parsed
// out of each paid booking's display price.
type BookingStats struct {
	Total int `json:"total"`

	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	PendingPayments int `json:"pendingPayments"`
	PaidBookings    int `json:"paidBookings"`
	FailedPayments  int `json:"failedPayments"`

	Revenue float64 `json:"revenue"`

	SpaceTypes map[string]int `json:"spaceTypes"`
}
