package model

import "time"

const ContactInterestGeneral = "General Inquiry"

// ContactInterests are the subjects the contact form accepts.
var ContactInterests = []string{
	SpaceTypeHotDesk,
	SpaceTypeDedicatedDesk,
	SpaceTypePrivateOffice,
	SpaceTypeMeetingRoom,
	ContactInterestGeneral,
}

func IsValidContactInterest(interest string) bool {
	for _, i := range ContactInterests {
		if i == interest {
			return true
		}
	}
	return false
}

// Contact is one contact-form submission.
type Contact struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string    `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string    `json:"lastName" bson:"lastName" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone" bson:"phone"`
	Interest  string    `json:"interest" bson:"interest" validate:"required"`
	Message   string    `json:"message" bson:"message" validate:"required"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
