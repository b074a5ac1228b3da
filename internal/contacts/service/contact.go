package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ijuruhub/internal/contacts/repository"
	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
	"ijuruhub/pkg/model"
	"ijuruhub/pkg/notify"
	"ijuruhub/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

// ContactService records contact-form submissions and notifies the admin.
type ContactService interface {
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Contact, error)
}

type contactService struct {
	repo       repository.ContactRepository
	validate   *validator.Validate
	dispatcher *notify.Dispatcher
	cfg        *config.Config
}

func NewContactService(repo repository.ContactRepository, dispatcher *notify.Dispatcher, cfg *config.Config) ContactService {
	return &contactService{
		repo:       repo,
		validate:   validator.New(),
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

func (s *contactService) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	contact.FirstName = sanitizer.Name(contact.FirstName)
	contact.LastName = sanitizer.Name(contact.LastName)
	contact.Email = sanitizer.Email(contact.Email)
	contact.Phone = sanitizer.Phone(contact.Phone)
	contact.Message = sanitizer.Text(contact.Message)
	if contact.Interest == "" {
		contact.Interest = model.ContactInterestGeneral
	}

	if err := s.validate.Struct(contact); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]any, len(validationErrs))
			for _, ve := range validationErrs {
				details[ve.Field()] = translateTag(ve)
			}
			return nil, apperrors.Validation("Validation failed", details)
		}
		return nil, apperrors.Validation(err.Error(), nil)
	}
	if !model.IsValidContactInterest(contact.Interest) {
		return nil, apperrors.Validation("Invalid interest", map[string]any{"interest": contact.Interest})
	}

	contact.ID = ""
	contact.CreatedAt = time.Now().UTC()

	created, err := s.repo.Insert(ctx, contact)
	if err != nil {
		s.cfg.Log.Error("Failed to store contact submission", "error", err)
		return nil, apperrors.Internal("Failed to submit contact form", err)
	}

	s.dispatcher.ContactReceived(created)
	s.cfg.Log.Info("Contact form submitted", "email", created.Email, "interest", created.Interest)
	return created, nil
}

func (s *contactService) ListRecent(ctx context.Context, limit int) ([]*model.Contact, error) {
	limit = config.NormalizeLimit(limit)

	contacts, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list contacts", "error", err)
		return nil, apperrors.Internal("Failed to fetch contacts", err)
	}
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	return contacts, nil
}

func translateTag(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ve.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", ve.Field())
	}
	return ve.Error()
}
