package service

import (
	"context"
	"testing"
	"time"

	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"
	"ijuruhub/pkg/notify"
)

type mockContactRepository struct {
	insertFunc     func(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	findRecentFunc func(ctx context.Context, limit int) ([]*model.Contact, error)
}

func (m *mockContactRepository) Insert(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, contact)
	}
	contact.ID = "507f1f77bcf86cd799439011"
	return contact, nil
}

func (m *mockContactRepository) FindRecent(ctx context.Context, limit int) ([]*model.Contact, error) {
	if m.findRecentFunc != nil {
		return m.findRecentFunc(ctx, limit)
	}
	return []*model.Contact{}, nil
}

func newTestService(repo *mockContactRepository) ContactService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{
			Level:   logger.ERROR,
			Format:  logger.JSON,
			Service: "test",
		}),
	}
	return NewContactService(repo, notify.NewDispatcher(cfg.Log, time.Second), cfg)
}

func validContact() *model.Contact {
	return &model.Contact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+250788123456",
		Interest:  model.SpaceTypeHotDesk,
		Message:   "Do you have weekend access?",
	}
}

func TestCreate_Valid(t *testing.T) {
	svc := newTestService(&mockContactRepository{})

	created, err := svc.Create(context.Background(), validContact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an ID on the stored contact")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be stamped")
	}
}

func TestCreate_DefaultsInterest(t *testing.T) {
	svc := newTestService(&mockContactRepository{})

	contact := validContact()
	contact.Interest = ""

	created, err := svc.Create(context.Background(), contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Interest != model.ContactInterestGeneral {
		t.Errorf("expected default interest, got %s", created.Interest)
	}
}

func TestCreate_SanitizesInput(t *testing.T) {
	svc := newTestService(&mockContactRepository{})

	contact := validContact()
	contact.FirstName = "  Jane   "
	contact.Email = " Jane@Example.COM "

	created, err := svc.Create(context.Background(), contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.FirstName != "Jane" {
		t.Errorf("expected trimmed first name, got %q", created.FirstName)
	}
	if created.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	inserted := false
	svc := newTestService(&mockContactRepository{
		insertFunc: func(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
			inserted = true
			return contact, nil
		},
	})

	contact := validContact()
	contact.Email = ""
	contact.Message = ""

	_, err := svc.Create(context.Background(), contact)
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if inserted {
		t.Error("invalid contact must not be stored")
	}
}

func TestCreate_UnknownInterest(t *testing.T) {
	svc := newTestService(&mockContactRepository{})

	contact := validContact()
	contact.Interest = "Rooftop Pool"

	_, err := svc.Create(context.Background(), contact)
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListRecent_NormalizesLimit(t *testing.T) {
	var gotLimit int
	svc := newTestService(&mockContactRepository{
		findRecentFunc: func(ctx context.Context, limit int) ([]*model.Contact, error) {
			gotLimit = limit
			return nil, nil
		},
	})

	contacts, err := svc.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("expected default limit 50, got %d", gotLimit)
	}
	if contacts == nil {
		t.Error("expected an empty slice, not nil")
	}
}
