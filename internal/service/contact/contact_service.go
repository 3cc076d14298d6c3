package contact

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/kafka"
	"github.com/zanzibar-explore/tours-backend/internal/repository"
)

type ContactUseCase interface {
	Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ContactService struct {
	contacts    repository.ContactRepository
	producer    Producer
	eventsTopic string
}

type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (in CreateContactInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidEmail(in.Email) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if in.Subject == "" {
		return fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if in.Message == "" {
		return fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	return nil
}

func NewContactService(contacts repository.ContactRepository, producer Producer, eventsTopic string) *ContactService {
	return &ContactService{contacts: contacts, producer: producer, eventsTopic: eventsTopic}
}

func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.publish(ctx, "contact_created", contact.ID, contact.Email, string(contact.Status))
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidContactStatus(status) {
		return fmt.Errorf("%w: status must be one of: new, replied, closed", domain.ErrInvalidStatus)
	}

	if err := s.contacts.UpdateStatus(ctx, id, domain.ContactStatus(status)); err != nil {
		return err
	}

	s.publish(ctx, "contact_status_updated", id, "", status)
	return nil
}

func (s *ContactService) publish(ctx context.Context, eventType, id, email, status string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.Event{
		Type:       eventType,
		EntityID:   id,
		Email:      email,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, id, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, id, err)
	}
}

var _ ContactUseCase = (*ContactService)(nil)
