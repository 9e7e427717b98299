// FILE: internal/service/contact_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/pkg/mailer"
	"dreamlife-be/internal/repository/specification"
	"dreamlife-be/internal/repository/unitofwork"

	"dreamlife-be/pkg/events"
	pktNats "dreamlife-be/pkg/nats"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.SubmitContactRequest, ipAddress, userAgent string) (*dto.SubmitContactResponse, error)
	List(ctx context.Context, page, limit int, status string) (*dto.ContactListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IContactService {
	return &contactService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func toContactResponse(c *entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		Id:        c.Id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.SubmitContactRequest, ipAddress, userAgent string) (*dto.SubmitContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact := &entity.Contact{
		Id:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    entity.ContactStatusUnread,
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.ContactRepository().Create(ctx, contact); err != nil {
		return nil, err
	}

	// Notify the admin inbox, best effort
	go func() {
		emailErr := s.emailService.SendContactNotification(req.FirstName, req.LastName, req.Email, req.Phone, req.Message)
		if emailErr != nil {
			fmt.Printf("Error sending contact notification email: %v\n", emailErr)
		}
	}()

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "CONTACT_RECEIVED",
			Data: map[string]interface{}{
				"contact_id": contact.Id,
				"email":      contact.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish CONTACT_RECEIVED event: %v\n", err)
		}
	}

	return &dto.SubmitContactResponse{
		Id:      contact.Id,
		Message: "Thank you for reaching out! We'll get back to you soon.",
	}, nil
}

func (s *contactService) List(ctx context.Context, page, limit int, status string) (*dto.ContactListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	countSpecs := []specification.Specification{}
	listSpecs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	}
	if status != "" {
		countSpecs = append(countSpecs, specification.ByStatus{Status: status})
		listSpecs = append(listSpecs, specification.ByStatus{Status: status})
	}

	total, err := uow.ContactRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	contacts, err := uow.ContactRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, toContactResponse(c))
	}

	return &dto.ContactListResponse{
		Contacts: items,
		Pagination: dto.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fmt.Errorf("contact not found")
	}

	if err := uow.ContactRepository().UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	contact.Status = status
	resp := toContactResponse(contact)
	return &resp, nil
}
