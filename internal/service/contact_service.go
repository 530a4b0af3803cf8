package service

import (
	"context"
	"errors"
	"fmt"

	"contact_api/internal/model"
	"contact_api/internal/repository"
	"contact_api/internal/validation"

	"github.com/sirupsen/logrus"
)

// ContactService defines operations on the authenticated user's contacts.
// A contact owned by someone else is reported as ErrContactNotFound.
type ContactService interface {
	Create(ctx context.Context, user *model.User, req model.ContactRequest) (*model.Contact, error)
	Get(ctx context.Context, user *model.User, contactID int64) (*model.Contact, error)
	Update(ctx context.Context, user *model.User, contactID int64, req model.ContactRequest) (*model.Contact, error)
	Delete(ctx context.Context, user *model.User, contactID int64) error
	Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.Contact, *model.Paging, error)
}

type contactService struct {
	repo repository.ContactRepository
	log  *logrus.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository, log *logrus.Logger) ContactService {
	return &contactService{repo: repo, log: log}
}

func (s *contactService) Create(ctx context.Context, user *model.User, req model.ContactRequest) (*model.Contact, error) {
	if err := validation.ValidateContact(&req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, user *model.User, contactID int64) (*model.Contact, error) {
	return s.findOwned(ctx, user, contactID)
}

func (s *contactService) Update(ctx context.Context, user *model.User, contactID int64, req model.ContactRequest) (*model.Contact, error) {
	if err := validation.ValidateContact(&req); err != nil {
		return nil, err
	}

	contact, err := s.findOwned(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound // Deleted between the read and the write
		}
		return nil, fmt.Errorf("failed to update contact in repo: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, user *model.User, contactID int64) error {
	if _, err := s.findOwned(ctx, user, contactID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, contactID, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact in repo: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "contact_id": contactID}).Info("Contact deleted")
	return nil
}

func (s *contactService) Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.Contact, *model.Paging, error) {
	if err := validation.ValidateSearch(&req); err != nil {
		return nil, nil, err
	}

	filters := model.ContactFilters{Page: req.Page, Size: req.Size}
	if req.Name != "" {
		filters.Name = &req.Name
	}
	if req.Email != "" {
		filters.Email = &req.Email
	}
	if req.Phone != "" {
		filters.Phone = &req.Phone
	}

	contacts, total, err := s.repo.Search(ctx, user.ID, filters)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search contacts in repo: %w", err)
	}

	paging := &model.Paging{
		CurrentPage: req.Page,
		TotalPage:   (total + req.Size - 1) / req.Size,
		Size:        req.Size,
	}
	return contacts, paging, nil
}

func (s *contactService) findOwned(ctx context.Context, user *model.User, contactID int64) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	if contact == nil || contact.UserID != user.ID {
		return nil, ErrContactNotFound
	}
	return contact, nil
}
