package service

import (
	"context"
	"io"

	"contact_api/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdateToken(ctx context.Context, id int64, token *string) error {
	return m.Called(ctx, id, token).Error(0)
}

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockContactRepo) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	args := m.Called(ctx, id)
	contact, _ := args.Get(0).(*model.Contact)
	return contact, args.Error(1)
}

func (m *mockContactRepo) Update(ctx context.Context, contact *model.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockContactRepo) Search(ctx context.Context, userID int64, filters model.ContactFilters) ([]model.Contact, int, error) {
	args := m.Called(ctx, userID, filters)
	contacts, _ := args.Get(0).([]model.Contact)
	return contacts, args.Int(1), args.Error(2)
}
