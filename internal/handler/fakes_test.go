package handler

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"contact_api/internal/model"
	"contact_api/internal/repository"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByToken(_ context.Context, token string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Token != nil && *u.Token == token {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = user.Name
	stored.PasswordHash = user.PasswordHash
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserRepo) UpdateToken(_ context.Context, id int64, token *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Token = token
	f.users[id] = stored
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[int64]model.Contact
	nextID   int64
	failWith error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[int64]model.Contact{}, nextID: 1}
}

func (f *fakeContactRepo) Create(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	c.ID = f.nextID
	f.nextID++
	f.contacts[c.ID] = *c
	return nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id int64) (*model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contacts[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeContactRepo) Update(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.contacts[c.ID]
	if !ok || stored.UserID != c.UserID {
		return repository.ErrNotFound
	}
	f.contacts[c.ID] = *c
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.contacts[id]
	if !ok || stored.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) Search(_ context.Context, userID int64, filters model.ContactFilters) ([]model.Contact, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []model.Contact
	for _, c := range f.contacts {
		if c.UserID != userID {
			continue
		}
		if filters.Name != nil && !contains(&c.FirstName, *filters.Name) && !contains(c.LastName, *filters.Name) {
			continue
		}
		if filters.Email != nil && !contains(c.Email, *filters.Email) {
			continue
		}
		if filters.Phone != nil && !contains(c.Phone, *filters.Phone) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	start := (filters.Page - 1) * filters.Size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filters.Size
	if end > len(matched) {
		end = len(matched)
	}
	return append([]model.Contact{}, matched[start:end]...), len(matched), nil
}

func contains(field *string, sub string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(sub))
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

var errDBDown = errors.New("database is down")
