package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact_api/internal/model"
	"contact_api/internal/repository"
	"contact_api/internal/utils"
	"contact_api/internal/validation"

	"github.com/sirupsen/logrus"
)

// UserService provides account and session operations
type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginUserRequest) (*model.UserResponse, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Current(ctx context.Context, user *model.User) (*model.UserResponse, error)
	Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(ctx context.Context, user *model.User) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, log *logrus.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// Register creates a new user account
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.UserResponse, error) {
	if err := validation.ValidateRegister(&req); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameTaken // Lost a race with a concurrent registration
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.log.WithField("user_id", user.ID).Infof("User registered: %s", user.Username)
	resp := model.ToUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a new session token, replacing any previous one
func (s *userService) Login(ctx context.Context, req model.LoginUserRequest) (*model.UserResponse, error) {
	if err := validation.ValidateLogin(&req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token := utils.NewSessionToken()
	if err := s.userRepo.UpdateToken(ctx, user.ID, &token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	s.log.WithField("user_id", user.ID).Infof("User logged in: %s", user.Username)
	resp := model.ToUserResponse(user)
	resp.Token = token
	return &resp, nil
}

// Authenticate resolves the user holding the given session token
func (s *userService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Current returns the public view of the authenticated user
func (s *userService) Current(ctx context.Context, user *model.User) (*model.UserResponse, error) {
	resp := model.ToUserResponse(user)
	return &resp, nil
}

// Update changes the name and/or password of the authenticated user
func (s *userService) Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := validation.ValidateUpdateUser(&req); err != nil {
		return nil, err
	}

	updated := *user
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := model.ToUserResponse(&updated)
	return &resp, nil
}

// Logout clears the session token of the authenticated user
func (s *userService) Logout(ctx context.Context, user *model.User) error {
	if err := s.userRepo.UpdateToken(ctx, user.ID, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	s.log.WithField("user_id", user.ID).Infof("User logged out: %s", user.Username)
	return nil
}
