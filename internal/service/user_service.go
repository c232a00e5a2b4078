package service

import (
	"context"
	"errors"

	"bondify-be/internal/dto"
	"bondify-be/internal/entity"
	"bondify-be/internal/eventbus"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/specification"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetById(ctx context.Context, id uint) (*dto.UserResponse, error)
	SetPremium(ctx context.Context, id uint, isPremium bool) (*dto.UserResponse, error)
	// EnsureAdmin creates the admin account once; an existing username is left alone.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  eventbus.Publisher
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisher eventbus.Publisher, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *userService) create(ctx context.Context, username, password string, role entity.UserRole) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:          username,
		PasswordHash:      string(hash),
		Role:              role,
		FavoriteQuestions: []int{},
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// A concurrent signup can claim the name after the lookup above.
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := s.create(ctx, req.Username, req.Password, entity.UserRoleUser)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.New(eventbus.UserCreated, map[string]interface{}{
			"userId":   user.Id,
			"username": user.Username,
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("UserService", "Failed to publish event", map[string]interface{}{
				"type":  evt.EventType(),
				"error": err.Error(),
			})
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) GetById(ctx context.Context, id uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (s *userService) SetPremium(ctx context.Context, id uint, isPremium bool) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsPremium = isPremium
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.create(ctx, username, password, entity.UserRoleAdmin)
	if errors.Is(err, ErrUsernameTaken) {
		return nil
	}
	if err == nil {
		s.logger.Info("UserService", "Admin account created", map[string]interface{}{"username": username})
	}
	return err
}
