package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recipe-share/domain"
	"recipe-share/entities"
	"recipe-share/internal/utils/mailing"
	"recipe-share/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.AuthResponse{}, err
	}

	// Best effort only; registration never fails because of mail delivery.
	if mailing.Configured() {
		body := fmt.Sprintf("<p>Hi %s, welcome to RecipeShare!</p>", user.Name)
		if err := mailing.SendMail(user.Email, "Welcome to RecipeShare", body); err != nil {
			log.Printf("failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.AuthResponse{
		Token: token,
		User: domain.UserPayload{
			Name:   user.Name,
			Email:  user.Email,
			UserID: user.ID.String(),
		},
	}, nil
}

// Login returns the same error for an unknown email and a wrong password so
// the response does not reveal which of the two was entered.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)

	return domain.AuthResponse{
		Token: token,
		User: domain.UserPayload{
			Name:   user.Name,
			Email:  user.Email,
			UserID: user.ID.String(),
		},
	}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domain.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		})
	}

	return result, nil
}
