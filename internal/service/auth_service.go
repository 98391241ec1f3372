package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/lshigami/cybersolutions/internal/repository"
	"github.com/lshigami/cybersolutions/internal/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./auth_service.go -destination=./mocks/auth_service.mock.go -package=svcmocks AuthService

const (
	MinPasswordLength = 6
	bcryptCost        = 10
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (uint, error)
	Login(ctx context.Context, req dto.LoginRequest) (string, *dto.UserResponse, error)
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokenGen token.Generator
}

func NewAuthService(userRepo repository.UserRepository, tokenGen token.Generator) AuthService {
	return &authService{userRepo: userRepo, tokenGen: tokenGen}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (uint, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return 0, invalidInput("All fields are required")
	}
	// Display-name forms such as "Ana <ana@example.com>" are rejected.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return 0, invalidInput("Email format is invalid")
	}
	if len(req.Password) < MinPasswordLength {
		return 0, invalidInput(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return 0, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Msg("Register: Failed to check email uniqueness")
		return 0, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return 0, ErrEmailTaken
		}
		log.Error().Err(err).Msg("Register: Failed to create user")
		return 0, fmt.Errorf("%w: create user: %w", ErrPersistence, err)
	}

	log.Info().Uint("userID", user.ID).Msg("User registered")
	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *dto.UserResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", nil, invalidInput("Email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Login: Failed to load user")
		return "", nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.tokenGen.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: Failed to sign token")
		return "", nil, fmt.Errorf("error signing token: %w", err)
	}

	resp := toUserResponse(user)
	return tok, &resp, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: Failed to load user")
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// toUserResponse builds the public view field by field so the password hash
// can never leak through it.
func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}
