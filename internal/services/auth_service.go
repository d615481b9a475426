package services

import (
	"context"
	"errors"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/internal/utils"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountNotActive rejects logins from inactive or suspended accounts.
var ErrAccountNotActive = errors.New("account not active")

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type authService struct {
	users     interfaces.UserRepository
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthService(users interfaces.UserRepository, jwtSecret string, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &authService{
		users:     users,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	role := request.Role
	if role == "" {
		role = models.UserRoleDispatcher
	}
	if !models.ValidUserRole(role) {
		return nil, models.Conflict("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hash),
		Role:     role,
		Status:   models.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.jwtSecret)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).WithField("role", string(user.Role)).Info("user registered")
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status != models.UserStatusActive {
		return nil, ErrAccountNotActive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.jwtSecret)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("user logged in")
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}
