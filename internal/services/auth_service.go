package services

import (
	"time"
	"trade_manager/internal/models"
	"trade_manager/internal/redis"
	"trade_manager/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore is satisfied by the redis client; tests plug in an in-memory
// fake.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

type AuthService interface {
	// Login checks the credentials and issues a session token. The role
	// is resolved through the user's role link; users without one get
	// "basic", which permits nothing.
	Login(username, password string) (string, *redis.SessionData, error)
	Logout(token string) error
	Session(token string) (*redis.SessionData, error)
}

type authService struct {
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	roleRepo     repository.RoleRepository
	sessions     SessionStore
	sessionTTL   time.Duration
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	userRoleRepo repository.UserRoleRepository,
	roleRepo repository.RoleRepository,
	sessions SessionStore,
	sessionTTL time.Duration,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		userRoleRepo: userRoleRepo,
		roleRepo:     roleRepo,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

func (s *authService) Login(username, password string) (string, *redis.SessionData, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	roleName, err := s.resolveRole(user.ID)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      roleName,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, err
	}

	s.logger.Info("login", zap.String("username", username), zap.String("role", roleName))
	return token, session, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) Session(token string) (*redis.SessionData, error) {
	return s.sessions.GetSession(token)
}

func (s *authService) resolveRole(userID uint) (string, error) {
	link, err := s.userRoleRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if link == nil {
		return models.RoleBasic, nil
	}
	role, err := s.roleRepo.GetByID(link.RoleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return models.RoleBasic, nil
	}
	return role.Name, nil
}
