package services

import (
	"strings"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserWithRole is a listing row: the user plus its resolved role name.
type UserWithRole struct {
	User     models.User `json:"user"`
	RoleName string      `json:"role_name"`
}

type UserService interface {
	CreateUser(username, password, roleName string) (*models.User, error)
	// EditUser updates username, role and, when newPassword is non-empty,
	// the password. The acting admin cannot edit their own account.
	EditUser(actorID, userID uint, newUsername, newPassword, newRoleName string) error
	DeleteUser(actorID, userID uint) error
	CreateRole(name string) (*models.Role, error)
	ListRoles() ([]models.Role, error)
	ListUsers() ([]UserWithRole, error)
}

type userService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
	bcryptCost   int
	logger       *zap.Logger
}

func NewUserService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	userRoleRepo repository.UserRoleRepository,
	bcryptCost int,
	logger *zap.Logger,
) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		db:           db,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		userRoleRepo: userRoleRepo,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

func (s *userService) CreateUser(username, password, roleName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	role, err := s.roleRepo.GetByName(roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrUnknownRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		return s.userRoleRepo.WithTx(tx).Create(&models.UserRole{UserID: user.ID, RoleID: role.ID})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("username", username), zap.String("role", roleName))
	return user, nil
}

func (s *userService) EditUser(actorID, userID uint, newUsername, newPassword, newRoleName string) error {
	if actorID == userID {
		return ErrSelfEdit
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return ErrMissingFields
	}

	existing, err := s.userRepo.GetByUsername(newUsername)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != userID {
		return ErrDuplicateUsername
	}

	role, err := s.roleRepo.GetByName(newRoleName)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrUnknownRole
	}

	newPassword = strings.TrimSpace(newPassword)
	if newPassword != "" {
		if len(newPassword) < 3 {
			return ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	user.Username = newUsername

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Update(user); err != nil {
			return err
		}

		// Role link upsert. The link's composite key makes an in-place
		// role change impossible, so replace the row.
		linkRepo := s.userRoleRepo.WithTx(tx)
		link, err := linkRepo.GetByUserID(userID)
		if err != nil {
			return err
		}
		if link != nil && link.RoleID == role.ID {
			return nil
		}
		if link != nil {
			if err := linkRepo.DeleteByUserID(userID); err != nil {
				return err
			}
		}
		return linkRepo.Create(&models.UserRole{UserID: userID, RoleID: role.ID})
	})
}

func (s *userService) DeleteUser(actorID, userID uint) error {
	if actorID == userID {
		return ErrSelfDeletion
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRoleRepo.WithTx(tx).DeleteByUserID(userID); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).Delete(userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("username", user.Username))
	return nil
}

func (s *userService) CreateRole(name string) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.roleRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRole
	}

	role := &models.Role{Name: name}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *userService) ListRoles() ([]models.Role, error) {
	return s.roleRepo.GetAll()
}

func (s *userService) ListUsers() ([]UserWithRole, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]UserWithRole, 0, len(users))
	for _, user := range users {
		roleName := models.RoleBasic
		link, err := s.userRoleRepo.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			role, err := s.roleRepo.GetByID(link.RoleID)
			if err != nil {
				return nil, err
			}
			if role != nil {
				roleName = role.Name
			}
		}
		rows = append(rows, UserWithRole{User: user, RoleName: roleName})
	}
	return rows, nil
}
