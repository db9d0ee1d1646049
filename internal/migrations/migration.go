package migrations

import (
	"trade_manager/internal/models"
	"trade_manager/internal/repository"
	"trade_manager/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date and seeds the role table and
// the default administrator. Safe to run on every start.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Client{},
		&models.IndividualClient{},
		&models.LegalEntityClient{},
		&models.Product{},
		&models.ClientOrder{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		return err
	}

	return seedDefaults(db, logger)
}

func seedDefaults(db *gorm.DB, logger *zap.Logger) error {
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)

	roleNames := []string{
		models.RoleBasic,
		models.RoleAdmin,
		models.RoleSalesManager,
		models.RoleProductionWorker,
		models.RoleAccountant,
		models.RoleDirector,
	}
	for _, name := range roleNames {
		existing, err := roleRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := roleRepo.Create(&models.Role{Name: name}); err != nil {
				return err
			}
		}
	}

	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	userService := services.NewUserService(db, userRepo, roleRepo, userRoleRepo, 0, logger)
	if _, err := userService.CreateUser("admin", "admin123", models.RoleAdmin); err != nil {
		return err
	}
	logger.Info("default admin user created", zap.String("username", "admin"))
	return nil
}
