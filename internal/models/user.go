package models

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;unique;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:20;not null"`
}

// UserRole links a user to a role. The composite key allows several rows
// per user, but every lookup reads the first match only, so in practice a
// user carries at most one role.
type UserRole struct {
	UserID uint `json:"user_id" gorm:"primaryKey"`
	RoleID uint `json:"role_id" gorm:"primaryKey"`
}

// Logical role names. Role.Name is free text in the database; these are the
// values the authorization policy understands.
const (
	RoleBasic            = "basic"
	RoleAdmin            = "admin"
	RoleSalesManager     = "sales_manager"
	RoleProductionWorker = "production_worker"
	RoleAccountant       = "accountant"
	RoleDirector         = "director"
)
