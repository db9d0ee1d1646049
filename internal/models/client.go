package models

type ClientType string

const (
	ClientIndividual  ClientType = "individual"
	ClientLegalEntity ClientType = "legal_entity"
)

// Client is the common part of both client kinds. Deletion is soft: the row
// keeps existing (with its orders) and only drops out of default listings.
type Client struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ClientType ClientType `json:"client_type" gorm:"size:20;not null"`
	Phone      string     `json:"phone" gorm:"size:12"`
	Email      string     `json:"email" gorm:"size:50;uniqueIndex"`
	IsDeleted  bool       `json:"is_deleted" gorm:"default:false"`
}

// IndividualClient extends Client for private persons, sharing its primary
// key. Present exactly when ClientType is individual.
type IndividualClient struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	FirstName  string `json:"first_name" gorm:"size:50"`
	LastName   string `json:"last_name" gorm:"size:50"`
	MiddleName string `json:"middle_name" gorm:"size:50"`
}

// LegalEntityClient extends Client for registered companies, sharing its
// primary key. Present exactly when ClientType is legal_entity.
type LegalEntityClient struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"size:100"`
	INN         string `json:"inn" gorm:"size:12"`
	KPP         string `json:"kpp" gorm:"size:9"`
	OGRN        string `json:"ogrn" gorm:"size:15"`
}
