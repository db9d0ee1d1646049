package repository

import (
	"errors"
	"trade_manager/internal/models"

	"gorm.io/gorm"
)

// ClientRepository covers the client aggregate: the common row plus the
// type-specific extension row that shares its primary key.
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	// GetByEmail searches deleted and live rows alike: an email stays
	// taken even after its owner was soft-deleted.
	GetByEmail(email string) (*models.Client, error)
	Update(client *models.Client) error
	// GetAll returns non-deleted clients, optionally filtered by type,
	// in insertion order.
	GetAll(clientType *models.ClientType) ([]models.Client, error)

	CreateIndividual(ind *models.IndividualClient) error
	GetIndividual(id uint) (*models.IndividualClient, error)
	UpdateIndividual(ind *models.IndividualClient) error

	CreateLegalEntity(le *models.LegalEntityClient) error
	GetLegalEntity(id uint) (*models.LegalEntityClient, error)
	UpdateLegalEntity(le *models.LegalEntityClient) error

	WithTx(tx *gorm.DB) ClientRepository
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) WithTx(tx *gorm.DB) ClientRepository {
	return &clientRepository{db: tx}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("email = ?", email).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) GetAll(clientType *models.ClientType) ([]models.Client, error) {
	var clients []models.Client
	query := r.db.Where("is_deleted = ?", false)
	if clientType != nil {
		query = query.Where("client_type = ?", *clientType)
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *clientRepository) CreateIndividual(ind *models.IndividualClient) error {
	return r.db.Create(ind).Error
}

func (r *clientRepository) GetIndividual(id uint) (*models.IndividualClient, error) {
	var ind models.IndividualClient
	err := r.db.First(&ind, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ind, nil
}

func (r *clientRepository) UpdateIndividual(ind *models.IndividualClient) error {
	return r.db.Save(ind).Error
}

func (r *clientRepository) CreateLegalEntity(le *models.LegalEntityClient) error {
	return r.db.Create(le).Error
}

func (r *clientRepository) GetLegalEntity(id uint) (*models.LegalEntityClient, error) {
	var le models.LegalEntityClient
	err := r.db.First(&le, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &le, nil
}

func (r *clientRepository) UpdateLegalEntity(le *models.LegalEntityClient) error {
	return r.db.Save(le).Error
}
