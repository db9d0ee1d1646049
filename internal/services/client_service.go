package services

import (
	"strings"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IndividualFields struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
}

type LegalEntityFields struct {
	CompanyName string `json:"company_name"`
	INN         string `json:"inn"`
	KPP         string `json:"kpp"`
	OGRN        string `json:"ogrn"`
}

// ClientInput carries the form fields of the create/edit dialogs. Exactly
// one of Individual / LegalEntity must be set, matching Type; on edit the
// stored type wins and Type is ignored.
type ClientInput struct {
	Type        models.ClientType  `json:"client_type"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Individual  *IndividualFields  `json:"individual,omitempty"`
	LegalEntity *LegalEntityFields `json:"legal_entity,omitempty"`
}

// ClientDetails is a client with its type-specific extension resolved.
type ClientDetails struct {
	Client      models.Client             `json:"client"`
	Individual  *models.IndividualClient  `json:"individual,omitempty"`
	LegalEntity *models.LegalEntityClient `json:"legal_entity,omitempty"`
}

type ClientService interface {
	CreateClient(in ClientInput) (*ClientDetails, error)
	EditClient(clientID uint, in ClientInput) error
	// DeleteClient is a soft delete: the row and its orders survive and
	// stay queryable by id, the client just leaves the default listing.
	DeleteClient(clientID uint) error
	ListClients(typeFilter *models.ClientType) ([]ClientDetails, error)
	GetClient(clientID uint) (*ClientDetails, error)
}

type clientService struct {
	db         *gorm.DB
	clientRepo repository.ClientRepository
	logger     *zap.Logger
}

func NewClientService(db *gorm.DB, clientRepo repository.ClientRepository, logger *zap.Logger) ClientService {
	return &clientService{db: db, clientRepo: clientRepo, logger: logger}
}

func (s *clientService) CreateClient(in ClientInput) (*ClientDetails, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, ErrMissingEmail
	}

	existing, err := s.clientRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	if err := validateExtension(in.Type, in.Individual, in.LegalEntity); err != nil {
		return nil, err
	}

	client := &models.Client{
		ClientType: in.Type,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      email,
	}
	details := &ClientDetails{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.clientRepo.WithTx(tx)
		if err := repo.Create(client); err != nil {
			return err
		}
		switch in.Type {
		case models.ClientIndividual:
			ind := &models.IndividualClient{
				ID:         client.ID,
				FirstName:  strings.TrimSpace(in.Individual.FirstName),
				LastName:   strings.TrimSpace(in.Individual.LastName),
				MiddleName: strings.TrimSpace(in.Individual.MiddleName),
			}
			details.Individual = ind
			return repo.CreateIndividual(ind)
		default:
			le := &models.LegalEntityClient{
				ID:          client.ID,
				CompanyName: strings.TrimSpace(in.LegalEntity.CompanyName),
				INN:         strings.TrimSpace(in.LegalEntity.INN),
				KPP:         strings.TrimSpace(in.LegalEntity.KPP),
				OGRN:        strings.TrimSpace(in.LegalEntity.OGRN),
			}
			details.LegalEntity = le
			return repo.CreateLegalEntity(le)
		}
	})
	if err != nil {
		return nil, err
	}

	details.Client = *client
	s.logger.Info("client created", zap.Uint("id", client.ID), zap.String("type", string(client.ClientType)))
	return details, nil
}

func (s *clientService) EditClient(clientID uint, in ClientInput) error {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return ErrMissingEmail
	}
	existing, err := s.clientRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != clientID {
		return ErrDuplicateEmail
	}

	// The client type is immutable; validate against the stored one.
	if err := validateExtension(client.ClientType, in.Individual, in.LegalEntity); err != nil {
		return err
	}

	client.Email = email
	client.Phone = strings.TrimSpace(in.Phone)

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.clientRepo.WithTx(tx)
		if err := repo.Update(client); err != nil {
			return err
		}
		switch client.ClientType {
		case models.ClientIndividual:
			ind, err := repo.GetIndividual(clientID)
			if err != nil {
				return err
			}
			if ind == nil {
				ind = &models.IndividualClient{ID: clientID}
			}
			ind.FirstName = strings.TrimSpace(in.Individual.FirstName)
			ind.LastName = strings.TrimSpace(in.Individual.LastName)
			ind.MiddleName = strings.TrimSpace(in.Individual.MiddleName)
			return repo.UpdateIndividual(ind)
		default:
			le, err := repo.GetLegalEntity(clientID)
			if err != nil {
				return err
			}
			if le == nil {
				le = &models.LegalEntityClient{ID: clientID}
			}
			le.CompanyName = strings.TrimSpace(in.LegalEntity.CompanyName)
			le.INN = strings.TrimSpace(in.LegalEntity.INN)
			le.KPP = strings.TrimSpace(in.LegalEntity.KPP)
			le.OGRN = strings.TrimSpace(in.LegalEntity.OGRN)
			return repo.UpdateLegalEntity(le)
		}
	})
}

func (s *clientService) DeleteClient(clientID uint) error {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	client.IsDeleted = true
	if err := s.clientRepo.Update(client); err != nil {
		return err
	}

	s.logger.Info("client soft-deleted", zap.Uint("id", clientID))
	return nil
}

func (s *clientService) ListClients(typeFilter *models.ClientType) ([]ClientDetails, error) {
	clients, err := s.clientRepo.GetAll(typeFilter)
	if err != nil {
		return nil, err
	}

	rows := make([]ClientDetails, 0, len(clients))
	for _, client := range clients {
		details, err := s.attachExtension(client)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *details)
	}
	return rows, nil
}

func (s *clientService) GetClient(clientID uint) (*ClientDetails, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return s.attachExtension(*client)
}

func (s *clientService) attachExtension(client models.Client) (*ClientDetails, error) {
	details := &ClientDetails{Client: client}
	switch client.ClientType {
	case models.ClientIndividual:
		ind, err := s.clientRepo.GetIndividual(client.ID)
		if err != nil {
			return nil, err
		}
		details.Individual = ind
	case models.ClientLegalEntity:
		le, err := s.clientRepo.GetLegalEntity(client.ID)
		if err != nil {
			return nil, err
		}
		details.LegalEntity = le
	}
	return details, nil
}

func validateExtension(clientType models.ClientType, ind *IndividualFields, le *LegalEntityFields) error {
	switch clientType {
	case models.ClientIndividual:
		if ind == nil || strings.TrimSpace(ind.FirstName) == "" || strings.TrimSpace(ind.LastName) == "" {
			return ErrMissingFields
		}
	case models.ClientLegalEntity:
		if le == nil || strings.TrimSpace(le.CompanyName) == "" || strings.TrimSpace(le.INN) == "" {
			return ErrMissingFields
		}
	default:
		return ErrInvalidClientType
	}
	return nil
}
