package services

import (
	"strings"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"
)

// ProductService backs the product picker of the order form. The catalog
// itself is maintained by the seed tooling, so only create and read.
type ProductService interface {
	CreateProduct(name, description string, price float64, stockQuantity int) (*models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	ListProducts() ([]models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(name, description string, price float64, stockQuantity int) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	if stockQuantity < 0 || price < 0 {
		return nil, ErrInvalidAmount
	}

	product := &models.Product{
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stockQuantity,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}
