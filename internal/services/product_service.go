// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pocketmart/pocketmart-data/internal/models"
	"github.com/pocketmart/pocketmart-data/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

// CreateOutcome tells the caller what happened to a product create. The
// rejected variants are not errors: the operation completed, it just
// declined to insert.
type CreateOutcome string

const (
	ProductCreated        CreateOutcome = "created"
	RejectedUnknownSeller CreateOutcome = "rejected_unknown_seller"
	RejectedNotSeller     CreateOutcome = "rejected_not_seller"
)

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Image       string  `json:"image" validate:"omitempty,uri"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Image       string  `json:"image" validate:"omitempty,uri"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type ListParams struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Create inserts a product after checking that sellerID names an existing
// user with the seller role. The check and the insert are two independent
// statements with no enclosing transaction; role never changes after
// sign-up, so the window between them is harmless.
func (s *ProductService) Create(sellerID int64, req *CreateProductRequest) (*models.Product, CreateOutcome, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, "", fmt.Errorf("validation failed: %w", err)
	}

	var seller models.User
	err := s.db.First(&seller, sellerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("seller_id", sellerID).Warn("product create rejected: no user with that id")
		return nil, RejectedUnknownSeller, nil
	}
	if err != nil {
		return nil, "", err
	}

	if !seller.IsSeller() {
		logrus.WithFields(logrus.Fields{
			"seller_id": sellerID,
			"role":      seller.Role,
		}).Warn("product create rejected: only sellers can add products")
		return nil, RejectedNotSeller, nil
	}

	product := &models.Product{
		SellerID:    sellerID,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"seller_id":  sellerID,
	}).Info("product created")

	return product, ProductCreated, nil
}

// List returns all products, optionally narrowed by a substring match on
// name and/or an exact category match. Both filters combine with AND. No
// pagination; rows come back in the store's natural order.
func (s *ProductService) List(params ListParams) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update overwrites every mutable field of the product. There is no
// partial-update path; zero values persist, which is why this goes through
// a column map rather than a struct.
func (s *ProductService) Update(id int64, req *UpdateProductRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.db.Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        req.Name,
			"price":       req.Price,
			"image":       req.Image,
			"description": req.Description,
			"category":    req.Category,
		}).Error
}

// Delete removes the product; the store's cascade removes any cart rows
// referencing it. Deleting an absent id is a no-op.
func (s *ProductService) Delete(id int64) error {
	return s.db.Delete(&models.Product{}, id).Error
}
