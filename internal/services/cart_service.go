// internal/services/cart_service.go
package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pocketmart/pocketmart-data/internal/models"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add inserts a new cart row unconditionally: repeated adds for the same
// product create separate rows rather than bumping an existing quantity,
// and the product is not looked up first — the foreign key rejects orphan
// rows. A quantity below 1 means "unspecified" and defaults to 1; unlike
// UpdateItemQuantity, this write never stores a non-positive value.
func (s *CartService) Add(productID int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	item := &models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"cart_item_id": item.ID,
		"product_id":   productID,
	}).Info("product added to cart")

	return item, nil
}

// ListItems returns every cart row joined with its product's name and unit
// price, so callers can show per-line totals and sum a running total.
func (s *CartService) ListItems() ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.Table("cart_items").
		Select("cart_items.id, cart_items.quantity, products.name, products.price").
		Joins("INNER JOIN products ON cart_items.product_id = products.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateItemQuantity writes the quantity verbatim — no floor is applied at
// this level. Callers wanting the usual "never below 1" behavior go through
// StepQuantity first.
func (s *CartService) UpdateItemQuantity(cartItemID int64, quantity int) error {
	return s.db.Model(&models.CartItem{}).Where("id = ?", cartItemID).
		Update("quantity", quantity).Error
}

// RemoveItem deletes one cart row. Removing an absent id is a no-op.
func (s *CartService) RemoveItem(cartItemID int64) error {
	return s.db.Delete(&models.CartItem{}, cartItemID).Error
}

// StepQuantity applies delta to a line quantity and floors the result at 1.
// This is the caller-side guard for increment/decrement controls; the store
// operation itself accepts any value.
func StepQuantity(current, delta int) int {
	next := current + delta
	if next < 1 {
		return 1
	}
	return next
}
