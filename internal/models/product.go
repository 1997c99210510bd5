// internal/models/product.go
package models

type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	SellerID    int64   `json:"seller_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Image       string  `json:"image" gorm:"size:2048"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"size:100;index"`

	// Relationships
	Seller    User       `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	CartItems []CartItem `json:"cart_items,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
