// internal/models/cart.go
package models

// CartItem is one line in the (single, process-wide) shopping cart. There is
// no owner column: the cart belongs to whoever is signed in on this device.
// Quantity carries no check constraint; the floor at 1 is a caller concern.
type CartItem struct {
	ID        int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID int64 `json:"product_id" gorm:"not null;index"`
	Quantity  int   `json:"quantity" gorm:"not null;default:1"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// CartLine is the read model returned by cart listing: a cart row joined
// with the name and unit price of its product.
type CartLine struct {
	ID       int64   `json:"id"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartTotal sums line totals across the cart.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
