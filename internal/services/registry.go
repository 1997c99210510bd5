// internal/services/registry.go
package services

import (
	"gorm.io/gorm"
)

// Registry bundles the query-operation services over one shared store
// connection. The application root builds it once and hands it to
// presentation code.
type Registry struct {
	Users    *UserService
	Products *ProductService
	Cart     *CartService
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Users:    NewUserService(db),
		Products: NewProductService(db),
		Cart:     NewCartService(db),
	}
}
