// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/pocketmart/pocketmart-data/internal/models"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	users    *UserService
	products *ProductService
	cart     *CartService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = openTestStore(suite.T())
	suite.users = NewUserService(suite.db)
	suite.products = NewProductService(suite.db)
	suite.cart = NewCartService(suite.db)
}

func (suite *ProductServiceTestSuite) seedUser(email string, role models.Role) *models.User {
	user, err := suite.users.Create(&CreateUserRequest{
		Name: "Seed", Email: email, Password: "pw", Role: role,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *ProductServiceTestSuite) productCount() int64 {
	var count int64
	suite.db.Model(&models.Product{}).Count(&count)
	return count
}

func (suite *ProductServiceTestSuite) TestCreateRejectedForUnknownSeller() {
	product, outcome, err := suite.products.Create(9999, &CreateProductRequest{
		Name: "Shirt", Price: 10,
	})
	suite.NoError(err)
	suite.Nil(product)
	suite.Equal(RejectedUnknownSeller, outcome)
	suite.EqualValues(0, suite.productCount())
}

func (suite *ProductServiceTestSuite) TestCreateRejectedForBuyer() {
	buyer := suite.seedUser("buyer@example.com", models.RoleBuyer)

	product, outcome, err := suite.products.Create(buyer.ID, &CreateProductRequest{
		Name: "Shirt", Price: 10,
	})
	suite.NoError(err)
	suite.Nil(product)
	suite.Equal(RejectedNotSeller, outcome)
	suite.EqualValues(0, suite.productCount())
}

func (suite *ProductServiceTestSuite) TestCreateAsSeller() {
	seller := suite.seedUser("seller@example.com", models.RoleSeller)

	created, outcome, err := suite.products.Create(seller.ID, &CreateProductRequest{
		Name:        "Linen Shirt",
		Price:       19.99,
		Image:       "https://example.com/shirt.png",
		Description: "Breathable summer shirt",
		Category:    "Apparel",
	})
	suite.Require().NoError(err)
	suite.Equal(ProductCreated, outcome)
	suite.Require().NotNil(created)
	suite.EqualValues(1, suite.productCount())

	got, err := suite.products.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(seller.ID, got.SellerID)
	suite.Equal("Linen Shirt", got.Name)
	suite.Equal(19.99, got.Price)
	suite.Equal("https://example.com/shirt.png", got.Image)
	suite.Equal("Breathable summer shirt", got.Description)
	suite.Equal("Apparel", got.Category)
}

func (suite *ProductServiceTestSuite) TestCreateValidation() {
	seller := suite.seedUser("seller@example.com", models.RoleSeller)

	_, _, err := suite.products.Create(seller.ID, &CreateProductRequest{Price: 10})
	suite.Error(err)

	_, _, err = suite.products.Create(seller.ID, &CreateProductRequest{Name: "Shirt", Price: -1})
	suite.Error(err)
}

func (suite *ProductServiceTestSuite) TestListFilters() {
	seller := suite.seedUser("seller@example.com", models.RoleSeller)

	for _, p := range []CreateProductRequest{
		{Name: "Red Shirt", Price: 15, Category: "Apparel"},
		{Name: "Blue Shirt", Price: 17, Category: "Apparel"},
		{Name: "Trail Sneaker", Price: 60, Category: "Shoes"},
	} {
		req := p
		_, outcome, err := suite.products.Create(seller.ID, &req)
		suite.Require().NoError(err)
		suite.Require().Equal(ProductCreated, outcome)
	}

	all, err := suite.products.List(ListParams{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	// Substring match on name; SQLite LIKE is case-insensitive for ASCII.
	shirts, err := suite.products.List(ListParams{Search: "shirt"})
	suite.Require().NoError(err)
	suite.Len(shirts, 2)
	for _, p := range shirts {
		suite.Contains(p.Name, "Shirt")
	}

	shoes, err := suite.products.List(ListParams{Category: "Shoes"})
	suite.Require().NoError(err)
	suite.Len(shoes, 1)
	suite.Equal("Trail Sneaker", shoes[0].Name)

	// Filters combine with AND.
	none, err := suite.products.List(ListParams{Search: "shirt", Category: "Shoes"})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *ProductServiceTestSuite) TestUpdateOverwritesAllFields() {
	seller := suite.seedUser("seller@example.com", models.RoleSeller)
	created, _, err := suite.products.Create(seller.ID, &CreateProductRequest{
		Name: "Shirt", Price: 19.99, Description: "old", Category: "Apparel",
	})
	suite.Require().NoError(err)

	err = suite.products.Update(created.ID, &UpdateProductRequest{
		Name:  "Shirt v2",
		Price: 24.99,
		// Description and Category left empty on purpose: the overwrite
		// must persist zero values, not skip them.
	})
	suite.Require().NoError(err)

	got, err := suite.products.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Equal("Shirt v2", got.Name)
	suite.Equal(24.99, got.Price)
	suite.Equal("", got.Description)
	suite.Equal("", got.Category)
}

func (suite *ProductServiceTestSuite) TestDeleteCascadesToCart() {
	seller := suite.seedUser("seller@example.com", models.RoleSeller)
	created, _, err := suite.products.Create(seller.ID, &CreateProductRequest{
		Name: "Shirt", Price: 19.99,
	})
	suite.Require().NoError(err)

	_, err = suite.cart.Add(created.ID, 1)
	suite.Require().NoError(err)
	_, err = suite.cart.Add(created.ID, 2)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.products.Delete(created.ID))

	lines, err := suite.cart.ListItems()
	suite.Require().NoError(err)
	suite.Empty(lines)

	var orphaned int64
	suite.db.Model(&models.CartItem{}).Count(&orphaned)
	suite.EqualValues(0, orphaned)

	// Deleting again is a no-op, not an error.
	suite.NoError(suite.products.Delete(created.ID))
}

func (suite *ProductServiceTestSuite) TestGetByIDAbsent() {
	product, err := suite.products.GetByID(424242)
	suite.NoError(err)
	suite.Nil(product)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
