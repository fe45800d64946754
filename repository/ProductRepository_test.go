package repository

import (
	"testing"

	"marketstore/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, pr ProductRepository, cr CategoryRepository, br BrandRepository) {
	t.Helper()
	_, err := cr.CreateCategory(models.CategoryRequest{Name: "Tools", Description: "hand tools"})
	require.NoError(t, err)
	_, err = cr.CreateCategory(models.CategoryRequest{Name: "Garden", Description: "outdoor"})
	require.NoError(t, err)
	_, err = br.CreateBrand(models.BrandRequest{Name: "Acme Corp", Address: "Acme road 1", Email: "sales@acme.test"})
	require.NoError(t, err)

	products := []struct {
		name     string
		price    string
		category int
		brand    int
	}{
		{"Wrench", "19.99", 1, 1},
		{"Hammer", "12.50", 1, 1},
		{"Rake", "8.00", 2, 1},
	}
	for _, prod := range products {
		price := decimal.RequireFromString(prod.price)
		_, err := pr.CreateProduct(models.ProductRequest{
			Name:       prod.name,
			Price:      &price,
			Stock:      intPtr(10),
			CategoryId: intPtr(prod.category),
			BrandId:    intPtr(prod.brand),
		})
		require.NoError(t, err)
	}
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)
	pr, err := NewProductRepository(db)
	require.NoError(t, err)
	cr, err := NewCategoryRepository(db)
	require.NoError(t, err)
	br, err := NewBrandRepository(db)
	require.NoError(t, err)
	seedCatalog(t, pr, cr, br)

	t.Run("joins category and brand names sorted by name", func(t *testing.T) {
		prods, total, err := pr.ListProducts(ListParams{}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, prods, 3)
		assert.Equal(t, "Hammer", prods[0].Name)
		assert.Equal(t, "Rake", prods[1].Name)
		assert.Equal(t, "Wrench", prods[2].Name)
		require.NotNil(t, prods[0].Category)
		assert.Equal(t, "Tools", *prods[0].Category)
		require.NotNil(t, prods[0].Brand)
		assert.Equal(t, "Acme Corp", *prods[0].Brand)
	})

	t.Run("keyword is case-insensitive", func(t *testing.T) {
		prods, total, err := pr.ListProducts(ListParams{Keyword: "WREN"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, prods, 1)
		assert.Equal(t, "Wrench", prods[0].Name)
	})

	t.Run("keyword matches price digits", func(t *testing.T) {
		_, total, err := pr.ListProducts(ListParams{Keyword: "12.5"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("category filter", func(t *testing.T) {
		prods, total, err := pr.ListProducts(ListParams{}, "garden", "")
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, prods, 1)
		assert.Equal(t, "Rake", prods[0].Name)
	})

	t.Run("brand filter", func(t *testing.T) {
		_, total, err := pr.ListProducts(ListParams{}, "", "acme corp")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("page beyond the end is empty but keeps the total", func(t *testing.T) {
		prods, total, err := pr.ListProducts(ListParams{Page: 99}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, prods)
	})
}

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	pr, err := NewProductRepository(db)
	require.NoError(t, err)
	cr, err := NewCategoryRepository(db)
	require.NoError(t, err)
	br, err := NewBrandRepository(db)
	require.NoError(t, err)
	seedCatalog(t, pr, cr, br)

	price := decimal.NewFromInt(30)
	created, err := pr.CreateProduct(models.ProductRequest{
		Name: "Saw", Price: &price, Stock: intPtr(4), CategoryId: intPtr(1), BrandId: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Id)

	got, exists, err := pr.GetProductById(created.Id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Saw", got.Name)
	assert.True(t, price.Equal(got.Price))

	newPrice := decimal.NewFromInt(25)
	updated, exists, err := pr.UpdateProductById(created.Id, models.ProductRequest{
		Name: "Hand saw", Price: &newPrice, Stock: intPtr(6), CategoryId: intPtr(1), BrandId: intPtr(1),
	})
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Hand saw", updated.Name)
	assert.Equal(t, 6, updated.Stock)

	_, exists, err = pr.UpdateProductById(999, models.ProductRequest{
		Name: "Ghost", Price: &newPrice, Stock: intPtr(1), CategoryId: intPtr(1), BrandId: intPtr(1),
	})
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err := pr.DeleteProductById(created.Id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = pr.DeleteProductById(created.Id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, exists, err = pr.GetProductById(created.Id)
	require.NoError(t, err)
	assert.False(t, exists)
}
