package repository

import (
	"testing"

	"marketstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandRepository(t *testing.T) {
	db := newTestDB(t)
	br, err := NewBrandRepository(db)
	require.NoError(t, err)

	acme, err := br.CreateBrand(models.BrandRequest{Name: "Acme Corp", Address: "Acme road 1", Email: "sales@acme.test"})
	require.NoError(t, err)
	_, err = br.CreateBrand(models.BrandRequest{Name: "Globex", Address: "Globex ave 2", Email: "info@globex.test"})
	require.NoError(t, err)

	t.Run("lookup by email", func(t *testing.T) {
		got, exists, err := br.GetBrandByEmail("sales@acme.test")
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, acme.Id, got.Id)

		_, exists, err = br.GetBrandByEmail("nobody@nowhere.test")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("keyword matches part of the name", func(t *testing.T) {
		brands, total, err := br.ListBrands(ListParams{Keyword: "acme"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, brands, 1)
		assert.Equal(t, "Acme Corp", brands[0].Name)
	})

	t.Run("list sorts by brand name", func(t *testing.T) {
		brands, total, err := br.ListBrands(ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, brands, 2)
		assert.Equal(t, "Acme Corp", brands[0].Name)
		assert.Equal(t, "Globex", brands[1].Name)
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, exists, err := br.UpdateBrandById(acme.Id, models.BrandRequest{
			Name: "Acme Corporation", Address: "Acme road 1", Email: "sales@acme.test",
		})
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, "Acme Corporation", updated.Name)

		deleted, err := br.DeleteBrandById(acme.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = br.DeleteBrandById(acme.Id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
