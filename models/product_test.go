package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases matchable fields", func(t *testing.T) {
		p := Product{
			Category: " Electronics ",
			Brand:    "Sony",
			Tags:     []string{"New", " SALE "},
			Attributes: []ProductAttribute{
				{Name: "Color", Value: "Midnight Blue"},
			},
		}
		p.Normalize()

		assert.Equal(t, "electronics", p.Category)
		assert.Equal(t, "sony", p.Brand)
		assert.Equal(t, []string{"new", "sale"}, p.Tags)
		assert.Equal(t, "color", p.Attributes[0].Name)
		assert.Equal(t, "midnight blue", p.Attributes[0].Value)
	})

	t.Run("empty path defaults to the category itself", func(t *testing.T) {
		p := Product{Category: "Laptops"}
		p.Normalize()

		assert.Equal(t, []string{"laptops"}, p.CategoryPath)
	})

	t.Run("path gains the category when it does not end with it", func(t *testing.T) {
		p := Product{Category: "Laptops", CategoryPath: []string{"Electronics", "Computers"}}
		p.Normalize()

		assert.Equal(t, []string{"electronics", "computers", "laptops"}, p.CategoryPath)
	})

	t.Run("path already ending with the category is untouched", func(t *testing.T) {
		p := Product{Category: "laptops", CategoryPath: []string{"electronics", "laptops"}}
		p.Normalize()

		assert.Equal(t, []string{"electronics", "laptops"}, p.CategoryPath)
	})
}

func TestRecomputeStock(t *testing.T) {
	t.Run("sums variant stock", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{{Stock: 2}, {Stock: 3}}}
		p.RecomputeStock()

		assert.Equal(t, 5, p.TotalStock)
		assert.Equal(t, StockStatusIn, p.StockStatus)
	})

	t.Run("all variants empty means out of stock", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{{Stock: 0}}, TotalStock: 9, StockStatus: StockStatusIn}
		p.RecomputeStock()

		assert.Equal(t, 0, p.TotalStock)
		assert.Equal(t, StockStatusOut, p.StockStatus)
	})

	t.Run("no variants leaves explicit stock alone", func(t *testing.T) {
		p := Product{TotalStock: 7, StockStatus: StockStatusIn}
		p.RecomputeStock()

		assert.Equal(t, 7, p.TotalStock)
		assert.Equal(t, StockStatusIn, p.StockStatus)
	})
}
