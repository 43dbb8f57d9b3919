package services_test

import (
	"testing"

	"github.com/Arnab1999india/bazaar/models"
	"github.com/Arnab1999india/bazaar/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func oid(n byte) primitive.ObjectID {
	var id primitive.ObjectID
	id[11] = n
	return id
}

func TestRankBySales(t *testing.T) {
	t.Run("orders by quantity descending", func(t *testing.T) {
		ranked := services.RankBySales([]models.ProductSales{
			{ProductID: oid(1), TotalSold: 3},
			{ProductID: oid(2), TotalSold: 10},
			{ProductID: oid(3), TotalSold: 7},
		})

		assert.Equal(t, []primitive.ObjectID{oid(2), oid(3), oid(1)}, salesIDs(ranked))
	})

	t.Run("ties break by product id ascending", func(t *testing.T) {
		ranked := services.RankBySales([]models.ProductSales{
			{ProductID: oid(9), TotalSold: 5},
			{ProductID: oid(2), TotalSold: 5},
			{ProductID: oid(5), TotalSold: 5},
		})

		assert.Equal(t, []primitive.ObjectID{oid(2), oid(5), oid(9)}, salesIDs(ranked))
	})

	t.Run("zero-sale rows are dropped", func(t *testing.T) {
		ranked := services.RankBySales([]models.ProductSales{
			{ProductID: oid(1), TotalSold: 0},
			{ProductID: oid(2), TotalSold: 1},
		})

		assert.Equal(t, []primitive.ObjectID{oid(2)}, salesIDs(ranked))
	})
}

func salesIDs(rows []models.ProductSales) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(rows))
	for i, r := range rows {
		ids[i] = r.ProductID
	}
	return ids
}

func TestSlicePage(t *testing.T) {
	ids := []primitive.ObjectID{oid(1), oid(2), oid(3), oid(4), oid(5)}

	assert.Equal(t, ids[0:2], services.SlicePage(ids, 0, 2))
	assert.Equal(t, ids[2:4], services.SlicePage(ids, 2, 2))
	assert.Equal(t, ids[4:5], services.SlicePage(ids, 4, 2))
	assert.Empty(t, services.SlicePage(ids, 5, 2))
	assert.Empty(t, services.SlicePage(ids, 100, 2))
}

func TestOrderByIDs(t *testing.T) {
	products := []models.Product{
		{ID: oid(3), Name: "c"},
		{ID: oid(1), Name: "a"},
	}

	ordered := services.OrderByIDs([]primitive.ObjectID{oid(1), oid(2), oid(3)}, products)

	assert.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].Name)
	assert.Equal(t, "c", ordered[1].Name)
}
