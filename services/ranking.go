package services

import (
	"sort"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RankBySales orders sales rows by total quantity descending. Equal totals
// fall back to product id ascending so pagination over the ranked list is
// deterministic across executions.
func RankBySales(sales []models.ProductSales) []models.ProductSales {
	ranked := make([]models.ProductSales, 0, len(sales))
	for _, s := range sales {
		if s.TotalSold > 0 {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalSold != ranked[j].TotalSold {
			return ranked[i].TotalSold > ranked[j].TotalSold
		}
		return ranked[i].ProductID.Hex() < ranked[j].ProductID.Hex()
	})
	return ranked
}

// SlicePage applies skip/limit to a ranked id list.
func SlicePage(ids []primitive.ObjectID, skip, limit int) []primitive.ObjectID {
	if skip >= len(ids) {
		return nil
	}
	end := skip + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[skip:end]
}

// OrderByIDs reorders a bulk-fetched batch to match the ranked id sequence.
// Ids with no fetched document (removed between pipeline phases) are dropped.
func OrderByIDs(ids []primitive.ObjectID, products []models.Product) []models.Product {
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
