package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stock status values. stockStatus is derived from variants when they exist.
const (
	StockStatusIn  = "in-stock"
	StockStatusOut = "out-of-stock"
)

// ProductAttribute is a single name/value facet entry. A product may repeat
// the same name with different values (multi-value facets).
type ProductAttribute struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

type ProductVariant struct {
	SKU        string            `json:"sku" bson:"sku"`
	Price      float64           `json:"price" bson:"price"`
	Stock      int               `json:"stock" bson:"stock"`
	Attributes map[string]string `json:"attributes,omitempty" bson:"attributes,omitempty"`
	ImageURLs  []string          `json:"imageUrls,omitempty" bson:"imageUrls,omitempty"`
}

type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price"`
	Category     string             `json:"category" bson:"category"`
	CategoryPath []string           `json:"categoryPath" bson:"categoryPath"`
	Brand        string             `json:"brand,omitempty" bson:"brand,omitempty"`
	ImageURL     []string           `json:"imageUrl" bson:"imageUrl"`
	StockStatus  string             `json:"stockStatus" bson:"stockStatus"`
	TotalStock   int                `json:"totalStock" bson:"totalStock"`
	Owner        string             `json:"owner" bson:"owner"`
	Rating       float64            `json:"rating" bson:"rating"`
	Tags         []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Attributes   []ProductAttribute `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Variants     []ProductVariant   `json:"variants,omitempty" bson:"variants,omitempty"`
	TextScore    float64            `json:"-" bson:"score,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	DeletedAt    *time.Time         `json:"-" bson:"deleted_at,omitempty"`
}

// Normalize lowercases every field that participates in case-insensitive
// matching and guarantees categoryPath ends with the category itself.
func (p *Product) Normalize() {
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	p.Brand = strings.ToLower(strings.TrimSpace(p.Brand))

	if len(p.CategoryPath) == 0 {
		p.CategoryPath = []string{p.Category}
	} else {
		for i, c := range p.CategoryPath {
			p.CategoryPath[i] = strings.ToLower(strings.TrimSpace(c))
		}
		if p.CategoryPath[len(p.CategoryPath)-1] != p.Category {
			p.CategoryPath = append(p.CategoryPath, p.Category)
		}
	}

	for i, tag := range p.Tags {
		p.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}
	for i, attr := range p.Attributes {
		p.Attributes[i].Name = strings.ToLower(strings.TrimSpace(attr.Name))
		p.Attributes[i].Value = strings.ToLower(strings.TrimSpace(attr.Value))
	}
}

// RecomputeStock derives totalStock and stockStatus from variants. Products
// without variants keep whatever was set explicitly.
func (p *Product) RecomputeStock() {
	if len(p.Variants) == 0 {
		return
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	p.TotalStock = total
	if total > 0 {
		p.StockStatus = StockStatusIn
	} else {
		p.StockStatus = StockStatusOut
	}
}
