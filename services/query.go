package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Sort keys accepted on listing requests.
const (
	SortPrice      = "price"
	SortRating     = "rating"
	SortCreatedAt  = "createdAt"
	SortRelevance  = "relevance"
	SortBestseller = "bestseller"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// AttributeFilter is one facet: the product must carry at least one attribute
// entry with this name and any of these values.
type AttributeFilter struct {
	Name   string
	Values []string
}

// ProductQuery is the normalized filter request for product discovery.
// Pointer fields distinguish "absent" from zero values; parsing upstream is
// permissive, so a field is either well-formed or nil.
type ProductQuery struct {
	Search      string
	Category    string
	Brand       string
	MinPrice    *float64
	MaxPrice    *float64
	RatingGte   *float64
	InStock     *bool
	StockStatus string
	Attributes  []AttributeFilter
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

// Predicate clauses. Each filter dimension becomes one tagged clause; the
// clause list is compiled to the store's query representation at the end, so
// normalization stays independent of the bson shape.

type clause interface {
	isClause()
}

type textClause struct {
	search string
}

type eqClause struct {
	field string
	value interface{}
}

type rangeClause struct {
	field string
	gte   *float64
	lte   *float64
}

type elemMatchClause struct {
	field string
	match bson.M
}

type orClause struct {
	alternatives []bson.M
}

func (textClause) isClause()      {}
func (eqClause) isClause()        {}
func (rangeClause) isClause()     {}
func (elemMatchClause) isClause() {}
func (orClause) isClause()        {}

// filterBuilder accumulates clauses and compiles them into a single bson.M.
// Independent clauses combine with AND; or-groups keep their internal OR.
type filterBuilder struct {
	clauses []clause
}

func (b *filterBuilder) add(c clause) {
	b.clauses = append(b.clauses, c)
}

func (b *filterBuilder) compile() bson.M {
	filter := bson.M{}
	var and []bson.M

	for _, c := range b.clauses {
		switch cl := c.(type) {
		case textClause:
			filter["$text"] = bson.M{"$search": cl.search}
		case eqClause:
			filter[cl.field] = cl.value
		case rangeClause:
			bounds := bson.M{}
			if cl.gte != nil {
				bounds["$gte"] = *cl.gte
			}
			if cl.lte != nil {
				bounds["$lte"] = *cl.lte
			}
			if len(bounds) > 0 {
				filter[cl.field] = bounds
			}
		case elemMatchClause:
			// Facets may repeat the same field; they must AND, not overwrite.
			and = append(and, bson.M{cl.field: bson.M{"$elemMatch": cl.match}})
		case orClause:
			and = append(and, bson.M{"$or": cl.alternatives})
		}
	}

	if len(and) > 0 {
		filter["$and"] = and
	}
	return filter
}

// BuildProductFilter compiles a ProductQuery into the catalog store
// predicate. Soft-deleted products are always excluded.
func BuildProductFilter(q ProductQuery) bson.M {
	b := &filterBuilder{}

	b.add(eqClause{field: "deleted_at", value: bson.M{"$exists": false}})

	if q.Search != "" {
		b.add(textClause{search: q.Search})
	}

	if q.Category != "" {
		category := strings.ToLower(q.Category)
		b.add(orClause{alternatives: []bson.M{
			{"category": category},
			{"categoryPath": category},
		}})
	}

	if q.Brand != "" {
		b.add(eqClause{field: "brand", value: strings.ToLower(q.Brand)})
	}

	for _, attr := range q.Attributes {
		// Attributes are stored lowercased; fold here so callers that skip
		// query parsing still match.
		name := strings.ToLower(strings.TrimSpace(attr.Name))
		values := make([]string, 0, len(attr.Values))
		for _, v := range attr.Values {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				values = append(values, v)
			}
		}
		if name == "" || len(values) == 0 {
			continue
		}
		b.add(elemMatchClause{
			field: "attributes",
			match: bson.M{
				"name":  name,
				"value": bson.M{"$in": values},
			},
		})
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		b.add(rangeClause{field: "price", gte: q.MinPrice, lte: q.MaxPrice})
	}

	if q.RatingGte != nil {
		b.add(rangeClause{field: "rating", gte: q.RatingGte})
	}

	if q.InStock != nil && *q.InStock {
		// Stock is tracked three ways; accept any representation of "available".
		b.add(orClause{alternatives: []bson.M{
			{"stockStatus": "in-stock"},
			{"totalStock": bson.M{"$gt": 0}},
			{"variants.stock": bson.M{"$gt": 0}},
		}})
	} else if q.InStock == nil && q.StockStatus != "" {
		b.add(eqClause{field: "stockStatus", value: q.StockStatus})
	}

	return b.compile()
}

// SortSpec resolves the sort document for non-bestseller listings. Field
// sorts carry _id as a secondary key so pagination stays deterministic.
func SortSpec(q ProductQuery) bson.D {
	if q.Search != "" && (q.SortBy == "" || q.SortBy == SortRelevance) {
		return bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	}

	order := -1
	if q.SortOrder == SortAsc {
		order = 1
	}

	switch q.SortBy {
	case SortPrice, SortRating, SortCreatedAt:
		return bson.D{{Key: q.SortBy, Value: order}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}
	}
}
