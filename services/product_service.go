package services

import (
	"context"
	"errors"
	"time"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/models"
	"github.com/Arnab1999india/bazaar/repository"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

// ProductDetail is a single product with its brand and owner resolved.
// Either reference may be missing; the product still renders.
type ProductDetail struct {
	models.Product
	BrandDetail *models.BrandSummary `json:"brandDetail,omitempty"`
	OwnerDetail *models.OwnerSummary `json:"ownerDetail,omitempty"`
}

// CreateProductInput carries the seller-supplied product fields.
type CreateProductInput struct {
	Name         string                    `json:"name" validate:"required,min=2,max=200"`
	Description  string                    `json:"description" validate:"required,min=2"`
	Price        float64                   `json:"price" validate:"required,gt=0"`
	Category     string                    `json:"category" validate:"required"`
	CategoryPath []string                  `json:"categoryPath"`
	Brand        string                    `json:"brand"`
	ImageURL     []string                  `json:"imageUrl"`
	TotalStock   int                       `json:"totalStock" validate:"gte=0"`
	Tags         []string                  `json:"tags"`
	Attributes   []models.ProductAttribute `json:"attributes" validate:"dive"`
	Variants     []models.ProductVariant   `json:"variants" validate:"dive"`
}

// UpdateProductInput carries a partial update. Nil fields are left untouched.
type UpdateProductInput struct {
	Name         *string                   `json:"name" validate:"omitempty,min=2,max=200"`
	Description  *string                   `json:"description" validate:"omitempty,min=2"`
	Price        *float64                  `json:"price" validate:"omitempty,gt=0"`
	Category     *string                   `json:"category"`
	CategoryPath []string                  `json:"categoryPath"`
	Brand        *string                   `json:"brand"`
	ImageURL     []string                  `json:"imageUrl"`
	TotalStock   *int                      `json:"totalStock" validate:"omitempty,gte=0"`
	Tags         []string                  `json:"tags"`
	Attributes   []models.ProductAttribute `json:"attributes" validate:"omitempty,dive"`
	Variants     []models.ProductVariant   `json:"variants" validate:"omitempty,dive"`
}

type ProductService struct {
	products repository.ProductRepo
	orders   repository.OrderRepo
	brands   repository.BrandRepo
	users    repository.UserRepo
	reviews  repository.ReviewRepo
	validate *validator.Validate
}

func NewProductService(
	products repository.ProductRepo,
	orders repository.OrderRepo,
	brands repository.BrandRepo,
	users repository.UserRepo,
	reviews repository.ReviewRepo,
) *ProductService {
	return &ProductService{
		products: products,
		orders:   orders,
		brands:   brands,
		users:    users,
		reviews:  reviews,
		validate: validator.New(),
	}
}

// ListProducts runs a filtered, sorted, paginated product listing. Bestseller
// sort takes a separate path because popularity lives in the orders data, not
// on the product documents.
func (s *ProductService) ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	page := ResolvePage(q.Page, q.Limit)

	if q.SortBy == SortBestseller {
		return s.listBestsellers(ctx, q, page)
	}

	filter := BuildProductFilter(q)
	sort := SortSpec(q)

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.Limit))
	if q.Search != "" {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to count products", err)
	}

	products, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list products", err)
	}

	return &ProductPage{
		Products:   products,
		Pagination: Pagination{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// listBestsellers ranks by units sold, then filters the ranked list down to
// the products matching the rest of the query. Text search cannot combine
// with a popularity ranking, so it is dropped on this path.
func (s *ProductService) listBestsellers(ctx context.Context, q ProductQuery, page Page) (*ProductPage, error) {
	sales, err := s.orders.AggregateSales(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to aggregate sales", err)
	}
	ranked := RankBySales(sales)

	scoped := q
	scoped.Search = ""
	matching, err := s.products.FindIDs(ctx, BuildProductFilter(scoped))
	if err != nil {
		return nil, apperrors.Internal("failed to resolve matching products", err)
	}

	rankedIDs := make([]primitive.ObjectID, 0, len(ranked))
	for _, row := range ranked {
		if _, ok := matching[row.ProductID]; ok {
			rankedIDs = append(rankedIDs, row.ProductID)
		}
	}

	total := int64(len(rankedIDs))
	pageIDs := SlicePage(rankedIDs, page.Skip(), page.Limit)

	products, err := s.products.FindByIDs(ctx, pageIDs)
	if err != nil {
		return nil, apperrors.Internal("failed to load products", err)
	}

	return &ProductPage{
		Products:   OrderByIDs(pageIDs, products),
		Pagination: Pagination{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// GetProduct loads a product and resolves its brand and owner references.
// A missing brand or owner degrades to an unpopulated detail, never an error.
func (s *ProductService) GetProduct(ctx context.Context, idHex string) (*ProductDetail, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.Validation("invalid product id", nil)
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal("failed to load product", err)
	}

	detail := &ProductDetail{Product: *product}

	if product.Brand != "" {
		brand, err := s.brands.FindBySlug(ctx, product.Brand)
		if err == nil {
			detail.BrandDetail = &models.BrandSummary{
				Name:    brand.Name,
				Slug:    brand.Slug,
				LogoURL: brand.LogoURL,
			}
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			zap.L().Warn("brand lookup failed",
				zap.String("brand", product.Brand), zap.Error(err))
		}
	}

	if product.Owner != "" {
		owner, err := s.users.FindSummary(ctx, product.Owner)
		if err == nil {
			detail.OwnerDetail = owner
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			zap.L().Warn("owner lookup failed",
				zap.String("owner", product.Owner), zap.Error(err))
		}
	}

	return detail, nil
}

// GetVariants returns the variant list for a product.
func (s *ProductService) GetVariants(ctx context.Context, idHex string) ([]models.ProductVariant, error) {
	detail, err := s.GetProduct(ctx, idHex)
	if err != nil {
		return nil, err
	}
	if detail.Variants == nil {
		return []models.ProductVariant{}, nil
	}
	return detail.Variants, nil
}

// DefaultRecommendations is the recommendation list size when the client
// does not ask for one.
const DefaultRecommendations = 8

// Recommendations returns live products sharing the product's category,
// brand or tags, best rated first, newest breaking ties, excluding the
// product itself.
func (s *ProductService) Recommendations(ctx context.Context, idHex string, limit int) ([]models.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.Validation("invalid product id", nil)
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal("failed to load product", err)
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultRecommendations
	}

	related := []bson.M{{"category": product.Category}}
	if product.Brand != "" {
		related = append(related, bson.M{"brand": product.Brand})
	}
	if len(product.Tags) > 0 {
		related = append(related, bson.M{"tags": bson.M{"$in": product.Tags}})
	}

	filter := bson.M{
		"_id":        bson.M{"$ne": id},
		"deleted_at": bson.M{"$exists": false},
		"$or":        related,
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	products, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to load recommendations", err)
	}
	return products, nil
}

// CreateProduct validates, normalizes and stores a new product for the
// given seller.
func (s *ProductService) CreateProduct(ctx context.Context, owner string, in CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	now := time.Now().UTC()
	product := &models.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		CategoryPath: in.CategoryPath,
		Brand:        in.Brand,
		ImageURL:     in.ImageURL,
		TotalStock:   in.TotalStock,
		Tags:         in.Tags,
		Attributes:   in.Attributes,
		Variants:     in.Variants,
		Owner:        owner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	product.Normalize()
	if product.TotalStock > 0 {
		product.StockStatus = models.StockStatusIn
	} else {
		product.StockStatus = models.StockStatusOut
	}
	product.RecomputeStock()

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.Internal("failed to create product", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update to a product owned by the seller.
func (s *ProductService) UpdateProduct(ctx context.Context, owner, idHex string, in UpdateProductInput) (*models.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.Validation("invalid product id", nil)
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	updates := s.buildUpdates(in)
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update", nil)
	}

	matched, err := s.products.Update(ctx, id, owner, updates)
	if err != nil {
		return nil, apperrors.Internal("failed to update product", err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound("product not found")
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to load updated product", err)
	}
	return product, nil
}

func (s *ProductService) buildUpdates(in UpdateProductInput) bson.M {
	staged := models.Product{
		Tags:       in.Tags,
		Attributes: in.Attributes,
		Variants:   in.Variants,
	}
	if in.Category != nil {
		staged.Category = *in.Category
		staged.CategoryPath = in.CategoryPath
	}
	if in.Brand != nil {
		staged.Brand = *in.Brand
	}
	staged.Normalize()

	updates := bson.M{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = staged.Category
		updates["categoryPath"] = staged.CategoryPath
	}
	if in.Brand != nil {
		updates["brand"] = staged.Brand
	}
	if in.ImageURL != nil {
		updates["imageUrl"] = in.ImageURL
	}
	if in.Tags != nil {
		updates["tags"] = staged.Tags
	}
	if in.Attributes != nil {
		updates["attributes"] = staged.Attributes
	}
	if in.Variants != nil {
		updates["variants"] = staged.Variants
	}
	if in.Variants != nil && len(staged.Variants) > 0 {
		staged.RecomputeStock()
		updates["totalStock"] = staged.TotalStock
		updates["stockStatus"] = staged.StockStatus
	} else if in.TotalStock != nil {
		updates["totalStock"] = *in.TotalStock
		if *in.TotalStock > 0 {
			updates["stockStatus"] = models.StockStatusIn
		} else {
			updates["stockStatus"] = models.StockStatusOut
		}
	} else if in.Variants != nil {
		// Variants cleared with no explicit stock left.
		updates["totalStock"] = 0
		updates["stockStatus"] = models.StockStatusOut
	}
	return updates
}

// DeleteProduct removes a seller's product. Products referenced by any order
// are soft deleted so order history stays resolvable; unreferenced products
// are removed outright. Reviews are cascaded either way.
func (s *ProductService) DeleteProduct(ctx context.Context, owner, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.Validation("invalid product id", nil)
	}

	referenced, err := s.orders.CountByProduct(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to check order references", err)
	}

	var matched int64
	if referenced > 0 {
		matched, err = s.products.SoftDelete(ctx, id, owner)
	} else {
		matched, err = s.products.HardDelete(ctx, id, owner)
	}
	if err != nil {
		return apperrors.Internal("failed to delete product", err)
	}
	if matched == 0 {
		return apperrors.NotFound("product not found")
	}

	if _, err := s.reviews.DeleteByProduct(ctx, id); err != nil {
		zap.L().Warn("review cascade failed",
			zap.String("product", idHex), zap.Error(err))
	}
	return nil
}
