package services

import (
	"context"
	"errors"
	"time"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/models"
	"github.com/Arnab1999india/bazaar/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CategoryNode is one node of the category tree with product counts rolled
// up from its subtree.
type CategoryNode struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	ProductCount int             `json:"productCount"`
	Children     []*CategoryNode `json:"children,omitempty"`
}

// TrackViewInput is one browsing event to record.
type TrackViewInput struct {
	ProductID string
	UserID    string
	SessionID string
	IPAddress string
}

// Recently-viewed list sizing.
const (
	defaultRecentlyViewed = 10
	maxRecentlyViewed     = 20
)

type CatalogService struct {
	categories repository.CategoryRepo
	brands     repository.BrandRepo
	products   repository.ProductRepo
	orders     repository.OrderRepo
	deals      repository.DealRepo
	views      repository.ViewRepo
}

func NewCatalogService(
	categories repository.CategoryRepo,
	brands repository.BrandRepo,
	products repository.ProductRepo,
	orders repository.OrderRepo,
	deals repository.DealRepo,
	views repository.ViewRepo,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		brands:     brands,
		products:   products,
		orders:     orders,
		deals:      deals,
		views:      views,
	}
}

// CategoryTree builds the category hierarchy with per-node product counts.
// Each node's count includes every descendant's products.
func (s *CatalogService) CategoryTree(ctx context.Context) ([]*CategoryNode, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load categories", err)
	}

	counts, err := s.products.CountByCategory(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count products", err)
	}

	return buildCategoryTree(categories, counts), nil
}

// buildCategoryTree links categories into a forest and rolls descendant
// product counts into each ancestor. A node whose parent id is missing,
// dangling or self-referential becomes a root.
func buildCategoryTree(categories []models.Category, counts map[string]int) []*CategoryNode {
	nodes := make(map[string]*CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID.Hex()] = &CategoryNode{
			ID:           c.ID.Hex(),
			Name:         c.Name,
			Slug:         c.Slug,
			ProductCount: counts[c.Slug],
		}
	}

	roots := []*CategoryNode{}
	for _, c := range categories {
		node := nodes[c.ID.Hex()]
		parent, ok := nodes[c.ParentID]
		if c.ParentID == "" || !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	visited := make(map[*CategoryNode]bool, len(nodes))
	for _, root := range roots {
		rollUpCounts(root, visited)
	}

	// Cyclic parent chains never reach a root; surface them as extra roots
	// rather than dropping the categories silently.
	for _, c := range categories {
		node := nodes[c.ID.Hex()]
		if !visited[node] {
			roots = append(roots, node)
			rollUpCounts(node, visited)
		}
	}

	return roots
}

func rollUpCounts(node *CategoryNode, visited map[*CategoryNode]bool) int {
	if visited[node] {
		return 0
	}
	visited[node] = true

	total := node.ProductCount
	for _, child := range node.Children {
		total += rollUpCounts(child, visited)
	}
	node.ProductCount = total
	return total
}

// Brands lists brands, optionally scoped to a category given by slug or id.
// An unknown category yields an empty list, not an error.
func (s *CatalogService) Brands(ctx context.Context, category string) ([]models.Brand, error) {
	if category == "" {
		brands, err := s.brands.FindAll(ctx)
		if err != nil {
			return nil, apperrors.Internal("failed to load brands", err)
		}
		return brands, nil
	}

	cat, err := s.categories.FindBySlug(ctx, category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cat, err = s.categories.FindByIDHex(ctx, category)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.Brand{}, nil
		}
		return nil, apperrors.Internal("failed to resolve category", err)
	}

	brands, err := s.brands.FindByCategoryID(ctx, cat.ID.Hex())
	if err != nil {
		return nil, apperrors.Internal("failed to load brands", err)
	}
	return brands, nil
}

// DealView is an active deal with its product resolved. The product may be
// nil when it vanished after the deal was created.
type DealView struct {
	models.Deal
	Product *models.DealProduct `json:"product,omitempty"`
}

// Deals returns currently active deals, earliest start first, each with a
// summary of its product.
func (s *CatalogService) Deals(ctx context.Context) ([]DealView, error) {
	deals, err := s.deals.FindActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, apperrors.Internal("failed to load deals", err)
	}

	ids := make([]primitive.ObjectID, 0, len(deals))
	for _, d := range deals {
		ids = append(ids, d.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("failed to load deal products", err)
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]DealView, 0, len(deals))
	for _, d := range deals {
		view := DealView{Deal: d}
		if p, ok := byID[d.ProductID]; ok {
			view.Product = &models.DealProduct{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				ImageURL: p.ImageURL,
				Brand:    p.Brand,
				Rating:   p.Rating,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Bestsellers returns the top products by units sold, optionally scoped to a
// category subtree.
func (s *CatalogService) Bestsellers(ctx context.Context, category string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sales, err := s.orders.AggregateSales(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to aggregate sales", err)
	}
	ranked := RankBySales(sales)

	matching, err := s.products.FindIDs(ctx, BuildProductFilter(ProductQuery{Category: category}))
	if err != nil {
		return nil, apperrors.Internal("failed to resolve matching products", err)
	}

	ids := make([]primitive.ObjectID, 0, limit)
	for _, row := range ranked {
		if _, ok := matching[row.ProductID]; !ok {
			continue
		}
		ids = append(ids, row.ProductID)
		if len(ids) == limit {
			break
		}
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("failed to load products", err)
	}
	return OrderByIDs(ids, products), nil
}

// RecentlyViewed returns the user's most recently viewed live products,
// newest view first.
func (s *CatalogService) RecentlyViewed(ctx context.Context, userID string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = defaultRecentlyViewed
	}
	if limit > maxRecentlyViewed {
		limit = maxRecentlyViewed
	}

	ids, err := s.views.RecentProductIDs(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to load view history", err)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("failed to load products", err)
	}
	return OrderByIDs(ids, products), nil
}

// RecordView appends a browsing event. The product must exist; a bad or
// unknown id is rejected so the history never accumulates dead references.
func (s *CatalogService) RecordView(ctx context.Context, in TrackViewInput) error {
	id, err := primitive.ObjectIDFromHex(in.ProductID)
	if err != nil {
		return apperrors.Validation("invalid product id", nil)
	}

	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFound("product not found")
		}
		return apperrors.Internal("failed to load product", err)
	}

	view := &models.ProductView{
		ProductID: id,
		UserID:    in.UserID,
		SessionID: in.SessionID,
		IPAddress: in.IPAddress,
	}
	if err := s.views.Insert(ctx, view); err != nil {
		zap.L().Error("failed to record product view",
			zap.String("product", in.ProductID), zap.Error(err))
		return apperrors.Internal("failed to record view", err)
	}
	return nil
}
