package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// DefaultFeaturedLimit caps the featured product strip on the home page.
const DefaultFeaturedLimit = 6

// relatedLimit caps the related products block on a product page.
const relatedLimit = 4

// ProductSource is the direct upstream catalog API.
type ProductSource interface {
	ListProducts(ctx context.Context, q storeapi.ProductQuery) ([]storeapi.ProductPayload, error)
	ProductsURL(q storeapi.ProductQuery) string
	ListCategories(ctx context.Context) ([]storeapi.CategoryPayload, error)
}

// Relay fetches a URL through an intermediary when the direct request fails.
type Relay interface {
	Fetch(ctx context.Context, target string) ([]byte, error)
}

// CatalogService serves the product catalog. Every fetch tries the upstream
// directly first and falls back to the relay exactly once.
type CatalogService struct {
	source ProductSource
	relay  Relay
}

func NewCatalogService(source ProductSource, relay Relay) *CatalogService {
	return &CatalogService{
		source: source,
		relay:  relay,
	}
}

// ListOptions narrows a product listing.
type ListOptions struct {
	Search   string
	Category string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

// ListProducts returns the catalog, filtered and normalized. When both the
// direct request and the relay fail the shop degrades to an empty catalog
// rather than an error page.
func (s *CatalogService) ListProducts(ctx context.Context, opts ListOptions) []models.Product {
	q := storeapi.ProductQuery{
		Search:   opts.Search,
		Category: opts.Category,
		Sort:     opts.Sort,
		Order:    opts.Order,
		Page:     opts.Page,
		Limit:    opts.Limit,
	}

	payloads, err := s.fetchProducts(ctx, q)
	if err != nil {
		log.Error().Err(err).Msg("Product listing unavailable, serving empty catalog")
		return []models.Product{}
	}

	products := NormalizeProducts(payloads)
	return filterByCategory(products, opts.Category)
}

// FeaturedProducts returns up to limit featured products for the home page.
// When the upstream ignores the featured filter, flagged products from the
// full listing are used, topped up with the newest entries.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	featured := true
	payloads, err := s.fetchProducts(ctx, storeapi.ProductQuery{Featured: &featured, Limit: limit})
	if err == nil && len(payloads) > 0 {
		products := NormalizeProducts(payloads)
		if len(products) > limit {
			products = products[:limit]
		}
		return products
	}

	all := s.ListProducts(ctx, ListOptions{})
	picked := make([]models.Product, 0, limit)
	for _, p := range all {
		if p.Featured {
			picked = append(picked, p)
		}
		if len(picked) == limit {
			return picked
		}
	}
	for _, p := range all {
		if !p.Featured {
			picked = append(picked, p)
		}
		if len(picked) == limit {
			break
		}
	}
	return picked
}

// ProductDetail is a product page payload: the product plus a related block.
type ProductDetail struct {
	Product models.Product   `json:"product"`
	Related []models.Product `json:"related"`
}

// GetProduct resolves a product by any storefront identifier. Matching runs
// in precedence order over the full catalog: exact id, then slug, then SKU,
// then slugified name. Detail links have carried all four shapes over time.
func (s *CatalogService) GetProduct(ctx context.Context, identifier string) (*ProductDetail, error) {
	payloads, err := s.fetchProducts(ctx, storeapi.ProductQuery{})
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("Product lookup unavailable")
		return nil, utils.ErrProductNotFound
	}

	products := NormalizeProducts(payloads)
	product := matchProduct(products, identifier)
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	return &ProductDetail{
		Product: *product,
		Related: relatedProducts(products, *product),
	}, nil
}

// ListCategories returns the catalog categories, falling back to the fixed
// default set when the upstream listing is unavailable.
func (s *CatalogService) ListCategories(ctx context.Context) []models.Category {
	payloads, err := s.source.ListCategories(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Category listing unavailable, using defaults")
		return models.DefaultCategories()
	}

	categories := make([]models.Category, 0, len(payloads))
	for _, p := range payloads {
		c := NormalizeCategory(p)
		if c.IsActive {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return models.DefaultCategories()
	}
	return categories
}

// fetchProducts tries the upstream directly, then routes the identical URL
// through the relay once. The relayed body is the original response text and
// goes through the same envelope parse.
func (s *CatalogService) fetchProducts(ctx context.Context, q storeapi.ProductQuery) ([]storeapi.ProductPayload, error) {
	payloads, directErr := s.source.ListProducts(ctx, q)
	if directErr == nil {
		return payloads, nil
	}

	log.Warn().Err(directErr).Msg("Direct product fetch failed, retrying through relay")

	body, relayErr := s.relay.Fetch(ctx, s.source.ProductsURL(q))
	if relayErr != nil {
		return nil, directErr
	}
	env, err := storeapi.ParseEnvelope(body)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &storeapi.APIError{Message: env.Message}
	}
	return storeapi.DecodeProducts(env)
}

func matchProduct(products []models.Product, identifier string) *models.Product {
	lower := strings.ToLower(identifier)

	for i := range products {
		if products[i].ID == identifier {
			return &products[i]
		}
	}
	for i := range products {
		if products[i].Slug == lower {
			return &products[i]
		}
	}
	for i := range products {
		if products[i].SKU != "" && strings.EqualFold(products[i].SKU, identifier) {
			return &products[i]
		}
	}
	for i := range products {
		if utils.Slugify(products[i].Name) == utils.Slugify(identifier) {
			return &products[i]
		}
	}
	return nil
}

// relatedProducts picks up to four products from the same category, topping
// up from the rest of the catalog when the category is small.
func relatedProducts(products []models.Product, current models.Product) []models.Product {
	related := make([]models.Product, 0, relatedLimit)
	for _, p := range products {
		if p.ID == current.ID {
			continue
		}
		if p.CategorySlug == current.CategorySlug {
			related = append(related, p)
		}
		if len(related) == relatedLimit {
			return related
		}
	}
	for _, p := range products {
		if p.ID == current.ID || p.CategorySlug == current.CategorySlug {
			continue
		}
		related = append(related, p)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

func filterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == "all" {
		return products
	}
	want := utils.Slugify(category)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategorySlug == want || utils.Slugify(p.CategoryName) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
