package service

import (
	"fmt"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// Default values applied when the upstream omits a field. The backend has
// shipped records without ratings or stock counts; the storefront still needs
// something sensible to render.
const (
	defaultRating        = 4.5
	defaultStockQuantity = 100
	defaultCategoryName  = "NFC Cards"
)

// NormalizeProduct converts a raw upstream record, whichever field-naming
// generation it uses, into the canonical product shape. Normalizing an
// already-canonical record is a no-op: the canonical JSON field names map
// back onto the payload's legacy fields.
func NormalizeProduct(p storeapi.ProductPayload) models.Product {
	name := firstNonEmpty(p.ProductName, p.Name, "Unknown Product")
	slug := p.Slug
	if slug == "" {
		slug = utils.Slugify(name)
	}

	id := string(p.ID)
	if id == "" {
		id = firstNonEmpty(p.Slug, p.SKU, utils.Slugify(name))
	}

	price, originalPrice := resolvePricing(p)

	product := models.Product{
		ID:               id,
		Name:             name,
		Slug:             slug,
		Description:      firstNonEmpty(p.Description, p.LongDescription),
		ShortDescription: p.ShortDescription,
		Price:            price,
		OriginalPrice:    originalPrice,
		SKU:              p.SKU,
		CategoryName:     firstNonEmpty(p.CategoryName, defaultCategoryName),
		StockQuantity:    defaultStockQuantity,
		IsInStock:        true,
		Rating:           defaultRating,
		Features:         p.Features,
	}

	if p.CategoryID != nil {
		product.CategoryID = int(*p.CategoryID)
	}
	product.CategorySlug = p.CategorySlug
	if product.CategorySlug == "" {
		product.CategorySlug = utils.Slugify(product.CategoryName)
	}

	if p.StockQuantity != nil && int(*p.StockQuantity) > 0 {
		product.StockQuantity = int(*p.StockQuantity)
	}
	if p.IsInStock != nil {
		product.IsInStock = bool(*p.IsInStock)
	} else if p.InStock != nil {
		product.IsInStock = bool(*p.InStock)
	}

	if p.Featured != nil {
		product.Featured = bool(*p.Featured)
	} else if p.IsFeatured != nil {
		product.Featured = bool(*p.IsFeatured)
	}

	if p.Rating != nil && float64(*p.Rating) > 0 {
		product.Rating = float64(*p.Rating)
	}
	if p.TotalReviews != nil {
		product.TotalReviews = int(*p.TotalReviews)
	} else if p.ReviewCount != nil {
		product.TotalReviews = int(*p.ReviewCount)
	}

	if product.Features == nil {
		product.Features = []string{}
	}

	product.Images = normalizeImages(p, name)
	product.PrimaryImage = primaryImage(product.Images)

	return product
}

// NormalizeProducts maps a raw listing into canonical products.
func NormalizeProducts(payloads []storeapi.ProductPayload) []models.Product {
	products := make([]models.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, NormalizeProduct(p))
	}
	return products
}

// NormalizeCategory converts an upstream category record.
func NormalizeCategory(c storeapi.CategoryPayload) models.Category {
	slug := c.Slug
	if slug == "" {
		slug = utils.Slugify(c.Name)
	}
	active := true
	if c.IsActive != nil {
		active = bool(*c.IsActive)
	}
	return models.Category{
		ID:           int(c.ID),
		Name:         c.Name,
		Slug:         slug,
		Description:  c.Description,
		Image:        c.Image,
		SortOrder:    int(c.SortOrder),
		ProductCount: int(c.ProductCount),
		IsActive:     active,
	}
}

// resolvePricing picks the selling price and, when a strictly higher
// reference price exists, the original price. The newer backend generation
// writes product_offer_price/product_mrp, the legacy one price plus one of
// sale_price/original_price/compare_price.
func resolvePricing(p storeapi.ProductPayload) (float64, *float64) {
	price := 0.0
	switch {
	case floatSet(p.ProductOfferPrice):
		price = float64(*p.ProductOfferPrice)
	case floatSet(p.SalePrice):
		price = float64(*p.SalePrice)
	case floatSet(p.Price):
		price = float64(*p.Price)
	}

	for _, candidate := range []*storeapi.FlexFloat{p.ProductMRP, p.OriginalPrice, p.ComparePrice, p.Price} {
		if floatSet(candidate) && float64(*candidate) > price {
			v := float64(*candidate)
			return price, &v
		}
	}
	return price, nil
}

// normalizeImages builds the gallery. The images array wins when present;
// otherwise the fixed feature/gallery1..4 fields are packed gaplessly, the
// feature image first as primary.
func normalizeImages(p storeapi.ProductPayload, name string) []models.ProductImage {
	if len(p.Images) > 0 {
		images := make([]models.ProductImage, 0, len(p.Images))
		for i, img := range p.Images {
			src := img.Src()
			if src == "" {
				continue
			}
			alt := img.AltText
			if alt == "" {
				alt = name
			}
			sort := i
			if img.SortOrder != nil {
				sort = int(*img.SortOrder)
			}
			images = append(images, models.ProductImage{
				URL:       src,
				AltText:   alt,
				SortOrder: sort,
				IsPrimary: img.Primary(),
			})
		}
		if len(images) > 0 {
			return images
		}
	}

	images := []models.ProductImage{}
	if feature := firstNonEmpty(p.ProductFeatureImage, p.PrimaryImage, p.Image); feature != "" {
		images = append(images, models.ProductImage{
			URL:       feature,
			AltText:   name,
			SortOrder: 0,
			IsPrimary: true,
		})
	}
	for i, slot := range p.GallerySlots() {
		if slot == "" {
			continue
		}
		images = append(images, models.ProductImage{
			URL:       slot,
			AltText:   fmt.Sprintf("%s - Image %d", name, i+2),
			SortOrder: len(images),
		})
	}
	return images
}

func primaryImage(images []models.ProductImage) string {
	for _, img := range images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return models.PlaceholderImage
}

func floatSet(f *storeapi.FlexFloat) bool {
	return f != nil && float64(*f) > 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
