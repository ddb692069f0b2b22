package models

// PlaceholderImage is served when a product has no usable image at all.
const PlaceholderImage = "/images/placeholder.jpg"

// ProductImage is one entry of a product's gallery.
type ProductImage struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order"`
	IsPrimary bool   `json:"is_primary"`
}

// Product is the canonical catalog entry. Every upstream payload, whichever
// field-naming generation it uses, is normalized into this shape before it
// reaches handlers or checkout; raw backend shapes never leave the service
// layer.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description,omitempty"`
	Price            float64 `json:"price"`
	// OriginalPrice is present only when strictly greater than Price;
	// otherwise the product is not on sale.
	OriginalPrice *float64 `json:"original_price,omitempty"`
	SKU           string   `json:"sku"`
	CategoryID    int      `json:"category_id"`
	CategoryName  string   `json:"category_name"`
	CategorySlug  string   `json:"category_slug"`
	StockQuantity int      `json:"stock_quantity"`
	IsInStock     bool     `json:"is_in_stock"`
	Featured      bool     `json:"featured"`
	Rating        float64  `json:"rating"`
	TotalReviews  int      `json:"total_reviews"`

	Features []string       `json:"features"`
	Images   []ProductImage `json:"images"`

	// PrimaryImage is derived: the first image flagged primary, else the
	// first image, else the placeholder asset.
	PrimaryImage string `json:"primary_image"`
}

// IsOnSale reports whether the product carries a valid original price.
func (p Product) IsOnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount percentage, or 0 when the
// product is not on sale.
func (p Product) DiscountPercent() int {
	if !p.IsOnSale() {
		return 0
	}
	return int(((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100) + 0.5)
}

// Category is a catalog category.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	SortOrder    int    `json:"sort_order"`
	ProductCount int    `json:"product_count"`
	IsActive     bool   `json:"is_active"`
}

// DefaultCategories is the fixed category set the shop falls back to when
// the upstream category listing is unavailable.
func DefaultCategories() []Category {
	return []Category{
		{ID: 0, Name: "All Products", Slug: "all", IsActive: true},
		{ID: 1, Name: "NFC Cards", Slug: "nfc-cards", IsActive: true},
		{ID: 2, Name: "Smart Cards", Slug: "smart-cards", IsActive: true},
		{ID: 3, Name: "RFID Tags", Slug: "rfid-tags", IsActive: true},
		{ID: 4, Name: "Accessories", Slug: "accessories", IsActive: true},
	}
}
