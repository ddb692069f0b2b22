package storeapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number that the upstream may serialize either as
// a number or as a quoted string (e.g. "product_mrp": "59.99"). Unparseable
// values decode to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes an integer that may arrive as a number or a quoted string.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(v)
	return nil
}

// FlexString decodes a value that may arrive as a string or a bare number
// (product ids are numeric in one backend generation, UUID strings in the
// other).
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(raw)
	return nil
}

// FlexBool decodes a boolean that may arrive as true/false, 0/1, or the
// strings "0"/"1"/"true"/"false" (the PHP backend is not consistent).
type FlexBool bool

func (fb *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch s {
	case "", "null", "0", "false":
		*fb = false
	default:
		*fb = true
	}
	return nil
}

// ImagePayload is one entry of a product's images array. The newer backend
// writes image_url, an older generation wrote url.
type ImagePayload struct {
	ID        *FlexInt  `json:"id,omitempty"`
	ImageURL  string    `json:"image_url"`
	URL       string    `json:"url,omitempty"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder *FlexInt  `json:"sort_order,omitempty"`
	IsPrimary *FlexBool `json:"is_primary,omitempty"`
}

// Src returns whichever image URL field is populated.
func (p ImagePayload) Src() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return p.URL
}

// Primary reports whether the entry is flagged primary.
func (p ImagePayload) Primary() bool {
	return p.IsPrimary != nil && bool(*p.IsPrimary)
}

// ProductPayload is the raw upstream product record. It carries the union of
// the two field-naming generations the backend has shipped: the legacy shape
// (name/price/images[]) and the newer one (product_name/product_mrp/
// product_offer_price/product_feature_image/product_gallery1..4). Pointer
// fields distinguish "absent" from zero so the normalizer can apply its
// fallback chains.
type ProductPayload struct {
	ID               FlexString `json:"id"`
	Name             string     `json:"name"`
	ProductName      string     `json:"product_name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`

	Price             *FlexFloat `json:"price"`
	SalePrice         *FlexFloat `json:"sale_price"`
	OriginalPrice     *FlexFloat `json:"original_price"`
	ComparePrice      *FlexFloat `json:"compare_price"`
	ProductMRP        *FlexFloat `json:"product_mrp"`
	ProductOfferPrice *FlexFloat `json:"product_offer_price"`

	SKU          string     `json:"sku"`
	CategoryID   *FlexInt   `json:"category_id"`
	CategoryName string     `json:"category_name"`
	CategorySlug string     `json:"category_slug"`

	StockQuantity *FlexInt  `json:"stock_quantity"`
	IsInStock     *FlexBool `json:"is_in_stock"`
	InStock       *FlexBool `json:"in_stock"`

	Featured   *FlexBool `json:"featured"`
	IsFeatured *FlexBool `json:"is_featured"`

	Rating       *FlexFloat `json:"rating"`
	TotalReviews *FlexInt   `json:"total_reviews"`
	ReviewCount  *FlexInt   `json:"review_count"`

	Features []string       `json:"features"`
	Images   []ImagePayload `json:"images"`

	PrimaryImage        string `json:"primary_image"`
	Image               string `json:"image"`
	ProductFeatureImage string `json:"product_feature_image"`
	ProductGallery1     string `json:"product_gallery1"`
	ProductGallery2     string `json:"product_gallery2"`
	ProductGallery3     string `json:"product_gallery3"`
	ProductGallery4     string `json:"product_gallery4"`
}

// GallerySlots returns the four fixed gallery fields in slot order.
func (p ProductPayload) GallerySlots() []string {
	return []string{p.ProductGallery1, p.ProductGallery2, p.ProductGallery3, p.ProductGallery4}
}

// CategoryPayload is the upstream category record.
type CategoryPayload struct {
	ID           FlexInt   `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Image        string    `json:"image,omitempty"`
	SortOrder    FlexInt   `json:"sort_order"`
	ProductCount FlexInt   `json:"product_count"`
	IsActive     *FlexBool `json:"is_active"`
}

// SettingPayload is one public site setting.
type SettingPayload struct {
	Key         string `json:"setting_key"`
	Value       string `json:"setting_value"`
	Type        string `json:"setting_type"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

// CreateProductRequest is the admin product creation payload.
type CreateProductRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description,omitempty"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	SKU              string   `json:"sku,omitempty"`
	CategoryID       int      `json:"category_id"`
	StockQuantity    *int     `json:"stock_quantity,omitempty"`
	IsInStock        *bool    `json:"is_in_stock,omitempty"`
}

// UpdateProductRequest is the admin product update payload. Nil fields are
// omitted so the upstream only touches what was sent.
type UpdateProductRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ShortDescription *string  `json:"short_description,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	SKU              *string  `json:"sku,omitempty"`
	CategoryID       *int     `json:"category_id,omitempty"`
	StockQuantity    *int     `json:"stock_quantity,omitempty"`
	IsInStock        *bool    `json:"is_in_stock,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// CreateOrderRequest is the order submission payload. Field names are
// dictated by the upstream orders endpoint.
type CreateOrderRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ShippingAddress string  `json:"shipping_address"`
	TotalAmount     float64 `json:"total_amount"`
	OrderData       string  `json:"order_data"`
	OrderStatus     string  `json:"order_status"`
}

// CreateOrderResponse is the orders endpoint reply. The order identifier has
// shown up under two names; both may be absent, in which case the caller
// must synthesize one.
type CreateOrderResponse struct {
	Success     bool       `json:"success"`
	Message     string     `json:"message"`
	OrderID     FlexString `json:"order_id"`
	OrderNumber FlexString `json:"orderNumber"`
}

// OrderPayload is the upstream order record used for tracking lookups.
type OrderPayload struct {
	ID            FlexString `json:"id"`
	CustomerEmail string     `json:"customer_email"`
	TotalAmount   FlexFloat  `json:"total_amount"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"created_at"`
}

// ContactRequest is the contact form submission payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// ContactMessagePayload is a stored contact message (admin listing).
type ContactMessagePayload struct {
	ID        FlexString `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"created_at"`
}

// FAQPayload is one FAQ entry; the endpoint groups entries by category.
type FAQPayload struct {
	ID        FlexString `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Category  string     `json:"category"`
	SortOrder FlexInt    `json:"sort_order"`
	IsActive  *FlexBool  `json:"is_active"`
}
