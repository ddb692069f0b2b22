package service

import (
	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
)

// PagesService serves the static legal and informational pages. Content is
// compiled in; these pages change rarely and must render even when the
// upstream is down.
type PagesService struct {
	pages map[string]models.StaticPage
}

func NewPagesService() *PagesService {
	return &PagesService{pages: staticPages()}
}

// GetPage returns a static page by slug.
func (s *PagesService) GetPage(slug string) (*models.StaticPage, error) {
	page, ok := s.pages[slug]
	if !ok {
		return nil, utils.ErrPageNotFound
	}
	return &page, nil
}

// ListSlugs returns the available page slugs.
func (s *PagesService) ListSlugs() []string {
	slugs := make([]string, 0, len(s.pages))
	for slug := range s.pages {
		slugs = append(slugs, slug)
	}
	return slugs
}

func staticPages() map[string]models.StaticPage {
	return map[string]models.StaticPage{
		"about": {
			Slug:  "about",
			Title: "About Us",
			Sections: []string{
				"TapNex builds NFC business cards that replace the paper stack in your pocket with a single tap.",
				"Every card carries a programmable NFC chip and a QR fallback, so your profile opens on any modern phone without an app.",
				"We ship worldwide from our fulfilment centre and support custom branding for teams of any size.",
			},
		},
		"privacy-policy": {
			Slug:  "privacy-policy",
			Title: "Privacy Policy",
			Sections: []string{
				"We collect only the information needed to process your order: your name, contact details, and shipping address.",
				"Order details are shared with our payment and shipping partners solely to fulfil your purchase.",
				"We never sell personal data. You can request a copy or deletion of your data by contacting support.",
				"Our storefront uses no tracking cookies beyond what is required to keep your checkout session working.",
			},
		},
		"terms-and-conditions": {
			Slug:  "terms-and-conditions",
			Title: "Terms & Conditions",
			Sections: []string{
				"By placing an order you confirm that the shipping and contact details you provide are accurate.",
				"Prices shown include product cost only; applicable taxes are itemised at checkout before you confirm.",
				"Orders are processed within two business days. Delivery estimates are indicative and may vary by region.",
				"NFC cards are configured to the profile details supplied at purchase; reconfiguration is available through support.",
			},
		},
		"refund-policy": {
			Slug:  "refund-policy",
			Title: "Refund Policy",
			Sections: []string{
				"Unused cards in original packaging may be returned within 14 days of delivery for a full refund.",
				"Custom-branded cards are made to order and are refundable only when defective.",
				"Defective cards are replaced free of charge; contact support with your order number to arrange a replacement.",
				"Refunds are issued to the original payment method within 5-7 business days of receiving the return.",
			},
		},
	}
}
