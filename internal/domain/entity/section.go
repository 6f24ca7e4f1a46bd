package entity

// SectionType discriminates the layout blocks the site builder can place
// on a storefront page. The Data payload shape depends on the type.
type SectionType string

const (
	SectionHero           SectionType = "hero"
	SectionBanner         SectionType = "banner"
	SectionText           SectionType = "text"
	SectionAboutBlock     SectionType = "about_block"
	SectionAboutBanner    SectionType = "about_banner"
	SectionFeatured       SectionType = "featured"
	SectionCategories     SectionType = "categories"
	SectionBrandGrid      SectionType = "brand_grid"
	SectionSmartDiscovery SectionType = "smart_discovery"
	SectionTrust          SectionType = "trust"
	SectionSpacer         SectionType = "spacer"
	SectionFooter         SectionType = "footer"
)

// SectionTypes lists every known section type in builder palette order.
var SectionTypes = []SectionType{
	SectionHero,
	SectionBanner,
	SectionText,
	SectionAboutBlock,
	SectionAboutBanner,
	SectionFeatured,
	SectionCategories,
	SectionBrandGrid,
	SectionSmartDiscovery,
	SectionTrust,
	SectionSpacer,
	SectionFooter,
}

// HomePage is the default, undeletable storefront page slug.
const HomePage = "home"

// SiteSection is one configurable block of the public storefront layout.
// OrderIndex defines render order within a page; Data is the free-form
// JSON payload whose shape is governed by Type. Sections flow through the
// gateway untouched except for ordering and i18n enrichment.
type SiteSection struct {
	ID         string         `json:"id"`
	Type       SectionType    `json:"type"`
	OrderIndex int            `json:"order_index"`
	Page       string         `json:"page"`
	Enabled    bool           `json:"enabled"`
	Data       map[string]any `json:"data"`
}

// PageOrDefault returns the owning page slug, falling back to home.
func (s SiteSection) PageOrDefault() string {
	if s.Page == "" {
		return HomePage
	}
	return s.Page
}
