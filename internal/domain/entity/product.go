package entity

// Audience narrows a product to a target shopper group.
type Audience string

const (
	AudienceMale   Audience = "male"
	AudienceFemale Audience = "female"
	AudienceUnisex Audience = "unisex"
)

// Product is a catalog item cached from the upstream backend. Prices are
// USD; per-currency display conversion happens in the currency formatter.
// The I18n maps carry best-effort machine translations keyed by language
// code ("en", "ru") and may be empty when translation was unavailable.
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	NameI18n        map[string]string `json:"name_i18n,omitempty"`
	Brand           string            `json:"brand"`
	Price           float64           `json:"price"`
	Category        string            `json:"category"`
	CategoryI18n    map[string]string `json:"category_i18n,omitempty"`
	Audience        Audience          `json:"audience"`
	Sizes           []string          `json:"sizes"`
	SizeStock       map[string]int    `json:"size_stock"`
	Colors          []string          `json:"colors"`
	ColorImages     map[string]string `json:"color_images"` // color name -> image URL
	ColorHexes      map[string]string `json:"color_hexes"`  // color name -> hex code
	Image           string            `json:"image"`
	Gallery         []string          `json:"gallery"`
	Material        string            `json:"material"`
	Season          string            `json:"season"`
	FabricCare      string            `json:"fabric_care"`
	Fit             string            `json:"fit"`
	Stock           int               `json:"stock"`
	HasCargo        bool              `json:"has_cargo"`
	Description     string            `json:"description"`
	DescriptionI18n map[string]string `json:"description_i18n,omitempty"`
}

// Category groups products; created from the admin UI, never edited.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image string `json:"image"` // emoji or image URL
}
