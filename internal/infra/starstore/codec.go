package starstore

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"staradmin/internal/domain/entity"
)

// The backend serves snake_case JSON with loosely typed values: numbers
// arrive as numbers or strings depending on the record's age, ids live
// under "id" or "_id", and optional fields are often absent. The flex
// types below absorb that; the mappers fill the defaults the admin
// surface relies on.

// flexFloat decodes a JSON number, a numeric string or null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*f = flexFloat(v)

	return nil
}

// flexInt decodes a JSON number, a numeric string or null, truncating
// fractions.
type flexInt int

func (i *flexInt) UnmarshalJSON(raw []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(raw); err != nil {
		return err
	}
	*i = flexInt(f)

	return nil
}

// flexMillis decodes a timestamp as epoch milliseconds, a numeric
// string or an RFC 3339 date string. Zero means absent.
type flexMillis int64

func (m *flexMillis) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*m = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*m = 0
			return nil
		}
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			*m = flexMillis(v)
			return nil
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				*m = flexMillis(t.UnixMilli())
				return nil
			}
		}
		*m = 0
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*m = flexMillis(int64(v))

	return nil
}

// recordID resolves the "id"/"_id" split in backend payloads.
func recordID(id, altID string) string {
	if id != "" {
		return id
	}

	return altID
}

const deliveryWindow = 7 * 24 * time.Hour

// avatarFallback builds a deterministic placeholder avatar URL for
// customers with no stored photo.
func avatarFallback(name string) string {
	if name == "" {
		name = "Mijoz"
	}

	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func orStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func orStringMap(values map[string]string) map[string]string {
	if values == nil {
		return map[string]string{}
	}

	return values
}

func orIntMap(values map[string]flexInt) map[string]int {
	out := make(map[string]int, len(values))
	for k, v := range values {
		out[k] = int(v)
	}

	return out
}

func toFlexIntMap(values map[string]int) map[string]flexInt {
	out := make(map[string]flexInt, len(values))
	for k, v := range values {
		out[k] = flexInt(v)
	}

	return out
}

type productDTO struct {
	ID              string              `json:"id,omitempty"`
	AltID           string              `json:"_id,omitempty"`
	Name            string              `json:"name"`
	NameI18n        map[string]string   `json:"name_i18n,omitempty"`
	Brand           string              `json:"brand,omitempty"`
	Price           flexFloat           `json:"price"`
	Category        string              `json:"category,omitempty"`
	CategoryI18n    map[string]string   `json:"category_i18n,omitempty"`
	Audience        string              `json:"audience,omitempty"`
	Sizes           []string            `json:"sizes,omitempty"`
	SizeStock       map[string]flexInt  `json:"size_stock,omitempty"`
	Colors          []string            `json:"colors,omitempty"`
	ColorImages     map[string]string   `json:"color_images,omitempty"`
	ColorHexes      map[string]string   `json:"color_hexes,omitempty"`
	Image           string              `json:"image,omitempty"`
	Gallery         []string            `json:"gallery,omitempty"`
	Material        string              `json:"material,omitempty"`
	Season          string              `json:"season,omitempty"`
	FabricCare      string              `json:"fabric_care,omitempty"`
	Fit             string              `json:"fit,omitempty"`
	Stock           flexInt             `json:"stock"`
	HasCargo        bool                `json:"has_cargo"`
	Description     string              `json:"description,omitempty"`
	DescriptionI18n map[string]string   `json:"description_i18n,omitempty"`
}

func (d productDTO) toEntity() entity.Product {
	audience := entity.Audience(d.Audience)
	switch audience {
	case entity.AudienceMale, entity.AudienceFemale, entity.AudienceUnisex:
	default:
		audience = entity.AudienceUnisex
	}

	return entity.Product{
		ID:              recordID(d.ID, d.AltID),
		Name:            d.Name,
		NameI18n:        orStringMap(d.NameI18n),
		Brand:           d.Brand,
		Price:           float64(d.Price),
		Category:        d.Category,
		CategoryI18n:    orStringMap(d.CategoryI18n),
		Audience:        audience,
		Sizes:           orStrings(d.Sizes),
		SizeStock:       orIntMap(d.SizeStock),
		Colors:          orStrings(d.Colors),
		ColorImages:     orStringMap(d.ColorImages),
		ColorHexes:      orStringMap(d.ColorHexes),
		Image:           d.Image,
		Gallery:         orStrings(d.Gallery),
		Material:        d.Material,
		Season:          d.Season,
		FabricCare:      d.FabricCare,
		Fit:             d.Fit,
		Stock:           int(d.Stock),
		HasCargo:        d.HasCargo,
		Description:     d.Description,
		DescriptionI18n: orStringMap(d.DescriptionI18n),
	}
}

func productToDTO(p entity.Product) productDTO {
	return productDTO{
		ID:              p.ID,
		Name:            p.Name,
		NameI18n:        p.NameI18n,
		Brand:           p.Brand,
		Price:           flexFloat(p.Price),
		Category:        p.Category,
		CategoryI18n:    p.CategoryI18n,
		Audience:        string(p.Audience),
		Sizes:           p.Sizes,
		SizeStock:       toFlexIntMap(p.SizeStock),
		Colors:          p.Colors,
		ColorImages:     p.ColorImages,
		ColorHexes:      p.ColorHexes,
		Image:           p.Image,
		Gallery:         p.Gallery,
		Material:        p.Material,
		Season:          p.Season,
		FabricCare:      p.FabricCare,
		Fit:             p.Fit,
		Stock:           flexInt(p.Stock),
		HasCargo:        p.HasCargo,
		Description:     p.Description,
		DescriptionI18n: p.DescriptionI18n,
	}
}

type orderItemDTO struct {
	ProductID string    `json:"product_id,omitempty"`
	Name      string    `json:"name"`
	Price     flexFloat `json:"price"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Quantity  flexInt   `json:"quantity"`
	Image     string    `json:"image,omitempty"`
}

type orderAddressDTO struct {
	Line1      string     `json:"line1,omitempty"`
	City       string     `json:"city,omitempty"`
	PostalCode string     `json:"postal_code,omitempty"`
	Region     string     `json:"region,omitempty"`
	ETAFrom    flexMillis `json:"eta_from,omitempty"`
	ETATo      flexMillis `json:"eta_to,omitempty"`
}

type orderDTO struct {
	ID            string           `json:"id,omitempty"`
	AltID         string           `json:"_id,omitempty"`
	CustomerName  string           `json:"customer_name,omitempty"`
	Product       string           `json:"product_summary,omitempty"`
	Price         flexFloat        `json:"price"`
	Status        string           `json:"status,omitempty"`
	Date          string           `json:"date,omitempty"`
	CreatedAt     flexMillis       `json:"created_at,omitempty"`
	DeliveryETA   flexMillis       `json:"delivery_eta,omitempty"`
	ItemsCount    flexInt          `json:"items_count,omitempty"`
	PreviewImage  string           `json:"preview_image,omitempty"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	Items         []orderItemDTO   `json:"items,omitempty"`
	Address       *orderAddressDTO `json:"address,omitempty"`
}

func (d orderDTO) toEntity() entity.Order {
	status := entity.OrderStatus(d.Status)
	switch status {
	case entity.OrderProcessing, entity.OrderDelivered, entity.OrderCancelled:
	default:
		status = entity.OrderProcessing
	}

	name := d.CustomerName
	if name == "" {
		name = "Mijoz"
	}
	summary := d.Product
	if summary == "" {
		summary = "Mahsulot"
	}

	eta := int64(d.DeliveryETA)
	if eta == 0 && d.CreatedAt != 0 {
		eta = int64(d.CreatedAt) + deliveryWindow.Milliseconds()
	}

	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     float64(item.Price),
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  int(item.Quantity),
			Image:     item.Image,
		})
	}

	count := int(d.ItemsCount)
	if count == 0 {
		count = len(items)
	}

	var address *entity.OrderAddress
	if d.Address != nil {
		address = &entity.OrderAddress{
			Line1:      d.Address.Line1,
			City:       d.Address.City,
			PostalCode: d.Address.PostalCode,
			Region:     d.Address.Region,
			ETAFrom:    int64(d.Address.ETAFrom),
			ETATo:      int64(d.Address.ETATo),
		}
	}

	return entity.Order{
		ID:            recordID(d.ID, d.AltID),
		CustomerName:  name,
		Product:       summary,
		Price:         float64(d.Price),
		Status:        status,
		Date:          d.Date,
		CreatedAt:     int64(d.CreatedAt),
		DeliveryETA:   eta,
		ItemsCount:    count,
		PreviewImage:  d.PreviewImage,
		CustomerEmail: d.CustomerEmail,
		Items:         items,
		Address:       address,
	}
}

type customerDTO struct {
	ID               string     `json:"id,omitempty"`
	AltID            string     `json:"_id,omitempty"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Avatar           string     `json:"avatar,omitempty"`
	LastSeenAt       flexMillis `json:"last_seen_at,omitempty"`
	TotalTimeSeconds flexInt    `json:"total_time_seconds,omitempty"`
	IsOnline         bool       `json:"is_online,omitempty"`
	Orders           flexInt    `json:"orders,omitempty"`
	Spent            flexFloat  `json:"spent,omitempty"`
	Status           string     `json:"status,omitempty"`
	Location         string     `json:"location,omitempty"`
	JoinDate         string     `json:"join_date,omitempty"`
}

func (d customerDTO) toEntity() entity.Customer {
	status := entity.CustomerStatus(d.Status)
	switch status {
	case entity.CustomerActive, entity.CustomerInactive:
	default:
		status = entity.CustomerActive
	}

	avatar := d.Avatar
	if avatar == "" {
		avatar = avatarFallback(d.Name)
	}

	return entity.Customer{
		ID:               recordID(d.ID, d.AltID),
		Name:             d.Name,
		Email:            d.Email,
		Phone:            d.Phone,
		Avatar:           avatar,
		LastSeenAt:       int64(d.LastSeenAt),
		TotalTimeSeconds: int64(d.TotalTimeSeconds),
		IsOnline:         d.IsOnline,
		Orders:           int(d.Orders),
		Spent:            float64(d.Spent),
		Status:           status,
		Location:         d.Location,
		JoinDate:         d.JoinDate,
	}
}

func customerToDTO(c entity.Customer) customerDTO {
	return customerDTO{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Avatar:           c.Avatar,
		LastSeenAt:       flexMillis(c.LastSeenAt),
		TotalTimeSeconds: flexInt(c.TotalTimeSeconds),
		IsOnline:         c.IsOnline,
		Orders:           flexInt(c.Orders),
		Spent:            flexFloat(c.Spent),
		Status:           string(c.Status),
		Location:         c.Location,
		JoinDate:         c.JoinDate,
	}
}

type categoryDTO struct {
	ID    string  `json:"id,omitempty"`
	AltID string  `json:"_id,omitempty"`
	Name  string  `json:"name"`
	Count flexInt `json:"count,omitempty"`
	Image string  `json:"image,omitempty"`
}

func (d categoryDTO) toEntity() entity.Category {
	return entity.Category{
		ID:    recordID(d.ID, d.AltID),
		Name:  d.Name,
		Count: int(d.Count),
		Image: d.Image,
	}
}

type couponDTO struct {
	ID          string  `json:"id,omitempty"`
	AltID       string  `json:"_id,omitempty"`
	Code        string  `json:"code"`
	Discount    flexInt `json:"discount"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Color       string  `json:"color,omitempty"`
}

func (d couponDTO) toEntity() entity.Coupon {
	status := entity.CouponStatus(d.Status)
	switch status {
	case entity.CouponActive, entity.CouponExpired:
	default:
		status = entity.CouponActive
	}

	color := d.Color
	if color == "" {
		color = entity.DefaultCouponColor
	}

	return entity.Coupon{
		ID:          recordID(d.ID, d.AltID),
		Code:        d.Code,
		Discount:    int(d.Discount),
		Description: d.Description,
		Status:      status,
		Color:       color,
	}
}

type defectiveDTO struct {
	ID           string    `json:"id,omitempty"`
	AltID        string    `json:"_id,omitempty"`
	ProductName  string    `json:"product_name"`
	SupplierName string    `json:"supplier_name,omitempty"`
	CargoName    string    `json:"cargo_name,omitempty"`
	IssueType    string    `json:"issue_type,omitempty"`
	Quantity     flexInt   `json:"quantity"`
	Price        flexFloat `json:"price,omitempty"`
	Status       string    `json:"status,omitempty"`
	Date         string    `json:"date,omitempty"`
	Image        string    `json:"image,omitempty"`
}

func (d defectiveDTO) toEntity() entity.DefectiveItem {
	status := entity.DefectiveStatus(d.Status)
	switch status {
	case entity.DefectivePending, entity.DefectiveReturned, entity.DefectiveSolved:
	default:
		status = entity.DefectivePending
	}

	return entity.DefectiveItem{
		ID:           recordID(d.ID, d.AltID),
		ProductName:  d.ProductName,
		SupplierName: d.SupplierName,
		CargoName:    d.CargoName,
		IssueType:    d.IssueType,
		Quantity:     int(d.Quantity),
		Price:        float64(d.Price),
		Status:       status,
		Date:         d.Date,
		Image:        d.Image,
	}
}

func defectiveToDTO(item entity.DefectiveItem) defectiveDTO {
	return defectiveDTO{
		ID:           item.ID,
		ProductName:  item.ProductName,
		SupplierName: item.SupplierName,
		CargoName:    item.CargoName,
		IssueType:    item.IssueType,
		Quantity:     flexInt(item.Quantity),
		Price:        flexFloat(item.Price),
		Status:       string(item.Status),
		Date:         item.Date,
		Image:        item.Image,
	}
}

type sectionDTO struct {
	ID         string         `json:"id,omitempty"`
	AltID      string         `json:"_id,omitempty"`
	Type       string         `json:"type"`
	OrderIndex flexInt        `json:"order_index"`
	Page       string         `json:"page,omitempty"`
	Enabled    *bool          `json:"enabled,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

func (d sectionDTO) toEntity() entity.SiteSection {
	page := d.Page
	if page == "" {
		page = entity.HomePage
	}

	enabled := true
	if d.Enabled != nil {
		enabled = *d.Enabled
	}

	data := d.Data
	if data == nil {
		data = map[string]any{}
	}

	return entity.SiteSection{
		ID:         recordID(d.ID, d.AltID),
		Type:       entity.SectionType(d.Type),
		OrderIndex: int(d.OrderIndex),
		Page:       page,
		Enabled:    enabled,
		Data:       data,
	}
}

func sectionToDTO(s entity.SiteSection) sectionDTO {
	enabled := s.Enabled

	return sectionDTO{
		ID:         s.ID,
		Type:       string(s.Type),
		OrderIndex: flexInt(s.OrderIndex),
		Page:       s.PageOrDefault(),
		Enabled:    &enabled,
		Data:       s.Data,
	}
}

// decodeList tolerates both a bare JSON array and an object wrapping the
// array under a known key, which the backend mixes across endpoints.
func decodeList[D any](raw json.RawMessage, keys ...string) ([]D, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []D
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range keys {
		if inner, ok := wrapper[key]; ok {
			var out []D
			if err := json.Unmarshal(inner, &out); err != nil {
				return nil, err
			}
			return out, nil
		}
	}

	return nil, nil
}

// decodeInto unmarshals a non-empty response body into out; an empty
// body leaves out zero-valued.
func decodeInto(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, out)
}

// decodeRecord tolerates both a bare object and an object wrapping the
// record under a known key.
func decodeRecord[D any](raw json.RawMessage, keys ...string) (D, error) {
	var out D
	if len(raw) == 0 {
		return out, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return out, json.Unmarshal(raw, &out)
	}
	for _, key := range keys {
		if inner, ok := wrapper[key]; ok {
			if err := json.Unmarshal(inner, &out); err != nil {
				return out, err
			}
			return out, nil
		}
	}

	return out, json.Unmarshal(raw, &out)
}
