// Package repository declares the persistence ports of the gateway. All
// admin data is owned by the upstream Star Store backend, so every
// repository here is implemented over its REST API rather than a local
// database.
package repository

import (
	"context"

	"staradmin/internal/domain/entity"
)

// ProductRepository manages catalog items on the upstream backend.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	UpdateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderRepository reads orders and mutates their delivery status.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
}

// CustomerRepository manages CRM records on the upstream backend.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	UpdateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CategoryRepository lists and creates product categories. The admin
// surface exposes no category edit or delete path.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, category entity.Category) (entity.Category, error)
}

// CouponRepository creates and removes discount codes.
type CouponRepository interface {
	ListCoupons(ctx context.Context) ([]entity.Coupon, error)
	CreateCoupon(ctx context.Context, coupon entity.Coupon) (entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

// DefectiveRepository tracks damaged-inventory records.
type DefectiveRepository interface {
	ListDefectiveItems(ctx context.Context) ([]entity.DefectiveItem, error)
	CreateDefectiveItem(ctx context.Context, item entity.DefectiveItem) (entity.DefectiveItem, error)
	DeleteDefectiveItem(ctx context.Context, id string) error
	UpdateDefectiveStatus(ctx context.Context, id string, status entity.DefectiveStatus) (entity.DefectiveItem, error)
}

// SectionRepository manages storefront layout sections, including the
// bulk reorder call the builder issues after every structural change.
type SectionRepository interface {
	ListSections(ctx context.Context) ([]entity.SiteSection, error)
	CreateSection(ctx context.Context, section entity.SiteSection) (entity.SiteSection, error)
	UpdateSection(ctx context.Context, section entity.SiteSection) (entity.SiteSection, error)
	DeleteSection(ctx context.Context, id string) error
	ReorderSections(ctx context.Context, sections []entity.SiteSection) error
}

// AuthRepository authenticates against the upstream backend and signs
// direct media uploads.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token and the account record.
	Login(ctx context.Context, login, password string) (entity.AdminUser, string, error)
	// Me validates the stored bearer token and returns the account record.
	Me(ctx context.Context) (entity.AdminUser, error)
	// SignUpload requests a short-lived signed upload ticket for a scope.
	SignUpload(ctx context.Context, scope entity.UploadScope) (entity.UploadTicket, error)
}
