package entity

// CouponStatus reports whether a discount code can still be redeemed.
type CouponStatus string

const (
	CouponActive  CouponStatus = "active"
	CouponExpired CouponStatus = "expired"
)

// DefaultCouponColor is the gradient applied when the backend omits one.
const DefaultCouponColor = "from-emerald-400 to-teal-500"

// Coupon is a marketing discount code. The admin surface only creates
// and deletes coupons; there is no edit path.
type Coupon struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Discount    int          `json:"discount"` // percent
	Description string       `json:"description"`
	Status      CouponStatus `json:"status"`
	Color       string       `json:"color"` // display gradient classes
}

// DefectiveStatus tracks the resolution of a damaged-inventory record.
type DefectiveStatus string

const (
	DefectivePending  DefectiveStatus = "Pending"
	DefectiveReturned DefectiveStatus = "Returned"
	DefectiveSolved   DefectiveStatus = "Solved"
)

// DefectiveItem records damaged or returned inventory, distinct from
// normal stock counts.
type DefectiveItem struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	SupplierName string          `json:"supplier_name"`
	CargoName    string          `json:"cargo_name"`
	IssueType    string          `json:"issue_type"`
	Quantity     int             `json:"quantity"`
	Price        float64         `json:"price"` // damage amount
	Status       DefectiveStatus `json:"status"`
	Date         string          `json:"date"`
	Image        string          `json:"image"`
}
