package entity

import "time"

// ViewType identifies an admin view a notification may navigate to.
type ViewType string

const (
	ViewDashboard   ViewType = "dashboard"
	ViewProducts    ViewType = "products"
	ViewOrders      ViewType = "orders"
	ViewCategories  ViewType = "categories"
	ViewMarketing   ViewType = "marketing"
	ViewSettings    ViewType = "settings"
	ViewFinance     ViewType = "finance"
	ViewCustomers   ViewType = "customers"
	ViewActivity    ViewType = "activity"
	ViewSiteBuilder ViewType = "site-builder"
)

// NotificationType drives the toast styling and the default title.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyOrder   NotificationType = "order"
	NotifyAlert   NotificationType = "alert"
)

// Notification is a user-facing message. The same record serves both the
// transient toast queue (pruned after its TTL) and the persistent inbox
// (kept until cleared, with a read flag).
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Time       string           `json:"time"` // display label, "Hozir" at creation
	Read       bool             `json:"read"`
	TargetView ViewType         `json:"target_view,omitempty"` // optional navigation target
	TargetID   string           `json:"target_id,omitempty"`   // optional entity id within the target view
	CreatedAt  time.Time        `json:"created_at"`
}

// ActivityStatus marks whether an audited admin action succeeded.
type ActivityStatus string

const (
	ActivityOK     ActivityStatus = "success"
	ActivityFailed ActivityStatus = "failed"
)

// ActivityEntry is one row of the local audit log kept by the gateway.
type ActivityEntry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	User      string         `json:"user"`
	Target    string         `json:"target"`
	Timestamp time.Time      `json:"timestamp"`
	Status    ActivityStatus `json:"status"`
	Icon      string         `json:"icon"` // icon hint: box | tag | dollar | user | truck | lock
}
