package entity

// CustomerStatus marks whether a customer account is in active use.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
)

// Customer is a storefront shopper tracked by the CRM view.
type Customer struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Avatar           string         `json:"avatar"`
	LastSeenAt       int64          `json:"last_seen_at"` // epoch millis, zero when never seen
	TotalTimeSeconds int64          `json:"total_time_seconds"`
	IsOnline         bool           `json:"is_online"`
	Orders           int            `json:"orders"`
	Spent            float64        `json:"spent"`
	Status           CustomerStatus `json:"status"`
	Location         string         `json:"location"`
	JoinDate         string         `json:"join_date"`
}
