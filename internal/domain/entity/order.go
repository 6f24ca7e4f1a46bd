package entity

// OrderStatus is the delivery lifecycle of an order. Only Processing
// orders may transition, to Delivered or Cancelled.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// OrderAddress is the shipping destination of an order.
type OrderAddress struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Region     string `json:"region"`   // tashkent | region | international
	ETAFrom    int64  `json:"eta_from"` // epoch millis
	ETATo      int64  `json:"eta_to"`   // epoch millis
}

// Order is a customer order cached from the upstream backend. It is
// read-mostly: status is the only field the admin surface mutates.
// Timestamps are epoch milliseconds to match the wire format.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	Product       string        `json:"product"` // display summary of purchased items
	Price         float64       `json:"price"`
	Status        OrderStatus   `json:"status"`
	Date          string        `json:"date"` // display string from the backend
	CreatedAt     int64         `json:"created_at"`
	DeliveryETA   int64         `json:"delivery_eta"`
	ItemsCount    int           `json:"items_count"`
	PreviewImage  string        `json:"preview_image"`
	CustomerEmail string        `json:"customer_email"`
	Items         []OrderItem   `json:"items"`
	Address       *OrderAddress `json:"address,omitempty"`
}
