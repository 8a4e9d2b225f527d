package order

import "time"

type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "COD"
	PaymentUPI PaymentMethod = "UPI"
)

// LineItem is a denormalized snapshot of a cart entry, captured at checkout
// and independent of later catalog changes.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Image     string  `json:"image,omitempty"`
	Variant   string  `json:"variant,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId,omitempty"`
	Items         []LineItem    `json:"cartItems"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        Status        `json:"status"`
	OrderDate     time.Time     `json:"orderDate"`
}

type CreateOrderInput struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`
	Items         []LineItem    `json:"cartItems"`
	TotalAmount   float64       `json:"totalAmount"`
}
