package models

// CartEntry is a server-owned cart record. The remote contract represents
// one unit of one food per entry; quantity above 1 only appears when the
// entry is updated through the update-cart route.
type CartEntry struct {
	ID       string `json:"id"`
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Food     Food   `json:"food"`
}

// PaymentMethod is a virtual-account payment option offered at checkout.
type PaymentMethod struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ImageURL             string `json:"imageUrl"`
	VirtualAccountNumber string `json:"virtualAccountNumber"`
	VirtualAccountName   string `json:"virtualAccountName"`
}

// TransactionItem is one food line inside a placed order.
type TransactionItem struct {
	ID       string `json:"id"`
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Food     Food   `json:"food"`
}

// Transaction is a server-owned order record.
type Transaction struct {
	ID              string            `json:"id"`
	OrderDate       string            `json:"orderDate"`
	TotalPrice      float64           `json:"totalPrice"`
	Status          string            `json:"status"`
	PaymentMethodID string            `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	InvoiceID       string            `json:"invoiceId"`
	Items           []TransactionItem `json:"transaction_items"`
	CreatedAt       string            `json:"createdAt"`
}
