package models

// OrderRecord is the order-management backend's representation of a paid
// service order. Optional fields arrive empty rather than being rejected;
// defaulting happens during normalization.
type OrderRecord struct {
	ID            int       `json:"id"`
	ServiceName   string    `json:"serviceName"`
	CustomerEmail string    `json:"customerEmail"`
	Status        string    `json:"status"`
	UserID        int       `json:"userId"`
	AssigneeEmail string    `json:"assigneeEmail"`
	PaymentID     string    `json:"paymentId"`
	TotalAmount   Money     `json:"totalAmount"`
	CreatedAt     Timestamp `json:"createdAt"`
}
