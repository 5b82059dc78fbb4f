package model

// LineItem is the part shared by every purchasable item.
type LineItem struct {
	ItemID    string  `json:"itemID"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (l LineItem) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Ticket grants park entry on a visit date. QuotaAvailable is the remaining
// quota after this sale.
type Ticket struct {
	LineItem
	VisitDate      string `json:"visitDate"`
	ParkName       string `json:"parkName"`
	TicketName     string `json:"ticketName"`
	QuotaAvailable int    `json:"quotaAvailable"`
}

// Merchandise is a shop item (souvenirs, shirts, drinks). Stock is the
// remaining stock after this sale.
type Merchandise struct {
	LineItem
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

type PurchaseTicketInput struct {
	TicketName string  `json:"ticketName" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Qty        int     `json:"qty" validate:"required,gt=0"`
	VisitDate  string  `json:"visitDate" validate:"required,datetime=2006-01-02"`
	ParkName   string  `json:"parkName" validate:"required"`
	Quota      int     `json:"quota" validate:"omitempty,gt=0"`
}

type PurchaseMerchInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Qty      int     `json:"qty" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"required,gt=0"`
}
