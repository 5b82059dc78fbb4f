package model

// OrderLine is a line item tagged with its kind so mixed orders stay
// decodable without reflection on the item shape.
type OrderLine struct {
	Kind string `json:"kind"`
	LineItem
}

type Order struct {
	OrderID    string      `json:"orderID"`
	CustomerID string      `json:"customerID"`
	Date       string      `json:"date"`
	Status     string      `json:"status"`
	Items      []OrderLine `json:"items"`
}

func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

func (o Order) HasItem(itemID string) bool {
	for _, item := range o.Items {
		if item.ItemID == itemID {
			return true
		}
	}
	return false
}

type CancelOrderInput struct {
	OrderID string `json:"orderID" validate:"required"`
	ItemID  string `json:"itemID" validate:"omitempty"`
}
