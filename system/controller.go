package system

import (
	"sync"
	"time"

	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

// DefaultTicketQuota applies when a purchase request does not carry the
// remaining quota for its ticket type.
const DefaultTicketQuota = 100

// System is the application service: it owns the order, item, payment,
// receipt and review ledgers plus the running statistics, and flushes all of
// them through the persistence gateway after every mutation. One mutex
// serializes operations; the count-based flush and the sequence counters are
// not safe under concurrent handlers otherwise.
type System struct {
	mu        sync.Mutex
	store     *database.Store
	orders    []model.Order
	tickets   []model.Ticket
	merch     []model.Merchandise
	payments  []model.Payment
	receipts  []model.Receipt
	reviews   []model.Review
	statistic model.Statistic
	seq       model.Sequences
}

func New(store *database.Store) (*System, error) {
	s := &System{store: store, seq: model.Sequences{}}

	collections := []struct {
		name string
		dst  any
	}{
		{"orders", &s.orders},
		{"tickets", &s.tickets},
		{"merchandise", &s.merch},
		{"payments", &s.payments},
		{"receipts", &s.receipts},
		{"reviews", &s.reviews},
		{"statistics", &s.statistic},
		{"sequences", &s.seq},
	}
	for _, c := range collections {
		if err := store.LoadAll(c.name, c.dst); err != nil {
			return nil, err
		}
	}
	if s.seq == nil {
		s.seq = model.Sequences{}
	}
	return s, nil
}

// flush rewrites every collection. Mirrors the load set above; a partial
// failure leaves memory and disk diverged, which callers treat as fatal.
func (s *System) flush() error {
	collections := []struct {
		name string
		data any
	}{
		{"orders", s.orders},
		{"tickets", s.tickets},
		{"merchandise", s.merch},
		{"payments", s.payments},
		{"receipts", s.receipts},
		{"reviews", s.reviews},
		{"statistics", s.statistic},
		{"sequences", s.seq},
	}
	for _, c := range collections {
		if err := s.store.SaveAll(c.name, c.data); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrder opens an empty active order for the customer. Purchases build
// on this; it is exported for callers that assemble orders line by line.
func (s *System) CreateOrder(customer *model.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.newOrder(customer.UserID)
	s.orders = append(s.orders, order)
	if err := s.flush(); err != nil {
		return "", err
	}
	return order.OrderID, nil
}

func (s *System) newOrder(customerID string, items ...model.OrderLine) model.Order {
	return model.Order{
		OrderID:    s.seq.Next("orders", "ORD"),
		CustomerID: customerID,
		Date:       time.Now().Format("2006-01-02"),
		Status:     constants.ORDER_STATUS_ACTIVE,
		Items:      append([]model.OrderLine{}, items...),
	}
}

// settle records the payment and receipt for a completed order and bumps the
// statistics. Payment is simulated and always succeeds.
func (s *System) settle(order model.Order) (model.Payment, model.Receipt) {
	payment := model.Payment{
		PaymentID: s.seq.Next("payments", "PAY"),
		OrderID:   order.OrderID,
		Amount:    order.Total(),
	}
	helper.ProcessPayment(&payment)

	receipt := model.Receipt{
		ReceiptID:  s.seq.Next("receipts", "RC"),
		OrderID:    order.OrderID,
		PaymentID:  payment.PaymentID,
		DateIssued: time.Now().Format("2006-01-02"),
	}

	s.payments = append(s.payments, payment)
	s.receipts = append(s.receipts, receipt)
	s.statistic.RecordOrder(order.Total())
	return payment, receipt
}

// PurchaseTicket sells park entry: one new order owning one ticket line, a
// settled payment and a receipt, all persisted together. The sale fails
// without mutating anything when the requested quantity exceeds the quota.
func (s *System) PurchaseTicket(customer *model.User, input model.PurchaseTicketInput) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quota := input.Quota
	if quota == 0 {
		quota = DefaultTicketQuota
	}
	if input.Qty > quota {
		return nil, ErrQuotaExceeded
	}

	var ticket model.Ticket
	copier.Copy(&ticket, &input)
	ticket.ItemID = s.seq.Next("tickets", "T")
	ticket.Name = input.TicketName
	ticket.Quantity = input.Qty
	ticket.UnitPrice = input.Price
	ticket.QuotaAvailable = quota - input.Qty
	s.tickets = append(s.tickets, ticket)

	order := s.newOrder(customer.UserID, model.OrderLine{
		Kind:     constants.ITEM_KIND_TICKET,
		LineItem: ticket.LineItem,
	})
	s.orders = append(s.orders, order)
	s.settle(order)

	if err := s.flush(); err != nil {
		return nil, err
	}
	result := order
	return &result, nil
}

// PurchaseMerch is the merchandise counterpart of PurchaseTicket, gated on
// remaining stock.
func (s *System) PurchaseMerch(customer *model.User, input model.PurchaseMerchInput) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Qty > input.Stock {
		return nil, ErrOutOfStock
	}

	var merch model.Merchandise
	copier.Copy(&merch, &input)
	merch.ItemID = s.seq.Next("merchandise", "M")
	merch.Quantity = input.Qty
	merch.UnitPrice = input.Price
	merch.Stock = input.Stock - input.Qty
	s.merch = append(s.merch, merch)

	order := s.newOrder(customer.UserID, model.OrderLine{
		Kind:     constants.ITEM_KIND_MERCH,
		LineItem: merch.LineItem,
	})
	s.orders = append(s.orders, order)
	s.settle(order)

	if err := s.flush(); err != nil {
		return nil, err
	}
	result := order
	return &result, nil
}

// CancelOrder flips the whole order to cancelled. A non-empty itemID must
// name a line of that order or the call reports not found. Cancelling an
// already-cancelled order is idempotent and reports success. Statistics are
// never reversed; revenue stays gross.
func (s *System) CancelOrder(orderID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		if itemID != "" && !s.orders[i].HasItem(itemID) {
			return false, nil
		}
		if s.orders[i].Status == constants.ORDER_STATUS_CANCELLED {
			return true, nil
		}
		s.orders[i].Status = constants.ORDER_STATUS_CANCELLED
		if err := s.flush(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// SubmitReview stores a customer review. Rating bounds are enforced at the
// validation layer.
func (s *System) SubmitReview(customerID string, input model.ReviewInput) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := model.Review{
		ReviewID:   s.seq.Next("reviews", "R"),
		CustomerID: customerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	s.reviews = append(s.reviews, review)
	if err := s.flush(); err != nil {
		return nil, err
	}
	r := review
	return &r, nil
}

// ModerateReview tags a review's comment as moderated, keeping the original
// text visible after the tag.
func (s *System) ModerateReview(reviewID string) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ReviewID != reviewID {
			continue
		}
		s.reviews[i].Comment = "[MODERATED] " + s.reviews[i].Comment
		if err := s.flush(); err != nil {
			return nil, err
		}
		r := s.reviews[i]
		return &r, nil
	}
	return nil, ErrReviewNotFound
}

func (s *System) OrderByID(orderID string) (*model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			o := s.orders[i]
			return &o, true
		}
	}
	return nil, false
}

// OrdersFor returns the orders belonging to one customer.
func (s *System) OrdersFor(customerID string) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (s *System) AllOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

func (s *System) Tickets() []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Ticket(nil), s.tickets...)
}

// TicketsForPark filters the ticket ledger by park name slug, so
// "Sunway Lagoon" is addressable as sunway-lagoon.
func (s *System) TicketsForPark(parkSlug string) []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Ticket
	for _, t := range s.tickets {
		if slug.Make(t.ParkName) == parkSlug {
			out = append(out, t)
		}
	}
	return out
}

func (s *System) Merchandise() []model.Merchandise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Merchandise(nil), s.merch...)
}

func (s *System) Reviews() []model.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Review(nil), s.reviews...)
}

func (s *System) ReceiptForOrder(orderID string) (*model.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.receipts {
		if s.receipts[i].OrderID == orderID {
			r := s.receipts[i]
			return &r, true
		}
	}
	return nil, false
}

func (s *System) PaymentForOrder(orderID string) (*model.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].OrderID == orderID {
			p := s.payments[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *System) Stats() model.Statistic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistic
}

func (s *System) StatsReport() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistic.Report()
}
