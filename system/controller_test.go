package system_test

import (
	"testing"

	"park_manager/constants"
	"park_manager/database"
	"park_manager/model"
	"park_manager/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) (*system.System, *database.Store) {
	t.Helper()
	store, err := database.NewStore(t.TempDir())
	require.NoError(t, err)
	sys, err := system.New(store)
	require.NoError(t, err)
	return sys, store
}

func testCustomer() *model.User {
	return &model.User{
		UserID:       "U1",
		Username:     "alice",
		Password:     "pw1",
		Email:        "a@x.com",
		FullName:     "Alice",
		CustomerType: constants.CUSTOMER_TYPE_ADULT,
	}
}

func dayPassInput() model.PurchaseTicketInput {
	return model.PurchaseTicketInput{
		TicketName: "DayPass",
		Price:      50.0,
		Qty:        2,
		VisitDate:  "2026-01-01",
		ParkName:   "Central Park",
	}
}

func TestPurchaseTicketRecordsOrderPaymentAndStats(t *testing.T) {
	sys, _ := newTestSystem(t)

	order, err := sys.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)

	assert.Equal(t, "ORD1", order.OrderID)
	assert.Equal(t, "U1", order.CustomerID)
	assert.Equal(t, constants.ORDER_STATUS_ACTIVE, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, constants.ITEM_KIND_TICKET, order.Items[0].Kind)
	assert.Equal(t, "T1", order.Items[0].ItemID)
	assert.Equal(t, 100.0, order.Total())

	tickets := sys.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "T1", tickets[0].ItemID)
	assert.Equal(t, "DayPass", tickets[0].TicketName)
	assert.Equal(t, "Central Park", tickets[0].ParkName)
	assert.Equal(t, 98, tickets[0].QuotaAvailable)

	payment, ok := sys.PaymentForOrder("ORD1")
	require.True(t, ok)
	assert.Equal(t, "PAY1", payment.PaymentID)
	assert.Equal(t, constants.PAYMENT_STATUS_SUCCESS, payment.Status)
	assert.Equal(t, 100.0, payment.Amount)

	receipt, ok := sys.ReceiptForOrder("ORD1")
	require.True(t, ok)
	assert.Equal(t, "RC1", receipt.ReceiptID)
	assert.Equal(t, "PAY1", receipt.PaymentID)

	stats := sys.Stats()
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 100.0, stats.TotalRevenue)
}

func TestPurchaseTicketQuotaExceeded(t *testing.T) {
	sys, _ := newTestSystem(t)

	input := dayPassInput()
	input.Quota = 5
	input.Qty = 6

	_, err := sys.PurchaseTicket(testCustomer(), input)
	require.ErrorIs(t, err, system.ErrQuotaExceeded)

	assert.Empty(t, sys.Tickets())
	assert.Empty(t, sys.AllOrders())
	assert.Equal(t, model.Statistic{}, sys.Stats())
}

func TestPurchaseMerchRecordsOrderAndStock(t *testing.T) {
	sys, _ := newTestSystem(t)

	order, err := sys.PurchaseMerch(testCustomer(), model.PurchaseMerchInput{
		Name:     "Park Shirt",
		Price:    25.0,
		Qty:      3,
		Category: "Apparel",
		Stock:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD1", order.OrderID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, constants.ITEM_KIND_MERCH, order.Items[0].Kind)
	assert.Equal(t, "M1", order.Items[0].ItemID)

	merch := sys.Merchandise()
	require.Len(t, merch, 1)
	assert.Equal(t, 7, merch[0].Stock)
	assert.Equal(t, "Apparel", merch[0].Category)

	stats := sys.Stats()
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 75.0, stats.TotalRevenue)
}

func TestPurchaseMerchOutOfStock(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.PurchaseMerch(testCustomer(), model.PurchaseMerchInput{
		Name:     "Mug",
		Price:    12.0,
		Qty:      4,
		Category: "Souvenir",
		Stock:    2,
	})
	require.ErrorIs(t, err, system.ErrOutOfStock)
	assert.Empty(t, sys.Merchandise())
	assert.Equal(t, model.Statistic{}, sys.Stats())
}

func TestCancelOrderLifecycle(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)
	statsBefore := sys.Stats()

	// Unknown order mutates nothing.
	cancelled, err := sys.CancelOrder("ORD99", "")
	require.NoError(t, err)
	assert.False(t, cancelled)

	// Item that does not belong to the order is rejected.
	cancelled, err = sys.CancelOrder("ORD1", "T999")
	require.NoError(t, err)
	assert.False(t, cancelled)
	order, _ := sys.OrderByID("ORD1")
	assert.Equal(t, constants.ORDER_STATUS_ACTIVE, order.Status)

	// Matching item cancels the whole order.
	cancelled, err = sys.CancelOrder("ORD1", "T1")
	require.NoError(t, err)
	assert.True(t, cancelled)
	order, _ = sys.OrderByID("ORD1")
	assert.Equal(t, constants.ORDER_STATUS_CANCELLED, order.Status)

	// Repeating the cancellation is idempotent and still succeeds.
	cancelled, err = sys.CancelOrder("ORD1", "")
	require.NoError(t, err)
	assert.True(t, cancelled)
	order, _ = sys.OrderByID("ORD1")
	assert.Equal(t, constants.ORDER_STATUS_CANCELLED, order.Status)

	// Revenue stays gross after cancellation.
	assert.Equal(t, statsBefore, sys.Stats())
}

func TestSubmitAndModerateReview(t *testing.T) {
	sys, _ := newTestSystem(t)

	review, err := sys.SubmitReview("U1", model.ReviewInput{Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, "R1", review.ReviewID)
	assert.Equal(t, "U1", review.CustomerID)
	assert.Equal(t, 5, review.Rating)

	moderated, err := sys.ModerateReview("R1")
	require.NoError(t, err)
	assert.Equal(t, "[MODERATED] Great", moderated.Comment)

	_, err = sys.ModerateReview("R99")
	require.ErrorIs(t, err, system.ErrReviewNotFound)
}

func TestCreateOrderOpensEmptyActiveOrder(t *testing.T) {
	sys, _ := newTestSystem(t)

	orderID, err := sys.CreateOrder(testCustomer())
	require.NoError(t, err)
	assert.Equal(t, "ORD1", orderID)

	order, found := sys.OrderByID("ORD1")
	require.True(t, found)
	assert.Equal(t, constants.ORDER_STATUS_ACTIVE, order.Status)
	assert.Empty(t, order.Items)

	// Only completed purchases count towards statistics.
	assert.Equal(t, model.Statistic{}, sys.Stats())
}

func TestOrdersForFiltersByCustomer(t *testing.T) {
	sys, _ := newTestSystem(t)

	bob := &model.User{UserID: "U2", Username: "bob"}
	_, err := sys.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)
	_, err = sys.PurchaseTicket(bob, dayPassInput())
	require.NoError(t, err)

	aliceOrders := sys.OrdersFor("U1")
	require.Len(t, aliceOrders, 1)
	assert.Equal(t, "ORD1", aliceOrders[0].OrderID)

	assert.Len(t, sys.AllOrders(), 2)
}

func TestTicketsForParkMatchesSlug(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)

	lagoon := dayPassInput()
	lagoon.ParkName = "Sunway Lagoon"
	_, err = sys.PurchaseTicket(testCustomer(), lagoon)
	require.NoError(t, err)

	central := sys.TicketsForPark("central-park")
	require.Len(t, central, 1)
	assert.Equal(t, "Central Park", central[0].ParkName)

	assert.Empty(t, sys.TicketsForPark("unknown-park"))
}

func TestStateSurvivesReload(t *testing.T) {
	sys, store := newTestSystem(t)

	_, err := sys.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)
	_, err = sys.SubmitReview("U1", model.ReviewInput{Rating: 4, Comment: "Fun"})
	require.NoError(t, err)

	reloaded, err := system.New(store)
	require.NoError(t, err)

	assert.Equal(t, sys.Stats(), reloaded.Stats())
	assert.Equal(t, sys.AllOrders(), reloaded.AllOrders())
	assert.Equal(t, sys.Tickets(), reloaded.Tickets())
	assert.Equal(t, sys.Reviews(), reloaded.Reviews())

	// Sequences continue instead of restarting from the collection length.
	order, err := reloaded.PurchaseTicket(testCustomer(), dayPassInput())
	require.NoError(t, err)
	assert.Equal(t, "ORD2", order.OrderID)
	assert.Equal(t, "T2", order.Items[0].ItemID)
}
