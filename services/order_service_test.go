package services_test

import (
	"context"
	"testing"

	"play-cards-store/models"
	"play-cards-store/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type orderFixture struct {
	products *memProductRepo
	carts    *memCartRepo
	orders   *memOrderRepo
	cartSvc  *services.CartService
	orderSvc *services.OrderService
}

func newOrderFixture() *orderFixture {
	products := newMemProductRepo()
	carts := newMemCartRepo()
	orders := newMemOrderRepo()
	logger := zap.NewNop()

	cartSvc := services.NewCartService(carts, products, logger)
	orderSvc := services.NewOrderService(
		orders,
		carts,
		cartSvc,
		services.NewPricingEngine(0.08, 5.99),
		services.DefaultCouponResolver(),
		logger,
	)

	return &orderFixture{
		products: products,
		carts:    carts,
		orders:   orders,
		cartSvc:  cartSvc,
		orderSvc: orderSvc,
	}
}

func testCustomer() models.Customer {
	return models.Customer{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "555-0100",
		Address: "12 Analytical Lane",
	}
}

func TestPreviewAndConfirm_HappyPath(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	pid := f.products.add("Dragon Flame Card", 100)

	_, svcErr := f.cartSvc.Add(ctx, "sess-1", pid, 1)
	require.Nil(t, svcErr)

	pending, svcErr := f.orderSvc.PreviewOrder(ctx, "sess-1", testCustomer(), "save10")
	require.Nil(t, svcErr)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, "SAVE10", pending.CouponCode)
	assert.Equal(t, 100.0, pending.Totals.Subtotal)
	assert.Equal(t, 8.0, pending.Totals.Tax)
	assert.Equal(t, 5.99, pending.Totals.Shipping)
	assert.Equal(t, 10.0, pending.Totals.Discount)
	assert.Equal(t, 103.99, pending.Totals.Total)

	order, svcErr := f.orderSvc.ConfirmOrder(ctx, "sess-1")
	require.Nil(t, svcErr)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, pending.Totals, order.Totals)
	assert.False(t, order.ID.IsZero())

	// Cart and pending order are cleared by confirmation.
	snapshot, svcErr := f.cartSvc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	assert.Empty(t, snapshot)

	_, svcErr = f.orderSvc.ConfirmOrder(ctx, "sess-1")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindEmptyOrder, svcErr.Kind)
}

func TestPreviewOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture()

	_, svcErr := f.orderSvc.PreviewOrder(context.Background(), "sess-1", testCustomer(), "")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindEmptyOrder, svcErr.Kind)
}

func TestPreviewOrder_MissingCustomerField(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	pid := f.products.add("Mystic Wizard Card", 1200)
	_, _ = f.cartSvc.Add(ctx, "sess-1", pid, 1)

	customer := testCustomer()
	customer.Address = "   "

	_, svcErr := f.orderSvc.PreviewOrder(ctx, "sess-1", customer, "")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindValidationFailure, svcErr.Kind)
	assert.Empty(t, f.orders.orders, "validation failures must not persist anything")
}

func TestConfirmOrder_NoPendingOrder(t *testing.T) {
	f := newOrderFixture()

	_, svcErr := f.orderSvc.ConfirmOrder(context.Background(), "sess-1")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindEmptyOrder, svcErr.Kind)
	assert.Empty(t, f.orders.orders)
}

func TestConfirmOrder_SnapshotPricesAreFrozen(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	pid := f.products.add("Celestial Knight Card", 1700)

	_, _ = f.cartSvc.Add(ctx, "sess-1", pid, 2)
	_, svcErr := f.orderSvc.PreviewOrder(ctx, "sess-1", testCustomer(), "")
	require.Nil(t, svcErr)

	// Catalog price change between preview and confirm.
	_, err := f.products.Update(ctx, pid, bson.M{"price": 9999.0})
	require.NoError(t, err)

	order, svcErr := f.orderSvc.ConfirmOrder(ctx, "sess-1")
	require.Nil(t, svcErr)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1700.0, order.Items[0].Price, "line items keep the price captured at preview")
	assert.Equal(t, 3400.0, order.Items[0].LineTotal)
}

func TestTransitionStatus_ForwardStep(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	order, svcErr := f.orderSvc.TransitionStatus(ctx, orderID, models.StatusProcessing)
	require.Nil(t, svcErr)
	assert.Equal(t, models.StatusProcessing, order.Status)

	stored := f.orders.orders[orderID]
	assert.Equal(t, models.StatusProcessing, stored.Status, "transition must be persisted")
}

func TestTransitionStatus_SkipRejected(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	_, svcErr := f.orderSvc.TransitionStatus(ctx, orderID, models.StatusDelivered)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindSkippedTransition, svcErr.Kind)

	stored := f.orders.orders[orderID]
	assert.Equal(t, models.StatusPlaced, stored.Status, "rejected transition leaves status untouched")
}

func TestTransitionStatus_BackwardRejected(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	_, svcErr := f.orderSvc.TransitionStatus(ctx, orderID, models.StatusProcessing)
	require.Nil(t, svcErr)
	_, svcErr = f.orderSvc.TransitionStatus(ctx, orderID, models.StatusDelivered)
	require.Nil(t, svcErr)

	_, svcErr = f.orderSvc.TransitionStatus(ctx, orderID, models.StatusProcessing)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindBackwardTransition, svcErr.Kind)
}

func TestTransitionStatus_SameStateIsIdempotent(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	order, svcErr := f.orderSvc.TransitionStatus(ctx, orderID, models.StatusPlaced)
	require.Nil(t, svcErr)
	assert.Equal(t, models.StatusPlaced, order.Status)
}

func TestTransitionStatus_UnknownStatusAndOrder(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	_, svcErr := f.orderSvc.TransitionStatus(ctx, orderID, "Shipped")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindInvalidStatus, svcErr.Kind)

	_, svcErr = f.orderSvc.TransitionStatus(ctx, "ffffffffffffffffffffffff", models.StatusProcessing)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindNotFound, svcErr.Kind)
}

func TestGetOrdersByEmail(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.placeOrder(t, ctx)

	orders, svcErr := f.orderSvc.GetOrdersByEmail(ctx, "ada@example.com")
	require.Nil(t, svcErr)
	assert.Len(t, orders, 1)

	orders, svcErr = f.orderSvc.GetOrdersByEmail(ctx, "nobody@example.com")
	require.Nil(t, svcErr)
	assert.Empty(t, orders)

	_, svcErr = f.orderSvc.GetOrdersByEmail(ctx, "  ")
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindValidationFailure, svcErr.Kind)
}

func TestPreviewOrder_CouponStoreFailure(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	pid := f.products.add("Flame Sorceress Card", 1450)
	_, _ = f.cartSvc.Add(ctx, "sess-1", pid, 1)

	coupons := newMemCouponRepo()
	coupons.err = errConnReset
	orderSvc := services.NewOrderService(
		f.orders,
		f.carts,
		f.cartSvc,
		services.NewPricingEngine(0.08, 5.99),
		services.NewRepositoryCouponResolver(coupons, zap.NewNop()),
		zap.NewNop(),
	)

	_, svcErr := orderSvc.PreviewOrder(ctx, "sess-1", testCustomer(), "SAVE10")
	require.NotNil(t, svcErr, "a coupon store outage must not silently drop the discount")
	assert.Equal(t, services.KindInternal, svcErr.Kind)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Empty(t, f.carts.pendings, "nothing is persisted on failure")
}

func TestGetOrder_StoreFailure(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	orderID := f.placeOrder(t, ctx)

	orderSvc := services.NewOrderService(
		&flakyOrderRepo{memOrderRepo: f.orders},
		f.carts,
		f.cartSvc,
		services.NewPricingEngine(0.08, 5.99),
		services.DefaultCouponResolver(),
		zap.NewNop(),
	)

	_, svcErr := orderSvc.GetOrder(ctx, orderID)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindInternal, svcErr.Kind)
	assert.Equal(t, 500, svcErr.StatusCode)

	_, svcErr = orderSvc.TransitionStatus(ctx, orderID, models.StatusProcessing)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindInternal, svcErr.Kind)
	stored := f.orders.orders[orderID]
	assert.Equal(t, models.StatusPlaced, stored.Status, "failed lookup must not change the order")
}

// placeOrder runs the full preview/confirm pipeline and returns the new
// order's ID.
func (f *orderFixture) placeOrder(t *testing.T, ctx context.Context) string {
	t.Helper()

	pid := f.products.add("Earth Elemental Card", 700)
	_, svcErr := f.cartSvc.Add(ctx, "sess-order", pid, 1)
	require.Nil(t, svcErr)

	_, svcErr = f.orderSvc.PreviewOrder(ctx, "sess-order", testCustomer(), "")
	require.Nil(t, svcErr)

	order, svcErr := f.orderSvc.ConfirmOrder(ctx, "sess-order")
	require.Nil(t, svcErr)
	return order.ID.Hex()
}
