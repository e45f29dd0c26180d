package services_test

import (
	"context"
	"testing"

	"play-cards-store/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCartService(products *memProductRepo, carts *memCartRepo) *services.CartService {
	return services.NewCartService(carts, products, zap.NewNop())
}

func TestCartAdd_AccumulatesQuantity(t *testing.T) {
	products := newMemProductRepo()
	pid := products.add("Dragon Flame Card", 1500)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	count, svcErr := svc.Add(ctx, "sess-1", pid, 2)
	require.Nil(t, svcErr)
	assert.Equal(t, 2, count)

	count, svcErr = svc.Add(ctx, "sess-1", pid, 3)
	require.Nil(t, svcErr)
	assert.Equal(t, 5, count)

	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	require.Len(t, snapshot, 1, "same product must collapse into one entry")
	assert.Equal(t, 5, snapshot[0].Quantity)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	svc := newTestCartService(newMemProductRepo(), newMemCartRepo())

	_, svcErr := svc.Add(context.Background(), "sess-1", "ffffffffffffffffffffffff", 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindNotFound, svcErr.Kind)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestCartUpdate_ZeroQuantityRemoves(t *testing.T) {
	products := newMemProductRepo()
	pid := products.add("Stealth Ninja Card", 850)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	_, svcErr := svc.Add(ctx, "sess-1", pid, 2)
	require.Nil(t, svcErr)

	count, svcErr := svc.Update(ctx, "sess-1", pid, 0)
	require.Nil(t, svcErr)
	assert.Equal(t, 0, count)

	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	assert.Empty(t, snapshot)
}

func TestCartUpdate_AbsentProductIsNoop(t *testing.T) {
	products := newMemProductRepo()
	pid := products.add("Arcane Mage Card", 1300)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	_, svcErr := svc.Add(ctx, "sess-1", pid, 1)
	require.Nil(t, svcErr)

	count, svcErr := svc.Update(ctx, "sess-1", "ffffffffffffffffffffffff", 9)
	require.Nil(t, svcErr, "updating a product not in the cart is idempotent")
	assert.Equal(t, 1, count)
}

func TestCartRemoveAndClear(t *testing.T) {
	products := newMemProductRepo()
	pid1 := products.add("Wild Wolf Card", 700)
	pid2 := products.add("Forest Elf Card", 670)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	_, _ = svc.Add(ctx, "sess-1", pid1, 1)
	_, _ = svc.Add(ctx, "sess-1", pid2, 2)

	count, svcErr := svc.Remove(ctx, "sess-1", pid1)
	require.Nil(t, svcErr)
	assert.Equal(t, 2, count)

	count, svcErr = svc.Remove(ctx, "sess-1", "ffffffffffffffffffffffff")
	require.Nil(t, svcErr, "removing an absent product is a no-op")
	assert.Equal(t, 2, count)

	require.Nil(t, svc.Clear(ctx, "sess-1"))
	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	assert.Empty(t, snapshot)
}

func TestCartSnapshot_DropsDeletedProducts(t *testing.T) {
	products := newMemProductRepo()
	kept := products.add("Phoenix Knight Card", 1650)
	doomed := products.add("River Spirit Card", 650)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	_, _ = svc.Add(ctx, "sess-1", kept, 1)
	_, _ = svc.Add(ctx, "sess-1", doomed, 1)

	_, err := products.Delete(ctx, doomed)
	require.NoError(t, err)

	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Phoenix Knight Card", snapshot[0].Product.Name)
}

func TestCartSnapshot_CatalogFailureIsAnError(t *testing.T) {
	products := newMemProductRepo()
	healthy := products.add("Night Assassin Card", 930)
	unreachable := products.add("Lost Card", 900)
	carts := newMemCartRepo()
	ctx := context.Background()

	_, _ = newTestCartService(products, carts).Add(ctx, "sess-1", healthy, 1)
	_, _ = newTestCartService(products, carts).Add(ctx, "sess-1", unreachable, 1)

	flaky := &flakyProductRepo{memProductRepo: products, failID: unreachable}
	svc := services.NewCartService(carts, flaky, zap.NewNop())

	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.NotNil(t, svcErr, "a catalog outage must not look like a deleted product")
	assert.Equal(t, services.KindInternal, svcErr.Kind)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Nil(t, snapshot)
}

func TestCartAdd_CatalogFailureIsAnError(t *testing.T) {
	products := newMemProductRepo()
	pid := products.add("Rogue Shadow Card", 940)
	flaky := &flakyProductRepo{memProductRepo: products, failID: pid}
	svc := services.NewCartService(newMemCartRepo(), flaky, zap.NewNop())

	_, svcErr := svc.Add(context.Background(), "sess-1", pid, 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, services.KindInternal, svcErr.Kind)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestCartSnapshot_LineTotals(t *testing.T) {
	products := newMemProductRepo()
	pid := products.add("Silent Blade Card", 920)
	svc := newTestCartService(products, newMemCartRepo())
	ctx := context.Background()

	_, _ = svc.Add(ctx, "sess-1", pid, 3)

	snapshot, svcErr := svc.Snapshot(ctx, "sess-1")
	require.Nil(t, svcErr)
	require.Len(t, snapshot, 1)
	assert.Equal(t, 2760.0, snapshot[0].LineTotal)
}
