package cart

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
)

var (
	wigA = "11111111-1111-1111-1111-111111111111"
	wigB = "22222222-2222-2222-2222-222222222222"

	longVariant = models.VariantSelection{Length: "22\"", LaceSize: "5x5", Density: "180%"}
)

func item(id string, price float64, qty int, v models.VariantSelection) models.CartItem {
	return models.CartItem{ProductID: id, Name: "Wig " + id[:1], Price: price, Quantity: qty, Variant: v, InStock: true}
}

func TestAddMergesIdenticalLines(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	require.NoError(t, s.Add(item(wigA, 135000, 1, longVariant)))
	require.NoError(t, s.Add(item(wigA, 135000, 2, longVariant)))
	// Same product, different lace size: separate line.
	require.NoError(t, s.Add(item(wigA, 135000, 1, models.VariantSelection{Length: "22\"", LaceSize: "13x4", Density: "180%"})))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddRejectsZeroQuantity(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	assert.Error(t, s.Add(item(wigA, 1000, 0, longVariant)))
}

func TestCheckoutTotals(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	require.NoError(t, s.Add(item(wigA, 135000, 1, longVariant)))
	require.NoError(t, s.Add(item(wigB, 45000, 2, models.VariantSelection{})))

	totals, err := s.CheckoutTotals(2500)
	require.NoError(t, err)
	assert.Equal(t, 225000.0, totals.Subtotal)
	assert.Equal(t, 227500.0, totals.Total)
}

func TestOutOfStockBlocksCheckoutUntilRemoved(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	require.NoError(t, s.Add(item(wigA, 135000, 1, longVariant)))

	sold := item(wigB, 45000, 1, models.VariantSelection{})
	sold.InStock = false
	require.NoError(t, s.Add(sold))

	totals, err := s.CheckoutTotals(2500)
	assert.ErrorIs(t, err, ErrOutOfStockItems)
	// The out-of-stock line never counts toward the payable total.
	assert.Equal(t, 135000.0, totals.Subtotal)

	require.NoError(t, s.Remove(wigB, models.VariantSelection{}))
	totals, err = s.CheckoutTotals(2500)
	require.NoError(t, err)
	assert.Equal(t, 137500.0, totals.Total)
}

func TestSyncOverwritesStaleFieldsAndDropsVanished(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	require.NoError(t, s.Add(item(wigA, 135000, 1, longVariant)))
	require.NoError(t, s.Add(item(wigB, 45000, 1, models.VariantSelection{})))

	idA, _ := gocql.ParseUUID(wigA)
	fresh := []models.Product{
		// Price dropped and product went out of stock since add time.
		{ID: idA, Name: "Luxe Bone Straight", Price: 120000, InStock: 0, ImageURLs: []string{"/img/a.jpg"}},
		// wigB no longer exists.
	}

	require.NoError(t, s.Sync(fresh))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Luxe Bone Straight", items[0].Name)
	assert.Equal(t, 120000.0, items[0].Price)
	assert.False(t, items[0].InStock)
	assert.Equal(t, "/img/a.jpg", items[0].ImageURL)
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	s := NewStore(storage)
	require.NoError(t, s.Add(item(wigA, 135000, 2, longVariant)))

	// A new store over the same adapter sees the persisted cart.
	restored := NewStore(storage)
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	require.NoError(t, restored.Clear())
	assert.Empty(t, NewStore(storage).Items())
}
