package pending

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
)

func snapshot(ref string) models.PendingCheckout {
	return models.PendingCheckout{
		Reference:     ref,
		Kind:          models.CheckoutKindCart,
		CustomerName:  "Ada Obi",
		CustomerEmail: "ada@universeofhair.ng",
		CustomerPhone: "08031234567",
		Address:       "12 Allen Avenue",
		City:          "Ikeja",
		State:         "Lagos",
		Items: []models.OrderLine{
			{Name: "Luxe Bone Straight", Quantity: 1, Price: 135000,
				Variant: models.VariantSelection{Length: "22\"", LaceSize: "5x5", Density: "180%"}},
		},
		Subtotal:    135000,
		ShippingFee: 2500,
		Total:       137525,
	}
}

func TestStoreLoadClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.Save(ctx, snapshot("UOH-1-abc")))

	loaded, err := store.Load(ctx, "UOH-1-abc")
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", loaded.CustomerName)
	assert.Equal(t, models.CheckoutKindCart, loaded.Kind)
	assert.Len(t, loaded.Items, 1)
	assert.Equal(t, 137525.0, loaded.Total)
	assert.False(t, loaded.CreatedAt.IsZero(), "CreatedAt must be stamped on save")

	require.NoError(t, store.Clear(ctx, "UOH-1-abc"))
	_, err = store.Load(ctx, "UOH-1-abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadUnknownReference(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	_, err := store.Load(context.Background(), "UOH-0-zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRequiresReference(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	err := store.Save(context.Background(), models.PendingCheckout{})
	assert.Error(t, err)
}
