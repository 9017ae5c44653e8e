package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"joyjuncture/internal/catalog"
	"joyjuncture/internal/wallet"
)

func TestPurchaseAwardsPoints_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	cleanDatabase(t, db)

	ledger := wallet.NewService(wallet.NewRepository(db), 100)
	svc := catalog.NewService(catalog.NewRepository(db), ledger)
	ctx := context.Background()

	userID, _ := createTestUser(t, db, "shopper@test.com", "Shopper")

	product, points, err := svc.Purchase(ctx, userID, "dead-mans-deck")
	require.NoError(t, err)
	require.Equal(t, "Dead Man's Deck", product.Name)
	require.Equal(t, 19990, points)

	history, err := ledger.GetHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "Purchase: Dead Man's Deck", history[0].Description)

	_, _, err = svc.Purchase(ctx, userID, "no-such-game")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}
