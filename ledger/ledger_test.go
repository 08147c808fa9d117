package ledger

import (
	"chat-vault/domain"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestLedger(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "ledger.db"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "", logger.Silent)
	require.Error(t, err)
}

func TestSubscriptionLedger(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	subscriptions := NewSubscriptionLedger(openTestLedger(t))

	// Given no subscription
	sub, err := subscriptions.FindSubscription(ctx, "fan", "creator")
	req.NoError(err)
	req.Nil(sub)

	// When a subscription is mirrored and then upgraded
	periodEnd := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	req.NoError(subscriptions.Upsert(ctx, domain.Subscription{
		SubscriberID: "fan", OwnerID: "creator", Status: domain.SubscriptionTrialing,
		Tier: "silver", CurrentPeriodEnd: periodEnd,
	}))
	req.NoError(subscriptions.Upsert(ctx, domain.Subscription{
		SubscriberID: "fan", OwnerID: "creator", Status: domain.SubscriptionActive,
		Tier: "gold", CurrentPeriodEnd: periodEnd,
	}))

	// Then the latest state is served
	sub, err = subscriptions.FindSubscription(ctx, "fan", "creator")
	req.NoError(err)
	req.NotNil(sub)
	req.Equal(domain.SubscriptionActive, sub.Status)
	req.Equal("gold", sub.Tier)
	req.True(sub.CurrentPeriodEnd.Equal(periodEnd))
	req.True(sub.IsActive(time.Now()))
}

func TestPurchaseLedger(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	purchases := NewPurchaseLedger(openTestLedger(t))
	price := domain.Price{Amount: 500, Currency: "USD"}

	// Given nothing bought
	bought, err := purchases.HasPurchased(ctx, "fan", "msg-1")
	req.NoError(err)
	req.False(bought)
	anyone, err := purchases.HasAnyPurchase(ctx, "msg-1")
	req.NoError(err)
	req.False(anyone)

	// When the fan buys the message twice
	req.NoError(purchases.Record(ctx, "fan", "msg-1", price))
	req.NoError(purchases.Record(ctx, "fan", "msg-1", price))

	// Then the purchase is visible for that fan only
	bought, err = purchases.HasPurchased(ctx, "fan", "msg-1")
	req.NoError(err)
	req.True(bought)
	bought, err = purchases.HasPurchased(ctx, "other", "msg-1")
	req.NoError(err)
	req.False(bought)
	anyone, err = purchases.HasAnyPurchase(ctx, "msg-1")
	req.NoError(err)
	req.True(anyone)
}
