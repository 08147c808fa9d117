package ledger

import (
	"time"
)

type SubscriptionModel struct {
	ID               uint   `gorm:"primaryKey"`
	SubscriberID     string `gorm:"size:64;not null;uniqueIndex:idx_subscriber_owner"`
	OwnerID          string `gorm:"size:64;not null;uniqueIndex:idx_subscriber_owner"`
	Status           string `gorm:"size:32;not null"`
	Tier             string `gorm:"size:64"`
	CurrentPeriodEnd time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

type PurchaseModel struct {
	ID        uint   `gorm:"primaryKey"`
	BuyerID   string `gorm:"size:64;not null;uniqueIndex:idx_buyer_content"`
	ContentID string `gorm:"size:64;not null;uniqueIndex:idx_buyer_content;index"`
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"size:3;not null"`
	CreatedAt time.Time
}

func (PurchaseModel) TableName() string {
	return "purchases"
}
