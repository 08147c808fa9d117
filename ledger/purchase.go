package ledger

import (
	"chat-vault/domain"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseLedger struct {
	db *gorm.DB
}

func NewPurchaseLedger(db *gorm.DB) *PurchaseLedger {
	return &PurchaseLedger{db: db}
}

func (l *PurchaseLedger) HasPurchased(ctx context.Context, buyerID, contentID string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&PurchaseModel{}).
		Where("buyer_id = ? AND content_id = ?", buyerID, contentID).
		Count(&count).Error
	return count > 0, err
}

// HasAnyPurchase tells whether someone bought contentID, which forbids
// wiping it.
func (l *PurchaseLedger) HasAnyPurchase(ctx context.Context, contentID string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&PurchaseModel{}).
		Where("content_id = ?", contentID).
		Count(&count).Error
	return count > 0, err
}

// Record mirrors a captured payment. Recording the same purchase twice is a no-op.
func (l *PurchaseLedger) Record(ctx context.Context, buyerID, contentID string, price domain.Price) error {
	model := PurchaseModel{
		BuyerID:   buyerID,
		ContentID: contentID,
		Amount:    price.Amount,
		Currency:  price.Currency,
	}
	return l.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
}
