package ledger

import (
	"chat-vault/domain"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionLedger struct {
	db *gorm.DB
}

func NewSubscriptionLedger(db *gorm.DB) *SubscriptionLedger {
	return &SubscriptionLedger{db: db}
}

// FindSubscription returns nil without error when no subscription exists.
func (l *SubscriptionLedger) FindSubscription(ctx context.Context, subscriberID, ownerID string) (*domain.Subscription, error) {
	var model SubscriptionModel
	err := l.db.WithContext(ctx).
		Where("subscriber_id = ? AND owner_id = ?", subscriberID, ownerID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Subscription{
		SubscriberID:     model.SubscriberID,
		OwnerID:          model.OwnerID,
		Status:           domain.SubscriptionStatus(model.Status),
		Tier:             model.Tier,
		CurrentPeriodEnd: model.CurrentPeriodEnd.UTC(),
	}, nil
}

// Upsert mirrors a subscription change received from the payment side.
func (l *SubscriptionLedger) Upsert(ctx context.Context, s domain.Subscription) error {
	model := SubscriptionModel{
		SubscriberID:     s.SubscriberID,
		OwnerID:          s.OwnerID,
		Status:           string(s.Status),
		Tier:             s.Tier,
		CurrentPeriodEnd: s.CurrentPeriodEnd.UTC(),
	}
	return l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "tier", "current_period_end", "updated_at"}),
	}).Create(&model).Error
}
