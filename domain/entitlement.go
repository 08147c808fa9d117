package domain

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleCreator   Role = "creator"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// IsStaff reports roles that bypass every paywall.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

// Actor is the authenticated caller as supplied by the identity collaborator.
type Actor struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Verified bool   `json:"verified"`
}

type AccessLevel string

const (
	AccessPublic             AccessLevel = "public"
	AccessSubscribersOnly    AccessLevel = "subscribers_only"
	AccessPremiumSubscribers AccessLevel = "premium_subscribers"
	AccessPPVLocked          AccessLevel = "ppv_locked"
	AccessCustomPrice        AccessLevel = "custom_price"
)

// Target is a piece of protected content.
type Target struct {
	ID           string
	OwnerID      string
	AccessLevel  AccessLevel
	RequiredTier *string
	Price        *Price
}

// MessageTarget describes a message as entitlement target.
func MessageTarget(m MessageMeta) Target {
	level := AccessPublic
	if m.Locked {
		level = AccessPPVLocked
	}
	return Target{
		ID:          m.ID.String(),
		OwnerID:     m.SenderID,
		AccessLevel: level,
		Price:       m.Price,
	}
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type Subscription struct {
	SubscriberID     string
	OwnerID          string
	Status           SubscriptionStatus
	Tier             string
	CurrentPeriodEnd time.Time
}

func (s Subscription) IsActive(now time.Time) bool {
	return (s.Status == SubscriptionActive || s.Status == SubscriptionTrialing) &&
		s.CurrentPeriodEnd.After(now)
}

type EntitlementType string

const (
	EntitlementFree         EntitlementType = "free_access"
	EntitlementSubscription EntitlementType = "subscription"
	EntitlementPurchase     EntitlementType = "purchase"
)

const (
	ReasonFreeAccess         = "free_access"
	ReasonAuthRequired       = "auth_required"
	ReasonActiveSubscription = "active_subscription"
	ReasonNoSubscription     = "No active subscription"
	ReasonUpgradeRequired    = "Subscription tier upgrade required"
	ReasonPurchased          = "purchased"
	ReasonPaymentRequired    = "payment_required"
	ReasonUnknownAccessLevel = "unknown_access_level"
	ReasonLookupFailed       = "entitlement_check_failed"
)

// Decision is the transient outcome of an entitlement check.
type Decision struct {
	HasAccess            bool             `json:"hasAccess"`
	Reason               string           `json:"reason"`
	EntitlementType      *EntitlementType `json:"entitlementType,omitempty"`
	Price                *int64           `json:"price,omitempty"`
	Currency             *string          `json:"currency,omitempty"`
	SubscriptionRequired bool             `json:"subscriptionRequired,omitempty"`
	UpgradeRequired      bool             `json:"upgradeRequired,omitempty"`
}
