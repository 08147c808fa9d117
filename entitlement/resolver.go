// Package entitlement decides, per viewer and per piece of content,
// whether protected content may be revealed.
package entitlement

import (
	"chat-vault/contract"
	"chat-vault/domain"
	"chat-vault/errors"
	"chat-vault/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

type Resolver struct {
	log           *slog.Logger
	subscriptions contract.SubscriptionLedger
	purchases     contract.PurchaseLedger
	metrics       *observability.Metrics
	concurrency   int
	now           func() time.Time
}

func NewResolver(log *slog.Logger, subscriptions contract.SubscriptionLedger,
	purchases contract.PurchaseLedger, metrics *observability.Metrics, concurrency int) *Resolver {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Resolver{
		log:           log,
		subscriptions: subscriptions,
		purchases:     purchases,
		metrics:       metrics,
		concurrency:   concurrency,
		now:           time.Now,
	}
}

// Resolve walks the decision tree in strict priority order, first match wins.
// A ledger failure denies access and is reported as ErrLedgerUnavailable.
func (r *Resolver) Resolve(ctx context.Context, actor *domain.Actor, target domain.Target) (domain.Decision, error) {
	decision, err := r.resolve(ctx, actor, target)
	r.metrics.ObserveDecision(decision)
	return decision, err
}

func (r *Resolver) resolve(ctx context.Context, actor *domain.Actor, target domain.Target) (domain.Decision, error) {
	if target.AccessLevel == domain.AccessPublic {
		return freeAccess(), nil
	}
	if actor == nil {
		return domain.Decision{
			HasAccess:            false,
			Reason:               domain.ReasonAuthRequired,
			SubscriptionRequired: target.AccessLevel == domain.AccessSubscribersOnly,
		}, nil
	}
	if actor.ID == target.OwnerID {
		return freeAccess(), nil
	}
	if actor.Role.IsStaff() {
		return freeAccess(), nil
	}

	switch target.AccessLevel {
	case domain.AccessSubscribersOnly:
		sub, err := r.subscriptions.FindSubscription(ctx, actor.ID, target.OwnerID)
		if err != nil {
			return lookupFailed(), fmt.Errorf("%w: %v", errors.ErrLedgerUnavailable, err)
		}
		if sub == nil || !sub.IsActive(r.now()) {
			return noSubscription(), nil
		}
		return activeSubscription(), nil

	case domain.AccessPremiumSubscribers:
		sub, err := r.subscriptions.FindSubscription(ctx, actor.ID, target.OwnerID)
		if err != nil {
			return lookupFailed(), fmt.Errorf("%w: %v", errors.ErrLedgerUnavailable, err)
		}
		if sub == nil || !sub.IsActive(r.now()) {
			return noSubscription(), nil
		}
		if target.RequiredTier != nil && sub.Tier != *target.RequiredTier {
			return domain.Decision{
				HasAccess:       false,
				Reason:          domain.ReasonUpgradeRequired,
				UpgradeRequired: true,
			}, nil
		}
		return activeSubscription(), nil

	case domain.AccessPPVLocked, domain.AccessCustomPrice:
		purchased, err := r.purchases.HasPurchased(ctx, actor.ID, target.ID)
		if err != nil {
			return lookupFailed(), fmt.Errorf("%w: %v", errors.ErrLedgerUnavailable, err)
		}
		if !purchased {
			d := domain.Decision{HasAccess: false, Reason: domain.ReasonPaymentRequired}
			if target.Price != nil {
				d.Price = lo.ToPtr(target.Price.Amount)
				d.Currency = lo.ToPtr(target.Price.Currency)
			}
			return d, nil
		}
		return domain.Decision{
			HasAccess:       true,
			Reason:          domain.ReasonPurchased,
			EntitlementType: lo.ToPtr(domain.EntitlementPurchase),
		}, nil

	default:
		return domain.Decision{HasAccess: false, Reason: domain.ReasonUnknownAccessLevel}, nil
	}
}

// BulkCheckAccess resolves every target concurrently.
// The result holds one decision per target id. A failed lookup only denies
// its own entry, with a generic reason.
func (r *Resolver) BulkCheckAccess(ctx context.Context, actor *domain.Actor, targets []domain.Target) map[string]domain.Decision {
	var (
		mu        sync.Mutex
		decisions = make(map[string]domain.Decision, len(targets))
		g         errgroup.Group
	)
	g.SetLimit(r.concurrency)

	unique := lo.UniqBy(targets, func(t domain.Target) string { return t.ID })
	for _, target := range unique {
		g.Go(func() error {
			decision, err := r.Resolve(ctx, actor, target)
			if err != nil {
				r.log.Warn("Entitlement lookup failed, denying", "target_id", target.ID, "error", err)
				decision = lookupFailed()
			}
			mu.Lock()
			decisions[target.ID] = decision
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return decisions
}

func freeAccess() domain.Decision {
	return domain.Decision{
		HasAccess:       true,
		Reason:          domain.ReasonFreeAccess,
		EntitlementType: lo.ToPtr(domain.EntitlementFree),
	}
}

func activeSubscription() domain.Decision {
	return domain.Decision{
		HasAccess:       true,
		Reason:          domain.ReasonActiveSubscription,
		EntitlementType: lo.ToPtr(domain.EntitlementSubscription),
	}
}

func noSubscription() domain.Decision {
	return domain.Decision{
		HasAccess:            false,
		Reason:               domain.ReasonNoSubscription,
		SubscriptionRequired: true,
	}
}

func lookupFailed() domain.Decision {
	return domain.Decision{HasAccess: false, Reason: domain.ReasonLookupFailed}
}
