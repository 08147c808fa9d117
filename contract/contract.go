//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-vault/domain"
	"chat-vault/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is the real-time delivery capability.
// Exactly one implementation is selected when the process starts.
// Delivery is best-effort and at-most-once.
type Transport interface {
	Publish(ctx context.Context, topic string, kind event.Type, payload any) error
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

type IRegistry interface {
	GetSinksForTopic(topic string) []EventSink
	Subscribe(subscriberID, topic string, sink EventSink)
	Unsubscribe(subscriberID, topic string)
}

// SubscriptionLedger is a read-only view of the subscription ledger.
// A nil subscription with a nil error means the subscriber has none.
type SubscriptionLedger interface {
	FindSubscription(ctx context.Context, subscriberID, ownerID string) (*domain.Subscription, error)
}

// PurchaseLedger is a read-only view of the purchase ledger.
type PurchaseLedger interface {
	HasPurchased(ctx context.Context, buyerID, contentID string) (bool, error)
	HasAnyPurchase(ctx context.Context, contentID string) (bool, error)
}

// Directory resolves user profiles owned by the identity collaborator.
type Directory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// MessageCodec transforms content on its way to and from the store.
type MessageCodec interface {
	Name() string
	Encode(plaintext []byte) ([]byte, error)
	Decode(stored []byte) ([]byte, error)
}

// CodecSet encodes with the configured codec and finds the one a stored record names.
type CodecSet interface {
	Current() MessageCodec
	Lookup(name string) (MessageCodec, error)
}

type MonetizationHook interface {
	LockedMessageSent(ctx context.Context, evt event.LockedMessageSent) error
}

type MediaProcessor interface {
	Process(ctx context.Context, evt event.MediaAttached) error
}
