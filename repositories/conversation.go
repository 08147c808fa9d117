//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"chat-vault/domain"
	"chat-vault/errors"
	stderrors "errors"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IConversationRepository interface {
	CreateOrGet(candidate domain.Conversation) (domain.Conversation, bool, error)
	Get(id uuid.UUID) (domain.Conversation, error)
	ListForUser(userID string) ([]domain.Conversation, error)
	Update(id uuid.UUID, mutate func(c *domain.Conversation) error) (domain.Conversation, error)
}

type ConversationRepository struct {
	db      *badger.DB
	log     *slog.Logger
	retries int
}

func NewConversationRepository(db *badger.DB, log *slog.Logger, retries int) *ConversationRepository {
	if retries <= 0 {
		retries = DefaultConflictRetries
	}
	return &ConversationRepository{db: db, log: log, retries: retries}
}

// CreateOrGet persists candidate unless a direct conversation already exists
// for the same participant pair, in which case the existing one is returned.
// The pair key is read inside the transaction, so two concurrent creations
// conflict at commit and the loser replays and finds the winner.
func (r *ConversationRepository) CreateOrGet(candidate domain.Conversation) (domain.Conversation, bool, error) {
	pair, isPair := domain.PairKey(candidate.Participants)
	isPair = isPair && candidate.Kind == domain.KindDirect

	var (
		result  domain.Conversation
		created bool
	)
	err := updateWithRetry(r.db, r.retries, func(txn *badger.Txn) error {
		created = false
		if isPair {
			item, err := txn.Get(pairKey(pair))
			switch {
			case err == nil:
				raw, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				id, err := uuid.ParseBytes(raw)
				if err != nil {
					return err
				}
				result, err = getConversation(txn, id)
				return err
			case !stderrors.Is(err, badger.ErrKeyNotFound):
				return err
			}
			if err := txn.Set(pairKey(pair), []byte(candidate.ID.String())); err != nil {
				return err
			}
		}
		if err := putConversation(txn, candidate); err != nil {
			return err
		}
		for _, participant := range candidate.Participants {
			if err := txn.Set(memberKey(participant, candidate.ID), nil); err != nil {
				return err
			}
		}
		result, created = candidate, true
		return nil
	})
	if err != nil {
		return domain.Conversation{}, false, err
	}
	if !created {
		r.log.Debug("Direct conversation already exists", "conversation_id", result.ID)
	}
	return result, created, nil
}

func (r *ConversationRepository) Get(id uuid.UUID) (domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = getConversation(txn, id)
		return err
	})
	return c, err
}

// ListForUser returns the conversations of userID, most recent activity first.
func (r *ConversationRepository) ListForUser(userID string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := memberPrefix(userID)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := uuid.ParseBytes(it.Item().Key()[len(prefix):])
			if err != nil {
				return err
			}
			c, err := getConversation(txn, id)
			if err != nil {
				return err
			}
			conversations = append(conversations, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return lastActivity(conversations[i]).After(lastActivity(conversations[j]))
	})
	return conversations, nil
}

// Update applies mutate to the stored conversation in a single transaction.
func (r *ConversationRepository) Update(id uuid.UUID, mutate func(c *domain.Conversation) error) (domain.Conversation, error) {
	var result domain.Conversation
	err := updateWithRetry(r.db, r.retries, func(txn *badger.Txn) error {
		c, err := getConversation(txn, id)
		if err != nil {
			return err
		}
		if err = mutate(&c); err != nil {
			return err
		}
		result = c
		return putConversation(txn, c)
	})
	return result, err
}

func getConversation(txn *badger.Txn, id uuid.UUID) (domain.Conversation, error) {
	var c domain.Conversation
	item, err := txn.Get(conversationKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return c, errors.ErrConversationNotFound
	}
	if err != nil {
		return c, err
	}
	err = item.Value(func(val []byte) error {
		c, err = unmarshalConversation(val)
		return err
	})
	return c, err
}

func putConversation(txn *badger.Txn, c domain.Conversation) error {
	data, err := marshalConversation(c)
	if err != nil {
		return err
	}
	return txn.Set(conversationKey(c.ID), data)
}

func lastActivity(c domain.Conversation) time.Time {
	return lo.FromPtrOr(c.LastMessageAt, c.CreatedAt)
}
