//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-vault/domain"
	"chat-vault/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	Store(message DiskMessage) error
	Get(id uuid.UUID) (DiskMessage, error)
	List(conversationID uuid.UUID, page Page) ([]DiskMessage, error)
	AddReadReceipt(messageID uuid.UUID, userID string, at time.Time) (domain.ReadReceipt, bool, error)
	Update(id uuid.UUID, mutate func(m *DiskMessage) error) (DiskMessage, error)
}

type MessageRepository struct {
	db      *badger.DB
	log     *slog.Logger
	retries int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, retries int) *MessageRepository {
	if retries <= 0 {
		retries = DefaultConflictRetries
	}
	return &MessageRepository{db: db, log: log, retries: retries}
}

// DiskMessage is the stored shape of a message.
// Content holds the codec output and is never assumed to be plaintext.
type DiskMessage struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       string
	Type           domain.MessageType
	Content        []byte
	Codec          string
	MediaIDs       []string
	Locked         bool
	Price          *domain.Price
	Status         domain.Status
	SentAt         time.Time
	ReplyToID      *uuid.UUID
	EditedAt       *time.Time
	DeletedAt      *time.Time
	Language       string

	// ReadBy is loaded from the receipt keys, never stored in the record.
	ReadBy []domain.ReadReceipt
}

// Meta is the part of the message that is safe to show to any participant.
func (m DiskMessage) Meta() domain.MessageMeta {
	return domain.MessageMeta{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Type:           m.Type,
		Locked:         m.Locked,
		Price:          m.Price,
		Status:         m.Status,
		ReadBy:         lo.Ternary(m.ReadBy == nil, []domain.ReadReceipt{}, m.ReadBy),
		SentAt:         m.SentAt,
		ReplyToID:      m.ReplyToID,
		EditedAt:       m.EditedAt,
		DeletedAt:      m.DeletedAt,
		Language:       m.Language,
	}
}

// Page selects a window on sentAt. Both bounds are exclusive.
type Page struct {
	Limit  int
	Before *time.Time
	After  *time.Time
}

// Store persists a message and moves the conversation lastMessageAt forward
// in the same transaction. The conversation must exist.
func (r *MessageRepository) Store(message DiskMessage) error {
	data, err := marshalMessage(message)
	if err != nil {
		return err
	}
	primary := messageKey(message.ConversationID, message.SentAt.UnixNano(), message.ID)
	return updateWithRetry(r.db, r.retries, func(txn *badger.Txn) error {
		c, err := getConversation(txn, message.ConversationID)
		if err != nil {
			return err
		}
		if c.LastMessageAt == nil || message.SentAt.After(*c.LastMessageAt) {
			c.LastMessageAt = lo.ToPtr(message.SentAt)
			if err = putConversation(txn, c); err != nil {
				return err
			}
		}
		if err = txn.Set(primary, data); err != nil {
			return err
		}
		return txn.Set(messageIndexKey(message.ID), primary)
	})
}

func (r *MessageRepository) Get(id uuid.UUID) (DiskMessage, error) {
	var m DiskMessage
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		m, _, err = getMessage(txn, id)
		return err
	})
	return m, err
}

// List returns at most page.Limit messages of a conversation in ascending
// sentAt order. Without an after bound, the newest messages of the window
// are returned, so that paging backwards with before works naturally.
func (r *MessageRepository) List(conversationID uuid.UUID, page Page) ([]DiskMessage, error) {
	if page.Limit <= 0 {
		return nil, errors.ErrInvalidPageSize
	}
	var messages []DiskMessage
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(conversationID)
		var err error
		if page.After != nil {
			messages, err = r.scanForward(txn, prefix, page)
		} else {
			messages, err = r.scanBackward(txn, prefix, page)
		}
		if err != nil {
			return err
		}
		for i := range messages {
			if messages[i].ReadBy, err = loadReceipts(txn, messages[i].ID); err != nil {
				return err
			}
		}
		return nil
	})
	return messages, err
}

func (r *MessageRepository) scanForward(txn *badger.Txn, prefix []byte, page Page) ([]DiskMessage, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	seekKey := append(append([]byte{}, prefix...), padTimestamp(page.After.UnixNano()+1)...)
	var upper string
	if page.Before != nil {
		upper = padTimestamp(page.Before.UnixNano())
	}
	var messages []DiskMessage
	for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(messages) < page.Limit; it.Next() {
		key := it.Item().Key()
		if upper != "" && string(key[len(prefix):len(prefix)+len(maxTimestamp)]) >= upper {
			break
		}
		m, err := decodeMessage(it.Item())
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *MessageRepository) scanBackward(txn *badger.Txn, prefix []byte, page Page) ([]DiskMessage, error) {
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	it := txn.NewIterator(options)
	defer it.Close()

	// Reverse seek lands on the greatest key lower or equal to the seek key.
	// Keys carry ":{uuid}" after the timestamp, so equal timestamps are excluded.
	seekKey := append(append([]byte{}, prefix...), maxTimestamp...)
	if page.Before != nil {
		seekKey = append(append([]byte{}, prefix...), padTimestamp(page.Before.UnixNano())...)
	}
	var messages []DiskMessage
	for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(messages) < page.Limit; it.Next() {
		m, err := decodeMessage(it.Item())
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return lo.Reverse(messages), nil
}

// AddReadReceipt records that userID read the message. A second call for the
// same reader keeps the first receipt and reports added as false.
func (r *MessageRepository) AddReadReceipt(messageID uuid.UUID, userID string, at time.Time) (domain.ReadReceipt, bool, error) {
	var (
		receipt domain.ReadReceipt
		added   bool
	)
	err := updateWithRetry(r.db, r.retries, func(txn *badger.Txn) error {
		added = false
		if _, _, err := getMessage(txn, messageID); err != nil {
			return err
		}
		key := readKey(messageID, userID)
		item, err := txn.Get(key)
		if err == nil {
			readAt, err := decodeReadAt(item)
			if err != nil {
				return err
			}
			receipt = domain.ReadReceipt{UserID: userID, ReadAt: readAt}
			return nil
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		receipt = domain.ReadReceipt{UserID: userID, ReadAt: at.UTC()}
		added = true
		data, err := marshalReadAt(receipt.ReadAt)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	return receipt, added, err
}

// Update applies mutate to the stored message in a single transaction.
// The message position (conversation, sentAt) cannot change.
func (r *MessageRepository) Update(id uuid.UUID, mutate func(m *DiskMessage) error) (DiskMessage, error) {
	var result DiskMessage
	err := updateWithRetry(r.db, r.retries, func(txn *badger.Txn) error {
		m, primary, err := getMessage(txn, id)
		if err != nil {
			return err
		}
		conversationID, sentAt := m.ConversationID, m.SentAt
		if err = mutate(&m); err != nil {
			return err
		}
		if m.ID != id || m.ConversationID != conversationID || !m.SentAt.Equal(sentAt) {
			return fmt.Errorf("message position cannot change")
		}
		data, err := marshalMessage(m)
		if err != nil {
			return err
		}
		result = m
		return txn.Set(primary, data)
	})
	return result, err
}

func getMessage(txn *badger.Txn, id uuid.UUID) (DiskMessage, []byte, error) {
	item, err := txn.Get(messageIndexKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return DiskMessage{}, nil, errors.ErrMessageNotFound
	}
	if err != nil {
		return DiskMessage{}, nil, err
	}
	primary, err := item.ValueCopy(nil)
	if err != nil {
		return DiskMessage{}, nil, err
	}
	item, err = txn.Get(primary)
	if err != nil {
		return DiskMessage{}, nil, err
	}
	m, err := decodeMessage(item)
	if err != nil {
		return DiskMessage{}, nil, err
	}
	m.ReadBy, err = loadReceipts(txn, id)
	return m, primary, err
}

func decodeMessage(item *badger.Item) (DiskMessage, error) {
	var m DiskMessage
	err := item.Value(func(val []byte) error {
		var err error
		m, err = unmarshalMessage(val)
		return err
	})
	return m, err
}

func loadReceipts(txn *badger.Txn, messageID uuid.UUID) ([]domain.ReadReceipt, error) {
	prefix := readPrefix(messageID)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	receipts := []domain.ReadReceipt{}
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		readAt, err := decodeReadAt(it.Item())
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, domain.ReadReceipt{
			UserID: string(it.Item().Key()[len(prefix):]),
			ReadAt: readAt,
		})
	}
	return receipts, nil
}

func decodeReadAt(item *badger.Item) (time.Time, error) {
	var readAt time.Time
	err := item.Value(func(val []byte) error {
		var err error
		readAt, err = unmarshalReadAt(val)
		return err
	})
	return readAt, err
}

func padTimestamp(unixNano int64) string {
	return fmt.Sprintf("%019d", unixNano)
}
