package repositories

import (
	"chat-vault/errors"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	DefaultConflictRetries = 5
	maxTimestamp           = "9999999999999999999"
)

// Keys
//
//	conv:{conversation_id}                      -> conversation record
//	pair:{user_a}:{user_b}                      -> conversation id, a < b
//	member:{user_id}:{conversation_id}          -> empty
//	msg:{conversation_id}:{timestamp}:{msg_id}  -> message record
//	msgid:{msg_id}                              -> message key
//	read:{msg_id}:{user_id}                     -> read timestamp
//	user:{user_id}                              -> user record
func conversationKey(id uuid.UUID) []byte {
	return []byte("conv:" + id.String())
}

func pairKey(pair string) []byte {
	return []byte("pair:" + pair)
}

func memberPrefix(userID string) []byte {
	return []byte("member:" + userID + ":")
}

func memberKey(userID string, conversationID uuid.UUID) []byte {
	return append(memberPrefix(userID), conversationID.String()...)
}

func messagePrefix(conversationID uuid.UUID) []byte {
	return []byte("msg:" + conversationID.String() + ":")
}

// messageKey sorts chronologically thanks to the 19-digit zero padding.
// The uuid suffix keeps two messages of the same nanosecond apart.
func messageKey(conversationID uuid.UUID, unixNano int64, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", conversationID, unixNano, id))
}

func messageIndexKey(id uuid.UUID) []byte {
	return []byte("msgid:" + id.String())
}

func readPrefix(messageID uuid.UUID) []byte {
	return []byte("read:" + messageID.String() + ":")
}

func readKey(messageID uuid.UUID, userID string) []byte {
	return append(readPrefix(messageID), userID...)
}

func userKey(userID string) []byte {
	return []byte("user:" + userID)
}

// updateWithRetry runs fn in a read-write transaction and replays it when
// badger detects a conflicting concurrent commit. fn must not keep state
// across attempts.
func updateWithRetry(db *badger.DB, retries int, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		err = db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrStoreContention, err)
}
