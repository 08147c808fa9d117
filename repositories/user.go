//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-vault/errors"
	pb "chat-vault/proto/storage"
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type IUserRepository interface {
	SaveProfile(userID, displayName string) (User, error)
	GetUser(userID string) (User, error)
	DisplayName(ctx context.Context, userID string) (string, error)
}

// UserRepository is a local cache of profiles owned by the identity provider.
// It backs the display names shown in typing indicators.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type User struct {
	ID          string
	DisplayName string
	UpdatedAt   time.Time
}

// SaveProfile creates or replaces the profile of userID.
func (u *UserRepository) SaveProfile(userID, displayName string) (User, error) {
	user := User{
		ID:          userID,
		DisplayName: strings.TrimSpace(displayName),
		UpdatedAt:   time.Now().UTC(),
	}
	if user.ID == "" || user.DisplayName == "" {
		return User{}, errors.ErrInvalidPayload
	}
	data, err := proto.Marshal(fromUser(user))
	if err != nil {
		return User{}, fmt.Errorf("marshal failed: %w", err)
	}
	err = u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(userID), data)
	})
	return user, err
}

func (u *UserRepository) GetUser(userID string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(userID))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var userPb pb.User
			if err := proto.Unmarshal(val, &userPb); err != nil {
				return err
			}
			user = toUser(&userPb)
			return nil
		})
	})
	return user, err
}

func (u *UserRepository) DisplayName(_ context.Context, userID string) (string, error) {
	user, err := u.GetUser(userID)
	if err != nil {
		return "", err
	}
	return user.DisplayName, nil
}
