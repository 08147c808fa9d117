package domain

import (
	"chat-vault/errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestCanonicalParticipants(t *testing.T) {
	req := require.New(t)

	// Given a messy participant list
	ids := []string{" bob", "alice", "bob", "", "  "}

	// When it is canonicalized
	canonical := CanonicalParticipants(ids)

	// Then the set is trimmed, unique and sorted
	req.Equal([]string{"alice", "bob"}, canonical)
	req.Equal(canonical, CanonicalParticipants([]string{"bob", "alice"}))
}

func TestValidateParticipants(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		initiator string
		kind      ConversationKind
		wantErr   error
	}{
		{"should accept a direct pair", []string{"alice", "bob"}, "alice", KindDirect, nil},
		{"should accept a group", []string{"alice", "bob", "carol"}, "carol", KindGroup, nil},
		{"should reject an unknown kind", []string{"alice", "bob"}, "alice", "channel", errors.ErrInvalidKind},
		{"should reject an empty set", nil, "alice", KindGroup, errors.ErrInvalidParticipants},
		{"should reject an initiator outside the set", []string{"bob", "carol"}, "alice", KindGroup, errors.ErrInvalidParticipants},
		{"should reject a direct conversation of three", []string{"alice", "bob", "carol"}, "alice", KindDirect, errors.ErrInvalidParticipants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParticipants(CanonicalParticipants(tt.ids), tt.initiator, tt.kind)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateParticipants_TooMany(t *testing.T) {
	ids := lo.Times(MaxParticipants+1, func(i int) string { return string(rune('a' + i)) })
	require.ErrorIs(t, ValidateParticipants(CanonicalParticipants(ids), "a", KindGroup), errors.ErrInvalidParticipants)
}

func TestPairKey(t *testing.T) {
	req := require.New(t)

	key, ok := PairKey(CanonicalParticipants([]string{"bob", "alice"}))
	req.True(ok)
	req.Equal("alice:bob", key)

	_, ok = PairKey([]string{"alice", "bob", "carol"})
	req.False(ok)
}

func TestConversation_Roles(t *testing.T) {
	owned := Conversation{
		Kind:         KindDirect,
		Participants: []string{"creator", "fan"},
		OwnerID:      lo.ToPtr("creator"),
	}
	open := Conversation{Kind: KindGroup, Participants: []string{"a", "b", "c"}}

	t.Run("should resolve the counterpart of a direct conversation", func(t *testing.T) {
		req := require.New(t)
		other, ok := owned.Counterpart("fan")
		req.True(ok)
		req.Equal("creator", other)

		_, ok = open.Counterpart("a")
		req.False(ok)
	})

	t.Run("should only let the owner monetize an owned conversation", func(t *testing.T) {
		req := require.New(t)
		req.True(owned.CanMonetize("creator"))
		req.False(owned.CanMonetize("fan"))
		req.True(open.CanMonetize("b"))
	})

	t.Run("should report participants", func(t *testing.T) {
		req := require.New(t)
		req.True(owned.HasParticipant("fan"))
		req.False(owned.HasParticipant("stranger"))
	})
}
