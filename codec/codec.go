// Package codec holds the content transforms applied before storage.
package codec

import (
	"chat-vault/contract"
	"chat-vault/errors"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	NameNone             = "none"
	NameChaCha20Poly1305 = "chacha20poly1305"
)

// Noop stores content as is.
type Noop struct{}

func (Noop) Name() string { return NameNone }

func (Noop) Encode(plaintext []byte) ([]byte, error) { return plaintext, nil }

func (Noop) Decode(stored []byte) ([]byte, error) { return stored, nil }

// ChaCha20Poly1305 seals content with XChaCha20-Poly1305.
// Stored layout is nonce followed by the ciphertext.
type ChaCha20Poly1305 struct {
	key []byte
}

func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.ErrInvalidKey
	}
	return &ChaCha20Poly1305{key: append([]byte(nil), key...)}, nil
}

func (c *ChaCha20Poly1305) Name() string { return NameChaCha20Poly1305 }

func (c *ChaCha20Poly1305) Encode(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *ChaCha20Poly1305) Decode(stored []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	if len(stored) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := stored[:aead.NonceSize()], stored[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}

// Registry encodes new content with the configured codec and keeps every
// codec it can build so records written under an earlier setting stay readable.
type Registry struct {
	current contract.MessageCodec
	byName  map[string]contract.MessageCodec
}

// NewRegistry builds the writer named by name. The chacha20poly1305 reader is
// registered whenever a key is given, even if new content is stored in clear.
func NewRegistry(name, keyHex string) (*Registry, error) {
	current, err := New(name, keyHex)
	if err != nil {
		return nil, err
	}
	r := &Registry{
		current: current,
		byName:  map[string]contract.MessageCodec{NameNone: Noop{}},
	}
	r.byName[current.Name()] = current
	if keyHex != "" && current.Name() != NameChaCha20Poly1305 {
		reader, err := New(NameChaCha20Poly1305, keyHex)
		if err != nil {
			return nil, err
		}
		r.byName[NameChaCha20Poly1305] = reader
	}
	return r, nil
}

func (r *Registry) Current() contract.MessageCodec {
	return r.current
}

// Lookup returns the codec a record was written with. Records without a
// codec name predate the field and are read as is.
func (r *Registry) Lookup(name string) (contract.MessageCodec, error) {
	if name == "" {
		name = NameNone
	}
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, name)
	}
	return c, nil
}

// New picks the codec named by the configuration.
func New(name, keyHex string) (contract.MessageCodec, error) {
	switch name {
	case "", NameNone:
		return Noop{}, nil
	case NameChaCha20Poly1305:
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidKey, err)
		}
		return NewChaCha20Poly1305(key)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, name)
	}
}
