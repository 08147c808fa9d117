package internal

import (
	"fmt"
	"time"
)

const (
	TransportSSE       = "sse"
	TransportWebsocket = "websocket"
)

type Config struct {
	HTTPHost string `env:"HTTP_HOST,default=0.0.0.0"`
	HTTPPort int    `env:"HTTP_PORT,required=true"`
	GRPCPort int    `env:"GRPC_PORT,required=true"`
	GinMode  string `env:"GIN_MODE,default=release"`

	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	ConflictRetries int    `env:"CONFLICT_RETRIES,default=5"`
	LedgerDriver    string `env:"LEDGER_DRIVER,default=sqlite"`
	LedgerDSN       string `env:"LEDGER_DSN,required=true"`

	Transport            string        `env:"TRANSPORT,default=sse"`
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`

	Codec           string  `env:"CODEC,default=none"`
	CodecKeyHex     string  `env:"CODEC_KEY_HEX"`
	CharReplacement string  `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	TypingRate      float64 `env:"TYPING_RATE,default=2"`
	TypingBurst     int     `env:"TYPING_BURST,default=3"`
	BulkConcurrency int     `env:"BULK_CONCURRENCY,default=8"`
	DebugPort       int     `env:"DEBUG_PORT,default=8081"`
}

// Validate checks the values the environment parser cannot.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportSSE, TransportWebsocket:
	default:
		return fmt.Errorf("TRANSPORT must be %q or %q, got %q", TransportSSE, TransportWebsocket, c.Transport)
	}
	if c.BufferSize <= 0 || c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE and CONNECTION_BUFFER_SIZE must be positive")
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
