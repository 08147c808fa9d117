package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Transport: TransportSSE, BufferSize: 10, ConnectionBufferSize: 10, CharReplacement: "*"}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "should accept a complete config", mutate: func(*Config) {}},
		{name: "should reject an unknown transport", mutate: func(c *Config) { c.Transport = "carrier-pigeon" }, wantErr: true},
		{name: "should reject an empty buffer", mutate: func(c *Config) { c.BufferSize = 0 }, wantErr: true},
		{name: "should reject a multi character replacement", mutate: func(c *Config) { c.CharReplacement = "**" }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := valid
			tc.mutate(&config)

			err := config.Validate()

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
