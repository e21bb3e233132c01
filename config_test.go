package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both adapters satisfy the Parser contract.
var (
	_ Parser = (*EnvParser)(nil)
	_ Parser = (*JSONParser)(nil)
)

func TestNew_Valid(t *testing.T) {
	// Act
	cfg, err := New("https://crm.example.com", "abc", "s3cr3t")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://crm.example.com", cfg.URL)
	assert.Equal(t, "abc", cfg.ClientID)
	assert.Equal(t, "s3cr3t", cfg.ClientSecret)
	assert.NotNil(t, cfg.CustomModules)
	assert.Empty(t, cfg.CustomModules)
}

func TestNew_WithCustomModules(t *testing.T) {
	// Arrange
	leads := map[string]string{"name": "Leads"}
	invoices := map[string]string{"name": "Invoices", "prefix": "INV"}

	// Act
	cfg, err := New("https://crm.example.com", "abc", "s3cr3t", leads, invoices)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Len(t, cfg.CustomModules, 2)
	assert.Equal(t, leads, cfg.CustomModules[0])
	assert.Equal(t, invoices, cfg.CustomModules[1])
}

func TestNew_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		clientID     string
		clientSecret string
	}{
		{"empty url", "", "abc", "s3cr3t"},
		{"empty client id", "https://crm.example.com", "", "s3cr3t"},
		{"empty client secret", "https://crm.example.com", "abc", ""},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			cfg, err := New(tt.url, tt.clientID, tt.clientSecret)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, cfg)
		})
	}
}
