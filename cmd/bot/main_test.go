package main

import (
	"path/filepath"
	"testing"

	"github.com/NovaFrame52/Ron-Bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{name: "Should open the json file backend", backend: config.BackendJSON},
		{name: "Should open the sqlite backend", backend: config.BackendSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := &config.Config{
				StorageBackend:    tt.backend,
				SubscriptionsPath: filepath.Join(dir, "reminders.json"),
				DatabasePath:      filepath.Join(dir, "ron.db"),
			}

			store, closeStore, err := openStore(cfg)
			require.NoError(t, err)

			assert.Equal(t, 0, store.Len())
			store.Toggle("u1")

			// A second open must see the persisted subscriber
			closeStore()
			reopened, closeAgain, err := openStore(cfg)
			require.NoError(t, err)
			defer closeAgain()
			assert.True(t, reopened.IsSubscribed("u1"))
		})
	}
}
