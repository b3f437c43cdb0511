package pubsub

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForwarder(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantNil bool
		wantErr string
	}{
		{name: "not configured", cfg: nil, wantNil: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNil: true},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085/push"},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "localEndpoint is required",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "shop"},
			wantErr: "projectId and topicId are required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: `unknown provider "kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forwarder, err := openForwarder(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, forwarder)

				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, forwarder)

				return
			}
			require.NotNil(t, forwarder)
			assert.NoError(t, forwarder.Close())
		})
	}
}
