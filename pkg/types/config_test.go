package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "zero value is valid",
			config: Config{},
		},
		{
			name: "full config is valid",
			config: Config{
				DefaultURL:  "https://example.com/data.csv",
				HTTPTimeout: 10 * time.Second,
				DataDir:     "/tmp/csvtable",
			},
		},
		{
			name:    "negative timeout rejected",
			config:  Config{HTTPTimeout: -time.Second},
			wantErr: ErrTimeoutInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
