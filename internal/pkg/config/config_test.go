//go:build unit

package config_test

import (
	"testing"

	"turnos-gateway/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestBackendConfigEndpoint(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{"plain base", "http://backend:8080", "/turnos", "http://backend:8080/turnos"},
		{"trailing slash is trimmed", "http://backend:8080/", "/turnos", "http://backend:8080/turnos"},
		{"base with prefix", "http://backend:8080/api/v1", "/facturas", "http://backend:8080/api/v1/facturas"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.BackendConfig{BaseURL: tc.baseURL}
			assert.Equal(t, tc.want, cfg.Endpoint(tc.path))
		})
	}
}
