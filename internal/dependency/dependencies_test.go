package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsDrac/nft-web/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(apiURL string) *config.Config {
	return &config.Config{
		Host:       "127.0.0.1",
		Port:       "0",
		APIURL:     apiURL,
		SessionKey: []byte(strings.Repeat("s", 32)),
		CSRFKey:    []byte(strings.Repeat("c", 32)),
	}
}

func TestNewDependencies(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	deps, err := NewDependencies(context.Background(), testConfig(backend.URL))
	require.NoError(t, err)
	assert.NotNil(t, deps.PageHandler)
	assert.NotNil(t, deps.FragmentHandler)
	assert.NotNil(t, deps.FormHandler)
	assert.NotNil(t, deps.Sessions)
	assert.NotNil(t, deps.Templates.Get("nfts.html"))
	assert.Equal(t, backend.URL, deps.Client.BaseURL())
}

func TestNewDependenciesBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	backend.Close()

	deps, err := NewDependencies(context.Background(), testConfig(backend.URL))
	require.NoError(t, err)
	assert.NotNil(t, deps.Services)
}
