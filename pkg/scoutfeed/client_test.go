package scoutfeed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPublicSignatures_FiltersToWormholesViaIsWormhole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"signature_type": "wormhole", "in_system_id": 1, "out_system_id": 2},
			{"signature_type": "combat", "in_system_id": 3, "out_system_id": 4}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	signatures, err := client.GetPublicSignatures(t.Context())
	require.NoError(t, err)
	require.Len(t, signatures, 2)

	assert.True(t, signatures[0].IsWormhole())
	assert.False(t, signatures[1].IsWormhole())
}

func TestGetPublicSignatures_ServerErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetPublicSignatures(t.Context())
	require.Error(t, err)

	var sourceErr *errs.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, errs.ServerError, sourceErr.Kind)
}

func TestGetPublicSignatures_OtherNonSuccessIsUnexpected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetPublicSignatures(t.Context())
	require.Error(t, err)

	var sourceErr *errs.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, errs.UnexpectedError, sourceErr.Kind)
}
