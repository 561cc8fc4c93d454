package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	cases := map[int]errs.SourceKind{
		http.StatusNotFound:            errs.NotFound,
		420:                            errs.RateLimited,
		http.StatusTooManyRequests:     errs.RateLimited,
		http.StatusInternalServerError: errs.ServerError,
		http.StatusBadGateway:          errs.ServerError,
		http.StatusBadRequest:          errs.UnexpectedError,
		http.StatusForbidden:           errs.UnexpectedError,
	}
	for status, want := range cases {
		assert.Equal(t, want, classifyStatus(status))
	}
}

func TestGetSystemDetail_DecodesOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"system_id": 30000142, "security_status": 0.9}`))
	}))
	defer server.Close()

	client := New(server.URL)
	detail, err := client.GetSystemDetail(t.Context(), 30000142)
	require.NoError(t, err)
	assert.Equal(t, 30000142, detail.SystemID)
	assert.Equal(t, 0.9, detail.SecurityStatus)
}

func TestGetSystemDetail_ClassifiesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetSystemDetail(t.Context(), 1)
	require.Error(t, err)
	assert.True(t, isSourceKind(err, errs.NotFound))
}

func TestGetSystemDetail_ClassifiesRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetSystemDetail(t.Context(), 1)
	require.Error(t, err)
	assert.True(t, errs.IsRateLimited(err))
}

func TestGetSystemDetail_ClassifiesUnparseableBodyAsParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetSystemDetail(t.Context(), 1)
	require.Error(t, err)
	assert.True(t, isSourceKind(err, errs.ParseError))
}

func TestGetStargateDetail_ClassifiesMissingDestinationAsParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stargate_id": 50000056, "system_id": 30000142}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetStargateDetail(t.Context(), 50000056)
	require.Error(t, err)
	assert.True(t, isSourceKind(err, errs.ParseError))
}

func isSourceKind(err error, kind errs.SourceKind) bool {
	sourceErr, ok := err.(*errs.SourceError)
	return ok && sourceErr.Kind == kind
}
