package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRateLimited_TrueOnlyForRateLimitedSourceErrors(t *testing.T) {
	assert.True(t, IsRateLimited(NewSourceError(RateLimited, "u", 429, errors.New("slow"))))
	assert.False(t, IsRateLimited(NewSourceError(ServerError, "u", 500, errors.New("boom"))))
	assert.False(t, IsRateLimited(errors.New("unrelated")))
}

func TestSourceError_UnwrapReturnsUnderlyingError(t *testing.T) {
	sentinel := errors.New("upstream failure")
	err := NewSourceError(ServerError, "http://x", 500, sentinel)
	assert.ErrorIs(t, err, sentinel)
}

func TestProcessError_UnwrapReturnsUnderlyingError(t *testing.T) {
	sentinel := errors.New("panic: boom")
	err := NewProcessError("task-1", sentinel)
	assert.ErrorIs(t, err, sentinel)
}

func TestTargetError_UnwrapReturnsUnderlyingError(t *testing.T) {
	sentinel := errors.New("connection refused")
	err := NewTargetError(ConnectionFailure, "connect", sentinel)
	assert.ErrorIs(t, err, sentinel)
}

func TestSourceKind_StringIsStable(t *testing.T) {
	cases := map[SourceKind]string{
		NotFound:        "not_found",
		RateLimited:     "rate_limited",
		ServerError:     "server_error",
		UnexpectedError: "unexpected_error",
		HTTPTransport:   "http_transport",
		ParseError:      "parse_error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
