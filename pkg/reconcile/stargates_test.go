package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestSkipOrFail_SwallowsNotFoundServerAndUnexpected(t *testing.T) {
	ctx := context.Background()
	for _, kind := range []errs.SourceKind{errs.NotFound, errs.ServerError, errs.UnexpectedError} {
		err := errs.NewSourceError(kind, "http://example/stargates/1/", 0, errors.New("upstream"))
		assert.NoError(t, skipOrFail(ctx, 1, err))
	}
}

func TestSkipOrFail_PropagatesRateLimited(t *testing.T) {
	ctx := context.Background()
	err := errs.NewSourceError(errs.RateLimited, "http://example/stargates/1/", 429, errors.New("slow down"))
	assert.ErrorIs(t, skipOrFail(ctx, 1, err), err)
}

func TestSkipOrFail_PropagatesNonSourceErrors(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("graph store is down")
	assert.ErrorIs(t, skipOrFail(ctx, 1, sentinel), sentinel)
}
