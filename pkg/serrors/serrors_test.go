package serrors_test

import (
	"errors"
	"grocer/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidUnit,
		serrors.ErrDimensionMismatch,
		serrors.ErrUnregularizable,
		serrors.ErrMalformedRecord,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrDimensionMismatch, serrors.ErrUnregularizable,
		"DimensionMismatch should not equal Unregularizable")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("decode failed")

	e1 := serrors.With(serrors.ErrInvalidUnit, "unknown unit %q", "parsec")
	require.Equal(t, `unknown unit "parsec"`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrMalformedRecord, base, "reading materials")
	require.Equal(t, "reading materials: decode failed", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrDimensionMismatch)
	require.Equal(t, "DIMENSION_MISMATCH", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnregularizable, base, "regularizing")

	require.ErrorIs(t, e, serrors.ErrUnregularizable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrDimensionMismatch, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "fetching list")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad payload")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad payload", e.Message())
	require.Equal(t, base, e.Cause())
}
