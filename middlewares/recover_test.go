package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typecms/typecms/internal"
	"github.com/typecms/typecms/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.Recover()
		handler := mw(func(c internal.Context) error {
			panic("boom")
		})

		err := handler(ctx)
		require.Error(t, err)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Contains(t, err.Error(), "boom")
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.Recover()
		handler := mw(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(ctx))
	})

	t.Run("passes through handler errors unchanged", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		want := errors.New("handler failed")
		mw := middlewares.Recover()
		handler := mw(func(c internal.Context) error {
			return want
		})

		err := handler(ctx)
		require.ErrorIs(t, err, want)
		require.False(t, middlewares.IsPanicError(err))
	})

	t.Run("disable print stack leaves stack empty", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		mw := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())
		handler := mw(func(c internal.Context) error {
			panic("quiet")
		})

		err := handler(ctx)
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Empty(t, pe.Stack)
	})
}
