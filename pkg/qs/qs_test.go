package qs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/typecms/typecms/pkg/qs"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("flat scalars", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse([]byte("title=Hello&draft=on"))
		require.NoError(t, err)
		want := qs.Object{"title": qs.String("Hello"), "draft": qs.String("on")}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("nested object", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse([]byte("image[id]=abc&image[name]=cat.png&image[alt_text]=A+cat"))
		require.NoError(t, err)
		want := qs.Object{"image": qs.Object{
			"id":       qs.String("abc"),
			"name":     qs.String("cat.png"),
			"alt_text": qs.String("A cat"),
		}}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("numeric segments become lists", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse([]byte("content[0][type]=text&content[0][data]=Hi&content[1][type]=separator"))
		require.NoError(t, err)
		want := qs.Object{"content": qs.List{
			qs.Object{"type": qs.String("text"), "data": qs.String("Hi")},
			qs.Object{"type": qs.String("separator")},
		}}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("percent-encoded keys", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse([]byte("content%5B0%5D%5Bdata%5D=Hi"))
		require.NoError(t, err)
		want := qs.Object{"content": qs.List{qs.Object{"data": qs.String("Hi")}}}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("duplicate keys are first-write-wins", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse([]byte("a=1&a=2"))
		require.NoError(t, err)
		require.Equal(t, qs.String("1"), got["a"])
	})

	t.Run("sparse list index is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := qs.Parse([]byte("a[0]=x&a[2]=y"))
		require.ErrorIs(t, err, qs.ErrSparseIndex)
	})

	t.Run("scalar and container conflict", func(t *testing.T) {
		t.Parallel()
		_, err := qs.Parse([]byte("a=1&a[b]=2"))
		require.ErrorIs(t, err, qs.ErrKeyConflict)

		_, err = qs.Parse([]byte("a[b]=2&a=1"))
		require.ErrorIs(t, err, qs.ErrKeyConflict)
	})

	t.Run("depth limit", func(t *testing.T) {
		t.Parallel()
		_, err := qs.Parse([]byte("a[b][c][d][e][f]=1"))
		require.NoError(t, err)

		_, err = qs.Parse([]byte("a[b][c][d][e][f][g]=1"))
		require.ErrorIs(t, err, qs.ErrDepthExceeded)

		_, err = qs.Parse([]byte("a[b]=1"), qs.WithMaxDepth(0))
		require.ErrorIs(t, err, qs.ErrDepthExceeded)
	})

	t.Run("malformed keys", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"a[b", "a]b[", "[a]=1", "a[]"} {
			_, err := qs.Parse([]byte(key + "=1"))
			require.Error(t, err, "key %q", key)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		got, err := qs.Parse(nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	t.Run("round-trips through parse", func(t *testing.T) {
		t.Parallel()
		var b qs.Buffer
		b.Add("content[0][type]", "text")
		b.Add("content[0][data]", "Hello & goodbye")
		b.Add("file[name]", "cat photo.png")

		got, err := qs.Parse(b.Bytes())
		require.NoError(t, err)
		want := qs.Object{
			"content": qs.List{qs.Object{"type": qs.String("text"), "data": qs.String("Hello & goodbye")}},
			"file":    qs.Object{"name": qs.String("cat photo.png")},
		}
		require.Empty(t, cmp.Diff(want, got))
	})
}
