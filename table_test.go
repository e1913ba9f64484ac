package luadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TerameTechYT/luadata"
)

func TestTableSetGet(t *testing.T) {
	t.Run("insertion order is preserved", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("z", 1)
		tbl.SetField("a", 2)
		tbl.SetInt(1, 3)
		tbl.SetField("m", 4)

		var keys []string
		for k := range tbl.All() {
			keys = append(keys, k.String())
		}
		require.Equal(t, []string{"z", "a", "1", "m"}, keys)
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("a", 1)
		tbl.SetField("b", 2)
		tbl.SetField("a", 3)

		var keys []string
		for k := range tbl.All() {
			keys = append(keys, k.String())
		}
		require.Equal(t, []string{"a", "b"}, keys)

		v, ok := tbl.GetField("a")
		require.True(t, ok)
		require.Equal(t, int64(3), v)
	})

	t.Run("numeric values are normalized", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("i", 42)
		tbl.SetField("f", float32(1.5))

		v, _ := tbl.GetField("i")
		require.Equal(t, int64(42), v)
		v, _ = tbl.GetField("f")
		require.Equal(t, float64(1.5), v)
	})

	t.Run("integral float keys collapse to integer keys", func(t *testing.T) {
		tbl := luadata.New()
		require.NoError(t, tbl.Set(float64(2), "two"))

		v, ok := tbl.GetInt(2)
		require.True(t, ok)
		require.Equal(t, "two", v)
	})

	t.Run("invalid keys are rejected", func(t *testing.T) {
		tbl := luadata.New()
		require.Error(t, tbl.Set(1.5, "x"))
		require.Error(t, tbl.Set(true, "x"))
	})

	t.Run("explicit nil is present, delete removes", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("gone", nil)

		v, ok := tbl.GetField("gone")
		require.True(t, ok)
		require.Nil(t, v)
		require.Equal(t, 1, tbl.Len())

		tbl.Delete("gone")
		_, ok = tbl.GetField("gone")
		require.False(t, ok)
		require.Equal(t, 0, tbl.Len())
	})
}

func TestTableMaxN(t *testing.T) {
	tbl := luadata.New()
	require.Equal(t, int64(0), tbl.MaxN())

	tbl.SetInt(1, "a")
	tbl.SetInt(3, "c")
	tbl.SetField("x", "y")
	require.Equal(t, int64(3), tbl.MaxN())

	tbl.SetInt(-5, "neg")
	require.Equal(t, int64(3), tbl.MaxN())
}

func TestTableEqual(t *testing.T) {
	build := func() *luadata.Table {
		inner := luadata.New()
		inner.SetInt(1, int64(1))
		inner.SetInt(2, "two")

		tbl := luadata.New()
		tbl.SetField("list", inner)
		tbl.SetField("n", 3.5)
		tbl.SetField("ok", true)
		return tbl
	}

	t.Run("deep equality independent of order", func(t *testing.T) {
		a := build()

		b := luadata.New()
		b.SetField("ok", true)
		b.SetField("n", 3.5)
		inner := luadata.New()
		inner.SetInt(1, int64(1))
		inner.SetInt(2, "two")
		b.SetField("list", inner)

		require.True(t, a.Equal(b))
	})

	t.Run("numeric kind matters", func(t *testing.T) {
		a := luadata.New()
		a.SetField("n", int64(1))
		b := luadata.New()
		b.SetField("n", float64(1))
		require.False(t, a.Equal(b))
	})

	t.Run("differing keys and values", func(t *testing.T) {
		a := build()
		b := build()
		b.SetField("extra", 1)
		require.False(t, a.Equal(b))

		c := build()
		c.SetField("n", 99.0)
		require.False(t, a.Equal(c))
	})
}
