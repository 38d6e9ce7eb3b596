package flatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conftree/conftree"
)

func testEntries() map[string]string {
	return map[string]string{
		"db.host":      "localhost",
		"db.port":      "5432",
		"db.pool.size": "10",
		"timeout":      "30",
	}
}

func TestNode_Property(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		value, err := node.Property("db.host")
		require.NoError(t, err)

		host, err := value.String()
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)
	})

	t.Run("absent fails", func(t *testing.T) {
		t.Parallel()

		_, err := node.Property("db.missing")
		require.Error(t, err)

		var confErr *conftree.Error
		assert.ErrorAs(t, err, &confErr)
	})

	t.Run("object path fails", func(t *testing.T) {
		t.Parallel()

		_, err := node.Property("db")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "holds an object")
	})
}

func TestNode_PropertyOrNil(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	t.Run("absent returns nil without error", func(t *testing.T) {
		t.Parallel()

		value, err := node.PropertyOrNil("db.missing")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("object path still fails", func(t *testing.T) {
		t.Parallel()

		_, err := node.PropertyOrNil("db.pool")
		require.Error(t, err)
	})
}

func TestNode_Config(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	t.Run("prefix view resolves relative paths", func(t *testing.T) {
		t.Parallel()

		db, err := node.Config("db")
		require.NoError(t, err)

		host, err := conftree.Get[string](db, "host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		size, err := conftree.Get[string](db, "pool.size")
		require.NoError(t, err)
		assert.Equal(t, "10", size)
	})

	t.Run("absent fails", func(t *testing.T) {
		t.Parallel()

		_, err := node.Config("missing")
		require.Error(t, err)
	})

	t.Run("leaf path fails", func(t *testing.T) {
		t.Parallel()

		_, err := node.Config("timeout")
		require.Error(t, err)
	})
}

func TestNode_ConfigList(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	_, err := node.ConfigList("db")
	require.Error(t, err)

	var confErr *conftree.Error
	assert.ErrorAs(t, err, &confErr)
}

func TestNode_Keys(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		assert.ElementsMatch(t,
			[]string{"db.host", "db.port", "db.pool.size", "timeout"},
			node.Keys(),
		)
	})

	t.Run("child node", func(t *testing.T) {
		t.Parallel()

		db, err := node.Config("db")
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"host", "port", "pool.size"}, db.Keys())
	})

	t.Run("every key resolves via Property", func(t *testing.T) {
		t.Parallel()

		for _, key := range node.Keys() {
			_, err := node.Property(key)
			assert.NoError(t, err, "key %q must resolve", key)
		}
	})
}

func TestNode_ToMap(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	expected := map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": "5432",
			"pool": map[string]any{
				"size": "10",
			},
		},
		"timeout": "30",
	}
	assert.Equal(t, expected, node.ToMap())
}

func TestNode_InputMapIsCopied(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	node := New(entries)

	entries["db.host"] = "changed"

	host, err := conftree.Get[string](node, "db.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)
}

func TestValue_NoDecoderCapability(t *testing.T) {
	t.Parallel()

	node := New(testEntries())

	t.Run("non-string typed access fails", func(t *testing.T) {
		t.Parallel()

		_, err := conftree.Get[int](node, "db.port")
		require.Error(t, err)
		assert.ErrorIs(t, err, conftree.ErrDecodingUnsupported)
	})

	t.Run("string typed access succeeds", func(t *testing.T) {
		t.Parallel()

		port, err := conftree.Get[string](node, "db.port")
		require.NoError(t, err)
		assert.Equal(t, "5432", port)
	})

	t.Run("list read fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := conftree.TryStringList(node, "db.port")
		require.Error(t, err)
	})
}
