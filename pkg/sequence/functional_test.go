package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromCollect(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data := []int{3, 1, 4, 1, 5}
		require.Equal(t, data, From(data).Collect())
	})

	t.Run("empty slice collects nil", func(t *testing.T) {
		require.Nil(t, From([]int{}).Collect())
	})
}

func TestFilter(t *testing.T) {
	evens := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool {
		return v%2 == 0
	}).Collect()
	require.Equal(t, []int{2, 4, 6}, evens)
}

func TestTake(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	t.Run("fewer than length", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3}, From(data).Take(3).Collect())
	})

	t.Run("more than length", func(t *testing.T) {
		require.Equal(t, data, From(data).Take(10).Collect())
	})

	t.Run("zero", func(t *testing.T) {
		require.Nil(t, From(data).Take(0).Collect())
	})
}

func TestPartition(t *testing.T) {
	matches, rest := From([]string{"a", "bb", "c", "dd"}).Partition(func(s string) bool {
		return len(s) == 1
	})
	require.Equal(t, []string{"a", "c"}, matches)
	require.Equal(t, []string{"bb", "dd"}, rest)
}

func TestCount(t *testing.T) {
	require.Equal(t, 4, From([]int{1, 2, 3, 4}).Count())
	require.Equal(t, 0, From([]int(nil)).Count())
}

func TestToArray(t *testing.T) {
	doubled := ToArray(From([]int{1, 2, 3}), func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, doubled)

	lengths := ToArray(From([]string{"a", "bb"}), func(s string) int { return len(s) })
	require.Equal(t, []int{1, 2}, lengths)
}
