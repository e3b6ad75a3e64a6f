//go:build unit

package pager_test

import (
	"testing"

	"github.com/Pruthvi98/klaw/internal/pkg/pager"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pagedItem struct {
	Value      int
	PageNo     int
	TotalPages int
	AllPageNos []int
}

func paginate(pageNo, pageSize int, values []int) []pagedItem {
	return pager.Paginate(pageNo, pageSize, values, func(ctx pager.PageContext, v int) pagedItem {
		return pagedItem{
			Value:      v,
			PageNo:     ctx.PageNo,
			TotalPages: ctx.TotalPages,
			AllPageNos: ctx.AllPageNos,
		}
	})
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("total pages is ceil of item count over page size", func(t *testing.T) {
		cases := []struct {
			items      int
			totalPages int
		}{
			{1, 1},
			{9, 1},
			{10, 1},
			{11, 2},
			{23, 3},
			{25, 3},
			{30, 3},
		}
		for _, c := range cases {
			got := paginate(1, 10, sequence(c.items))
			require.NotEmpty(t, got)
			assert.Equal(t, c.totalPages, got[0].TotalPages, "items=%d", c.items)
			assert.Len(t, got[0].AllPageNos, c.totalPages)
		}
	})

	t.Run("first page holds items 1..10 in input order", func(t *testing.T) {
		got := paginate(1, 10, sequence(25))
		require.Len(t, got, 10)
		for i, item := range got {
			assert.Equal(t, i+1, item.Value)
			assert.Equal(t, 1, item.PageNo)
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		got := paginate(3, 10, sequence(25))
		require.Len(t, got, 5)
		expected := pagedItem{Value: 21, PageNo: 3, TotalPages: 3, AllPageNos: []int{1, 2, 3}}
		if diff := cmp.Diff(expected, got[0]); diff != "" {
			t.Errorf("page item mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 25, got[4].Value)
	})

	t.Run("page numbers run 1..totalPages", func(t *testing.T) {
		got := paginate(2, 10, sequence(25))
		require.NotEmpty(t, got)
		assert.Equal(t, []int{1, 2, 3}, got[0].AllPageNos)
	})

	t.Run("page beyond range yields empty", func(t *testing.T) {
		assert.Empty(t, paginate(4, 10, sequence(25)))
	})

	t.Run("zero page defaults to first", func(t *testing.T) {
		got := paginate(0, 10, sequence(5))
		require.Len(t, got, 5)
		assert.Equal(t, 1, got[0].PageNo)
	})

	t.Run("empty input yields empty", func(t *testing.T) {
		assert.Empty(t, paginate(1, 10, nil))
	})
}
