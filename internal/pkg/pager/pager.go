package pager

// PageContext describes where a page sits inside the full filtered result
// set. It is attached to every item on the page because the response shape
// denormalizes pagination metadata per item.
type PageContext struct {
	PageNo     int
	TotalPages int
	AllPageNos []int
}

// Paginate slices items into fixed-size pages and builds the view for every
// item on the requested page. Page numbers are 1-based; a page number out of
// range yields an empty result.
func Paginate[T, R any](pageNo, pageSize int, items []T, build func(PageContext, T) R) []R {
	if pageSize <= 0 || len(items) == 0 {
		return nil
	}
	if pageNo <= 0 {
		pageNo = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if pageNo > totalPages {
		return nil
	}

	allPageNos := make([]int, totalPages)
	for i := range allPageNos {
		allPageNos[i] = i + 1
	}

	ctx := PageContext{
		PageNo:     pageNo,
		TotalPages: totalPages,
		AllPageNos: allPageNos,
	}

	start := (pageNo - 1) * pageSize
	end := min(start+pageSize, len(items))

	out := make([]R, 0, end-start)
	for _, item := range items[start:end] {
		out = append(out, build(ctx, item))
	}
	return out
}
