package acquire

import "math"

// ProgressFunc receives document-level progress as an integer in [0,100].
// Each acquisition call owns its callback; nothing is shared between
// concurrent documents.
type ProgressFunc func(percent int)

// pageProgress converts one page's recognition progress p into the
// document-level scale:
//
//	overall = round(((pageIndex + p/100) / pageCount) * 100)
//
// Page i finishes exactly where page i+1 starts, so the signal is continuous
// across page boundaries. For a single-page document overall == p.
func pageProgress(pageIndex, pageCount, p int) int {
	if pageCount <= 0 {
		return 0
	}
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	overall := (float64(pageIndex) + float64(p)/100.0) / float64(pageCount) * 100.0
	return int(math.Round(overall))
}

// monotonic drops any report that would move the signal backwards.
func monotonic(report ProgressFunc) ProgressFunc {
	if report == nil {
		return nil
	}
	last := -1
	return func(p int) {
		if p < last {
			return
		}
		last = p
		report(p)
	}
}
