package sqwrl

// SetLimit enables the limit operator: at most n rows from the start.
// Limit short-circuits every other selection operator.
func (r *Result) SetLimit(n int) { r.hasLimit = true; r.limit = n }

// SetNth enables the nth operator: keep only the n-th row (1-indexed).
func (r *Result) SetNth(n int) { r.hasNth = true; r.nth = n }

// SetNotNth enables the notNth operator: every row except the n-th.
func (r *Result) SetNotNth(n int) { r.hasNotNth = true; r.notNth = n }

// SetFirst enables the first(n) operator: the first n rows.
func (r *Result) SetFirst(n int) { r.hasFirst = true; r.firstN = n }

// SetNotFirst enables the notFirst(n) operator: every row after the first n.
func (r *Result) SetNotFirst(n int) { r.hasNotFirst = true; r.notFirstN = n }

// SetLast enables the last(n) operator: the final n rows.
func (r *Result) SetLast(n int) { r.hasLast = true; r.lastN = n }

// SetNotLast enables the notLast(n) operator: every row before the final n.
func (r *Result) SetNotLast(n int) { r.hasNotLast = true; r.notLastN = n }

// SetNthSlice enables the nthSlice(n, size) operator: size rows starting
// at position n.
func (r *Result) SetNthSlice(n, size int) {
	r.hasNthSlice = true
	r.nthSliceN = n
	r.sliceSize = size
}

// SetNotNthSlice enables the notNthSlice(n, size) operator: everything
// except the size rows starting at position n.
func (r *Result) SetNotNthSlice(n, size int) {
	r.hasNotNthSlice = true
	r.notNthSliceN = n
	r.notNthSliceSize = size
}

// SetNthLastSlice enables the nthLastSlice(n, size) operator: size rows
// starting right after the n-th row (0-based index n), or none if n
// exceeds the row count.
func (r *Result) SetNthLastSlice(n, size int) {
	r.hasNthLastSlice = true
	r.nthLastSliceN = n
	r.nthLastSliceSize = size
}

// SetNotNthLastSlice enables the notNthLastSlice(n, size) operator.
func (r *Result) SetNotNthLastSlice(n, size int) {
	r.hasNotNthLastSlice = true
	r.notNthLastSliceN = n
	r.notNthLastSliceSize = size
}

// processSelectionOperators applies every enabled selection operator and
// concatenates their outputs, except that limit alone short-circuits all
// others. Grounded in DefaultSQWRLResult.processSelectionOperators's exact
// 1-indexed clamping rules.
func (r *Result) processSelectionOperators(source []Row) ([]Row, error) {
	n := len(source)
	var out []Row
	hasSelection := false

	if r.hasLimit {
		limit := r.limit
		if limit < 0 {
			limit = 0
		}
		local := limit
		if local > n {
			local = n
		}
		out = append(out, source[:local]...)
		return out, nil
	}

	if r.hasNth {
		nth := clampToOne(r.nth)
		if nth <= n {
			out = append(out, source[nth-1])
		}
		hasSelection = true
	}

	if r.hasNotNth {
		nth := clampToOne(r.notNth)
		if nth <= n {
			local := append([]Row(nil), source...)
			local = append(local[:nth-1], local[nth:]...)
			out = append(out, local...)
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if r.hasFirst {
		firstN := clampToOne(r.firstN)
		if firstN > n {
			firstN = n
		}
		out = append(out, source[:firstN]...)
		hasSelection = true
	}

	if r.hasNotFirst {
		firstN := clampToOne(r.notFirstN)
		if firstN <= n {
			out = append(out, source[firstN:]...)
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if r.hasLast {
		lastN := clampToOne(r.lastN)
		if lastN <= n {
			out = append(out, source[n-lastN:]...)
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if r.hasNotLast {
		lastN := clampToOne(r.notLastN)
		if lastN <= n {
			out = append(out, source[:n-lastN]...)
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if r.hasNthSlice {
		firstN := clampToOne(r.nthSliceN)
		if firstN <= n {
			finish := firstN + r.sliceSize - 1
			if finish > n {
				finish = n
			}
			out = append(out, source[firstN-1:finish]...)
		}
		hasSelection = true
	}

	if r.hasNotNthSlice {
		firstN := clampToOne(r.notNthSliceN)
		if firstN <= n {
			finish := firstN + r.notNthSliceSize - 1
			if finish > n {
				finish = n
			}
			out = append(out, source[:firstN-1]...)
			if finish <= n {
				out = append(out, source[finish:]...)
			}
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if r.hasNthLastSlice {
		lastN := clampToOne(r.nthLastSliceN)
		finish := lastN + r.nthLastSliceSize
		if finish > n {
			finish = n
		}
		if lastN <= n {
			out = append(out, source[lastN:finish]...)
		}
		hasSelection = true
	}

	if r.hasNotNthLastSlice {
		lastN := clampToOne(r.notNthLastSliceN)
		if lastN <= n {
			finish := lastN + r.notNthLastSliceSize
			if finish > n {
				finish = n
			}
			out = append(out, source[:lastN]...)
			if finish <= n {
				out = append(out, source[finish:]...)
			}
		} else {
			out = append(out, source...)
		}
		hasSelection = true
	}

	if hasSelection {
		return out, nil
	}
	return source, nil
}

func clampToOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
