package txtspan

// Builder accumulates offset pairs emitted by the cleaner's aligner and
// produces an immutable Map. Offsets must be supplied in non-decreasing
// order of both clean and original offset (the aligner walks both strings
// left to right), but Builder does not itself enforce monotonicity beyond
// what is needed to build run-length segments correctly.
type Builder struct {
	cleanLen int
	origLen  int

	cleanToOrig []int // built lazily once Build is called, dense case
	origToClean []int

	pairs []pair // (clean, original) offsets recorded via Put
}

type pair struct {
	clean, original int
}

// NewBuilder creates a Builder for a clean text of length cleanLen and an
// original text of length origLen.
func NewBuilder(cleanLen, origLen int) *Builder {
	return &Builder{cleanLen: cleanLen, origLen: origLen}
}

// Put records that clean offset c corresponds to original offset o.
func (b *Builder) Put(c, o int) {
	b.pairs = append(b.pairs, pair{clean: c, original: o})
}

// Build finalizes the Map, choosing a dense or run-length representation
// based on the text size.
func (b *Builder) Build() *Map {
	m := &Map{cleanLen: b.cleanLen, origLen: b.origLen}

	if b.cleanLen <= denseThreshold && b.origLen <= denseThreshold {
		m.dense = true
		m.cleanToOrig = fillDense(b.pairs, b.cleanLen, true)
		m.origToClean = fillDense(b.pairs, b.origLen, false)
		return m
	}

	m.cleanToOrigRuns = fillRuns(b.pairs, true)
	m.origToCleanRuns = fillRuns(b.pairs, false)
	return m
}

// fillDense materializes a dense offset array of length domainLen+1 from the
// recorded pairs, propagating the last known mapping forward through gaps
// (spec.md §4.1's "propagate the existing mapping" rule).
func fillDense(pairs []pair, domainLen int, clean bool) []int {
	table := make([]int, domainLen+1)
	last := 0
	next := 0
	have := false
	pi := 0
	for offset := 0; offset <= domainLen; offset++ {
		for pi < len(pairs) {
			var key, val int
			if clean {
				key, val = pairs[pi].clean, pairs[pi].original
			} else {
				key, val = pairs[pi].original, pairs[pi].clean
			}
			if key > offset {
				break
			}
			if key == offset {
				next = val
				have = true
			}
			pi++
		}
		if have {
			last = next
		}
		table[offset] = last
	}
	return table
}

// fillRuns compresses the recorded pairs into contiguous runs where both
// offsets advance at the same rate (a run of untouched, 1:1-mapped
// characters). This is the common case once a cleaner has finished
// rewriting the handful of spots it actually changed.
func fillRuns(pairs []pair, clean bool) []run {
	if len(pairs) == 0 {
		return nil
	}

	type kv struct{ src, dst int }
	kvs := make([]kv, len(pairs))
	for i, p := range pairs {
		if clean {
			kvs[i] = kv{src: p.clean, dst: p.original}
		} else {
			kvs[i] = kv{src: p.original, dst: p.clean}
		}
	}

	var runs []run
	i := 0
	for i < len(kvs) {
		start := kvs[i]
		end := start
		j := i + 1
		for j < len(kvs) && kvs[j].src-start.src == kvs[j].dst-start.dst && kvs[j].src > end.src {
			end = kvs[j]
			j++
		}
		runs = append(runs, run{srcStart: start.src, srcEnd: end.src + 1, dstStart: start.dst})
		i = j
	}
	return runs
}
