package resolve

// chainToTerminal implements spec.md §4.7's opt-in nested resolution:
// when a resolved antecedent is itself a short-form citation that resolved
// to something else, follow the chain to the terminal full citation,
// guarding against cycles with a visited set.
func chainToTerminal(out []Resolved, opts Options) {
	if !opts.AllowNestedResolution {
		return
	}

	for i := range out {
		if !out[i].Attempted || out[i].AntecedentIdx < 0 {
			continue
		}

		visited := map[int]bool{i: true}
		cur := out[i].AntecedentIdx
		confidence := out[i].Confidence

		for {
			if visited[cur] {
				out[i] = withWarning(out[i], "nested resolution cycle detected, stopped chain")
				break
			}
			visited[cur] = true

			next := out[cur]
			if !next.Attempted || next.AntecedentIdx < 0 {
				break
			}
			if next.Confidence < confidence {
				confidence = next.Confidence
			}
			cur = next.AntecedentIdx
		}

		out[i].AntecedentIdx = cur
		out[i].Confidence = confidence
	}
}
