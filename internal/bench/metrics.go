package bench

// Metrics holds word error counts for one or more utterances.
type Metrics struct {
	Substitutions  int
	Deletions      int
	Insertions     int
	Hits           int
	ReferenceWords int
	WER            float64
}

// Evaluate aligns hypothesis against reference with a word-level edit
// distance and counts the errors. Ties in the alignment prefer a
// substitution over a deletion/insertion pair.
func Evaluate(reference, hypothesis []string) Metrics {
	n, m := len(reference), len(hypothesis)

	// dist[i][j] is the edit distance between reference[:i] and hypothesis[:j]
	dist := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int, m+1)
		dist[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dist[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if reference[i-1] == hypothesis[j-1] {
				cost = 0
			}
			dist[i][j] = min(
				dist[i-1][j-1]+cost,
				dist[i-1][j]+1,
				dist[i][j-1]+1,
			)
		}
	}

	var out Metrics
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && reference[i-1] == hypothesis[j-1] && dist[i][j] == dist[i-1][j-1]:
			out.Hits++
			i, j = i-1, j-1
		case i > 0 && j > 0 && dist[i][j] == dist[i-1][j-1]+1:
			out.Substitutions++
			i, j = i-1, j-1
		case i > 0 && dist[i][j] == dist[i-1][j]+1:
			out.Deletions++
			i--
		default:
			out.Insertions++
			j--
		}
	}

	out.ReferenceWords = n
	out.finish()
	return out
}

// Merge sums the counts of ms and recomputes the error rate.
func Merge(ms ...Metrics) Metrics {
	var out Metrics
	for _, m := range ms {
		out.Substitutions += m.Substitutions
		out.Deletions += m.Deletions
		out.Insertions += m.Insertions
		out.Hits += m.Hits
		out.ReferenceWords += m.ReferenceWords
	}
	out.finish()
	return out
}

// Errors returns the total number of word errors.
func (m Metrics) Errors() int {
	return m.Substitutions + m.Deletions + m.Insertions
}

func (m *Metrics) finish() {
	switch {
	case m.ReferenceWords > 0:
		m.WER = float64(m.Errors()) / float64(m.ReferenceWords)
	case m.Insertions > 0:
		// every hypothesis word is an error against an empty reference
		m.WER = 1
	default:
		m.WER = 0
	}
}
