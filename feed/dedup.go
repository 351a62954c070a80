package feed

// seenSet suppresses re-emission of rows that share a derived
// identifier. Every generator allocates its own sets with the scope
// the table calls for (per traversal, per line, per route section);
// no dedup state is shared between generators or carried across
// runs.
type seenSet map[string]bool

func (s seenSet) seen(id string) bool {
	return s[id]
}

func (s seenSet) mark(id string) {
	s[id] = true
}
