package propgen

// ChooseOne returns a uniformly random element of a non-empty slice.
// The result is deterministic for a given source state, so runs under a
// fixed seed are reproducible.
func ChooseOne[T any](items []T, source *Source) T {
	return items[source.Intn(len(items))]
}
