package graphfsm

// Equal matches a transition when its guard equals the input.
func Equal[T comparable]() MatchFunc[T, T, struct{}] {
	return func(input T, guard T) (struct{}, bool) {
		return struct{}{}, input == guard
	}
}

// Predicate adapts a boolean guard check into a MatchFunc that reports no
// action.
func Predicate[I, EW any](fn func(input I, guard EW) bool) MatchFunc[I, EW, struct{}] {
	return func(input I, guard EW) (struct{}, bool) {
		return struct{}{}, fn(input, guard)
	}
}
