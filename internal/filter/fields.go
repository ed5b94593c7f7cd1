package filter

// Required is a text field present on every record.
func Required[T any](get func(rec *T) string) TextField[T] {
	return func(rec *T) (string, bool) {
		return get(rec), true
	}
}

// Optional is a text field that is skipped when empty.
func Optional[T any](get func(rec *T) string) TextField[T] {
	return func(rec *T) (string, bool) {
		v := get(rec)
		return v, v != ""
	}
}

// Equals matches when the field value equals the expected value exactly.
func Equals[T any, V ~string](get func(rec *T) V) Matcher[T] {
	return func(rec *T, expected string) bool {
		return string(get(rec)) == expected
	}
}

// Contains matches when the expected value is a member of the field's set.
func Contains[T any, V ~string](get func(rec *T) []V) Matcher[T] {
	return func(rec *T, expected string) bool {
		for _, v := range get(rec) {
			if string(v) == expected {
				return true
			}
		}
		return false
	}
}

// OneOf maps each accepted selection value to a predicate. Values that are
// not in the map match nothing.
func OneOf[T any](cases map[string]func(rec *T) bool) Matcher[T] {
	return func(rec *T, expected string) bool {
		pred, ok := cases[expected]
		return ok && pred(rec)
	}
}
