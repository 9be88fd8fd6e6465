package model

// Entry is one key/value pair of a Table.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is a small ordered lookup. Iteration follows declaration order,
// which is also the order pickers render their options in.
type Table[V any] []Entry[V]

// Keys returns the keys in declaration order.
func (t Table[V]) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, e := range t {
		keys = append(keys, e.Key)
	}
	return keys
}

// Get returns the value stored under key.
func (t Table[V]) Get(key string) (V, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// KeyOf returns the first key whose value equals v.
func KeyOf[V comparable](t Table[V], v V) (string, bool) {
	for _, e := range t {
		if e.Value == v {
			return e.Key, true
		}
	}
	return "", false
}

// ScoreMap is the default estimate scale (t-shirt sizes to points).
var ScoreMap = Table[int]{
	{"~", 0},
	{"S", 1},
	{"M", 3},
	{"L", 5},
	{"XL", 8},
}

// StatusMap maps picker keys to the canonical item status they stand for.
var StatusMap = Table[string]{
	{"someday", "someday"},
	{"backlog", "backlog"},
	{"current", "in-progress"},
	{"complete", "completed"},
	{"accepted", "accepted"},
}
