// Package mapmatch provides leaf matchers over maps.
package mapmatch

import (
	"maps"
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.clearcheck/pkg/matcher"
)

// ContainKey matches maps holding key.
func ContainKey[K comparable, V any](key K) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		_, ok := value[key]
		return matcher.Formatted(
			ok,
			"Keys %v in the map should contain %v",
			"Keys %v in the map should not contain %v",
			sortedKeys(value), key,
		)
	})
}

// ContainAllKeys matches maps holding every key in keys.
func ContainAllKeys[K comparable, V any](keys []K) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		var missing []K
		for _, k := range keys {
			if _, ok := value[k]; !ok {
				missing = append(missing, k)
			}
		}
		return matcher.Formatted(
			len(missing) == 0,
			"Keys %v in the map should contain all %v but it was missing %v",
			"Keys %v in the map should not contain all %v, missing %v",
			sortedKeys(value), keys, missing,
		)
	})
}

// ContainAnyKeys matches maps holding at least one key in keys.
func ContainAnyKeys[K comparable, V any](keys []K) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		found := slices.ContainsFunc(keys, func(k K) bool {
			_, ok := value[k]
			return ok
		})
		return matcher.Formatted(
			found,
			"Keys %v in the map should contain any of the keys %v",
			"Keys %v in the map should not contain any of the keys %v",
			sortedKeys(value), keys,
		)
	})
}

// ContainValue matches maps holding a value deeply equal to want.
func ContainValue[K comparable, V any](want V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		return matcher.Formatted(
			hasValue(value, want),
			"Values %v in the map should contain %v",
			"Values %v in the map should not contain %v",
			value, want,
		)
	})
}

// ContainAllValues matches maps holding every value in wants.
func ContainAllValues[K comparable, V any](wants []V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		var missing []V
		for _, w := range wants {
			if !hasValue(value, w) {
				missing = append(missing, w)
			}
		}
		return matcher.Formatted(
			len(missing) == 0,
			"Values %v in the map should contain all %v but it was missing %v",
			"Values %v in the map should not contain all %v, missing %v",
			value, wants, missing,
		)
	})
}

// ContainAnyValues matches maps holding at least one value in
// wants.
func ContainAnyValues[K comparable, V any](wants []V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		found := slices.ContainsFunc(wants, func(w V) bool {
			return hasValue(value, w)
		})
		return matcher.Formatted(
			found,
			"Values %v in the map should contain any of the values %v",
			"Values %v in the map should not contain any of the values %v",
			value, wants,
		)
	})
}

// ContainKeyValue matches maps holding key mapped to a value
// deeply equal to want.
func ContainKeyValue[K comparable, V any](key K, want V) matcher.Matcher[map[K]V] {
	return matcher.Func[map[K]V](func(value map[K]V) matcher.Verdict {
		got, ok := value[key]
		return matcher.Formatted(
			ok && deepEqual(got, want),
			"Map %v should contain key %v and value %v",
			"Map %v should not contain key %v and value %v",
			value, key, want,
		)
	})
}

func hasValue[K comparable, V any](m map[K]V, want V) bool {
	for _, v := range m {
		if deepEqual(v, want) {
			return true
		}
	}
	return false
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// deepEqual compares values including unexported fields. Values cmp
// cannot handle are reported unequal.
func deepEqual[V any](a, b V) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return cmp.Equal(a, b, exportAll)
}

// sortedKeys orders map keys by their formatted representation so
// messages are deterministic.
func sortedKeys[K comparable, V any](m map[K]V) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, compareFormatted[K])
	return keys
}
