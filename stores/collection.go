package stores

import "slices"

// The helpers below never write into the slice they are given; each returns
// either the input untouched or a freshly allocated slice.

func appendItem[T any](items []T, item T) []T {
	return append(slices.Clip(items), item)
}

// mergeByID applies fn to every entry whose id matches.
func mergeByID[T any](items []T, id string, idOf func(T) string, fn func(T) T) ([]T, bool) {
	var next []T
	for i, item := range items {
		if idOf(item) != id {
			continue
		}
		if next == nil {
			next = slices.Clone(items)
		}
		next[i] = fn(item)
	}
	if next == nil {
		return items, false
	}
	return next, true
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			next = append(next, item)
		}
	}
	if len(next) == len(items) {
		return items, false
	}
	return next, true
}

func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

type cloner[T any] interface {
	Clone() T
}

// cloneAll deep-copies items so callers can edit the result freely.
func cloneAll[T cloner[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func findClone[T cloner[T]](items []T, id string, idOf func(T) string) (T, bool) {
	item, ok := findByID(items, id, idOf)
	if !ok {
		return item, false
	}
	return item.Clone(), true
}
