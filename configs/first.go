package configs

import "errors"

// First returns the zero value when no file defines path, other errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.Decode(path, &value); err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return value
}
