package vars

// FirstNonZero picks the first configured value, flags before config files before defaults.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
