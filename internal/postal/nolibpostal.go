//go:build !libpostal

package postal

// Available reports whether libpostal parsing is compiled in.
func Available() bool {
	return false
}

// Parse always fails without the libpostal build tag.
func Parse(address string) ([]Component, error) {
	return nil, ErrUnavailable
}
