//go:build windows

package globalhotkey

func newBackend(cfg config) (backend, error) {
	return newWinBackend(cfg), nil
}
