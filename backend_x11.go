//go:build linux || freebsd || openbsd || netbsd || dragonfly

package globalhotkey

// newBackend starts the X11 backend. Failure to open the display is
// fatal and surfaces as-is; no retry is attempted.
func newBackend(cfg config) (backend, error) {
	disp, err := openXDisplay()
	if err != nil {
		return nil, err
	}
	return newX11Backend(disp, cfg), nil
}
