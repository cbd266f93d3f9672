package builtins

import "golang.org/x/sys/unix"

// setTimesToNow passes NULL times to utime, which only needs write access.
func setTimesToNow(path string) error {
	return unix.Utime(path, nil)
}
