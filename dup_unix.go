//go:build unix

package ospipe

import "golang.org/x/sys/unix"

// dupCloexec duplicates fd with close-on-exec already set, so the
// duplicate never leaks into spawned children.
func dupCloexec(fd uintptr) (int, error) {
	return unix.FcntlInt(fd, unix.F_DUPFD_CLOEXEC, 0)
}
