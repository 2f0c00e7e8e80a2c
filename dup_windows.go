//go:build windows

package ospipe

import "golang.org/x/sys/windows"

// dupCloexec duplicates a handle within the current process. The
// duplicate is not inheritable, the windows equivalent of close-on-exec.
func dupCloexec(fd uintptr) (int, error) {
	proc := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(proc, windows.Handle(fd), proc, &dup,
		0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return 0, err
	}
	return int(dup), nil
}
