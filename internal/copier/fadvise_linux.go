//go:build linux

// Linux implementation using posix_fadvise(2).
// POSIX_FADV_SEQUENTIAL lets the kernel read ahead more aggressively for the
// front-to-back scan the transfer loop performs.

package copier

import (
	"os"

	"golang.org/x/sys/unix"
)

func adviseSequential(f *os.File) {
	// The hint is advisory; a failure changes nothing about the copy.
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
