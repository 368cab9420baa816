//go:build linux

package core

import "golang.org/x/sys/unix"

// ThreadID returns the kernel thread id of the calling thread. Records
// carry it so the daemon can attribute interleaved output from concurrent
// callers. gettid(2) never fails.
func ThreadID() uint32 {
	return uint32(unix.Gettid())
}
