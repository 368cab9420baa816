//go:build !linux

package core

// ThreadID returns 0 on platforms without a stable kernel thread id.
// Records still carry the process id for attribution.
func ThreadID() uint32 {
	return 0
}
