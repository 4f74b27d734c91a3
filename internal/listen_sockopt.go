//go:build darwin || linux
// +build darwin linux

package internal

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func controlListener(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	}); err != nil {
		return err
	}
	return serr
}
