//go:build !darwin && !linux
// +build !darwin,!linux

package internal

import "syscall"

func controlListener(network, address string, c syscall.RawConn) error {
	return nil
}
