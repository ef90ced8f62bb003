//go:build linux

package main

import "golang.org/x/sys/unix"

// fadviseSequential tells the kernel the file will be read sequentially,
// enabling aggressive readahead. Advisory only; errors are ignored.
func fadviseSequential(fd int, length int64) {
	_ = unix.Fadvise(fd, 0, length, unix.FADV_SEQUENTIAL)
}
