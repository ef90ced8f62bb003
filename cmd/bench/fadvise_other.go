//go:build !linux

package main

// fadviseSequential is a no-op on platforms without posix_fadvise.
func fadviseSequential(fd int, length int64) {}
