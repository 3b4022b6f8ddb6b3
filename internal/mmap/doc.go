// Package mmap maps input files read-only into memory.
//
// On unix platforms the file is mapped with mmap(2) via golang.org/x/sys/unix.
// Elsewhere, and for non-regular files such as pipes and devices, the contents
// are read into a heap buffer so callers see the same API.
package mmap
