//go:build !windows

package sshserve

import (
	"os"

	"golang.org/x/sys/unix"
)

func setWinsize(f *os.File, w, h int) {
	unix.IoctlSetWinsize(int(f.Fd()), unix.TIOCSWINSZ, &unix.Winsize{Row: uint16(h), Col: uint16(w)})
}
