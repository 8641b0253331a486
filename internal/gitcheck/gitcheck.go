// Package gitcheck inspects the working tree before a translation run so a
// generated file never lands on top of uncommitted changes.
package gitcheck

import (
	"fmt"
	"os/exec"
	"strings"
)

// Status reports whether the working tree containing dir is clean.
//
// The error is non-nil when the status cannot be determined at all (git not
// installed, dir outside a repository); callers are expected to degrade that
// to a warning rather than abort.
func Status(dir string) (clean bool, err error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("failed to determine git status: %w", err)
	}
	return strings.TrimSpace(string(out)) == "", nil
}
