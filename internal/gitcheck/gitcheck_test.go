package gitcheck_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/almamala/pagetran/internal/gitcheck"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "test"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v: %s", args, err, out)
		}
	}
	return dir
}

func TestStatus_CleanRepo(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	clean, err := gitcheck.Status(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !clean {
		t.Error("expected fresh repository to be clean")
	}
}

func TestStatus_DirtyRepo(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "untracked.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	clean, err := gitcheck.Status(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clean {
		t.Error("expected repository with untracked file to be dirty")
	}
}

func TestStatus_NotARepo(t *testing.T) {
	requireGit(t)

	_, err := gitcheck.Status(t.TempDir())
	if err == nil {
		t.Skip("temp dir unexpectedly inside a git repository")
	}
}
