package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupRepo creates a git repository with one commit and returns its path.
func setupRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	c := NewClient(dir, nil)

	if _, err := c.Run("init"); err != nil {
		t.Fatalf("git init failed: %v", err)
	}
	// Local identity so commit works in clean environments.
	if _, err := c.Run("config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}
	if _, err := c.Run("config", "user.name", "Test"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := c.Run("add", "."); err != nil {
		t.Fatalf("git add failed: %v", err)
	}
	if _, err := c.Run("commit", "-m", "initial"); err != nil {
		t.Fatalf("git commit failed: %v", err)
	}

	return dir
}

func TestDescribe(t *testing.T) {
	dir := setupRepo(t)
	c := NewClient(dir, nil)

	t.Run("Falls Back To Hash", func(t *testing.T) {
		rev, err := c.Describe()
		if err != nil {
			t.Fatalf("Describe failed: %v", err)
		}
		if len(rev) < 7 {
			t.Errorf("Expected an abbreviated hash, got %q", rev)
		}
	})

	t.Run("Prefers Tags", func(t *testing.T) {
		if _, err := c.Run("tag", "21.0.0"); err != nil {
			t.Fatalf("git tag failed: %v", err)
		}
		rev, err := c.Describe()
		if err != nil {
			t.Fatalf("Describe failed: %v", err)
		}
		if rev != "21.0.0" {
			t.Errorf("Expected tag, got %q", rev)
		}
	})
}

func TestBranch(t *testing.T) {
	dir := setupRepo(t)
	c := NewClient(dir, nil)

	branch, err := c.Branch()
	if err != nil {
		t.Fatalf("Branch failed: %v", err)
	}
	if branch == "" {
		t.Error("Expected a branch name on a fresh checkout")
	}

	if _, err := c.Run("checkout", "--detach"); err != nil {
		t.Fatalf("git checkout failed: %v", err)
	}
	branch, err = c.Branch()
	if err != nil {
		t.Fatalf("Branch failed: %v", err)
	}
	if branch != "" {
		t.Errorf("Detached head should report no branch, got %q", branch)
	}
}

func TestDirty(t *testing.T) {
	dir := setupRepo(t)
	c := NewClient(dir, nil)

	dirty, err := c.Dirty()
	if err != nil {
		t.Fatalf("Dirty failed: %v", err)
	}
	if dirty {
		t.Error("Fresh commit should be clean")
	}

	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("changed"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	dirty, err = c.Dirty()
	if err != nil {
		t.Fatalf("Dirty failed: %v", err)
	}
	if !dirty {
		t.Error("Modified tree should be dirty")
	}
}

func TestRunFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	c := NewClient(t.TempDir(), nil)
	if _, err := c.Run("rev-parse", "HEAD"); err == nil {
		t.Error("Expected failure outside a repository")
	}
}
