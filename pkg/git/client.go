// Package git wraps the git command line for model revision detection.
// FMU model directories are git checkouts by convention; when the global
// configuration does not pin a model revision, the checkout provides one.
package git

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Client wraps git command execution in a fixed working directory.
type Client struct {
	WorkDir string
	Logger  *slog.Logger
}

// NewClient creates a new git client for the given working directory.
func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{WorkDir: workDir, Logger: logger}
}

// Run executes a raw git command in the working directory.
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// Describe returns a human-oriented revision for the checkout: the nearest
// tag when one exists, else the abbreviated commit hash.
func (c *Client) Describe() (string, error) {
	return c.Run("describe", "--tags", "--always")
}

// Branch returns the current branch name, empty for a detached head.
func (c *Client) Branch() (string, error) {
	out, err := c.Run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if out == "HEAD" {
		return "", nil
	}
	return out, nil
}

// Dirty reports whether the working tree has uncommitted changes.
func (c *Client) Dirty() (bool, error) {
	out, err := c.Run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}
