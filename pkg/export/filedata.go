package export

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TempFilePrefix is the prefix used for temporary atomic write files.
const TempFilePrefix = "dataio-tmp-"

// ShareResults and ShareObservations are the export roots under the
// context's base directory.
const (
	ShareResults      = "share/results"
	ShareObservations = "share/observations"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9_\-.]`)

// slugify normalizes a name for use in a file stem: lowercased, spaces and
// path separators replaced by underscores, other special characters
// dropped.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(s)
	return slugPattern.ReplaceAllString(s, "")
}

// relativePath builds the share-relative export path for a data object:
// share/{results|observations}/<folder>[/<subfolder>]/<name>[--<tag>]<ext>.
func relativePath(folder, subfolder, name, tag, ext string, observation bool) (string, error) {
	stem := slugify(name)
	if stem == "" {
		return "", fmt.Errorf("object name %q reduces to an empty file stem", name)
	}
	if tag != "" {
		stem += "--" + slugify(tag)
	}

	share := ShareResults
	if observation {
		share = ShareObservations
	}
	parts := []string{share, folder}
	if subfolder != "" {
		parts = append(parts, slugify(subfolder))
	}
	parts = append(parts, stem+ext)
	return filepath.Join(parts...), nil
}

// resolveCollision returns a path that does not collide with an existing
// file. When the target exists, already-taken revision suffixes are globbed
// and the next free <stem>_r<N><ext> is chosen.
func resolveCollision(absPath string) (string, error) {
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return absPath, nil
	}

	ext := filepath.Ext(absPath)
	stem := strings.TrimSuffix(absPath, ext)

	taken, err := doublestar.FilepathGlob(stem + "_r*" + ext)
	if err != nil {
		return "", fmt.Errorf("probe for revisions of %s: %w", absPath, err)
	}

	next := 1
	revPattern := regexp.MustCompile(`_r(\d+)$`)
	for _, p := range taken {
		m := revPattern.FindStringSubmatch(strings.TrimSuffix(p, ext))
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
			next = n + 1
		}
	}

	return stem + "_r" + strconv.Itoa(next) + ext, nil
}

// metadataPath returns the sibling metadata file for a data file: a dot
// prefixed, .yml suffixed twin in the same directory.
func metadataPath(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), "."+filepath.Base(dataPath)+".yml")
}

// checksumMD5 returns the lowercase hex MD5 digest of data.
func checksumMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// writeFileAtomic writes data to a file atomically by writing to a temp
// file in the same directory and renaming it to the target filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up if we fail before rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
