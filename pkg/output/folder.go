// Package output writes generated pages into an existing folder. The folder is
// never created: a missing folder is reported before anything is written.
package output

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFolderMissing is returned when the output folder does not exist.
	ErrFolderMissing = errors.New("output: folder does not exist")
	// ErrNotFolder is returned when the output path names a regular file.
	ErrNotFolder = errors.New("output: path is not a folder")
	// ErrPathInvalid is returned for file names that would land outside the
	// folder.
	ErrPathInvalid = errors.New("output: invalid file name")
)

const defaultFileMode os.FileMode = 0o644

// Folder is an existing directory that receives generated files. Existing
// files are overwritten.
type Folder struct {
	root string
	perm os.FileMode
}

// Open validates that dir exists and is a directory.
func Open(dir string) (*Folder, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("output: folder path is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderMissing, dir)
		}
		return nil, fmt.Errorf("output: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFolder, dir)
	}
	return &Folder{root: dir, perm: defaultFileMode}, nil
}

// Root returns the folder path as supplied to Open.
func (f *Folder) Root() string {
	return f.root
}

// WriteFile creates or truncates name inside the folder and writes data. The
// handle is closed on every path; a failed close is reported.
func (f *Folder) WriteFile(ctx context.Context, name string, data []byte) (path string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dest, err := f.resolve(name)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.perm)
	if err != nil {
		return "", fmt.Errorf("output: create %s: %w", dest, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			path, err = "", fmt.Errorf("output: close %s: %w", dest, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if _, err := bw.Write(data); err != nil {
		return "", fmt.Errorf("output: write %s: %w", dest, err)
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("output: flush %s: %w", dest, err)
	}
	return dest, nil
}

func (f *Folder) resolve(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q", ErrPathInvalid, name)
	}
	rel := filepath.Clean(name)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathInvalid, name)
	}
	return filepath.Join(f.root, rel), nil
}
