// Package scripts manages the directory of saved scripts.
package scripts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// ModeExecutable is applied to every script so the OS can run it directly.
	ModeExecutable fs.FileMode = 0755

	permissionMask fs.FileMode = 0777
)

// Script is a single saved script.
type Script struct {
	// Name of the script, also its file name.
	Name string
	// Path is the script's absolute path.
	Path string
	// Mode of the script file.
	Mode fs.FileMode
}

// Executable reports whether the owner can execute the script.
func (s Script) Executable() bool {
	return s.Mode&0100 != 0
}

// Store reads and writes scripts in a single directory. Every call goes to
// the filesystem, nothing is cached.
type Store struct {
	fs   afero.Fs
	root string

	// Reserved names can't be created because they'd shadow subcommands.
	Reserved []string
	// DescriptionLines limits how far into a script Description looks.
	DescriptionLines int
}

// NewStore creates a store for scripts under root.
func NewStore(fsys afero.Fs, root string) *Store {
	return &Store{
		fs:               fsys,
		root:             root,
		DescriptionLines: 5,
	}
}

// Path gets the absolute path a script with the given name would have.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Lookup finds an existing script. Any entry in the scripts directory other
// than a real directory is a script, whether or not Create would accept its
// name. Symlinks report their target's mode, or their own when dangling.
func (s *Store) Lookup(name string) (Script, error) {
	if err := validateLookupName(name); err != nil {
		return Script{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	path := s.Path(name)
	stat, err := s.lstat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Script{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	case err != nil:
		return Script{}, err
	case stat.IsDir():
		return Script{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	mode := stat.Mode()
	if mode&fs.ModeSymlink != 0 {
		if target, err := s.fs.Stat(path); err == nil {
			mode = target.Mode()
		}
	}

	return Script{
		Name: name,
		Path: path,
		Mode: mode,
	}, nil
}

func (s *Store) lstat(path string) (fs.FileInfo, error) {
	if lstater, ok := s.fs.(afero.Lstater); ok {
		stat, _, err := lstater.LstatIfPossible(path)
		return stat, err
	}
	return s.fs.Stat(path)
}

// Create writes a new executable script holding contents. If the script
// already exists it's left untouched and created is false.
func (s *Store) Create(name, contents string) (script Script, created bool, err error) {
	if err := ValidateName(name, s.Reserved...); err != nil {
		return Script{}, false, err
	}

	if existing, err := s.Lookup(name); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Script{}, false, err
	}

	path := s.Path(name)
	fd, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, ModeExecutable)
	if err != nil {
		return Script{}, false, err
	}
	if _, err := fd.WriteString(contents); err != nil {
		fd.Close()
		return Script{}, false, err
	}
	if err := fd.Close(); err != nil {
		return Script{}, false, err
	}

	// The umask may have stripped bits from the open call.
	if err := s.MakeExecutable(name); err != nil {
		return Script{}, false, err
	}

	script, err = s.Lookup(name)
	return script, err == nil, err
}

// MakeExecutable sets the script's permission bits to ModeExecutable, other
// mode bits are kept.
func (s *Store) MakeExecutable(name string) error {
	script, err := s.Lookup(name)
	if err != nil {
		return err
	}

	mode := (script.Mode &^ permissionMask) | ModeExecutable
	return s.fs.Chmod(script.Path, mode)
}

// List returns all scripts sorted by name. Directories are skipped.
func (s *Store) List() ([]Script, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, err
	}

	var out []Script
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		out = append(out, Script{
			Name: entry.Name(),
			Path: s.Path(entry.Name()),
			Mode: entry.Mode(),
		})
	}
	return out, nil
}

// Names returns the names of all scripts sorted.
func (s *Store) Names() ([]string, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, script := range all {
		names = append(names, script.Name)
	}
	return names, nil
}

// Remove deletes a script.
func (s *Store) Remove(name string) error {
	script, err := s.Lookup(name)
	if err != nil {
		return err
	}

	return s.fs.Remove(script.Path)
}

// Description reads the description comment of the script. Anything that
// isn't a regular file (FIFOs, dangling links, links to directories) has none.
func (s *Store) Description(name string) (string, error) {
	script, err := s.Lookup(name)
	if err != nil {
		return "", err
	}
	if !script.Mode.IsRegular() {
		return NoDescription, nil
	}

	fd, err := s.fs.Open(script.Path)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	return ParseDescription(fd, s.DescriptionLines), nil
}
