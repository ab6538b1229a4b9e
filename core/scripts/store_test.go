package scripts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "/home/user/.fastbash/scripts"

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.Nil(t, fsys.MkdirAll(testRoot, 0755))
	return NewStore(fsys, testRoot), fsys
}

func TestStoreCreate(t *testing.T) {
	store, fsys := newTestStore(t)

	script, created, err := store.Create("greet", "#!/bin/sh\necho \"hi $1\"\n")
	require.Nil(t, err)
	assert.True(t, created)
	assert.Equal(t, "greet", script.Name)
	assert.Equal(t, testRoot+"/greet", script.Path)
	assert.True(t, script.Executable())
	assert.Equal(t, ModeExecutable, script.Mode.Perm())

	contents, err := afero.ReadFile(fsys, script.Path)
	require.Nil(t, err)
	assert.Equal(t, "#!/bin/sh\necho \"hi $1\"\n", string(contents))

	t.Run("existing script untouched", func(t *testing.T) {
		again, created, err := store.Create("greet", "#!/bin/bash\n")
		require.Nil(t, err)
		assert.False(t, created)
		assert.Equal(t, script.Path, again.Path)

		contents, err := afero.ReadFile(fsys, script.Path)
		require.Nil(t, err)
		assert.Equal(t, "#!/bin/sh\necho \"hi $1\"\n", string(contents))
	})
}

func TestStoreCreateInvalid(t *testing.T) {
	store, _ := newTestStore(t)
	store.Reserved = []string{"ls", "rm"}

	cases := map[string]error{
		"":          ErrInvalidName,
		"a/b":       ErrInvalidName,
		"../escape": ErrInvalidName,
		"..":        ErrInvalidName,
		"-x":        ErrInvalidName,
		"two words": ErrInvalidName,
		"ls":        ErrReserved,
	}

	for name, wantErr := range cases {
		t.Run(name, func(t *testing.T) {
			_, created, err := store.Create(name, "#!/bin/sh\n")
			assert.False(t, created)
			assert.True(t, errors.Is(err, wantErr), "got %v", err)
		})
	}

	names, err := store.Names()
	require.Nil(t, err)
	assert.Empty(t, names)
}

func TestStoreLookup(t *testing.T) {
	store, fsys := newTestStore(t)
	require.Nil(t, fsys.MkdirAll(testRoot+"/subdir", 0755))
	require.Nil(t, afero.WriteFile(fsys, testRoot+"/plain", []byte("#!/bin/sh\n"), 0644))

	t.Run("missing", func(t *testing.T) {
		_, err := store.Lookup("missing")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, `no such script: "missing"`, err.Error())
	})

	t.Run("directory", func(t *testing.T) {
		_, err := store.Lookup("subdir")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("invalid name", func(t *testing.T) {
		for _, name := range []string{"../config.yaml", "..", ".", "", "a\x00b"} {
			_, err := store.Lookup(name)
			assert.True(t, errors.Is(err, ErrNotFound), "%q", name)
		}
	})

	t.Run("names create refuses", func(t *testing.T) {
		for _, name := range []string{"my script", "-dashed", "tab\tname"} {
			require.Nil(t, afero.WriteFile(fsys, testRoot+"/"+name, []byte("#!/bin/sh\n"), 0755))

			script, err := store.Lookup(name)
			require.Nil(t, err, "%q", name)
			assert.Equal(t, name, script.Name)
			assert.True(t, script.Executable())
		}
	})

	t.Run("found", func(t *testing.T) {
		script, err := store.Lookup("plain")
		require.Nil(t, err)
		assert.False(t, script.Executable())
	})
}

func TestStoreMakeExecutable(t *testing.T) {
	store, fsys := newTestStore(t)
	require.Nil(t, afero.WriteFile(fsys, testRoot+"/plain", []byte("#!/bin/sh\n"), 0600))

	require.Nil(t, store.MakeExecutable("plain"))

	stat, err := fsys.Stat(testRoot + "/plain")
	require.Nil(t, err)
	assert.Equal(t, fs.FileMode(0755), stat.Mode().Perm())

	assert.True(t, errors.Is(store.MakeExecutable("missing"), ErrNotFound))
}

func TestStoreListAndRemove(t *testing.T) {
	store, fsys := newTestStore(t)

	names, err := store.Names()
	require.Nil(t, err)
	assert.Empty(t, names, "empty directory lists nothing")

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, _, err := store.Create(name, "#!/bin/sh\n")
		require.Nil(t, err)
	}
	require.Nil(t, fsys.MkdirAll(testRoot+"/not-a-script", 0755))

	names, err = store.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	require.Nil(t, store.Remove("mid"))

	names, err = store.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	err = store.Remove("mid")
	assert.True(t, errors.Is(err, ErrNotFound), "second remove reports not found: %v", err)
}

func TestStoreListMissingRoot(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "/does/not/exist")

	_, err := store.List()
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStoreDescription(t *testing.T) {
	store, _ := newTestStore(t)

	_, _, err := store.Create("deploy", "#!/bin/bash\n# Description: Ship it\nmake deploy\n")
	require.Nil(t, err)
	_, _, err = store.Create("bare", "#!/bin/bash\necho\n")
	require.Nil(t, err)

	desc, err := store.Description("deploy")
	require.Nil(t, err)
	assert.Equal(t, "Ship it", desc)

	desc, err = store.Description("bare")
	require.Nil(t, err)
	assert.Equal(t, NoDescription, desc)

	_, err = store.Description("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStoreNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	store := NewStore(afero.NewOsFs(), root)

	require.Nil(t, os.WriteFile(filepath.Join(root, "real"), []byte("# description: Real one\n"), 0755))
	require.Nil(t, os.Mkdir(filepath.Join(root, "lib"), 0755))
	require.Nil(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")))
	require.Nil(t, os.Symlink(filepath.Join(root, "lib"), filepath.Join(root, "dir-link")))
	require.Nil(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))
	require.Nil(t, syscall.Mkfifo(filepath.Join(root, "pipe"), 0644))

	names, err := store.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{"alias", "dangling", "dir-link", "pipe", "real"}, names)

	for name, want := range map[string]string{
		"real":     "Real one",
		"alias":    "Real one",
		"dir-link": NoDescription,
		"dangling": NoDescription,
		// Opening a FIFO for reading blocks until a writer shows up.
		"pipe": NoDescription,
	} {
		t.Run(name, func(t *testing.T) {
			desc, err := store.Description(name)
			require.Nil(t, err)
			assert.Equal(t, want, desc)
		})
	}

	t.Run("remove dangling link", func(t *testing.T) {
		require.Nil(t, store.Remove("dangling"))
		_, err := os.Lstat(filepath.Join(root, "dangling"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("remove link keeps target", func(t *testing.T) {
		require.Nil(t, store.Remove("alias"))
		_, err := os.Stat(filepath.Join(root, "real"))
		assert.Nil(t, err)
	})

	t.Run("remove fifo", func(t *testing.T) {
		require.Nil(t, store.Remove("pipe"))
		_, err := store.Lookup("pipe")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
