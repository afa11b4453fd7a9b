package database

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/snesinfo/snes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) (*Database, func()) {
	dir, err := ioutil.TempDir("", "database")
	require.NoError(t, err)

	db, err := NewDatabase(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

func newHeader(t *testing.T, name string, fields [snes.FieldBlockLength]byte) snes.Header {
	h, err := snes.NewHeader([]byte(name+strings.Repeat(" ", snes.TitleLength-len(name))), snes.LoROMTitleOffset, fields)
	require.NoError(t, err)
	return h
}

func TestNewDatabase(t *testing.T) {
	_, err := NewDatabase("")
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	sha, err := Checksum(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709", sha)
}

func TestChecksumFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "database")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "abc.sfc")
	require.NoError(t, ioutil.WriteFile(path, []byte("abc"), 0644))

	sha, err := ChecksumFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A9993E364706816ABA3E25717850C26C9CD0D89D", sha)

	_, err = ChecksumFile(filepath.Join(dir, "missing.sfc"))
	assert.True(t, os.IsNotExist(err))
}

func TestAddHeader(t *testing.T) {
	db, cleanup := newTestDatabase(t)
	defer cleanup()

	h := newHeader(t, "SUPER MARIOWORLD", [snes.FieldBlockLength]byte{32, 2, 8, 3, 1, 1})
	require.NoError(t, db.AddHeader("ABCD", h))

	got, ok, err := db.FindHeaderBySHA1("ABCD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, h, got)

	_, ok, err = db.FindHeaderBySHA1("FFFF")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddHeaderUnknown(t *testing.T) {
	db, cleanup := newTestDatabase(t)
	defer cleanup()

	h := newHeader(t, "MYSTERY", [snes.FieldBlockLength]byte{99, 200, 0, 0, 250, 0})
	require.NoError(t, db.AddHeader("ABCD", h))

	got, ok, err := db.FindHeaderBySHA1("ABCD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, snes.UnknownMapping, got.Mapping)
	assert.Equal(t, snes.UnknownRegion, got.Region)
	assert.Equal(t, [snes.FieldBlockLength]byte{99, 200, 0, 0, 250, 0}, got.FieldBlock())
}

func TestAddHeaderReplace(t *testing.T) {
	db, cleanup := newTestDatabase(t)
	defer cleanup()

	require.NoError(t, db.AddHeader("ABCD", newHeader(t, "FIRST", [snes.FieldBlockLength]byte{32, 0, 8, 0, 0, 1})))
	require.NoError(t, db.AddHeader("ABCD", newHeader(t, "SECOND", [snes.FieldBlockLength]byte{33, 0, 8, 0, 0, 1})))
	require.NoError(t, db.AddHeader("EF01", newHeader(t, "THIRD", [snes.FieldBlockLength]byte{33, 0, 8, 0, 2, 10})))

	n, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, ok, err := db.FindHeaderBySHA1("ABCD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "SECOND", got.Name())
	assert.Equal(t, snes.HiROM, got.Mapping)
}
