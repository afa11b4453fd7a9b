/*
Package database uses SQLite to keep a catalogue of decoded cartridge headers
keyed by the SHA-1 of the image so a collection only needs to be scanned once.
*/
package database

import (
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bodgit/snesinfo/licensee"
	"github.com/bodgit/snesinfo/snes"

	// Database driver
	_ "github.com/mattn/go-sqlite3"
)

var errCorrupt = errors.New("database: corrupt field block")

// Database holds the SQLite database handle
type Database struct {
	db *sql.DB
}

// NewDatabase opens an existing database or returns a new empty one
func NewDatabase(file string) (*Database, error) {
	if file == "" {
		return nil, errors.New("no file")
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS licensee (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS header (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, title BLOB NOT NULL, title_offset INTEGER NOT NULL, fields BLOB NOT NULL, mapping TEXT NOT NULL, cartridge TEXT NOT NULL, region TEXT NOT NULL, licensee_id INTEGER NOT NULL, FOREIGN KEY(licensee_id) REFERENCES licensee(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{
		db: db,
	}, nil
}

// Close closes the database rendering it unusable
func (db *Database) Close() error {
	return db.db.Close()
}

// Checksum returns the SHA-1 of everything read from r as used for the
// catalogue key
func Checksum(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// ChecksumFile is Checksum for the file at path
func ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return Checksum(f)
}

func (db *Database) addLicensee(l licensee.Licensee) (int64, error) {
	if _, err := db.db.Exec("INSERT OR IGNORE INTO licensee (id, name) VALUES (?, ?)", int64(l), l.String()); err != nil {
		return 0, err
	}
	return int64(l), nil
}

// AddHeader stores the header for the image with the given SHA-1, replacing
// any existing entry
func (db *Database) AddHeader(sha string, h snes.Header) error {
	id, err := db.addLicensee(h.Licensee)
	if err != nil {
		return err
	}

	fields := h.FieldBlock()

	if _, err := db.db.Exec("INSERT OR REPLACE INTO header (sha1, title, title_offset, fields, mapping, cartridge, region, licensee_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", sha, []byte(h.InternalName), h.TitleOffset, fields[:], h.Mapping.String(), h.Cartridge.String(), h.Region.String(), id); err != nil {
		return err
	}

	return nil
}

// FindHeaderBySHA1 searches the database for an image matching the SHA-1
// and returns the header. The boolean is false if there is no match
func (db *Database) FindHeaderBySHA1(sha string) (snes.Header, bool, error) {
	var title, b []byte
	var offset int64
	switch err := db.db.QueryRow("SELECT title, title_offset, fields FROM header WHERE sha1 = ?", sha).Scan(&title, &offset, &b); err {
	case sql.ErrNoRows:
		return snes.Header{}, false, nil
	case nil:
		if len(b) != snes.FieldBlockLength {
			return snes.Header{}, false, errCorrupt
		}

		var fields [snes.FieldBlockLength]byte
		copy(fields[:], b)

		h, err := snes.NewHeader(title, offset, fields)
		if err != nil {
			return snes.Header{}, false, err
		}

		return h, true, nil
	default:
		return snes.Header{}, false, err
	}
}

// Count returns the number of headers in the catalogue
func (db *Database) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM header").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
