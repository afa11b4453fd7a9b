/*
Package snes decodes the internal header of a Super Famicom cartridge image.

The header holds a 21 byte title which lives at one of two offsets depending
on whether the cartridge is LoROM or HiROM, which can't be known until the
header is decoded, so the LoROM location is checked first for a plausible
title. A separate six byte block holds the mapping, cartridge type, ROM and
SRAM size codes, region and licensee. Codes that aren't recognised decode to
an Unknown value rather than an error.

Images with a copier header or in a compressed container aren't supported.
*/
package snes

import (
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FieldBlockOffset is where the field block is read from by Decode, the
// initial position of the image
const FieldBlockOffset int64 = 0

var (
	// ErrTruncated is returned when the image is too short to read the
	// header from
	ErrTruncated = errors.New("snes: truncated image")
	// ErrInvalidTitle is returned when the title isn't valid text
	ErrInvalidTitle = errors.New("snes: invalid title")
	// ErrUnsupportedFormat is returned by DecodeFile for compressed images
	ErrUnsupportedFormat = errors.New("snes: unsupported format")

	errTitleLength = errors.New("snes: title must be 21 bytes")
)

// Decode reads the header from r, the field block is read from
// FieldBlockOffset
func Decode(r io.ReaderAt) (Header, error) {
	return DecodeAt(r, FieldBlockOffset)
}

// DecodeAt reads the header from r with the field block read from offset.
// The title region is located the same way as Decode
func DecodeAt(r io.ReaderAt, offset int64) (Header, error) {
	b, err := readAt(r, offset, FieldBlockLength)
	if err != nil {
		return Header{}, err
	}

	var fields [FieldBlockLength]byte
	copy(fields[:], b)

	titleOffset, title, err := LocateTitle(r)
	if err != nil {
		return Header{}, err
	}

	return NewHeader(title, titleOffset, fields)
}

var errEmptyArchive = errors.New("snes: empty archive")

// Each returns nil if the whole of r is a readable archive. An image can
// start with an archive signature so the signature alone isn't enough
var archives = map[string]func(io.ReaderAt, int64) error{
	".zip": func(r io.ReaderAt, size int64) error {
		z, err := zip.NewReader(r, size)
		if err != nil {
			return err
		}
		if len(z.File) == 0 {
			return errEmptyArchive
		}
		return nil
	},
	".gz": func(r io.ReaderAt, size int64) error {
		gz, err := gzip.NewReader(io.NewSectionReader(r, 0, size))
		if err != nil {
			return err
		}
		defer gz.Close()
		_, err = io.Copy(ioutil.Discard, gz)
		return err
	},
	".bz2": func(r io.ReaderAt, size int64) error {
		_, err := io.Copy(ioutil.Discard, bzip2.NewReader(io.NewSectionReader(r, 0, size)))
		return err
	},
}

// These can't be opened so the file extension has to agree as well
var signatureOnly = map[string]struct{}{
	".7z":  {},
	".rar": {},
	".xz":  {},
}

func isArchive(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return false, err
	}

	ext := mime.Extension()
	if open, ok := archives[ext]; ok {
		return open(f, info.Size()) == nil, nil
	}

	if _, ok := signatureOnly[ext]; ok {
		return strings.EqualFold(filepath.Ext(f.Name()), ext), nil
	}

	return false, nil
}

// DecodeFile opens the image at path and decodes the header. Compressed
// images are rejected with ErrUnsupportedFormat
func DecodeFile(path string) (Header, error) {
	return DecodeFileAt(path, FieldBlockOffset)
}

// DecodeFileAt is like DecodeFile but reads the field block from offset
func DecodeFileAt(path string, offset int64) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	archive, err := isArchive(f)
	if err != nil {
		return Header{}, err
	}

	if archive {
		return Header{}, ErrUnsupportedFormat
	}

	return DecodeAt(f, offset)
}
