package models

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// imageFieldCount is the number of comma separated fields in one listing record.
const imageFieldCount = 6

var (
	ErrMalformedRecord = errors.New("malformed image record")
	ErrUnsafeFileName  = errors.New("unsafe file name")
)

// ImageEntry is one record of the camera image listing, e.g.
// "/DCIM/100OLYMP,P5140001.JPG,2841785,0,19118,1440"
type ImageEntry struct {
	Directory  string `json:"directory"`
	FileName   string `json:"fileName"`
	Size       int64  `json:"size"`
	Attribute  int    `json:"attribute"`  // Camera specific flags, opaque
	DateTime   int    `json:"dateTime"`   // Camera encoded timestamp, opaque
	Resolution int    `json:"resolution"` // Opaque
}

// ParseImageEntry splits a raw listing record into its six fields.
func ParseImageEntry(record string) (ImageEntry, error) {
	fields := strings.Split(record, ",")
	if len(fields) != imageFieldCount {
		return ImageEntry{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, imageFieldCount, len(fields))
	}

	name := fields[1]
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ImageEntry{}, fmt.Errorf("%w: %q", ErrUnsafeFileName, name)
	}

	size, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return ImageEntry{}, fmt.Errorf("%w: size: %v", ErrMalformedRecord, err)
	}

	var ints [3]int
	for i, f := range fields[3:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return ImageEntry{}, fmt.Errorf("%w: field %d: %v", ErrMalformedRecord, i+4, err)
		}
		ints[i] = n
	}

	return ImageEntry{
		Directory:  fields[0],
		FileName:   name,
		Size:       size,
		Attribute:  ints[0],
		DateTime:   ints[1],
		Resolution: ints[2],
	}, nil
}

// ParseImageList parses every record, failing on the first one that is unparsable.
func ParseImageList(records []string) ([]ImageEntry, error) {
	entries := make([]ImageEntry, 0, len(records))
	for _, r := range records {
		e, err := ParseImageEntry(r)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", r, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FileNameOf returns the second field of a raw record, if it has one.
func FileNameOf(record string) (string, bool) {
	fields := strings.SplitN(record, ",", 3)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// String rebuilds the wire form of the record.
func (e ImageEntry) String() string {
	return strings.Join([]string{
		e.Directory,
		e.FileName,
		strconv.FormatInt(e.Size, 10),
		strconv.Itoa(e.Attribute),
		strconv.Itoa(e.DateTime),
		strconv.Itoa(e.Resolution),
	}, ",")
}

// RemotePath is the URL path the camera serves the image under.
func (e ImageEntry) RemotePath() string {
	return path.Join("/", e.Directory, e.FileName)
}

// ResumeFrom drops every entry before the first one named first.
// When no entry matches, the full list is returned with found=false.
func ResumeFrom(entries []ImageEntry, first string) (queue []ImageEntry, found bool) {
	for i, e := range entries {
		if e.FileName == first {
			return entries[i:], true
		}
	}
	return entries, false
}
