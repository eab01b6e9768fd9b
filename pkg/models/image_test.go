package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseImageEntry(t *testing.T) {
	testCases := []struct {
		name        string
		record      string
		expected    ImageEntry
		expectError error
	}{
		{
			name:   "valid record",
			record: "/DCIM/100OLYMP,P5140001.JPG,2841785,0,19118,1440",
			expected: ImageEntry{
				Directory:  "/DCIM/100OLYMP",
				FileName:   "P5140001.JPG",
				Size:       2841785,
				Attribute:  0,
				DateTime:   19118,
				Resolution: 1440,
			},
		},
		{
			name:        "too few fields",
			record:      "/DCIM/100OLYMP,P5140001.JPG,2841785",
			expectError: ErrMalformedRecord,
		},
		{
			name:        "too many fields",
			record:      "/DCIM/100OLYMP,P5140001.JPG,2841785,0,19118,1440,7",
			expectError: ErrMalformedRecord,
		},
		{
			name:        "non numeric size",
			record:      "/DCIM/100OLYMP,P5140001.JPG,big,0,19118,1440",
			expectError: ErrMalformedRecord,
		},
		{
			name:        "non numeric resolution",
			record:      "/DCIM/100OLYMP,P5140001.JPG,1,0,19118,x",
			expectError: ErrMalformedRecord,
		},
		{
			name:        "path traversal in name",
			record:      "/DCIM/100OLYMP,../../etc/passwd,1,0,19118,1440",
			expectError: ErrUnsafeFileName,
		},
		{
			name:        "empty name",
			record:      "/DCIM/100OLYMP,,1,0,19118,1440",
			expectError: ErrUnsafeFileName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := ParseImageEntry(tc.record)
			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, entry)
		})
	}
}

func TestImageEntryRoundTrip(t *testing.T) {
	records := []string{
		"/DCIM/100OLYMP,P5140001.JPG,2841785,0,19118,1440",
		"DCIM/100OLYMP,P5140002.JPG,1234567,32,19119,2048",
		"/DCIM/100OLYMP,P5140003.ORF,0,0,0,0",
	}
	for _, r := range records {
		entry, err := ParseImageEntry(r)
		require.NoError(t, err)
		require.Equal(t, r, entry.String())
	}
}

func TestParseImageList(t *testing.T) {
	entries, err := ParseImageList([]string{
		"/DCIM/100OLYMP,P1.JPG,1,0,1,1",
		"/DCIM/100OLYMP,P2.JPG,2,0,2,2",
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "P1.JPG", entries[0].FileName)
	require.Equal(t, "P2.JPG", entries[1].FileName)

	_, err = ParseImageList([]string{"/DCIM/100OLYMP,P1.JPG,1,0,1,1", "garbage"})
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFileNameOf(t *testing.T) {
	name, ok := FileNameOf("/DCIM/100OLYMP,P5140001.JPG,2841785,0,19118,1440")
	require.True(t, ok)
	require.Equal(t, "P5140001.JPG", name)

	name, ok = FileNameOf("/DCIM/100OLYMP,P5140002.JPG")
	require.True(t, ok)
	require.Equal(t, "P5140002.JPG", name)

	_, ok = FileNameOf("no-separator")
	require.False(t, ok)
}

func TestRemotePath(t *testing.T) {
	e := ImageEntry{Directory: "/DCIM/100OLYMP", FileName: "P1.JPG"}
	require.Equal(t, "/DCIM/100OLYMP/P1.JPG", e.RemotePath())

	e.Directory = "DCIM/100OLYMP/"
	require.Equal(t, "/DCIM/100OLYMP/P1.JPG", e.RemotePath())
}

func names(entries []ImageEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.FileName)
	}
	return out
}

func TestResumeFrom(t *testing.T) {
	list := []ImageEntry{{FileName: "A"}, {FileName: "B"}, {FileName: "C"}, {FileName: "D"}}

	queue, found := ResumeFrom(list, "C")
	require.True(t, found)
	require.Equal(t, []string{"C", "D"}, names(queue))

	queue, found = ResumeFrom(list, "A")
	require.True(t, found)
	require.Equal(t, []string{"A", "B", "C", "D"}, names(queue))

	queue, found = ResumeFrom(list[:3], "Z")
	require.False(t, found)
	require.Equal(t, []string{"A", "B", "C"}, names(queue))
}

func TestDownloadReportTotal(t *testing.T) {
	r := DownloadReport{
		Downloaded: []string{"A", "B"},
		Skipped:    []string{"C"},
		Failed:     []FailedImage{{FileName: "D", Error: "boom"}},
	}
	require.Equal(t, 4, r.Total())
}
