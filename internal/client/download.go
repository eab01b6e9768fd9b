package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"omd-cli/internal/fsx"
	"omd-cli/pkg/models"
)

// Observer receives per-image progress from DownloadImages.
type Observer interface {
	// OnResumeMissing is called when the requested first image is not listed
	// and the whole list is downloaded instead.
	OnResumeMissing(first string)
	// OnImageStart is called before the destination is checked.
	OnImageStart(entry models.ImageEntry, dest string)
	OnImageDone(entry models.ImageEntry, status models.TransferStatus, err error)
}

type nopObserver struct{}

func (nopObserver) OnResumeMissing(string)                                      {}
func (nopObserver) OnImageStart(models.ImageEntry, string)                      {}
func (nopObserver) OnImageDone(models.ImageEntry, models.TransferStatus, error) {}

type DownloadOptions struct {
	OutputDir string
	First     string // Resume point; empty downloads the whole list
	Overwrite bool
	// KeepGoing records failed transfers and continues with the next image
	// instead of aborting the batch on the first failure.
	KeepGoing bool
	Observer  Observer
}

// DownloadImages copies the listed images into opts.OutputDir.
//
// Without KeepGoing the first failed transfer aborts the batch; files written
// before it stay on disk. With KeepGoing every entry is attempted and the
// returned error lists all failures.
func (c *OlympusClient) DownloadImages(ctx context.Context, opts DownloadOptions) (models.DownloadReport, error) {
	var report models.DownloadReport

	obs := opts.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	entries, err := c.Images(ctx)
	if err != nil {
		return report, err
	}

	queue := entries
	if opts.First != "" {
		var found bool
		queue, found = models.ResumeFrom(entries, opts.First)
		if found {
			c.log.Info("Resuming download", slog.String("first", opts.First), slog.Int("skipped", len(entries)-len(queue)))
		} else {
			c.log.Warn("First image not found in list, downloading all", slog.String("first", opts.First))
			obs.OnResumeMissing(opts.First)
		}
	}

	if err := fsx.EnsureDir(c.fs, dir); err != nil {
		return report, &FilesystemError{Path: dir, Err: err}
	}

	var failures []error
	for _, entry := range queue {
		dest := filepath.Join(dir, entry.FileName)
		obs.OnImageStart(entry, dest)

		exists, err := fsx.Exists(c.fs, dest)
		if err != nil {
			err = &FilesystemError{Path: dest, Err: err}
			obs.OnImageDone(entry, models.StatusFailed, err)
			return report, err
		}

		if exists && !opts.Overwrite {
			c.log.Debug("Skip existing file", slog.String("path", dest))
			report.Skipped = append(report.Skipped, entry.FileName)
			obs.OnImageDone(entry, models.StatusSkipped, nil)
			continue
		}

		if err := c.fetchImage(ctx, entry, dir); err != nil {
			obs.OnImageDone(entry, models.StatusFailed, err)
			if !opts.KeepGoing {
				return report, err
			}
			c.log.Error("Cannot download image", slog.String("file", entry.FileName), slog.Any("error", err))
			report.Failed = append(report.Failed, models.FailedImage{FileName: entry.FileName, Error: err.Error()})
			failures = append(failures, err)
			continue
		}

		report.Downloaded = append(report.Downloaded, entry.FileName)
		obs.OnImageDone(entry, models.StatusOK, nil)
	}

	if len(failures) > 0 {
		return report, fmt.Errorf("%d of %d images failed: %w", len(failures), report.Total(), errors.Join(failures...))
	}

	return report, nil
}

// fetchImage streams one image into dir through a temp file.
func (c *OlympusClient) fetchImage(ctx context.Context, entry models.ImageEntry, dir string) error {
	path := entry.RemotePath()
	c.log.Debug("GET", slog.String("path", path))

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(path)

	if err != nil {
		return &CommunicationError{URL: c.url(path), Err: err}
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		return &CommunicationError{URL: c.url(path), StatusCode: resp.StatusCode()}
	}

	src := &trackingReader{r: body}
	if err := fsx.WriteStreamAtomic(c.fs, dir, entry.FileName, src); err != nil {
		if src.err != nil {
			return &CommunicationError{URL: c.url(path), Err: src.err}
		}
		return &FilesystemError{Path: filepath.Join(dir, entry.FileName), Err: err}
	}

	return nil
}

// trackingReader remembers read failures so a broken transfer is not
// reported as a filesystem problem.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
