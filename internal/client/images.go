package client

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"omd-cli/pkg/models"
)

// ListImages returns the raw listing records for MediaDir in camera order.
// Version headers and blank lines are dropped; nothing else is validated.
func (c *OlympusClient) ListImages(ctx context.Context) ([]string, error) {
	resp, err := c.get(ctx, listPath)
	if err != nil {
		return nil, err
	}
	return parseImageList(resp.Body()), nil
}

// Images returns the listing parsed into entries.
func (c *OlympusClient) Images(ctx context.Context) ([]models.ImageEntry, error) {
	records, err := c.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := models.ParseImageList(records)
	if err != nil {
		return nil, &ParseError{What: "image list", Err: err}
	}
	return entries, nil
}

func parseImageList(body []byte) []string {
	text := string(body)
	// The listing may arrive wrapped in markup; only its text matters.
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		text = doc.Find("body").Text()
	}

	var records []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "VER_") {
			continue
		}
		records = append(records, line)
	}
	return records
}
