package client

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"omd-cli/pkg/models"
)

var errNoModel = errors.New("caminfo > model element not found")

// GetInfo fetches the camera identity. It is the preflight for every command.
func (c *OlympusClient) GetInfo(ctx context.Context) (models.CameraInfo, error) {
	resp, err := c.get(ctx, infoPath)
	if err != nil {
		return models.CameraInfo{}, err
	}

	model, err := parseModel(resp.Body())
	if err != nil {
		return models.CameraInfo{}, err
	}

	return models.CameraInfo{Model: model}, nil
}

// parseModel extracts the text of caminfo > model from the info response.
func parseModel(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", &ParseError{What: "camera info", Err: err}
	}

	sel := doc.Find("caminfo > model").First()
	if sel.Length() == 0 {
		return "", &ParseError{What: "camera info", Err: errNoModel}
	}

	return strings.TrimSpace(sel.Text()), nil
}
