package copernicus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sentinel-snapshot/internal/domain"
	"sentinel-snapshot/internal/platform/obs"
	"time"
)

const (
	// DataType is the Sentinel-2 L2A (surface reflectance) collection.
	DataType = "sentinel-2-l2a"

	// Sentinel-2 revisits a mid-latitude scene every 2-3 days; a week leaves
	// enough margin for at least one capture.
	SearchWindow = 7 * 24 * time.Hour

	Resampling = "BILINEAR"

	// timeLayout is ISO-8601 with microseconds and an explicit UTC offset.
	timeLayout = "2006-01-02T15:04:05.000000-07:00"
)

type ProcessRequest struct {
	Input      ProcessInput  `json:"input"`
	Output     ProcessOutput `json:"output"`
	Evalscript string        `json:"evalscript"`
}

type ProcessInput struct {
	Bounds Bounds      `json:"bounds"`
	Data   []DataInput `json:"data"`
}

type Bounds struct {
	BBox []float64 `json:"bbox"`
}

type DataInput struct {
	Type       string     `json:"type"`
	DataFilter DataFilter `json:"dataFilter"`
	Processing Processing `json:"processing"`
}

type DataFilter struct {
	TimeRange TimeRange `json:"timeRange"`
}

type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Processing struct {
	Upsampling   string `json:"upsampling"`
	Downsampling string `json:"downsampling"`
}

type ProcessOutput struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Responses []OutputResponse `json:"responses"`
}

type OutputResponse struct {
	Identifier string       `json:"identifier"`
	Format     OutputFormat `json:"format"`
}

type OutputFormat struct {
	Type    string `json:"type"`
	Quality int    `json:"quality"`
}

// NewProcessRequest builds the Process API payload for req at the given size.
// The time filter covers SearchWindow ending at now.
func NewProcessRequest(req domain.ImageRequest, dims domain.ImageDimensions, now time.Time) ProcessRequest {
	to := now.UTC()
	from := to.Add(-SearchWindow)

	return ProcessRequest{
		Input: ProcessInput{
			Bounds: Bounds{BBox: req.Box.BBox()},
			Data: []DataInput{
				{
					Type: DataType,
					DataFilter: DataFilter{
						TimeRange: TimeRange{
							From: from.Format(timeLayout),
							To:   to.Format(timeLayout),
						},
					},
					Processing: Processing{
						Upsampling:   Resampling,
						Downsampling: Resampling,
					},
				},
			},
		},
		Output: ProcessOutput{
			Width:  dims.Width,
			Height: dims.Height,
			Responses: []OutputResponse{
				{
					Identifier: "default",
					Format: OutputFormat{
						Type:    req.Format,
						Quality: req.Quality,
					},
				},
			},
		},
		Evalscript: req.Evalscript,
	}
}

// FetchImage posts a process request and returns the raw image bytes.
// A non-200 status yields *APIError with the response body.
func (c *Client) FetchImage(
	ctx context.Context,
	token *domain.Token,
	req domain.ImageRequest,
	dims domain.ImageDimensions,
) (_ []byte, err error) {
	defer obs.Time(ctx, c.logger, "copernicus.FetchImage")(&err)

	if token == nil || token.AccessToken == "" {
		return nil, errors.New("fetch image: token must be non-empty")
	}

	payload, err := json.Marshal(NewProcessRequest(req, dims, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("marshal process request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, c.processURL, token, req.Format, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	c.logger.Debug("requesting image", "url", c.processURL, "bbox", req.Box.String(), "size", dims.String())

	body, err := c.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	return body, nil
}
