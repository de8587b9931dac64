package ecbfeed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ecbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

const DefaultFeedURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

const userAgent = "ecbrates/1.0"

type Client struct {
	http    *http.Client
	feedURL string
	now     func() time.Time
}

// FetchTable downloads the feed and decodes it into a fresh rate table.
func (c *Client) FetchTable(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: failed to create request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml, text/xml")

	logrus.WithField("url", c.feedURL).Debug("Fetching ECB feed")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: failed to execute request: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.RateTable{}, fmt.Errorf("%w: unexpected status code %d: %s", domain.ErrFetch, resp.StatusCode, resp.Status)
	}

	table, err := Decode(resp.Body, c.now().UTC())
	if err != nil {
		return domain.RateTable{}, err
	}
	return table, nil
}

func NewClient(httpClient *http.Client, feedURL string) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Client{http: httpClient, feedURL: feedURL, now: time.Now}
}
