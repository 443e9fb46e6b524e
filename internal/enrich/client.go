package enrich

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"edumigrate/internal/config"
)

// Client performs lookups against the content-hierarchy API. Each record
// processed by the pipeline incurs exactly one synchronous round trip per
// lookup; there is no retry, backoff or rate limiting.
type Client struct {
	base   string
	cookie string
	hc     *http.Client
}

// NewClient builds a Client from API configuration. The underlying
// http.Client is shared across all lookups of a run.
func NewClient(cfg config.API) *Client {
	return &Client{
		base:   cfg.BaseURL,
		cookie: cfg.SessionCookie,
		hc:     &http.Client{},
	}
}

// Hierarchy fetches the content hierarchy for id via
// GET {base}/hierarchy/{id}?mode=edit and returns the result.content
// fragment. Any failure resolves to an empty Result with a warning log.
func (c *Client) Hierarchy(ctx context.Context, id string) Result {
	url := fmt.Sprintf("%s/hierarchy/%s?mode=edit", c.base, id)
	body, err := c.get(ctx, url)
	if err != nil {
		logrus.WithError(err).WithField("content_id", id).Warn("hierarchy lookup failed")
		return Result{}
	}
	content := gjson.GetBytes(body, "result.content")
	if !content.Exists() {
		logrus.WithField("content_id", id).Warn("hierarchy response missing result.content")
		return Result{}
	}
	return Result{raw: []byte(content.Raw)}
}

// SearchQuestionSet looks up a question set by identifier via
// POST {base}/search and returns the result.QuestionSet array fragment.
// Any failure resolves to an empty Result with a warning log.
func (c *Client) SearchQuestionSet(ctx context.Context, id string) Result {
	filter := fmt.Sprintf(`{"request":{"filters":{"identifier":%q,"objectType":"QuestionSet"}}}`, id)
	body, err := c.post(ctx, c.base+"/search", []byte(filter))
	if err != nil {
		logrus.WithError(err).WithField("question_set_id", id).Warn("question set search failed")
		return Result{}
	}
	sets := gjson.GetBytes(body, "result.QuestionSet")
	if !sets.Exists() {
		logrus.WithField("question_set_id", id).Warn("search response missing result.QuestionSet")
		return Result{}
	}
	return Result{raw: []byte(sets.Raw)}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
