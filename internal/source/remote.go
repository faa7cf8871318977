package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

// DefaultTimeout is the per-request HTTP timeout for feed fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies feed requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ContestBoard/1.0)"

//go:embed feed_schema.json
var feedSchemaJSON string

var feedSchema = gojsonschema.NewStringLoader(feedSchemaJSON)

// RemoteOptions configures the remote feed client.
type RemoteOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultRemoteOptions returns sensible defaults for feed fetching.
func DefaultRemoteOptions() *RemoteOptions {
	return &RemoteOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Remote fetches contest records from one or more admin feed URLs. URLs
// are fetched concurrently; a single failing URL fails the whole fetch so
// the caller can decide to degrade (see WithFallback).
type Remote struct {
	urls   []string
	client *http.Client
	opts   *RemoteOptions
}

// NewRemote creates a remote feed accessor for the given URLs.
func NewRemote(urls []string, opts *RemoteOptions) *Remote {
	if opts == nil {
		opts = DefaultRemoteOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Remote{
		urls:   urls,
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

// Contests implements Accessor. Records that fail struct validation after
// mapping are skipped with a log line rather than failing the batch.
func (r *Remote) Contests(ctx context.Context) ([]types.Contest, error) {
	if len(r.urls) == 0 {
		return nil, &FeedError{Message: "no feed URLs configured"}
	}

	batches := make([][]AdminContest, len(r.urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range r.urls {
		g.Go(func() error {
			records, err := r.fetchFeed(gctx, url)
			if err != nil {
				return err
			}
			batches[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := dates.StartOfToday()
	var contests []types.Contest
	for _, batch := range batches {
		for _, record := range batch {
			c := MapAdminContest(record, today)
			if err := c.Validate(); err != nil {
				log.Printf("skipping invalid contest record %q: %v", record.ID, err)
				continue
			}
			contests = append(contests, c)
		}
	}
	return contests, nil
}

// fetchFeed retrieves one feed URL, checks the payload against the feed
// schema and decodes it.
func (r *Remote) fetchFeed(ctx context.Context, url string) ([]AdminContest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FeedError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", r.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &FeedError{URL: url, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &FeedError{URL: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FeedError{URL: url, Message: "failed to read body", Cause: err}
	}

	if err := validateFeedPayload(body); err != nil {
		return nil, &FeedError{URL: url, Message: "payload failed schema validation", Cause: err}
	}

	var records []AdminContest
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &FeedError{URL: url, Message: "failed to decode payload", Cause: err}
	}
	return records, nil
}

// validateFeedPayload runs the JSON Schema check over a raw feed body.
func validateFeedPayload(body []byte) error {
	result, err := gojsonschema.Validate(feedSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(desc.String())
	}
	return fmt.Errorf("schema violations: %s", sb.String())
}
