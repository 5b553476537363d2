package ingest

import (
	"fmt"

	"flightprep/internal/config"
	"flightprep/internal/models"
)

// Client manages raw data acquisition and parsing for the pipeline.
type Client struct {
	fetcher *Fetcher
	parser  *Parser
}

// NewClient creates a new ingest client with default dependencies.
func NewClient() *Client {
	return &Client{
		fetcher: NewFetcher(),
		parser:  NewParser(),
	}
}

// NewClientWithDeps creates a new ingest client with injected dependencies.
func NewClientWithDeps(fetcher *Fetcher, parser *Parser) *Client {
	return &Client{
		fetcher: fetcher,
		parser:  parser,
	}
}

// Acquire returns the raw table text for the configured source. Precedence:
// local file, then URL, then the embedded sample dataset.
func (c *Client) Acquire(src *config.SourceConfig) (string, error) {
	switch {
	case src.IsLocalFile():
		return ReadLocalFile(src.File)
	case src.IsRemote():
		content, err := c.fetcher.Fetch(src.URL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch source: %w", err)
		}

		return content, nil
	default:
		return SampleData, nil
	}
}

// LoadTable acquires and parses the configured source into a table.
func (c *Client) LoadTable(src *config.SourceConfig) (*models.Table, error) {
	raw, err := c.Acquire(src)
	if err != nil {
		return nil, err
	}

	table, err := c.parser.ParseTable(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse raw table: %w", err)
	}

	return table, nil
}
