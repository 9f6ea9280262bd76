package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

// Documentation is a fetched and parsed documentation payload.
type Documentation struct {
	Raw   []byte
	Store *schema.Store
}

// FetchDocumentation downloads documentation from path and parses it.
// Both raw entry arrays and prebuilt maps are accepted.
func (c *Client) FetchDocumentation(ctx context.Context, path string, logger *zap.Logger) (*Documentation, error) {
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documentation: %w", err)
	}

	store, err := schema.Parse(body, logger)
	if err != nil {
		return nil, err
	}

	return &Documentation{Raw: body, Store: store}, nil
}
