package catalog

import (
	"context"
	"fmt"

	"github.com/madmikeross/graphengine/pkg/errs"
)

// GetSystemIDs is a batch listing call: any non-success is fatal to the batch.
func (c *Client) GetSystemIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := c.get(ctx, "/universe/systems/", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetSystemDetail is a per-item call; callers decide whether NotFound/ServerError
// are fatal (batch listings) or skippable (detail fan-out).
func (c *Client) GetSystemDetail(ctx context.Context, systemID int) (*SystemDetail, error) {
	var detail SystemDetail
	url := fmt.Sprintf("/universe/systems/%d/", systemID)
	if err := c.get(ctx, url, &detail); err != nil {
		return nil, err
	}
	if err := validate.Struct(&detail); err != nil {
		return nil, &errs.SourceError{Kind: errs.ParseError, URL: url, Err: err}
	}
	return &detail, nil
}

// GetStargateDetail is the per-item stargate detail fetch. The §4.B policy
// table treats NotFound/ServerError as skippable here; RateLimited is fatal.
func (c *Client) GetStargateDetail(ctx context.Context, stargateID int) (*StargateDetail, error) {
	var detail StargateDetail
	url := fmt.Sprintf("/universe/stargates/%d/", stargateID)
	if err := c.get(ctx, url, &detail); err != nil {
		return nil, err
	}
	if err := validate.Struct(&detail); err != nil {
		return nil, &errs.SourceError{Kind: errs.ParseError, URL: url, Err: err}
	}
	return &detail, nil
}

// GetSystemKills is a batch listing call: any non-success is fatal to the batch.
func (c *Client) GetSystemKills(ctx context.Context) ([]SystemKillEntry, error) {
	var entries []SystemKillEntry
	if err := c.get(ctx, "/universe/system_kills/", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetSystemJumps is a batch listing call: any non-success is fatal to the batch.
func (c *Client) GetSystemJumps(ctx context.Context) ([]SystemJumpEntry, error) {
	var entries []SystemJumpEntry
	if err := c.get(ctx, "/universe/system_jumps/", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
