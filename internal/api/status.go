package api

import (
	"context"
	"fmt"
)

// ExecutorStatus is the trading executor's state snapshot.
type ExecutorStatus struct {
	Running       bool    `json:"running"`
	Paused        bool    `json:"paused"`
	OpenPositions int     `json:"open_positions"`
	Equity        float64 `json:"equity"`
	DailyPnL      float64 `json:"daily_pnl"`
}

// GetExecutorStatus fetches the current executor status.
func (c *Client) GetExecutorStatus(ctx context.Context) (*ExecutorStatus, error) {
	var resp ExecutorStatus
	if err := c.get(ctx, "/api/executor/status", &resp); err != nil {
		return nil, fmt.Errorf("get executor status: %w", err)
	}
	return &resp, nil
}
