package api

import (
	"context"
	"net/url"
)

// GetUserConfig fetches the user's full platform configuration.
func (c *Client) GetUserConfig(ctx context.Context, userID string) (*UserConfig, error) {
	var cfg UserConfig
	if err := c.getJSON(ctx, "/user/config/"+url.PathEscape(userID), nil, &cfg); err != nil {
		return nil, c.fail("get_user_config", err)
	}
	return &cfg, nil
}

// SaveUserConfig saves the full configuration object. The save is a
// whole-object replacement; callers must send every field.
func (c *Client) SaveUserConfig(ctx context.Context, cfg *UserConfig) error {
	if err := c.postJSON(ctx, "/user/config", cfg, nil); err != nil {
		return c.fail("save_user_config", err)
	}
	return nil
}
