package pamfax

import (
	"context"
	"net/url"
	"strconv"
)

func (c *client) GetCultureInfo(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationGetCultureInfo, EndpointGetCultureInfo, nil)
}

func (c *client) HasPlan(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationHasPlan, EndpointHasPlan, nil)
}

func (c *client) ListExpirations(ctx context.Context, expirationType string) (*Payload, error) {
	params := url.Values{}
	if expirationType != "" {
		params.Set("type", expirationType)
	}
	return c.getPayload(ctx, OperationListExpirations, EndpointListExpirations, params)
}

func (c *client) ListInboxes(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListInboxes, EndpointListInboxes, nil)
}

func (c *client) ListOrders(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListOrders, EndpointListOrders, page.values())
}

func (c *client) ListProfiles(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListProfiles, EndpointListProfiles, nil)
}

func (c *client) ListUserAgents(ctx context.Context, maxAgents int) (*Payload, error) {
	params := url.Values{}
	if maxAgents > 0 {
		params.Set("max", strconv.Itoa(maxAgents))
	}
	return c.getPayload(ctx, OperationListUserAgents, EndpointListUserAgents, params)
}

func (c *client) ValidateNewUsername(ctx context.Context, username string) (*Payload, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	return c.getPayload(ctx, OperationValidateNewUsername, EndpointValidateNewUsername, url.Values{"username": {username}})
}
