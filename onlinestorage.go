package pamfax

import (
	"context"
	"net/url"
	"strconv"
)

func (c *client) ListProviders(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListProviders, EndpointListProviders, nil)
}

func (c *client) ListFolderContents(ctx context.Context, provider, path string) (*Payload, error) {
	if provider == "" {
		return nil, ErrEmptyProvider
	}

	params := url.Values{}
	params.Set("provider", provider)
	if path != "" {
		params.Set("path", path)
	}
	return c.getPayload(ctx, OperationListFolderContents, EndpointListFolderContents, params)
}

func (c *client) DropAuthentication(ctx context.Context, provider string) error {
	if provider == "" {
		return ErrEmptyProvider
	}

	_, err := c.getResult(ctx, OperationDropAuthentication, EndpointDropAuthentication, url.Values{"provider": {provider}})
	return err
}

func (c *client) GetProviderLogo(ctx context.Context, provider string, size int) (*File, error) {
	if provider == "" {
		return nil, ErrEmptyProvider
	}

	params := url.Values{}
	params.Set("provider", provider)
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}
	return c.getRaw(ctx, OperationGetProviderLogo, EndpointGetProviderLogo, params)
}
