package pamfax

import (
	"context"
	"net/url"
)

// GetNumberInfo describes a fax number: country, zone, number type and price source.
func (c *client) GetNumberInfo(ctx context.Context, faxNumber string) (*Payload, error) {
	if faxNumber == "" {
		return nil, ErrEmptyNumber
	}
	return c.getPayload(ctx, OperationGetNumberInfo, EndpointGetNumberInfo, url.Values{"faxnumber": {faxNumber}})
}

// GetPagePrice returns the price of one page sent to faxNumber.
func (c *client) GetPagePrice(ctx context.Context, faxNumber string) (*Payload, error) {
	if faxNumber == "" {
		return nil, ErrEmptyNumber
	}
	return c.getPayload(ctx, OperationGetPagePrice, EndpointGetPagePrice, url.Values{"faxnumber": {faxNumber}})
}
