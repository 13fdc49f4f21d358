package pamfax

import (
	"context"
	"net/url"
	"strconv"
)

func (c *client) ListAvailableItems(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListAvailableItems, EndpointListAvailableItems, nil)
}

func (c *client) GetShopLink(ctx context.Context, linkType, product string, pay bool) (*Payload, error) {
	params := url.Values{}
	if linkType != "" {
		params.Set("type", linkType)
	}
	if product != "" {
		params.Set("product", product)
	}
	if pay {
		params.Set("pay", "1")
	}
	return c.getPayload(ctx, OperationGetShopLink, EndpointGetShopLink, params)
}

func (c *client) GetInvoice(ctx context.Context, paymentUUID string) (*File, error) {
	if paymentUUID == "" {
		return nil, ErrEmptyUUID
	}
	return c.getRaw(ctx, OperationGetInvoice, EndpointGetInvoice, url.Values{"payment_uuid": {paymentUUID}})
}

// AddCreditToSandboxUser tops up the account balance. Only the sandbox accepts it.
func (c *client) AddCreditToSandboxUser(ctx context.Context, amount float64, currency string) error {
	params := url.Values{}
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	if currency != "" {
		params.Set("currency", currency)
	}

	_, err := c.getResult(ctx, OperationAddCreditToSandboxUser, EndpointAddCreditToSandboxUser, params)
	return err
}
