package pamfax

import (
	"context"
	"net/url"
	"time"
)

// StartPreviewCreation asks the service to render page previews for the current fax job.
func (c *client) StartPreviewCreation(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationStartPreviewCreation, EndpointStartPreviewCreation, nil)
	return err
}

// GetPreview returns the rendered preview pages and how many are still open.
func (c *client) GetPreview(ctx context.Context, faxUUID string) (*PreviewResponse, error) {
	params := url.Values{}
	if faxUUID != "" {
		params.Set("uuid", faxUUID)
	}

	var result PreviewResponse
	if err := c.get(ctx, OperationGetPreview, EndpointGetPreview, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// WaitForPreview polls GetPreview until no pages are left open or ctx ends.
func (c *client) WaitForPreview(ctx context.Context, faxUUID string, pollInterval time.Duration) (*PreviewResponse, error) {
	fetch := func(ctx context.Context) (*PreviewResponse, error) {
		return c.GetPreview(ctx, faxUUID)
	}

	return waitWithPolling(ctx, pollInterval, OperationPreview, c.processingTimeout, fetch, func(preview *PreviewResponse) (bool, error) {
		return preview.Status.Open == 0, nil
	})
}
