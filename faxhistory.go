package pamfax

import (
	"context"
	"net/url"
	"strconv"
)

// AddFaxNote attaches a note to a fax in the history.
func (c *client) AddFaxNote(ctx context.Context, faxUUID, note string) error {
	if faxUUID == "" {
		return ErrEmptyUUID
	}

	params := url.Values{}
	params.Set("fax_uuid", faxUUID)
	params.Set("note", note)

	_, err := c.getResult(ctx, OperationAddFaxNote, EndpointAddFaxNote, params)
	return err
}

// CountFaxes counts faxes of the given type (e.g. "inbox", "outbox", "sent").
func (c *client) CountFaxes(ctx context.Context, faxType string) (*Payload, error) {
	return c.getPayload(ctx, OperationCountFaxes, EndpointCountFaxes, url.Values{"type": {faxType}})
}

// DeleteFax moves a fax into the trash.
func (c *client) DeleteFax(ctx context.Context, faxUUID string) error {
	if faxUUID == "" {
		return ErrEmptyUUID
	}

	_, err := c.getResult(ctx, OperationDeleteFax, EndpointDeleteFax, url.Values{"uuid": {faxUUID}})
	return err
}

func (c *client) EmptyTrash(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationEmptyTrash, EndpointEmptyTrash, nil)
	return err
}

func (c *client) GetFaxDetails(ctx context.Context, faxUUID string) (*Payload, error) {
	if faxUUID == "" {
		return nil, ErrEmptyUUID
	}

	return c.getPayload(ctx, OperationGetFaxDetails, EndpointGetFaxDetails, url.Values{"uuid": {faxUUID}})
}

// GetTransmissionReport downloads the PDF transmission report of a sent fax.
func (c *client) GetTransmissionReport(ctx context.Context, faxUUID string) (*File, error) {
	if faxUUID == "" {
		return nil, ErrEmptyUUID
	}

	return c.getRaw(ctx, OperationGetTransmissionReport, EndpointGetTransmissionReport, url.Values{"uuid": {faxUUID}})
}

func (c *client) ListFaxNotes(ctx context.Context, faxUUID string) (*Payload, error) {
	if faxUUID == "" {
		return nil, ErrEmptyUUID
	}

	return c.getPayload(ctx, OperationListFaxNotes, EndpointListFaxNotes, url.Values{"fax_uuid": {faxUUID}})
}

func (c *client) ListInboxFaxes(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListInboxFaxes, EndpointListInboxFaxes, page.values())
}

func (c *client) ListOutboxFaxes(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListOutboxFaxes, EndpointListOutboxFaxes, page.values())
}

// ListRecentFaxes returns the latest count faxes across all folders.
func (c *client) ListRecentFaxes(ctx context.Context, count int) (*Payload, error) {
	params := url.Values{}
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}
	return c.getPayload(ctx, OperationListRecentFaxes, EndpointListRecentFaxes, params)
}

func (c *client) ListSentFaxes(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListSentFaxes, EndpointListSentFaxes, page.values())
}

func (c *client) ListTrash(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListTrash, EndpointListTrash, page.values())
}

func (c *client) ListUnpaidFaxes(ctx context.Context, page Page) (*Payload, error) {
	return c.getPayload(ctx, OperationListUnpaidFaxes, EndpointListUnpaidFaxes, page.values())
}

func (c *client) RestoreFax(ctx context.Context, faxUUID string) error {
	if faxUUID == "" {
		return ErrEmptyUUID
	}

	_, err := c.getResult(ctx, OperationRestoreFax, EndpointRestoreFax, url.Values{"uuid": {faxUUID}})
	return err
}

func (c *client) SetFaxRead(ctx context.Context, faxUUID string) error {
	if faxUUID == "" {
		return ErrEmptyUUID
	}

	_, err := c.getResult(ctx, OperationSetFaxRead, EndpointSetFaxRead, url.Values{"uuid": {faxUUID}})
	return err
}
