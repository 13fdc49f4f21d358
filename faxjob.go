package pamfax

import (
	"context"
	"net/url"
	"strconv"
)

// Create starts a new fax job in the current session.
func (c *client) Create(ctx context.Context) (*FaxContainerResponse, error) {
	params := url.Values{}
	params.Set("user_ip", c.userIP)
	params.Set("user_agent", c.userAgent)
	params.Set("origin", DefaultOrigin)

	var result FaxContainerResponse
	if err := c.get(ctx, OperationCreate, EndpointCreate, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AddRecipient adds a destination number. name is optional.
func (c *client) AddRecipient(ctx context.Context, number, name string) (*FaxRecipientResponse, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}

	params := url.Values{}
	params.Set("number", number)
	if name != "" {
		params.Set("name", name)
	}

	var result FaxRecipientResponse
	if err := c.get(ctx, OperationAddRecipient, EndpointAddRecipient, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AddRemoteFile lets the service download a file into the fax job.
func (c *client) AddRemoteFile(ctx context.Context, remoteURL string) (*FaxContainerFileResponse, error) {
	if remoteURL == "" {
		return nil, ErrEmptyRemoteURL
	}

	var result FaxContainerFileResponse
	if err := c.get(ctx, OperationAddRemoteFile, EndpointAddRemoteFile, url.Values{"url": {remoteURL}}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Cancel cancels an outstanding fax.
func (c *client) Cancel(ctx context.Context, faxUUID string) error {
	if faxUUID == "" {
		return ErrEmptyUUID
	}

	_, err := c.getResult(ctx, OperationCancel, EndpointCancel, url.Values{"uuid": {faxUUID}})
	return err
}

// CloneFax copies a fax from the history into a new fax job.
func (c *client) CloneFax(ctx context.Context, faxUUID string) (*FaxContainerResponse, error) {
	if faxUUID == "" {
		return nil, ErrEmptyUUID
	}

	params := url.Values{}
	params.Set("uuid", faxUUID)
	params.Set("user_ip", c.userIP)
	params.Set("user_agent", c.userAgent)

	var result FaxContainerResponse
	if err := c.get(ctx, OperationCloneFax, EndpointCloneFax, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *client) ListAvailableCovers(ctx context.Context) (*CoversResponse, error) {
	var result CoversResponse
	if err := c.get(ctx, OperationListAvailableCovers, EndpointListAvailableCovers, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListFaxFiles(ctx context.Context) (*FaxFilesResponse, error) {
	var result FaxFilesResponse
	if err := c.get(ctx, OperationListFaxFiles, EndpointListFaxFiles, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListRecipients(ctx context.Context) (*RecipientsResponse, error) {
	var result RecipientsResponse
	if err := c.get(ctx, OperationListRecipients, EndpointListRecipients, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) RemoveAllFiles(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationRemoveAllFiles, EndpointRemoveAllFiles, nil)
	return err
}

func (c *client) RemoveAllRecipients(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationRemoveAllRecipients, EndpointRemoveAllRecipients, nil)
	return err
}

func (c *client) RemoveCover(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationRemoveCover, EndpointRemoveCover, nil)
	return err
}

func (c *client) RemoveFile(ctx context.Context, fileUUID string) error {
	if fileUUID == "" {
		return ErrEmptyUUID
	}

	_, err := c.getResult(ctx, OperationRemoveFile, EndpointRemoveFile, url.Values{"file_uuid": {fileUUID}})
	return err
}

func (c *client) RemoveRecipient(ctx context.Context, number string) error {
	if number == "" {
		return ErrEmptyNumber
	}

	_, err := c.getResult(ctx, OperationRemoveRecipient, EndpointRemoveRecipient, url.Values{"number": {number}})
	return err
}

// Send submits the fax job. Insufficient credit is reported as an APIError
// with code CodeNotEnoughCredit.
func (c *client) Send(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationSend, EndpointSend, nil)
	return err
}

// SendLater queues the fax job until the account has enough credit.
func (c *client) SendLater(ctx context.Context) error {
	_, err := c.getResult(ctx, OperationSendLater, EndpointSendLater, nil)
	return err
}

// SetCover selects a cover template by its id and sets the cover text.
func (c *client) SetCover(ctx context.Context, templateID int, text string) error {
	params := url.Values{}
	params.Set("template_id", strconv.Itoa(templateID))
	params.Set("text", text)

	_, err := c.getResult(ctx, OperationSetCover, EndpointSetCover, params)
	return err
}
