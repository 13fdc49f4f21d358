package pamfax

import (
	"context"
)

// VerifyUser checks the user's credentials. It is the only action sent without a user token.
func (c *client) VerifyUser(ctx context.Context, username, password string) (*VerifyUserResponse, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	req, err := c.newRequest(ctx, false)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("username", username).
		SetQueryParam("password", password).
		Get(EndpointVerifyUser)

	var result VerifyUserResponse
	if err := c.decodeJSON(ctx, OperationVerifyUser, EndpointVerifyUser, resp, err, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout ends the session and forgets the user token.
func (c *client) Logout(ctx context.Context) error {
	if _, err := c.getResult(ctx, OperationLogout, EndpointLogout, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.userToken = ""
	c.mu.Unlock()

	return nil
}

func (c *client) Ping(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationPing, EndpointPing, nil)
}

func (c *client) ReloadUser(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationReloadUser, EndpointReloadUser, nil)
}
