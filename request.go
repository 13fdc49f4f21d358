package pamfax

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// newRequest prepares a request carrying the application credentials.
// Authenticated requests also carry the user token and fail fast without one.
func (c *client) newRequest(ctx context.Context, authenticated bool) (*resty.Request, error) {
	req := c.restyClient.R().
		SetContext(ctx).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParam("apisecret", c.apiSecret).
		SetQueryParam("apioutputformat", APIOutputFormat)

	if authenticated {
		token := c.UserToken()
		if token == "" {
			return nil, ErrNotLoggedIn
		}
		req.SetQueryParam("usertoken", token)
	}

	return req, nil
}

// get issues an authenticated GET and decodes the JSON body into out.
func (c *client) get(ctx context.Context, operation Operation, endpoint string, params url.Values, out any) error {
	req, err := c.newRequest(ctx, true)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	resp, err := req.SetQueryParamsFromValues(params).Get(endpoint)
	return c.decodeJSON(ctx, operation, endpoint, resp, err, out)
}

// getPayload is get for actions whose response shape is not modelled.
func (c *client) getPayload(ctx context.Context, operation Operation, endpoint string, params url.Values) (*Payload, error) {
	var result Payload
	if err := c.get(ctx, operation, endpoint, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// getResult is get for actions that only report a result block.
func (c *client) getResult(ctx context.Context, operation Operation, endpoint string, params url.Values) (*Response, error) {
	var result Response
	if err := c.get(ctx, operation, endpoint, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// getRaw issues an authenticated GET for an action answering with binary content.
func (c *client) getRaw(ctx context.Context, operation Operation, endpoint string, params url.Values) (*File, error) {
	req, err := c.newRequest(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	resp, err := req.SetQueryParamsFromValues(params).Get(endpoint)
	if err != nil {
		return nil, errTransport(operation, err)
	}
	c.logResponse(ctx, operation, endpoint, resp)

	if !resp.IsSuccess() {
		return nil, errStatus(operation, resp.StatusCode(), resp.Status())
	}

	contentType := resp.Header().Get(headerContentType)
	if isJSON(contentType) {
		return nil, binaryExpected(operation, resp.Body())
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, errMalformed(operation, "empty body")
	}

	return &File{
		Data:        data,
		ContentType: contentType,
		Name:        dispositionFilename(resp.Header().Get("Content-Disposition")),
	}, nil
}

// getRawTo streams a binary response into dst and returns its content type.
func (c *client) getRawTo(ctx context.Context, operation Operation, endpoint string, params url.Values, dst io.Writer) (string, error) {
	if dst == nil {
		return "", ErrNilWriter
	}

	req, err := c.newRequest(ctx, true)
	if err != nil {
		return "", fmt.Errorf("%s: %w", operation, err)
	}

	resp, err := req.
		SetQueryParamsFromValues(params).
		SetDoNotParseResponse(true).
		Get(endpoint)
	if err != nil {
		return "", errTransport(operation, err)
	}

	body := resp.RawBody()
	defer body.Close()
	c.logResponse(ctx, operation, endpoint, resp)

	if !resp.IsSuccess() {
		return "", errStatus(operation, resp.StatusCode(), resp.Status())
	}

	contentType := resp.Header().Get(headerContentType)
	if isJSON(contentType) {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", errTransport(operation, err)
		}
		return "", binaryExpected(operation, data)
	}

	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("%s: write body: %w", operation, err)
	}

	return contentType, nil
}

// decodeJSON checks the HTTP status and result code before filling out.
func (c *client) decodeJSON(ctx context.Context, operation Operation, endpoint string, resp *resty.Response, reqErr error, out any) error {
	if reqErr != nil {
		return errTransport(operation, reqErr)
	}
	c.logResponse(ctx, operation, endpoint, resp)

	if !resp.IsSuccess() {
		return errStatus(operation, resp.StatusCode(), resp.Status())
	}

	body := resp.Body()
	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errMalformed(operation, "decode body: %v", err)
	}

	if envelope.Result.Code == "" {
		return errMalformed(operation, "response has no result code")
	}

	if !envelope.Result.Success() {
		return errCode(operation, envelope.Result)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errMalformed(operation, "decode body: %v", err)
	}

	return nil
}

func (c *client) logResponse(ctx context.Context, operation Operation, endpoint string, resp *resty.Response) {
	c.logger.DebugContext(ctx, "pamfax response",
		slog.String("operation", string(operation)),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("elapsed", resp.Time()),
	)
}

// binaryExpected turns a JSON answer to a binary action into an error.
func binaryExpected(operation Operation, body []byte) error {
	var envelope Response
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Result.Code != "" && !envelope.Result.Success() {
		return errCode(operation, envelope.Result)
	}
	return errMalformed(operation, "expected binary content, got JSON")
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), contentTypeJSON)
}

func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}

	return params["filename"]
}
