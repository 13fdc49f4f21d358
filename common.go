package pamfax

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

// GetFile downloads a file stored by the service.
func (c *client) GetFile(ctx context.Context, fileUUID string) (*File, error) {
	if fileUUID == "" {
		return nil, ErrEmptyUUID
	}

	return c.getRaw(ctx, OperationGetFile, EndpointGetFile, url.Values{"file_uuid": {fileUUID}})
}

// GetFileTo streams a stored file into dst and returns its content type.
func (c *client) GetFileTo(ctx context.Context, fileUUID string, dst io.Writer) (string, error) {
	if fileUUID == "" {
		return "", ErrEmptyUUID
	}

	return c.getRawTo(ctx, OperationGetFile, EndpointGetFile, url.Values{"file_uuid": {fileUUID}}, dst)
}

// GetPagePreview downloads the preview image of one page. Pages are numbered from 1.
func (c *client) GetPagePreview(ctx context.Context, uuid string, pageNo int) (*File, error) {
	if uuid == "" {
		return nil, ErrEmptyUUID
	}

	if pageNo <= 0 {
		return nil, ErrInvalidPageRange
	}

	params := url.Values{}
	params.Set("uuid", uuid)
	params.Set("page_no", strconv.Itoa(pageNo))

	return c.getRaw(ctx, OperationGetPagePreview, EndpointGetPagePreview, params)
}

func (c *client) GetCurrentSettings(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationGetCurrentSettings, EndpointGetCurrentSettings, nil)
}

// GetGeoIPInformation looks up the country of an IP address.
func (c *client) GetGeoIPInformation(ctx context.Context, ip string) (*Payload, error) {
	return c.getPayload(ctx, OperationGetGeoIPInformation, EndpointGetGeoIPInformation, url.Values{"ip": {ip}})
}

func (c *client) ListConstants(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListConstants, EndpointListConstants, nil)
}

func (c *client) ListCountries(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListCountries, EndpointListCountries, nil)
}

func (c *client) ListCountriesForZone(ctx context.Context, zone int) (*Payload, error) {
	return c.getPayload(ctx, OperationListCountriesForZone, EndpointListCountriesForZone, url.Values{"zone": {strconv.Itoa(zone)}})
}

// ListCurrencies lists supported currencies. An empty code lists all of them.
func (c *client) ListCurrencies(ctx context.Context, code string) (*Payload, error) {
	params := url.Values{}
	if code != "" {
		params.Set("code", code)
	}
	return c.getPayload(ctx, OperationListCurrencies, EndpointListCurrencies, params)
}

// ListLanguages lists UI languages translated at least minPercentTranslated percent.
func (c *client) ListLanguages(ctx context.Context, minPercentTranslated int) (*Payload, error) {
	params := url.Values{}
	if minPercentTranslated > 0 {
		params.Set("min_percent_translated", strconv.Itoa(minPercentTranslated))
	}
	return c.getPayload(ctx, OperationListLanguages, EndpointListLanguages, params)
}

func (c *client) ListSupportedFileTypes(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListSupportedFileTypes, EndpointListSupportedFileTypes, nil)
}

func (c *client) ListTimezones(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListTimezones, EndpointListTimezones, nil)
}

func (c *client) ListVersions(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListVersions, EndpointListVersions, nil)
}

func (c *client) ListZones(ctx context.Context) (*Payload, error) {
	return c.getPayload(ctx, OperationListZones, EndpointListZones, nil)
}
