package pamfax

import (
	"context"
	"io"
	"time"
)

// Info provides metadata about the client
type Info interface {
	Name() string
}

// SessionAPI covers the Session processor.
type SessionAPI interface {
	VerifyUser(ctx context.Context, username, password string) (*VerifyUserResponse, error)
	Login(ctx context.Context, username, password string) error
	UserToken() string
	Logout(ctx context.Context) error
	Ping(ctx context.Context) (*Payload, error)
	ReloadUser(ctx context.Context) (*Payload, error)
}

// CommonAPI covers the Common processor.
type CommonAPI interface {
	GetFile(ctx context.Context, fileUUID string) (*File, error)
	GetFileTo(ctx context.Context, fileUUID string, dst io.Writer) (string, error)
	GetPagePreview(ctx context.Context, uuid string, pageNo int) (*File, error)
	GetCurrentSettings(ctx context.Context) (*Payload, error)
	GetGeoIPInformation(ctx context.Context, ip string) (*Payload, error)
	ListConstants(ctx context.Context) (*Payload, error)
	ListCountries(ctx context.Context) (*Payload, error)
	ListCountriesForZone(ctx context.Context, zone int) (*Payload, error)
	ListCurrencies(ctx context.Context, code string) (*Payload, error)
	ListLanguages(ctx context.Context, minPercentTranslated int) (*Payload, error)
	ListSupportedFileTypes(ctx context.Context) (*Payload, error)
	ListTimezones(ctx context.Context) (*Payload, error)
	ListVersions(ctx context.Context) (*Payload, error)
	ListZones(ctx context.Context) (*Payload, error)
}

// FaxHistoryAPI covers the FaxHistory processor.
type FaxHistoryAPI interface {
	AddFaxNote(ctx context.Context, faxUUID, note string) error
	CountFaxes(ctx context.Context, faxType string) (*Payload, error)
	DeleteFax(ctx context.Context, faxUUID string) error
	EmptyTrash(ctx context.Context) error
	GetFaxDetails(ctx context.Context, faxUUID string) (*Payload, error)
	GetTransmissionReport(ctx context.Context, faxUUID string) (*File, error)
	ListFaxNotes(ctx context.Context, faxUUID string) (*Payload, error)
	ListInboxFaxes(ctx context.Context, page Page) (*Payload, error)
	ListOutboxFaxes(ctx context.Context, page Page) (*Payload, error)
	ListRecentFaxes(ctx context.Context, count int) (*Payload, error)
	ListSentFaxes(ctx context.Context, page Page) (*Payload, error)
	ListTrash(ctx context.Context, page Page) (*Payload, error)
	ListUnpaidFaxes(ctx context.Context, page Page) (*Payload, error)
	RestoreFax(ctx context.Context, faxUUID string) error
	SetFaxRead(ctx context.Context, faxUUID string) error
}

// FaxJobAPI covers the FaxJob processor, including the state poller.
type FaxJobAPI interface {
	Create(ctx context.Context) (*FaxContainerResponse, error)
	AddRecipient(ctx context.Context, number, name string) (*FaxRecipientResponse, error)
	AddFile(ctx context.Context, filename string, data []byte) (*FaxContainerFileResponse, error)
	AddFileReader(ctx context.Context, filename string, r io.Reader) (*FaxContainerFileResponse, error)
	AddRemoteFile(ctx context.Context, url string) (*FaxContainerFileResponse, error)
	Cancel(ctx context.Context, faxUUID string) error
	CloneFax(ctx context.Context, faxUUID string) (*FaxContainerResponse, error)
	GetPreview(ctx context.Context, faxUUID string) (*PreviewResponse, error)
	StartPreviewCreation(ctx context.Context) error
	WaitForPreview(ctx context.Context, faxUUID string, pollInterval time.Duration) (*PreviewResponse, error)
	ListAvailableCovers(ctx context.Context) (*CoversResponse, error)
	ListFaxFiles(ctx context.Context) (*FaxFilesResponse, error)
	ListRecipients(ctx context.Context) (*RecipientsResponse, error)
	RemoveAllFiles(ctx context.Context) error
	RemoveAllRecipients(ctx context.Context) error
	RemoveCover(ctx context.Context) error
	RemoveFile(ctx context.Context, fileUUID string) error
	RemoveRecipient(ctx context.Context, number string) error
	Send(ctx context.Context) error
	SendLater(ctx context.Context) error
	SetCover(ctx context.Context, templateID int, text string) error

	GetFaxState(ctx context.Context) (*FaxState, error)
	WaitForFaxReady(ctx context.Context, pollInterval time.Duration) (*FaxState, error)
}

// NumberInfoAPI covers the NumberInfo processor.
type NumberInfoAPI interface {
	GetNumberInfo(ctx context.Context, faxNumber string) (*Payload, error)
	GetPagePrice(ctx context.Context, faxNumber string) (*Payload, error)
}

// OnlineStorageAPI covers the OnlineStorage processor.
type OnlineStorageAPI interface {
	ListProviders(ctx context.Context) (*Payload, error)
	ListFolderContents(ctx context.Context, provider, path string) (*Payload, error)
	DropAuthentication(ctx context.Context, provider string) error
	GetProviderLogo(ctx context.Context, provider string, size int) (*File, error)
}

// ShoppingAPI covers the Shopping processor.
type ShoppingAPI interface {
	ListAvailableItems(ctx context.Context) (*Payload, error)
	GetShopLink(ctx context.Context, linkType, product string, pay bool) (*Payload, error)
	GetInvoice(ctx context.Context, paymentUUID string) (*File, error)
	AddCreditToSandboxUser(ctx context.Context, amount float64, currency string) error
}

// UserInfoAPI covers the UserInfo processor.
type UserInfoAPI interface {
	GetCultureInfo(ctx context.Context) (*Payload, error)
	HasPlan(ctx context.Context) (*Payload, error)
	ListExpirations(ctx context.Context, expirationType string) (*Payload, error)
	ListInboxes(ctx context.Context) (*Payload, error)
	ListOrders(ctx context.Context, page Page) (*Payload, error)
	ListProfiles(ctx context.Context) (*Payload, error)
	ListUserAgents(ctx context.Context, maxAgents int) (*Payload, error)
	ValidateNewUsername(ctx context.Context, username string) (*Payload, error)
}

// Client combines all PamFax processors
type Client interface {
	Info
	SessionAPI
	CommonAPI
	FaxHistoryAPI
	FaxJobAPI
	NumberInfoAPI
	OnlineStorageAPI
	ShoppingAPI
	UserInfoAPI
}
