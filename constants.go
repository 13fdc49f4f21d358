package pamfax

import "time"

const (
	ServiceName         = "pamfax"
	DefaultBaseURL      = "https://api.pamfax.biz"
	SandboxBaseURL      = "https://sandbox-api.pamfax.biz"
	DefaultTimeout      = 2 * time.Minute
	DefaultPollInterval = 1 * time.Second
	DefaultUserAgent    = "dynaptico-pamfax"
	DefaultOrigin       = "script"
	APIOutputFormat     = "API_FORMAT_JSON"
)

// Response codes reported in the result block.
const (
	CodeSuccess         = "success"
	CodeNotEnoughCredit = "not_enough_credit"
	CodeFaxNotFound     = "fax_not_found"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

// Processor prefixes
const (
	processorCommon        = "/Common"
	processorFaxHistory    = "/FaxHistory"
	processorFaxJob        = "/FaxJob"
	processorNumberInfo    = "/NumberInfo"
	processorOnlineStorage = "/OnlineStorage"
	processorSession       = "/Session"
	processorShopping      = "/Shopping"
	processorUserInfo      = "/UserInfo"
)

// API endpoints
const (
	EndpointVerifyUser = processorSession + "/VerifyUser"
	EndpointLogout     = processorSession + "/Logout"
	EndpointPing       = processorSession + "/Ping"
	EndpointReloadUser = processorSession + "/ReloadUser"

	EndpointGetFile                = processorCommon + "/GetFile"
	EndpointGetPagePreview         = processorCommon + "/GetPagePreview"
	EndpointGetCurrentSettings     = processorCommon + "/GetCurrentSettings"
	EndpointGetGeoIPInformation    = processorCommon + "/GetGeoIPInformation"
	EndpointListConstants          = processorCommon + "/ListConstants"
	EndpointListCountries          = processorCommon + "/ListCountries"
	EndpointListCountriesForZone   = processorCommon + "/ListCountriesForZone"
	EndpointListCurrencies         = processorCommon + "/ListCurrencies"
	EndpointListLanguages          = processorCommon + "/ListLanguages"
	EndpointListSupportedFileTypes = processorCommon + "/ListSupportedFileTypes"
	EndpointListTimezones          = processorCommon + "/ListTimezones"
	EndpointListVersions           = processorCommon + "/ListVersions"
	EndpointListZones              = processorCommon + "/ListZones"

	EndpointAddFaxNote            = processorFaxHistory + "/AddFaxNote"
	EndpointCountFaxes            = processorFaxHistory + "/CountFaxes"
	EndpointDeleteFax             = processorFaxHistory + "/DeleteFax"
	EndpointEmptyTrash            = processorFaxHistory + "/EmptyTrash"
	EndpointGetFaxDetails         = processorFaxHistory + "/GetFaxDetails"
	EndpointGetTransmissionReport = processorFaxHistory + "/GetTransmissionReport"
	EndpointListFaxNotes          = processorFaxHistory + "/ListFaxNotes"
	EndpointListInboxFaxes        = processorFaxHistory + "/ListInboxFaxes"
	EndpointListOutboxFaxes       = processorFaxHistory + "/ListOutboxFaxes"
	EndpointListRecentFaxes       = processorFaxHistory + "/ListRecentFaxes"
	EndpointListSentFaxes         = processorFaxHistory + "/ListSentFaxes"
	EndpointListTrash             = processorFaxHistory + "/ListTrash"
	EndpointListUnpaidFaxes       = processorFaxHistory + "/ListUnpaidFaxes"
	EndpointRestoreFax            = processorFaxHistory + "/RestoreFax"
	EndpointSetFaxRead            = processorFaxHistory + "/SetFaxRead"

	EndpointAddFile              = processorFaxJob + "/AddFile"
	EndpointAddRecipient         = processorFaxJob + "/AddRecipient"
	EndpointAddRemoteFile        = processorFaxJob + "/AddRemoteFile"
	EndpointCancel               = processorFaxJob + "/Cancel"
	EndpointCloneFax             = processorFaxJob + "/CloneFax"
	EndpointCreate               = processorFaxJob + "/Create"
	EndpointGetFaxState          = processorFaxJob + "/GetFaxState"
	EndpointGetPreview           = processorFaxJob + "/GetPreview"
	EndpointListAvailableCovers  = processorFaxJob + "/ListAvailableCovers"
	EndpointListFaxFiles         = processorFaxJob + "/ListFaxFiles"
	EndpointListRecipients       = processorFaxJob + "/ListRecipients"
	EndpointRemoveAllFiles       = processorFaxJob + "/RemoveAllFiles"
	EndpointRemoveAllRecipients  = processorFaxJob + "/RemoveAllRecipients"
	EndpointRemoveCover          = processorFaxJob + "/RemoveCover"
	EndpointRemoveFile           = processorFaxJob + "/RemoveFile"
	EndpointRemoveRecipient      = processorFaxJob + "/RemoveRecipient"
	EndpointSend                 = processorFaxJob + "/Send"
	EndpointSendLater            = processorFaxJob + "/SendLater"
	EndpointSetCover             = processorFaxJob + "/SetCover"
	EndpointStartPreviewCreation = processorFaxJob + "/StartPreviewCreation"

	EndpointGetNumberInfo = processorNumberInfo + "/GetNumberInfo"
	EndpointGetPagePrice  = processorNumberInfo + "/GetPagePrice"

	EndpointDropAuthentication = processorOnlineStorage + "/DropAuthentication"
	EndpointGetProviderLogo    = processorOnlineStorage + "/GetProviderLogo"
	EndpointListFolderContents = processorOnlineStorage + "/ListFolderContents"
	EndpointListProviders      = processorOnlineStorage + "/ListProviders"

	EndpointAddCreditToSandboxUser = processorShopping + "/AddCreditToSandboxUser"
	EndpointGetInvoice             = processorShopping + "/GetInvoice"
	EndpointGetShopLink            = processorShopping + "/GetShopLink"
	EndpointListAvailableItems     = processorShopping + "/ListAvailableItems"

	EndpointGetCultureInfo      = processorUserInfo + "/GetCultureInfo"
	EndpointHasPlan             = processorUserInfo + "/HasPlan"
	EndpointListExpirations     = processorUserInfo + "/ListExpirations"
	EndpointListInboxes         = processorUserInfo + "/ListInboxes"
	EndpointListOrders          = processorUserInfo + "/ListOrders"
	EndpointListProfiles        = processorUserInfo + "/ListProfiles"
	EndpointListUserAgents      = processorUserInfo + "/ListUserAgents"
	EndpointValidateNewUsername = processorUserInfo + "/ValidateNewUsername"
)
