package pamfax

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Operation names a remote action for error messages and logs.
type Operation string

const (
	OperationVerifyUser = Operation("verify user")
	OperationLogout     = Operation("logout")
	OperationPing       = Operation("ping")
	OperationReloadUser = Operation("reload user")

	OperationGetFile                = Operation("get file")
	OperationGetPagePreview         = Operation("get page preview")
	OperationGetCurrentSettings     = Operation("get current settings")
	OperationGetGeoIPInformation    = Operation("get geo ip information")
	OperationListConstants          = Operation("list constants")
	OperationListCountries          = Operation("list countries")
	OperationListCountriesForZone   = Operation("list countries for zone")
	OperationListCurrencies         = Operation("list currencies")
	OperationListLanguages          = Operation("list languages")
	OperationListSupportedFileTypes = Operation("list supported file types")
	OperationListTimezones          = Operation("list timezones")
	OperationListVersions           = Operation("list versions")
	OperationListZones              = Operation("list zones")

	OperationAddFaxNote            = Operation("add fax note")
	OperationCountFaxes            = Operation("count faxes")
	OperationDeleteFax             = Operation("delete fax")
	OperationEmptyTrash            = Operation("empty trash")
	OperationGetFaxDetails         = Operation("get fax details")
	OperationGetTransmissionReport = Operation("get transmission report")
	OperationListFaxNotes          = Operation("list fax notes")
	OperationListInboxFaxes        = Operation("list inbox faxes")
	OperationListOutboxFaxes       = Operation("list outbox faxes")
	OperationListRecentFaxes       = Operation("list recent faxes")
	OperationListSentFaxes         = Operation("list sent faxes")
	OperationListTrash             = Operation("list trash")
	OperationListUnpaidFaxes       = Operation("list unpaid faxes")
	OperationRestoreFax            = Operation("restore fax")
	OperationSetFaxRead            = Operation("set fax read")

	OperationAddFile              = Operation("add file")
	OperationAddRecipient         = Operation("add recipient")
	OperationAddRemoteFile        = Operation("add remote file")
	OperationCancel               = Operation("cancel fax")
	OperationCloneFax             = Operation("clone fax")
	OperationCreate               = Operation("create fax job")
	OperationGetFaxState          = Operation("get fax state")
	OperationGetPreview           = Operation("get preview")
	OperationListAvailableCovers  = Operation("list available covers")
	OperationListFaxFiles         = Operation("list fax files")
	OperationListRecipients       = Operation("list recipients")
	OperationRemoveAllFiles       = Operation("remove all files")
	OperationRemoveAllRecipients  = Operation("remove all recipients")
	OperationRemoveCover          = Operation("remove cover")
	OperationRemoveFile           = Operation("remove file")
	OperationRemoveRecipient      = Operation("remove recipient")
	OperationSend                 = Operation("send fax")
	OperationSendLater            = Operation("send fax later")
	OperationSetCover             = Operation("set cover")
	OperationStartPreviewCreation = Operation("start preview creation")

	OperationGetNumberInfo = Operation("get number info")
	OperationGetPagePrice  = Operation("get page price")

	OperationDropAuthentication = Operation("drop authentication")
	OperationGetProviderLogo    = Operation("get provider logo")
	OperationListFolderContents = Operation("list folder contents")
	OperationListProviders      = Operation("list providers")

	OperationAddCreditToSandboxUser = Operation("add credit to sandbox user")
	OperationGetInvoice             = Operation("get invoice")
	OperationGetShopLink            = Operation("get shop link")
	OperationListAvailableItems     = Operation("list available items")

	OperationGetCultureInfo      = Operation("get culture info")
	OperationHasPlan             = Operation("has plan")
	OperationListExpirations     = Operation("list expirations")
	OperationListInboxes         = Operation("list inboxes")
	OperationListOrders          = Operation("list orders")
	OperationListProfiles        = Operation("list profiles")
	OperationListUserAgents      = Operation("list user agents")
	OperationValidateNewUsername = Operation("validate new username")

	// Long-running waits.
	OperationFaxReady = Operation("fax job ready")
	OperationPreview  = Operation("preview creation")
)

// Result is the status block every JSON response carries.
type Result struct {
	Code    string `json:"code"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// Success reports whether the service accepted the call.
func (r Result) Success() bool {
	return r.Code == CodeSuccess
}

// Response is the bare envelope returned by actions with no payload.
type Response struct {
	Result Result `json:"result"`
}

// List is the service's collection wrapper: {"type": "list", "content": [...]}.
type List[T any] struct {
	Type    string `json:"type"`
	Content []T    `json:"content,omitempty"`
}

// Payload keeps the top-level members of a response whose shape is not modelled.
type Payload struct {
	Result Result
	Fields map[string]json.RawMessage
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["result"]; ok {
		if err := json.Unmarshal(raw, &p.Result); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		delete(fields, "result")
	}
	p.Fields = fields
	return nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["result"] = p.Result
	return json.Marshal(out)
}

// Has reports whether the payload carries the given member.
func (p *Payload) Has(key string) bool {
	_, ok := p.Fields[key]
	return ok
}

// Decode unmarshals one top-level member into v.
func (p *Payload) Decode(key string, v any) error {
	raw, ok := p.Fields[key]
	if !ok {
		return fmt.Errorf("member %q not present: %w", key, ErrMalformedResponse)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode member %q: %w", key, err)
	}
	return nil
}

// File is a raw binary response.
type File struct {
	Data        []byte
	ContentType string
	Name        string // from Content-Disposition, may be empty
}

// UserToken is returned by Session/VerifyUser.
type UserToken struct {
	Token string `json:"token"`
}

// VerifyUserResponse represents the Session/VerifyUser response.
type VerifyUserResponse struct {
	Result    Result          `json:"result"`
	UserToken UserToken       `json:"UserToken"`
	User      json.RawMessage `json:"User,omitempty"`
}

// FaxContainerState is the lifecycle position of a fax job.
type FaxContainerState string

const (
	ContainerStateEditing     FaxContainerState = "editing"
	ContainerStateConverting  FaxContainerState = "converting"
	ContainerStateReadyToSend FaxContainerState = "ready_to_send"
	ContainerStateSending     FaxContainerState = "sending"
	ContainerStateSent        FaxContainerState = "sent"
	ContainerStateFailed      FaxContainerState = "failed"
	ContainerStateCancelled   FaxContainerState = "cancelled"
)

// Ready reports whether the job has left the build phase.
func (s FaxContainerState) Ready() bool {
	switch s {
	case ContainerStateReadyToSend, ContainerStateSending, ContainerStateSent:
		return true
	}
	return false
}

// Failed reports whether the job ended without being sent.
func (s FaxContainerState) Failed() bool {
	return s == ContainerStateFailed || s == ContainerStateCancelled
}

// FileState is the conversion state of a single file in a fax job.
type FileState string

const (
	FileStatePending    FileState = ""
	FileStateConverting FileState = "converting"
	FileStateConverted  FileState = "converted"
)

// FaxContainer describes a fax job.
type FaxContainer struct {
	UUID              string            `json:"uuid"`
	State             FaxContainerState `json:"state"`
	Price             float64           `json:"price"`
	Pages             *int              `json:"pages"`
	CoverID           int               `json:"cover_id"`
	CoverText         string            `json:"cover_text"`
	Created           string            `json:"created"`
	Updated           string            `json:"updated"`
	ProcessingStarted string            `json:"processing_started"`
}

// FaxRecipient is a destination number attached to a fax job.
type FaxRecipient struct {
	UUID            string  `json:"uuid,omitempty"`
	Number          string  `json:"number"`
	FormattedNumber string  `json:"formatted_number,omitempty"`
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	AreaCode        string  `json:"area_code"`
	Zone            string  `json:"zone"`
	NumberType      string  `json:"number_type"`
	Description     string  `json:"description"`
	PricePerPage    float64 `json:"price_per_page"`
	PriceSource     string  `json:"price_source"`
	Price           float64 `json:"price,omitempty"`
	Pages           *int    `json:"pages,omitempty"`
	Duration        int     `json:"duration,omitempty"`
	StatusCode      int     `json:"status_code,omitempty"`
	StatusMessage   string  `json:"status_message,omitempty"`
	State           string  `json:"state,omitempty"`
	Created         string  `json:"created,omitempty"`
	Updated         string  `json:"updated,omitempty"`
}

// FaxContainerFile is a file attached to a fax job.
type FaxContainerFile struct {
	Name      string    `json:"name"`
	FileOrder int       `json:"file_order"`
	Ext       string    `json:"ext"`
	FileUUID  string    `json:"file_uuid"`
	Mime      string    `json:"mime"`
	State     FileState `json:"state"`
}

// FaxFile is an entry of FaxJob/ListFaxFiles.
type FaxFile struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Extension  string `json:"extension"`
	Pages      int    `json:"pages"`
	ContentMD5 string `json:"contentmd5"`
	MimeType   string `json:"mimetype"`
	Created    string `json:"created"`
}

// Cover is a cover page template.
type Cover struct {
	ID          int    `json:"id"`
	TemplateID  string `json:"template_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     int    `json:"creator"`
	ThumbID     string `json:"thumb_id"`
	PreviewID   string `json:"preview_id"`
}

// FaxStateFile is a per-file conversion record from FaxJob/GetFaxState.
type FaxStateFile struct {
	FileOrder int       `json:"file_order"`
	State     FileState `json:"state"`
}

// FaxContainerResponse is returned by Create and CloneFax.
type FaxContainerResponse struct {
	Result       Result       `json:"result"`
	FaxContainer FaxContainer `json:"FaxContainer"`
}

// FaxRecipientResponse is returned by AddRecipient.
type FaxRecipientResponse struct {
	Result       Result       `json:"result"`
	FaxRecipient FaxRecipient `json:"FaxRecipient"`
}

// FaxContainerFileResponse is returned by AddFile and AddRemoteFile.
type FaxContainerFileResponse struct {
	Result           Result           `json:"result"`
	FaxContainerFile FaxContainerFile `json:"FaxContainerFile"`
}

// CoversResponse is returned by ListAvailableCovers.
type CoversResponse struct {
	Result Result      `json:"result"`
	Covers List[Cover] `json:"Covers"`
}

// FaxFilesResponse is returned by ListFaxFiles.
type FaxFilesResponse struct {
	Result Result        `json:"result"`
	Files  List[FaxFile] `json:"Files"`
}

// RecipientsResponse is returned by ListRecipients.
type RecipientsResponse struct {
	Result     Result             `json:"result"`
	Recipients List[FaxRecipient] `json:"Recipients"`
}

// PreviewStatus counts pages still waiting for a preview.
type PreviewStatus struct {
	Open int `json:"open"`
	Done int `json:"done"`
}

// PreviewResponse is returned by GetPreview.
type PreviewResponse struct {
	Result       Result                `json:"result"`
	Status       PreviewStatus         `json:"Status"`
	PreviewPages List[json.RawMessage] `json:"PreviewPages"`
}

// FaxState is a snapshot of a fax job's build progress.
// It is created fresh on each fetch and never mutated afterwards.
type FaxState struct {
	Result         Result            `json:"result"`
	ContainerState FaxContainerState `json:"container_state"`
	Container      FaxContainer      `json:"container"`
	Files          []FaxStateFile    `json:"files"`
	// Converting is derived locally from Files.
	Converting bool `json:"converting"`
}

// Page selects a page of a paged listing. Zero fields are left to the service defaults.
type Page struct {
	Current int
	PerPage int
}

func (p Page) values() url.Values {
	v := url.Values{}
	if p.Current > 0 {
		v.Set("current_page", strconv.Itoa(p.Current))
	}
	if p.PerPage > 0 {
		v.Set("items_per_page", strconv.Itoa(p.PerPage))
	}
	return v
}
