package api

import "encoding/json"

// Wire-format records, one per endpoint payload. Mapping into entities is
// done by the Build* functions in mapper.go.

type loginRequest struct {
	APIKey   string `json:"apikey"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the decoded body of POST /users/login. The TTL is kept as
// json.Number so a non-numeric value can be rejected explicitly instead of
// failing deep inside the decoder.
type LoginResult struct {
	AccessToken  string       `json:"accesstoken"`
	Expires      json.Number  `json:"expires"`
	RefreshToken string       `json:"refreshtoken"`
	User         *UserPayload `json:"user"`
}

// UserPayload is the wire form of an account user.
type UserPayload struct {
	UserID   string          `json:"userid"`
	FullName string          `json:"fullname"`
	Email    string          `json:"email"`
	Storage  *StoragePayload `json:"storage"`
}

// StoragePayload is the nested quota object inside a user payload.
type StoragePayload struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// SharePayload is the wire form of a share, files included.
type SharePayload struct {
	Sharename string         `json:"sharename"`
	Title     *string        `json:"title"`
	Created   int64          `json:"created"`
	Files     []*FilePayload `json:"files"`
}

// FilePayload is the wire form of a file. The Upload sub-object is present
// only in create responses and on the upload-url endpoint.
type FilePayload struct {
	Filename    string         `json:"filename"`
	FileID      int64          `json:"fileid"`
	Size        int64          `json:"size"`
	Created     int64          `json:"created"`
	Downloads   int64          `json:"downloads"`
	ReadyState  string         `json:"readystate"`
	GetURL      string         `json:"getturl"`
	DownloadURL string         `json:"downloadurl"`
	Upload      *UploadPayload `json:"upload"`
}

// UploadPayload carries the one-time upload destinations of a fresh file
// record.
type UploadPayload struct {
	PutURL  string `json:"puturl"`
	PostURL string `json:"posturl"`
}

type createShareRequest struct {
	Title string `json:"title,omitempty"`
}

// updateShareRequest always carries the title field: sending null clears an
// existing title, which the service treats as set-or-clear, not an error.
type updateShareRequest struct {
	Title *string `json:"title"`
}

type createFileRequest struct {
	Filename string `json:"filename"`
}
