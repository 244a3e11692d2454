package models

// ReadyState is the server-reported lifecycle marker of a file.
type ReadyState string

const (
	// ReadyStateRemote means the file record exists but its bytes have not
	// been received yet.
	ReadyStateRemote ReadyState = "remote"

	// ReadyStateUploading means a transfer is in progress.
	ReadyStateUploading ReadyState = "uploading"

	// ReadyStateUploaded means the bytes have been received and the file is
	// available for download.
	ReadyStateUploaded ReadyState = "uploaded"
)

// File is a single object inside a Share, tracked by filename and numeric id.
//
// A File with ReadyState == ReadyStateRemote is incomplete: Size and
// DownloadURL must not be relied on until the upload finished.
type File struct {
	// Filename is the name the file was registered under.
	Filename string

	// FileID is the numeric id of the file inside its share.
	FileID int64

	// Sharename is the share the file belongs to.
	Sharename string

	// Size is the content length in bytes.
	Size int64

	// Created is the creation time as a Unix timestamp in seconds.
	Created int64

	// Downloads counts completed downloads.
	Downloads int64

	// ReadyState reports the upload lifecycle state.
	ReadyState ReadyState

	// GetURL is the display/landing URL of the file.
	GetURL string

	// DownloadURL is the direct download URL.
	DownloadURL string

	// PutUploadURL and PostUploadURL are one-time upload destinations.
	// They are present only on create responses and on the upload-url
	// endpoint, never on plain fetches.
	PutUploadURL  string
	PostUploadURL string
}

// AwaitsUpload reports whether the file record still waits for its bytes.
func (f *File) AwaitsUpload() bool {
	return f.ReadyState == ReadyStateRemote
}
