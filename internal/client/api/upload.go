package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
)

// UploadRequest describes one file upload. Filename is required; when
// Contents is nil the Filename is treated as a local path and read from
// disk. When Sharename is empty a new share is created first, titled with
// Title. Encoding accepts "" or "binary", both meaning raw bytes.
type UploadRequest struct {
	Sharename string
	Title     string
	Filename  string
	Contents  io.Reader
	Encoding  string
}

// UploadFile runs the two-phase upload protocol: phase one registers the
// file record at /files/{share}/create and must come back with readystate
// "remote" and a one-time PUT URL; phase two transfers the bytes to that
// URL. The returned File is the phase-one record: its Size and DownloadURL
// are not populated until the server has processed the bytes.
func (s *Session) UploadFile(ctx context.Context, req UploadRequest) (*models.File, error) {
	if req.Filename == "" {
		return nil, &ValidationError{Field: "filename", Reason: "must not be empty"}
	}
	if req.Encoding != "" && req.Encoding != "binary" {
		return nil, &ValidationError{Field: "encoding", Reason: fmt.Sprintf("unsupported encoding %q", req.Encoding)}
	}

	sharename := req.Sharename
	if sharename == "" {
		share, err := s.CreateShare(ctx, req.Title)
		if err != nil {
			return nil, fmt.Errorf("creating share for upload: %w", err)
		}
		sharename = share.Sharename
	}

	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}

	endpoint := "/files/" + sharename + "/create"
	var payload FilePayload
	if _, err := s.rest.postJSON(ctx, endpoint, s.authQuery(), createFileRequest{Filename: req.Filename}, &payload); err != nil {
		return nil, err
	}

	file := BuildFile(&payload, sharename)
	if !file.AwaitsUpload() {
		return nil, &ProtocolError{Endpoint: endpoint, Reason: fmt.Sprintf("expected readystate %q, got %q", models.ReadyStateRemote, file.ReadyState)}
	}
	if file.PutUploadURL == "" {
		return nil, &ProtocolError{Endpoint: endpoint, Reason: "missing put upload url"}
	}

	contents := req.Contents
	source := "stream"
	if contents == nil {
		// No explicit contents: the filename doubles as a local path.
		fh, err := os.Open(req.Filename)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", req.Filename, err)
		}
		defer fh.Close()
		contents = fh
		source = req.Filename
	}

	if err := s.SendFile(ctx, file.PutUploadURL, contents); err != nil {
		return nil, fmt.Errorf("uploading %s: %w", source, err)
	}
	return file, nil
}

// SendFile reads all bytes from contents and PUTs them to url. Empty or
// unreadable contents fail locally before any network call; a non-2xx
// answer surfaces as a *RemoteError.
func (s *Session) SendFile(ctx context.Context, rawURL string, contents io.Reader) error {
	data, err := io.ReadAll(contents)
	if err != nil {
		return fmt.Errorf("reading upload contents: %w", err)
	}
	if len(data) == 0 {
		return ErrEmptyContents
	}
	return s.rest.putRaw(ctx, rawURL, bytes.NewReader(data))
}

// GetNewUploadURL asks the service for a fresh one-time PUT URL for an
// existing file record. A successful response without a puturl is a
// *ProtocolError, distinct from a transport failure.
func (s *Session) GetNewUploadURL(ctx context.Context, sharename string, fileID int64) (string, error) {
	if !shareNameRe.MatchString(sharename) {
		return "", ErrInvalidShareName
	}
	if err := s.ensureToken(ctx); err != nil {
		return "", err
	}
	endpoint := s.filePath(sharename, fileID, "/upload")
	var payload UploadPayload
	if err := s.rest.getJSON(ctx, endpoint, s.authQuery(), &payload); err != nil {
		return "", err
	}
	if payload.PutURL == "" {
		return "", &ProtocolError{Endpoint: endpoint, Reason: "missing puturl"}
	}
	return payload.PutURL, nil
}

// DestroyFile deletes one file record. Failures are soft, as with
// DestroyShare: a refused or empty server response yields (false, nil).
func (s *Session) DestroyFile(ctx context.Context, sharename string, fileID int64) (bool, error) {
	if !shareNameRe.MatchString(sharename) {
		return false, ErrInvalidShareName
	}
	if err := s.ensureToken(ctx); err != nil {
		return false, err
	}
	data, err := s.rest.postJSON(ctx, s.filePath(sharename, fileID, "/destroy"), s.authQuery(), nil, nil)
	if err != nil {
		s.log.Warn(ctx, "destroy file refused", "sharename", sharename, "fileid", fileID, "error", err)
		return false, nil
	}
	return !emptyBody(data), nil
}

// GetFileContents downloads the raw bytes of a file. No auth and no JSON
// decoding are involved; the body comes back verbatim.
func (s *Session) GetFileContents(ctx context.Context, sharename string, fileID int64) ([]byte, error) {
	if !shareNameRe.MatchString(sharename) {
		return nil, ErrInvalidShareName
	}
	return s.rest.getRaw(ctx, s.filePath(sharename, fileID, "/blob"), nil)
}

// GetThumbnail downloads the thumbnail rendition of an image file.
func (s *Session) GetThumbnail(ctx context.Context, sharename string, fileID int64) ([]byte, error) {
	if !shareNameRe.MatchString(sharename) {
		return nil, ErrInvalidShareName
	}
	return s.rest.getRaw(ctx, s.filePath(sharename, fileID, "/blob/thumb"), nil)
}

// GetScaledContents downloads the file scaled to width x height pixels.
func (s *Session) GetScaledContents(ctx context.Context, sharename string, fileID int64, width, height int) ([]byte, error) {
	if !shareNameRe.MatchString(sharename) {
		return nil, ErrInvalidShareName
	}
	query := url.Values{"size": {fmt.Sprintf("%dx%d", width, height)}}
	return s.rest.getRaw(ctx, s.filePath(sharename, fileID, "/blob/scale"), query)
}
