package api

import "github.com/dmitrijs2005/sharebox/internal/client/models"

// BuildUser maps a user payload, including its nested storage object, to a
// User. A nil payload yields nil.
func BuildUser(p *UserPayload) *models.User {
	if p == nil {
		return nil
	}
	u := &models.User{
		UserID:   p.UserID,
		FullName: p.FullName,
		Email:    p.Email,
	}
	if p.Storage != nil {
		u.StorageUsed = p.Storage.Used
		u.StorageLimit = p.Storage.Limit
	}
	return u
}

// BuildShare maps a share payload to a Share, mapping every non-nil entry of
// the nested files list via BuildFile. Each mapped file is stamped with the
// share's name.
func BuildShare(p *SharePayload) *models.Share {
	if p == nil {
		return nil
	}
	s := &models.Share{
		Sharename: p.Sharename,
		Title:     p.Title,
		Created:   p.Created,
	}
	for _, fp := range p.Files {
		if fp == nil {
			continue
		}
		s.Files = append(s.Files, BuildFile(fp, p.Sharename))
	}
	return s
}

// BuildFile maps a file payload to a File. When an upload sub-object is
// present its put/post URLs are lifted into the File; sharename is stamped
// from context when the payload itself does not carry one.
func BuildFile(p *FilePayload, sharename string) *models.File {
	if p == nil {
		return nil
	}
	f := &models.File{
		Filename:    p.Filename,
		FileID:      p.FileID,
		Sharename:   sharename,
		Size:        p.Size,
		Created:     p.Created,
		Downloads:   p.Downloads,
		ReadyState:  models.ReadyState(p.ReadyState),
		GetURL:      p.GetURL,
		DownloadURL: p.DownloadURL,
	}
	if p.Upload != nil {
		f.PutUploadURL = p.Upload.PutURL
		f.PostUploadURL = p.Upload.PostURL
	}
	return f
}
