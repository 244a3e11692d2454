package models

// Share is a named container of files. Identity is the Sharename; a Share
// value can be rebuilt at any time from a server response.
type Share struct {
	// Sharename is the unique key of the share.
	Sharename string

	// Title is the human-readable title. Nil means the share has no title,
	// which the server treats differently from an empty string.
	Title *string

	// Created is the creation time as a Unix timestamp in seconds.
	Created int64

	// Files holds the files of the share in the order the server returned
	// them. The order is not guaranteed stable across fetches.
	Files []*File
}

// FileByID returns the file with the given id, or nil if the share does not
// contain it.
func (s *Share) FileByID(fileID int64) *File {
	for _, f := range s.Files {
		if f != nil && f.FileID == fileID {
			return f
		}
	}
	return nil
}
