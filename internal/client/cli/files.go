package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sharebox/internal/client/api"
	"github.com/dmitrijs2005/sharebox/internal/filex"
)

// downloadsDir names the subdirectory downloads land in.
const downloadsDir = "downloads"

// Upload sends a local file into a share. Without a sharename a fresh share
// is created around it.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: upload <path> [sharename]")
		return nil
	}
	req := api.UploadRequest{Filename: args[0]}
	if len(args) > 1 {
		req.Sharename = args[1]
	}

	file, err := a.session.UploadFile(ctx, req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Uploaded %s to share %s as file %d", file.Filename, file.Sharename, file.FileID))
	return nil
}

// Download fetches a file's bytes into the downloads directory.
func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: download <sharename> <fileid>")
		return nil
	}
	fileID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		printlnFn("fileid must be numeric:", args[1])
		return nil
	}

	file, err := a.session.GetFile(ctx, args[0], fileID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	data, err := a.session.GetFileContents(ctx, args[0], fileID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	dir, err := filex.EnsureSubDir(downloadsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteBlob(dir, file.Filename, data)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Saved %d bytes to %s", len(data), path))
	return nil
}

// RemoveFile destroys one file record.
func (a *App) RemoveFile(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: rmfile <sharename> <fileid>")
		return nil
	}
	fileID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		printlnFn("fileid must be numeric:", args[1])
		return nil
	}

	ok, err := a.session.DestroyFile(ctx, args[0], fileID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if !ok {
		printlnFn("File was not destroyed")
		return nil
	}
	printlnFn("Destroyed file", args[1])
	return nil
}
