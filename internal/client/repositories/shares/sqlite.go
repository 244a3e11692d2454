package shares

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
	"github.com/dmitrijs2005/sharebox/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert replaces the share row and rewrites its file rows. File order is
// preserved through the position column.
func (r *SQLiteRepository) Upsert(ctx context.Context, share *models.Share) error {
	if share == nil || share.Sharename == "" {
		return nil
	}

	query := `INSERT INTO shares (sharename, title, created)
			VALUES (?, ?, ?)
			ON CONFLICT(sharename) DO UPDATE SET title = excluded.title, created = excluded.created`
	if _, err := r.db.ExecContext(ctx, query, share.Sharename, share.Title, share.Created); err != nil {
		return fmt.Errorf("failed to upsert share: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE sharename = ?`, share.Sharename); err != nil {
		return fmt.Errorf("failed to clear share files: %w", err)
	}

	for pos, f := range share.Files {
		if f == nil {
			continue
		}
		query := `INSERT INTO files (sharename, fileid, filename, size, created, downloads, readystate, getturl, downloadurl, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query,
			share.Sharename, f.FileID, f.Filename, f.Size, f.Created, f.Downloads, string(f.ReadyState), f.GetURL, f.DownloadURL, pos)
		if err != nil {
			return fmt.Errorf("failed to insert file: %w", err)
		}
	}
	return nil
}

// Delete removes a share and its files.
func (r *SQLiteRepository) Delete(ctx context.Context, sharename string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE sharename = ?`, sharename); err != nil {
		return fmt.Errorf("failed to delete share files: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE sharename = ?`, sharename); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}
	return nil
}

// GetByName returns one mirrored share, or ErrNotFound.
func (r *SQLiteRepository) GetByName(ctx context.Context, sharename string) (*models.Share, error) {
	row := r.db.QueryRowContext(ctx, `SELECT sharename, title, created FROM shares WHERE sharename = ?`, sharename)

	share, err := scanShare(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select share: %w", err)
	}

	files, err := r.filesFor(ctx, share.Sharename)
	if err != nil {
		return nil, err
	}
	share.Files = files
	return share, nil
}

// GetAll returns every mirrored share with its files.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.Share, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT sharename, title, created FROM shares ORDER BY sharename`)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var result []*models.Share
	for rows.Next() {
		share, err := scanShare(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		result = append(result, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	for _, share := range result {
		files, err := r.filesFor(ctx, share.Sharename)
		if err != nil {
			return nil, err
		}
		share.Files = files
	}
	return result, nil
}

func (r *SQLiteRepository) filesFor(ctx context.Context, sharename string) ([]*models.File, error) {
	query := `SELECT fileid, filename, size, created, downloads, readystate, getturl, downloadurl
			FROM files WHERE sharename = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, sharename)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		f := &models.File{Sharename: sharename}
		var readystate string
		err := rows.Scan(&f.FileID, &f.Filename, &f.Size, &f.Created, &f.Downloads, &readystate, &f.GetURL, &f.DownloadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		f.ReadyState = models.ReadyState(readystate)
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}
	return files, nil
}

func scanShare(scan func(dest ...any) error) (*models.Share, error) {
	share := &models.Share{}
	var title sql.NullString
	if err := scan(&share.Sharename, &title, &share.Created); err != nil {
		return nil, err
	}
	if title.Valid {
		share.Title = &title.String
	}
	return share, nil
}
