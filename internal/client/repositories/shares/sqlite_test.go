package shares

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE shares (
  sharename TEXT PRIMARY KEY,
  title     TEXT,
  created   INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE files (
  sharename   TEXT    NOT NULL,
  fileid      INTEGER NOT NULL,
  filename    TEXT    NOT NULL DEFAULT '',
  size        INTEGER NOT NULL DEFAULT 0,
  created     INTEGER NOT NULL DEFAULT 0,
  downloads   INTEGER NOT NULL DEFAULT 0,
  readystate  TEXT    NOT NULL DEFAULT '',
  getturl     TEXT    NOT NULL DEFAULT '',
  downloadurl TEXT    NOT NULL DEFAULT '',
  position    INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (sharename, fileid)
);
`)
	require.NoError(t, err)
	return db
}

func title(s string) *string { return &s }

func sampleShare() *models.Share {
	return &models.Share{
		Sharename: "928PBdA",
		Title:     title("Test Share"),
		Created:   1322847473,
		Files: []*models.File{
			{Filename: "hello.c", FileID: 0, Size: 13, Created: 1322847473, ReadyState: models.ReadyStateUploaded},
			{Filename: "world.c", FileID: 1, Size: 7, Created: 1322847474, ReadyState: models.ReadyStateRemote},
		},
	}
}

func TestUpsert_InsertAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleShare()))

	got, err := r.GetByName(ctx, "928PBdA")
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Test Share", *got.Title)
	assert.EqualValues(t, 1322847473, got.Created)
	require.Len(t, got.Files, 2)
	assert.Equal(t, "hello.c", got.Files[0].Filename)
	assert.Equal(t, "928PBdA", got.Files[0].Sharename)
	assert.Equal(t, models.ReadyStateRemote, got.Files[1].ReadyState)
}

func TestUpsert_ReplacesFiles(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleShare()))

	// Second fetch of the same share came back with one file and no title.
	updated := &models.Share{
		Sharename: "928PBdA",
		Created:   1322847473,
		Files: []*models.File{
			{Filename: "only.c", FileID: 5, Size: 3},
		},
	}
	require.NoError(t, r.Upsert(ctx, updated))

	got, err := r.GetByName(ctx, "928PBdA")
	require.NoError(t, err)
	assert.Nil(t, got.Title)
	require.Len(t, got.Files, 1)
	assert.EqualValues(t, 5, got.Files[0].FileID)
}

func TestUpsert_IgnoresNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, nil))
	require.NoError(t, r.Upsert(ctx, &models.Share{}))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleShare()))
	require.NoError(t, r.Delete(ctx, "928PBdA"))

	_, err := r.GetByName(ctx, "928PBdA")
	require.ErrorIs(t, err, ErrNotFound)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&n))
	assert.Equal(t, 0, n)

	// Deleting again is not an error.
	require.NoError(t, r.Delete(ctx, "928PBdA"))
}

func TestGetAll_Ordered(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Share{Sharename: "bbb", Created: 2}))
	require.NoError(t, r.Upsert(ctx, &models.Share{Sharename: "aaa", Created: 1}))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "aaa", all[0].Sharename)
	assert.Equal(t, "bbb", all[1].Sharename)
}
