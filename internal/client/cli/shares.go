package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
	"github.com/dmitrijs2005/sharebox/internal/client/repositories/shares"
	"github.com/dmitrijs2005/sharebox/internal/dbx"
)

func shareLine(s *models.Share) string {
	title := "(untitled)"
	if s.Title != nil {
		title = *s.Title
	}
	return fmt.Sprintf("%-12s %-30s %d file(s)", s.Sharename, title, len(s.Files))
}

// Shares fetches the account's shares, prints them and refreshes the local
// mirror.
func (a *App) Shares(ctx context.Context) error {
	list, err := a.session.GetShares(ctx, nil)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, s := range list {
		printlnFn(shareLine(s))
	}
	printlnFn(fmt.Sprintf("%d share(s)", len(list)))

	if err := a.mirrorShares(ctx, list); err != nil {
		a.log.Warn(ctx, "mirror refresh failed", "error", err)
	}
	return nil
}

// Cached lists the local mirror without touching the network.
func (a *App) Cached(ctx context.Context) error {
	list, err := a.repos.Shares.GetAll(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, s := range list {
		printlnFn(shareLine(s))
	}
	printlnFn(fmt.Sprintf("%d mirrored share(s)", len(list)))
	return nil
}

// ShowShare fetches one share and prints its files.
func (a *App) ShowShare(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: show <sharename>")
		return nil
	}
	share, err := a.session.GetShare(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(shareLine(share))
	for _, f := range share.Files {
		printlnFn(fmt.Sprintf("  [%d] %-25s %8d bytes  %s", f.FileID, f.Filename, f.Size, f.ReadyState))
	}

	if err := a.repos.Shares.Upsert(ctx, share); err != nil {
		a.log.Warn(ctx, "mirror upsert failed", "sharename", share.Sharename, "error", err)
	}
	return nil
}

// CreateShare creates a share, optionally titled with the joined arguments.
func (a *App) CreateShare(ctx context.Context, args []string) error {
	share, err := a.session.CreateShare(ctx, strings.Join(args, " "))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created", share.Sharename)

	if err := a.repos.Shares.Upsert(ctx, share); err != nil {
		a.log.Warn(ctx, "mirror upsert failed", "sharename", share.Sharename, "error", err)
	}
	return nil
}

// RetitleShare sets a share's title, or clears it when no title is given.
func (a *App) RetitleShare(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: retitle <sharename> [title]")
		return nil
	}
	var title *string
	if len(args) > 1 {
		joined := strings.Join(args[1:], " ")
		title = &joined
	}

	share, err := a.session.UpdateShare(ctx, args[0], title)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated", share.Sharename)

	if err := a.repos.Shares.Upsert(ctx, share); err != nil {
		a.log.Warn(ctx, "mirror upsert failed", "sharename", share.Sharename, "error", err)
	}
	return nil
}

// RemoveShare destroys a share and drops it from the mirror.
func (a *App) RemoveShare(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: rm <sharename>")
		return nil
	}
	ok, err := a.session.DestroyShare(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if !ok {
		printlnFn("Share was not destroyed:", args[0])
		return nil
	}
	printlnFn("Destroyed", args[0])

	if err := a.repos.Shares.Delete(ctx, args[0]); err != nil {
		a.log.Warn(ctx, "mirror delete failed", "sharename", args[0], "error", err)
	}
	return nil
}

// mirrorShares rewrites the mirror content from a fresh listing, in a
// single transaction.
func (a *App) mirrorShares(ctx context.Context, list []*models.Share) error {
	return dbx.WithTx(ctx, a.repos.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := shares.NewSQLiteRepository(tx)
		for _, s := range list {
			if err := repo.Upsert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
}
