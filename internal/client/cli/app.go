package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/dmitrijs2005/sharebox/internal/client/api"
	"github.com/dmitrijs2005/sharebox/internal/client/config"
	"github.com/dmitrijs2005/sharebox/internal/client/models"
	"github.com/dmitrijs2005/sharebox/internal/client/repositories"
	"github.com/dmitrijs2005/sharebox/internal/logging"
)

// sessionAPI is the slice of the api.Session surface the CLI drives.
// Tests substitute a fake.
type sessionAPI interface {
	Login(ctx context.Context) (*api.LoginResult, error)
	HasToken() bool
	User() *models.User
	MyUserData(ctx context.Context) (*models.User, error)
	GetShares(ctx context.Context, opts *api.ListOptions) ([]*models.Share, error)
	GetShare(ctx context.Context, name string) (*models.Share, error)
	CreateShare(ctx context.Context, title string) (*models.Share, error)
	UpdateShare(ctx context.Context, name string, title *string) (*models.Share, error)
	DestroyShare(ctx context.Context, name string) (bool, error)
	GetFile(ctx context.Context, sharename string, fileID int64) (*models.File, error)
	UploadFile(ctx context.Context, req api.UploadRequest) (*models.File, error)
	DestroyFile(ctx context.Context, sharename string, fileID int64) (bool, error)
	GetFileContents(ctx context.Context, sharename string, fileID int64) ([]byte, error)
}

// newSessionFn is a test seam for session construction.
var newSessionFn = func(cfg *config.Config, creds api.Credentials, log logging.Logger) (sessionAPI, error) {
	return api.NewSession(api.SessionConfig{
		BaseURL:     cfg.BaseURL,
		Credentials: creds,
		HTTPClient:  &http.Client{Timeout: cfg.RequestTimeout},
		Logger:      log,
	})
}

type App struct {
	config  *config.Config
	log     logging.Logger
	repos   *repositories.Repositories
	session sessionAPI
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewDefault(c.Verbose)

	repos, err := repositories.InitDatabase(ctx, c.MirrorDBPath)
	if err != nil {
		log.Error(ctx, "error initializing share mirror", "error", err)
		return nil, err
	}

	return &App{
		config: c,
		log:    log,
		repos:  repos,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the mirror database handle.
func (a *App) Close() {
	if a.repos != nil && a.repos.DB != nil {
		_ = a.repos.DB.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.HasToken()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not logged in"
	}
	if u := a.session.User(); u != nil && u.Email != "" {
		return u.Email
	}
	return "logged in"
}
