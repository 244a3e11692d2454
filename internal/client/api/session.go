package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
	"github.com/dmitrijs2005/sharebox/internal/logging"
)

// timeNow is a test seam for the clock used to compute token expiry.
var timeNow = time.Now

var (
	shareNameRe = regexp.MustCompile(`^[\w-]+$`)
	tokenRe     = regexp.MustCompile(`^[\w.-]+$`)
)

// SessionConfig carries everything a Session is constructed from.
// Credentials must come from NewCredentials; HTTPClient and Logger are
// optional and default to a plain http.Client and a no-op logger.
type SessionConfig struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  Doer
	Logger      logging.Logger
}

// Session is the single entry point to the sharing service. It owns the
// credentials, the current token state, the user snapshot and the share
// cache.
//
// A Session issues one blocking request per operation and keeps no internal
// locking: it assumes a single caller at a time. Embed it behind your own
// mutex if several goroutines must use one Session.
type Session struct {
	creds Credentials
	rest  *transport
	log   logging.Logger

	accessToken           string
	accessTokenExpiration time.Time
	refreshToken          string

	user   *models.User
	shares map[string]*models.Share
}

// NewSession validates the configuration and returns a ready Session. No
// network traffic happens until the first operation.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Credentials == (Credentials{}) {
		return nil, &ValidationError{Field: "credentials", Reason: "must be built with NewCredentials"}
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	rest, err := newTransport(cfg.BaseURL, httpClient)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		creds:  cfg.Credentials,
		rest:   rest,
		log:    log,
		shares: make(map[string]*models.Share),
	}, nil
}

// Login posts the credentials to /users/login. On success the access token,
// its expiration (now + server TTL), the refresh token and the user snapshot
// are all set together; a failed login leaves the previous state untouched.
func (s *Session) Login(ctx context.Context) (*LoginResult, error) {
	body := loginRequest{APIKey: s.creds.apiKey, Email: s.creds.email, Password: s.creds.password}

	var result LoginResult
	if _, err := s.rest.postJSON(ctx, "/users/login", nil, body, &result); err != nil {
		return nil, err
	}

	if !tokenRe.MatchString(result.AccessToken) {
		return nil, &ProtocolError{Endpoint: "/users/login", Reason: "missing or malformed accesstoken"}
	}
	ttl, err := result.Expires.Int64()
	if err != nil {
		return nil, &ValidationError{Field: "expires", Reason: "must be numeric"}
	}

	s.accessToken = result.AccessToken
	s.accessTokenExpiration = timeNow().Add(time.Duration(ttl) * time.Second)
	s.refreshToken = result.RefreshToken
	s.user = BuildUser(result.User)

	s.log.Debug(ctx, "logged in", "expires_in", ttl)
	return &result, nil
}

// HasToken reports whether a login has populated the token state.
func (s *Session) HasToken() bool { return s.accessToken != "" }

// User returns the current user snapshot, nil before the first login.
func (s *Session) User() *models.User { return s.user }

// ensureToken logs in when no token is held yet. A present token is used
// as-is even past its recorded expiration; the service answers 401 and the
// caller decides. This mirrors the service's documented client behavior:
// login on absence, never refresh on staleness.
func (s *Session) ensureToken(ctx context.Context) error {
	if s.HasToken() {
		return nil
	}
	_, err := s.Login(ctx)
	return err
}

// authQuery returns query values carrying the access token.
func (s *Session) authQuery() url.Values {
	return url.Values{"accesstoken": {s.accessToken}}
}

// MyUserData fetches /users/me, replaces the user snapshot and returns it.
func (s *Session) MyUserData(ctx context.Context) (*models.User, error) {
	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}
	var payload UserPayload
	if err := s.rest.getJSON(ctx, "/users/me", s.authQuery(), &payload); err != nil {
		return nil, err
	}
	s.user = BuildUser(&payload)
	return s.user, nil
}

// ListOptions are the optional paging parameters of GetShares. Nil fields
// are omitted from the request.
type ListOptions struct {
	Skip  *int
	Limit *int
}

// Int is a convenience for building ListOptions literals.
func Int(n int) *int { return &n }

// GetShares fetches the account's shares and upserts each one into the
// cache. The returned slice is the post-call cache content, in no
// particular order.
func (s *Session) GetShares(ctx context.Context, opts *ListOptions) ([]*models.Share, error) {
	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}

	query := s.authQuery()
	if opts != nil {
		if opts.Skip != nil {
			query.Set("skip", strconv.Itoa(*opts.Skip))
		}
		if opts.Limit != nil {
			query.Set("limit", strconv.Itoa(*opts.Limit))
		}
	}

	var payloads []*SharePayload
	if err := s.rest.getJSON(ctx, "/shares", query, &payloads); err != nil {
		return nil, err
	}
	for _, p := range payloads {
		s.AddShare(BuildShare(p))
	}
	return s.Shares(), nil
}

// GetShare fetches one share by name, no auth required, and upserts it into
// the cache. An empty or malformed name fails fast with ErrInvalidShareName
// before any network call.
func (s *Session) GetShare(ctx context.Context, name string) (*models.Share, error) {
	if !shareNameRe.MatchString(name) {
		return nil, ErrInvalidShareName
	}
	var payload SharePayload
	if err := s.rest.getJSON(ctx, "/shares/"+name, nil, &payload); err != nil {
		return nil, err
	}
	share := BuildShare(&payload)
	s.AddShare(share)
	return share, nil
}

// CreateShare creates a new share with an optional title (empty means no
// title) and caches it.
func (s *Session) CreateShare(ctx context.Context, title string) (*models.Share, error) {
	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}
	var payload SharePayload
	if _, err := s.rest.postJSON(ctx, "/shares/create", s.authQuery(), createShareRequest{Title: title}, &payload); err != nil {
		return nil, err
	}
	share := BuildShare(&payload)
	s.AddShare(share)
	return share, nil
}

// UpdateShare sets or clears the title of a share: a nil title removes any
// existing title rather than being an error. The refreshed share is cached
// and returned.
func (s *Session) UpdateShare(ctx context.Context, name string, title *string) (*models.Share, error) {
	if !shareNameRe.MatchString(name) {
		return nil, ErrInvalidShareName
	}
	if err := s.ensureToken(ctx); err != nil {
		return nil, err
	}
	var payload SharePayload
	if _, err := s.rest.postJSON(ctx, "/shares/"+name+"/update", s.authQuery(), updateShareRequest{Title: title}, &payload); err != nil {
		return nil, err
	}
	share := BuildShare(&payload)
	s.AddShare(share)
	return share, nil
}

// DestroyShare deletes a share. On success the cache entry is dropped and
// true is returned. Failures are soft: a refused or empty server response
// yields (false, nil), matching the service's destroy semantics. Only a
// failed implicit login or an invalid name surfaces as an error.
func (s *Session) DestroyShare(ctx context.Context, name string) (bool, error) {
	if !shareNameRe.MatchString(name) {
		return false, ErrInvalidShareName
	}
	if err := s.ensureToken(ctx); err != nil {
		return false, err
	}
	data, err := s.rest.postJSON(ctx, "/shares/"+name+"/destroy", s.authQuery(), nil, nil)
	if err != nil {
		s.log.Warn(ctx, "destroy share refused", "sharename", name, "error", err)
		return false, nil
	}
	if emptyBody(data) {
		return false, nil
	}
	delete(s.shares, name)
	return true, nil
}

// GetFile fetches one file's metadata without auth. The result is not
// cached.
func (s *Session) GetFile(ctx context.Context, sharename string, fileID int64) (*models.File, error) {
	if !shareNameRe.MatchString(sharename) {
		return nil, ErrInvalidShareName
	}
	var payload FilePayload
	if err := s.rest.getJSON(ctx, s.filePath(sharename, fileID, ""), nil, &payload); err != nil {
		return nil, err
	}
	return BuildFile(&payload, sharename), nil
}

// filePath builds /files/{share}/{fileid}{suffix}.
func (s *Session) filePath(sharename string, fileID int64, suffix string) string {
	return fmt.Sprintf("/files/%s/%d%s", sharename, fileID, suffix)
}

// AddShare upserts a share into the cache by its sharename. Nil shares and
// shares without a name are ignored.
func (s *Session) AddShare(share *models.Share) {
	if share == nil || share.Sharename == "" {
		return
	}
	s.shares[share.Sharename] = share
}

// Shares returns cached shares. With no arguments it returns every cached
// share in unspecified order. With names it returns the lookups for exactly
// those names, in the order requested, with nil for any name not present.
func (s *Session) Shares(names ...string) []*models.Share {
	if len(names) == 0 {
		all := make([]*models.Share, 0, len(s.shares))
		for _, sh := range s.shares {
			all = append(all, sh)
		}
		return all
	}
	result := make([]*models.Share, len(names))
	for i, name := range names {
		result[i] = s.shares[name]
	}
	return result
}
