package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"golang.org/x/net/publicsuffix"
)

const cookieSaveTimeout = 5 * time.Second

// storedCookie is the persisted form of a backend session cookie.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitzero"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"httpOnly,omitempty"`
}

// PersistentJar is a cookie jar whose backend-origin cookies survive restarts.
// Cookies set by the backend are mirrored to the session repository.
type PersistentJar struct {
	mu       sync.Mutex
	jar      *cookiejar.Jar
	origin   *url.URL
	cookies  map[string]storedCookie
	sessions repository.SessionRepository
	logger   *slog.Logger
}

// NewPersistentJar creates an empty jar for the backend origin
func NewPersistentJar(origin *url.URL, sessions repository.SessionRepository, logger *slog.Logger) (*PersistentJar, error) {
	jar, err := newJar()
	if err != nil {
		return nil, err
	}

	return &PersistentJar{
		jar:      jar,
		origin:   origin,
		cookies:  make(map[string]storedCookie),
		sessions: sessions,
		logger:   logger,
	}, nil
}

func newJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	return jar, nil
}

// Load restores the persisted cookies into the jar, dropping expired ones
func (j *PersistentJar) Load(ctx context.Context) error {
	data, err := j.sessions.LoadCookies(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		j.logger.WarnContext(ctx, "Stored session cookies are unreadable, ignoring", slog.Any("error", err))

		return nil
	}

	now := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()

	restored := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		j.cookies[c.Name] = c
		restored = append(restored, c.httpCookie())
	}
	j.jar.SetCookies(j.origin, restored)

	return nil
}

// SetCookies implements http.CookieJar
func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	j.jar.SetCookies(u, cookies)
	if u.Host != j.origin.Host {
		j.mu.Unlock()

		return
	}

	now := time.Now()
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(j.cookies, c.Name)

			continue
		}
		j.cookies[c.Name] = fromHTTPCookie(c, now)
	}
	snapshot := j.snapshotLocked()
	j.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), cookieSaveTimeout)
	defer cancel()
	if err := j.save(ctx, snapshot); err != nil {
		j.logger.Warn("Failed to persist session cookies", slog.Any("error", err))
	}
}

// Cookies implements http.CookieJar
func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.jar.Cookies(u)
}

// Reset drops every cookie, in memory and in the store
func (j *PersistentJar) Reset(ctx context.Context) error {
	jar, err := newJar()
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.jar = jar
	j.cookies = make(map[string]storedCookie)
	j.mu.Unlock()

	return j.sessions.DeleteCookies(ctx)
}

func (j *PersistentJar) snapshotLocked() []storedCookie {
	snapshot := make([]storedCookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		snapshot = append(snapshot, c)
	}

	return snapshot
}

func (j *PersistentJar) save(ctx context.Context, snapshot []storedCookie) error {
	if len(snapshot) == 0 {
		return j.sessions.DeleteCookies(ctx)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "encode session cookies")
	}

	return j.sessions.SaveCookies(ctx, data)
}

func fromHTTPCookie(c *http.Cookie, now time.Time) storedCookie {
	expires := c.Expires
	if c.MaxAge > 0 {
		expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	}

	return storedCookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

func (c storedCookie) httpCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}
