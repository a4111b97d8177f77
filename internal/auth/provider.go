package auth

import (
	"context"
	"errors"
	"sync"
)

// ErrNotSignedIn is returned while no session token is set.
var ErrNotSignedIn = errors.New("not signed in")

// SessionProvider resolves the current user from a settable session
// token. The sync engine polls CurrentUser while handlers call
// SetToken, so both take the lock.
type SessionProvider struct {
	mu     sync.RWMutex
	secret string
	token  string
}

func NewSessionProvider(secret string) *SessionProvider {
	return &SessionProvider{secret: secret}
}

// SetToken installs the session token. An empty token signs out.
func (p *SessionProvider) SetToken(token string) {
	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
}

// CurrentUser parses the installed token. ErrNotSignedIn when none is
// set.
func (p *SessionProvider) CurrentUser(ctx context.Context) (*User, error) {
	p.mu.RLock()
	token := p.token
	secret := p.secret
	p.mu.RUnlock()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return ParseUser(token, secret)
}
