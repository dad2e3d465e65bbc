package api

import "sync"

// TokenHolder is the process-wide session token, read by every outgoing
// authenticated request. It is replaced wholesale on login and logout,
// never partially mutated, so readers always see either the old or the new
// token. The store is the only writer.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// NewTokenHolder creates an empty holder (anonymous)
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token implements TokenSource
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Set replaces the token
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Clear drops the token
func (h *TokenHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}
