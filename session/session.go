// Package session carries the active user through request handling.
package session

import (
	"context"
	"errors"
	"strings"
)

// ErrNoSession is returned when a context carries no active user
var ErrNoSession = errors.New("no active session")

// Context identifies the active user of a request
type Context struct {
	Username string
}

// New builds a session for username
func New(username string) (Context, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Context{}, ErrNoSession
	}
	return Context{Username: username}, nil
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying s
func WithContext(ctx context.Context, s Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx
func FromContext(ctx context.Context) (Context, error) {
	s, ok := ctx.Value(ctxKey{}).(Context)
	if !ok || s.Username == "" {
		return Context{}, ErrNoSession
	}
	return s, nil
}
