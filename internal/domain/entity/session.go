package entity

import "context"

// Session is the verified caller of a request.
type Session struct {
	UserID   string
	Role     UserRole
	FullName string
}

func (s Session) IsAdmin() bool {
	return s.Role == UserRoleAdmin
}

// Actor names the session user for activity logs.
func (s Session) Actor() string {
	if s.FullName != "" {
		return s.FullName
	}
	if s.UserID != "" {
		return s.UserID
	}
	return SystemActor
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// ActorFromContext returns the acting user name, or SystemActor without a session.
func ActorFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Actor()
	}
	return SystemActor
}
