package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/internal/logutil"
)

type (
	// UserSource resolves a principal by its unique email.
	UserSource interface {
		FindUserByEmail(ctx context.Context, email string) (catalog.User, error)
	}

	// SecurityRealm gates sensitive handlers behind Basic credentials.
	// It only ever reads from the user source.
	SecurityRealm struct {
		users UserSource
		cache UserCache
	}

	ctxKey byte
)

var userKey = ctxKey(1)

// NewRealm builds a realm over the given user source. cache may be nil,
// in which case every request hits the source directly.
func NewRealm(users UserSource, cache UserCache) *SecurityRealm {
	return &SecurityRealm{users: users, cache: cache}
}

// WithUser returns a copy of ctx carrying u as the authenticated
// principal for this request.
func WithUser(ctx context.Context, u catalog.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser extracts the principal attached by Protect, if any.
func CurrentUser(ctx context.Context) (catalog.User, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return catalog.User{}, false
	}
	return v.(catalog.User), true
}

// Owns is the authorization predicate for mutating operations on owned
// resources: the principal may touch the resource iff it is the owner.
func Owns(principalID, ownerID int64) bool {
	return principalID == ownerID
}

// Protect wraps sensitive so that it only runs for requests carrying
// valid Basic credentials. On success the resolved user, with the
// password hash stripped, is attached to the request context. Every
// failure yields the same generic 401, the distinguishing reason is
// only logged.
func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logutil.GetOrDefault(ctx)
		creds, ok := CredentialsFromRequest(r)
		if !ok {
			log.Warn().Msg("Authorization header missing or malformed")
			denyAccess(w)
			return
		}
		user, err := s.resolve(ctx, creds.Email)
		if err != nil {
			log.Warn().Err(err).Str("email", creds.Email).Msg("Unknown user")
			denyAccess(w)
			return
		}
		if !Verify(creds.Secret, user.Password) {
			log.Warn().Str("email", creds.Email).Msg("Password verification failed")
			denyAccess(w)
			return
		}
		user.Password = ""
		sensitive.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
	})
}

func (s *SecurityRealm) resolve(ctx context.Context, email string) (catalog.User, error) {
	if s.cache != nil {
		if user, found := s.cache.Get(ctx, email); found {
			return user, nil
		}
	}
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return catalog.User{}, err
	}
	if s.cache != nil {
		s.cache.Put(ctx, user)
	}
	return user, nil
}

func denyAccess(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="courseshelf", charset="UTF-8"`)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
}
