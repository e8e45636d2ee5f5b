package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/steinfletcher/apitest"
	"golang.org/x/crypto/bcrypt"
)

type sourceFunc func(ctx context.Context, email string) (catalog.User, error)

func (f sourceFunc) FindUserByEmail(ctx context.Context, email string) (catalog.User, error) {
	return f(ctx, email)
}

func basicHeader(email, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+secret))
}

func singleUserSource(t *testing.T, email, secret string) (UserSource, *uint32) {
	hash, err := NewHasher(bcrypt.MinCost).Hash(secret)
	if err != nil {
		t.Fatal(err)
	}
	var lookups uint32
	return sourceFunc(func(ctx context.Context, got string) (catalog.User, error) {
		atomic.AddUint32(&lookups, 1)
		if got != email {
			return catalog.User{}, catalog.UserNotFound{Email: got}
		}
		return catalog.User{ID: 7, FirstName: "X", LastName: "Ample", Email: email, Password: hash}, nil
	}), &lookups
}

func TestProtect(t *testing.T) {
	source, _ := singleUserSource(t, "x@example.com", "pw1")
	realm := NewRealm(source, nil)
	var count uint32
	var sawHash bool
	protected := realm.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint32(&count, 1)
		user, ok := CurrentUser(r.Context())
		if !ok {
			t.Error("principal missing from request context")
		}
		sawHash = sawHash || user.Password != ""
		http.Error(w, "OK", http.StatusOK)
	}))

	// no credentials at all
	apitest.Handler(protected).Get("/").
		Expect(t).Status(http.StatusUnauthorized).End()
	// unknown user
	apitest.Handler(protected).Get("/").
		Header("Authorization", basicHeader("y@example.com", "pw1")).
		Expect(t).Status(http.StatusUnauthorized).End()
	// wrong password
	apitest.Handler(protected).Get("/").
		Header("Authorization", basicHeader("x@example.com", "pw2")).
		Expect(t).Status(http.StatusUnauthorized).End()
	// the real thing
	apitest.Handler(protected).Get("/").
		Header("Authorization", basicHeader("x@example.com", "pw1")).
		Expect(t).Status(http.StatusOK).End()

	if count != 1 {
		t.Fatalf("protected handler should have run exactly once, ran %v times", count)
	}
	if sawHash {
		t.Fatal("password hash must be stripped before the principal reaches handlers")
	}
}

func TestProtectDenialsLookIdentical(t *testing.T) {
	source, _ := singleUserSource(t, "x@example.com", "pw1")
	realm := NewRealm(source, nil)
	protected := realm.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OK", http.StatusOK)
	}))

	// whatever the internal reason, the caller sees the same body
	for _, hdr := range []string{
		"",
		basicHeader("y@example.com", "pw1"),
		basicHeader("x@example.com", "wrong"),
	} {
		req := apitest.Handler(protected).Get("/")
		if hdr != "" {
			req.Header("Authorization", hdr)
		}
		req.Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"message":"Access Denied"}`).
			End()
	}
}

func TestProtectWithUserCache(t *testing.T) {
	source, lookups := singleUserSource(t, "x@example.com", "pw1")
	realm := NewRealm(source, InMemoryUserCache())
	protected := realm.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OK", http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		apitest.Handler(protected).Get("/").
			Header("Authorization", basicHeader("x@example.com", "pw1")).
			Expect(t).Status(http.StatusOK).End()
	}
	if got := atomic.LoadUint32(lookups); got != 1 {
		t.Fatalf("cache should keep lookups at 1, got %v", got)
	}
}

func TestOwns(t *testing.T) {
	if !Owns(7, 7) {
		t.Fatal("a principal owns its own resource")
	}
	if Owns(7, 8) {
		t.Fatal("a principal never owns another principal's resource")
	}
}
