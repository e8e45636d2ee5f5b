package testutil

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/auth"
	"golang.org/x/crypto/bcrypt"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireWritableCatalog opens a fresh catalog under a temp directory.
func AcquireWritableCatalog(ctx context.Context, t TestLog, name string) (*catalog.Control, func()) {
	dir, err := ioutil.TempDir("", "courseshelf-tests")
	if err != nil {
		t.Fatal(err)
	}
	abspath := filepath.Join(dir, name+".db")
	ctl, err := catalog.Open(ctx, abspath, true)
	if err != nil {
		t.Fatal(err)
	}
	return ctl, func() {
		err := ctl.Close()
		if err != nil {
			t.Log("unable to close catalog", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

// RegisterUser stores a user with the given plaintext secret, hashed at
// the minimum bcrypt cost to keep tests fast.
func RegisterUser(ctx context.Context, t TestLog, ctl *catalog.Control, firstName, lastName, email, secret string) catalog.User {
	hasher := auth.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(secret)
	if err != nil {
		t.Fatal(err)
	}
	user, created, err := ctl.CreateUser(ctx, catalog.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("user already registered: " + email)
	}
	return user
}
