package catalog

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func tempCatalog(ctx context.Context, t interface {
	Fatal(...interface{})
	Log(...interface{})
}, name string) (*Control, func()) {
	dir, err := ioutil.TempDir("", "courseshelf-tests")
	if err != nil {
		t.Fatal(err)
	}
	abspath := filepath.Join(dir, name+".db")
	ctl, err := Open(ctx, abspath, true)
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

func TestReadOnlyCatalog(t *testing.T) {
	ctx := context.Background()
	dir, err := ioutil.TempDir("", "courseshelf-tests")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	abspath := filepath.Join(dir, "ro.db")
	ctl, err := Open(ctx, abspath, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctl.Close(); err != nil {
		t.Fatal(err)
	}
	ctl, err = Open(ctx, abspath, false)
	if err != nil {
		t.Fatal(err)
	}
	defer ctl.Close()
	if ctl.Writeable() {
		t.Fatal("catalog should be read-only")
	}
	_, _, err = ctl.CreateUser(ctx, User{FirstName: "a", LastName: "b", Email: "a@b.c", Password: "x"})
	if _, ok := err.(ReadOnlyCatalog); !ok {
		t.Fatalf("expected ReadOnlyCatalog, got %v", err)
	}
}
