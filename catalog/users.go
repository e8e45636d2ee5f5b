package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

type (
	// User is a registered principal. Password holds the bcrypt hash,
	// never the plaintext, and is excluded from any JSON rendering.
	User struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"emailAddress"`
		Password  string `json:"-"`
	}
)

// CreateUser registers a new user unless the email is already taken.
// The uniqueness check relies on the unique index over email, so two
// concurrent registrations of the same address cannot both succeed.
// When the email is taken, the existing user is returned and the
// second return value is false.
func (c *Control) CreateUser(ctx context.Context, u User) (User, bool, error) {
	if !c.writeable {
		return User{}, false, ReadOnlyCatalog{}
	}
	err := c.db.QueryRowContext(ctx,
		`insert into users (first_name, last_name, email, password) values (?, ?, ?, ?) returning user_id`,
		u.FirstName, u.LastName, u.Email, u.Password).Scan(&u.ID)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			existing, ferr := c.FindUserByEmail(ctx, u.Email)
			if ferr != nil {
				return User{}, false, ferr
			}
			return existing, false, nil
		}
		return User{}, false, fmt.Errorf("unable to register user %v, cause %w", u.Email, err)
	}
	return u, true, nil
}

// FindUserByEmail performs an exact-match lookup over the unique email
// column. The returned user includes the stored password hash, callers
// exposing the user must strip it first.
func (c *Control) FindUserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := c.db.QueryRowContext(ctx,
		`select user_id, first_name, last_name, email, password from users where email = ?`,
		email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{Email: email}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v from catalog, cause %w", email, err)
	}
	return u, nil
}
