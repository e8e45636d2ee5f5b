package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/auth"
	"github.com/andrebq/courseshelf/internal/cmdflags"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var catalogPath string
	return &cli.Command{
		Name:  "catalog",
		Usage: "Administer a catalog without going through the API",
		Flags: []cli.Flag{
			cmdflags.Catalog(&catalogPath),
		},
		Subcommands: []*cli.Command{
			initCmd(&catalogPath),
			registerCmd(&catalogPath),
		},
	}
}

func initCmd(catalogPath *string) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create an empty catalog with the full schema",
		Action: func(ctx *cli.Context) error {
			ctl, err := catalog.Open(ctx.Context, *catalogPath, true)
			if err != nil {
				return err
			}
			return ctl.Close()
		},
	}
}

func registerCmd(catalogPath *string) *cli.Command {
	var firstName, lastName, email string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user in the given catalog (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the user to register",
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "first-name",
				Usage:       "First name of the user to register",
				Destination: &firstName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "last-name",
				Usage:       "Last name of the user to register",
				Destination: &lastName,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			hash, err := auth.NewHasher(auth.DefaultCost).Hash(password)
			if err != nil {
				return err
			}
			ctl, err := catalog.Open(ctx.Context, *catalogPath, true)
			if err != nil {
				return err
			}
			defer ctl.Close()
			_, created, err := ctl.CreateUser(ctx.Context, catalog.User{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  hash,
			})
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("user not created, %v is already tied to an account", email)
			}
			return nil
		},
	}
}
