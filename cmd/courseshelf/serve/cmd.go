package serve

import (
	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/api"
	"github.com/andrebq/courseshelf/catalog/auth"
	"github.com/andrebq/courseshelf/internal/cmdflags"
	"github.com/andrebq/courseshelf/internal/httpserver"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7008"
	catalogPath := "courseshelf.db"
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the courseshelf REST API over the given catalog",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.Catalog(&catalogPath),
		},
		Action: func(ctx *cli.Context) error {
			ctl, err := catalog.Open(ctx.Context, catalogPath, true)
			if err != nil {
				return err
			}
			defer ctl.Close()
			realm := auth.NewRealm(ctl, auth.InMemoryUserCache())
			handler := api.AsHandler(ctx.Context, ctl, realm, auth.NewHasher(auth.DefaultCost))
			return httpserver.Serve(ctx.Context, bindAddr, handler)
		},
	}
}
