package cmdflags

import (
	"github.com/urfave/cli/v2"
)

func Catalog(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "catalog",
		Aliases:     []string{"c"},
		Usage:       "Path to the catalog database",
		Destination: out,
		Value:       *out,
	}
}

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Usage:       "Address to bind and expose the API",
		Destination: out,
		Value:       *out,
	}
}
