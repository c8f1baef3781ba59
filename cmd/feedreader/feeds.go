package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"feedreader/api/dto/mappers"
)

func feedsCmd() *cli.Command {
	return &cli.Command{
		Name:  "feeds",
		Usage: "List the feed registry",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the registry as JSON",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			list := mappers.ToFeedListResponse(cfg.Feeds)
			if ctx.Bool("json") {
				enc := json.NewEncoder(ctx.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tNAME\tURL")
			for _, f := range list.Feeds {
				fmt.Fprintf(w, "%d\t%s\t%s\n", f.Index, f.Name, f.URL)
			}
			return w.Flush()
		},
	}
}
