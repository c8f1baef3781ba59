package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"feedreader/api/dto/mappers"
)

func loadCmd() *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Load one feed and print the rendered entries",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "index",
				Aliases:  []string{"i"},
				Usage:    "Registry index of the feed",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "Output format: text, html or json",
			},
		},
		Action: func(ctx *cli.Context) error {
			format := ctx.String("format")
			if format != "text" && format != "html" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			rt, err := newRuntime(cfg, ctx.App.ErrWriter)
			if err != nil {
				return err
			}
			defer rt.Close()

			res, err := rt.widget.LoadFeed(ctx.Context, ctx.Int("index"))
			if err != nil {
				return err
			}
			if res.Err != nil {
				return res.Err
			}

			snap := rt.widget.Snapshot()
			out := ctx.App.Writer
			switch format {
			case "html":
				_, err = fmt.Fprintln(out, snap.HTML)
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(mappers.ToFeedContentResponse(snap, snap.Entries, 1, 0))
			}

			fmt.Fprintf(out, "%s (%d entries)\n\n", snap.SourceName, len(snap.Entries))
			for _, e := range snap.Entries {
				fmt.Fprintf(out, "%s\n  %s\n", e.Title, e.Link)
				if e.Excerpt != "" {
					fmt.Fprintf(out, "  %s\n", e.Excerpt)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
