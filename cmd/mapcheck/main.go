// Command mapcheck validates the game's TMX maps: every map must load, build
// a world and only link to maps and spawn points that exist.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"
)

var errInvalidMaps = errors.New("maps are invalid")

func main() {
	cmd := &cli.Command{
		Name:  "mapcheck",
		Usage: "validate map files and the transitions between them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: "assets/levels",
				Usage: "directory holding the .tmx files",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "re-check whenever a map file changes",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	check := func() Report {
		r := Check(os.DirFS(dir), ".")
		r.Print(os.Stdout)
		return r
	}

	r := check()
	if !cmd.Bool("watch") {
		if !r.OK() {
			return errInvalidMaps
		}
		return nil
	}

	log.Printf("watching %s", dir)
	return watch(ctx, dir, func() { check() })
}
