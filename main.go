package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/log"
)

var logger = log.New("raytracer")

func main() {
	// Values in .env become defaults for every EnvVar-bound flag
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using stochastic ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "notice",
			Usage:  "debug, info, notice, warning or error",
			EnvVar: "RAYTRACER_LOG_LEVEL",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image",
			Description: `
Render a single frame. Samples are split between workers which each render
the whole frame into a private buffer; the buffers are summed, averaged and
gamma corrected. A quality preset sets the sample count and vertical
resolution; explicit flags override it.

The frame is written to --out (by extension: png, jpg, gif, tif, bmp, ppm) and,
when --s3-key is set, uploaded to the bucket named by S3_BUCKET.`,
			Flags:  renderFlags(),
			Action: renderAction,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes and quality presets",
			Action: scenesAction,
		},
	}
	return app
}

func setupLogging(ctx *cli.Context) error {
	level, err := log.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "scene, s", Value: "cornell", Usage: "built-in scene name", EnvVar: "RAYTRACER_SCENE"},
		cli.StringFlag{Name: "preset, p", Usage: "quality preset: low, medium, high or ultra", EnvVar: "RAYTRACER_PRESET"},
		cli.IntFlag{Name: "width", Usage: "frame width (default: height times the camera aspect ratio)", EnvVar: "RAYTRACER_WIDTH"},
		cli.IntFlag{Name: "height", Usage: "frame height (default: preset height or 400)", EnvVar: "RAYTRACER_HEIGHT"},
		cli.IntFlag{Name: "spp", Usage: "samples per pixel (default: preset or scene value)", EnvVar: "RAYTRACER_SPP"},
		cli.IntFlag{Name: "depth", Usage: "maximum bounces per path (default: scene value)", EnvVar: "RAYTRACER_DEPTH"},
		cli.IntFlag{Name: "workers, j", Usage: "number of workers (default: logical CPU count)", EnvVar: "RAYTRACER_WORKERS"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "base seed for workers and scene layout", EnvVar: "RAYTRACER_SEED"},
		cli.Float64Flag{Name: "gamma", Value: 2.0, Usage: "output gamma, 1 keeps linear values", EnvVar: "RAYTRACER_GAMMA"},
		cli.StringFlag{Name: "partition", Value: "samples", Usage: "samples, scanlines or auto", EnvVar: "RAYTRACER_PARTITION"},
		cli.BoolFlag{Name: "sequential", Usage: "run all workers on one goroutine", EnvVar: "RAYTRACER_SEQUENTIAL"},
		cli.StringFlag{Name: "textures", Value: "assets", Usage: "directory holding image textures", EnvVar: "RAYTRACER_TEXTURES"},
		cli.StringFlag{Name: "out, o", Usage: "output file (default: output/<scene>/render_<timestamp>.png)", EnvVar: "RAYTRACER_OUT"},
		cli.StringFlag{Name: "s3-key", Usage: "also upload the frame under this object key", EnvVar: "RAYTRACER_S3_KEY"},
	}
}
