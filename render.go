package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/output"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

// defaultHeight is used when neither a preset nor --height is given
const defaultHeight = 400

// renderOptions holds the render flags. Zero values mean "not set".
type renderOptions struct {
	Scene      string
	Preset     string
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
	Workers    int
	Seed       int64
	Gamma      float64
	Partition  string
	Sequential bool
	TextureDir string
	Out        string
	S3Key      string
}

func optionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		Scene:      ctx.String("scene"),
		Preset:     ctx.String("preset"),
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Samples:    ctx.Int("spp"),
		MaxDepth:   ctx.Int("depth"),
		Workers:    ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
		Gamma:      ctx.Float64("gamma"),
		Partition:  ctx.String("partition"),
		Sequential: ctx.Bool("sequential"),
		TextureDir: ctx.String("textures"),
		Out:        ctx.String("out"),
		S3Key:      ctx.String("s3-key"),
	}
}

func renderAction(ctx *cli.Context) error {
	opts := optionsFromContext(ctx)

	s, err := buildScene(opts)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(opts, s)
	if err != nil {
		return err
	}

	rt := renderer.NewRaytracer(cfg)
	rt.SetScene(s)
	rt.SetCamera(s.Camera)

	pic, stats, err := rt.Render()
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	path := opts.Out
	if path == "" {
		path = defaultOutputPath(opts.Scene, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := output.SaveFile(pic, path); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", path)

	if opts.S3Key != "" {
		sink, err := output.NewS3Sink(output.S3ConfigFromEnv())
		if err != nil {
			return err
		}
		if err := sink.Upload(context.Background(), pic, opts.S3Key); err != nil {
			return err
		}
	}
	return nil
}

// frameHeight resolves the vertical resolution from the flag, then the preset,
// then the default
func frameHeight(opts renderOptions) (int, error) {
	if opts.Height > 0 {
		return opts.Height, nil
	}
	if opts.Preset != "" {
		preset, err := scene.LookupPreset(opts.Preset)
		if err != nil {
			return 0, err
		}
		return preset.Height, nil
	}
	return defaultHeight, nil
}

// buildScene constructs the named scene. When a width is given the camera is
// built for width over the resolved height.
func buildScene(opts renderOptions) (*scene.Scene, error) {
	sceneOpts := scene.Options{Seed: opts.Seed, TextureDir: opts.TextureDir}
	if opts.Width > 0 {
		height, err := frameHeight(opts)
		if err != nil {
			return nil, err
		}
		sceneOpts.AspectRatio = float64(opts.Width) / float64(height)
	}
	return scene.New(opts.Scene, sceneOpts)
}

// resolveConfig layers scene defaults, then the preset, then explicit flags
func resolveConfig(opts renderOptions, s *scene.Scene) (renderer.Config, error) {
	cfg := renderer.DefaultConfig()
	if s.Sampling.SamplesPerPixel > 0 {
		cfg.SamplesPerPixel = s.Sampling.SamplesPerPixel
	}
	if s.Sampling.MaxDepth > 0 {
		cfg.MaxDepth = s.Sampling.MaxDepth
	}

	height, err := frameHeight(opts)
	if err != nil {
		return renderer.Config{}, err
	}
	cfg.Height = height
	if opts.Preset != "" {
		preset, err := scene.LookupPreset(opts.Preset)
		if err != nil {
			return renderer.Config{}, err
		}
		cfg.SamplesPerPixel = preset.SamplesPerPixel
	}

	if opts.Samples > 0 {
		cfg.SamplesPerPixel = opts.Samples
	}
	if opts.MaxDepth > 0 {
		cfg.MaxDepth = opts.MaxDepth
	}
	cfg.Width = opts.Width
	if cfg.Width <= 0 {
		cfg.Width = max(1, int(float64(cfg.Height)*s.Camera.AspectRatio()+0.5))
	}

	partition, err := renderer.ParsePartition(opts.Partition)
	if err != nil {
		return renderer.Config{}, err
	}
	cfg.Partition = partition
	cfg.NumWorkers = opts.Workers
	// The scene layout draws from opts.Seed, so workers start one past it
	cfg.Seed = opts.Seed + 1
	cfg.Gamma = opts.Gamma
	cfg.Sequential = opts.Sequential

	return cfg, cfg.Validate()
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Samples", "Rows", "Render time"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%d", w.Rows),
			w.Duration.String(),
		})
	}
	table.SetFooter([]string{
		stats.Partition.String(),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Height),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics (%dx%d, %d primary rays)\n%s",
		stats.Width, stats.Height, stats.PrimaryRays(), buf.String())
}
