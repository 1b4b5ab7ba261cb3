package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/scene"
)

func scenesAction(ctx *cli.Context) error {
	writeSceneTable(ctx.App.Writer)
	fmt.Fprintln(ctx.App.Writer)
	writePresetTable(ctx.App.Writer)
	return nil
}

func writeSceneTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Name", "Group", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.Render()
}

func writePresetTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Preset", "Samples", "Height"})
	for _, p := range scene.Presets() {
		table.Append([]string{p.Name, fmt.Sprintf("%d", p.SamplesPerPixel), fmt.Sprintf("%d", p.Height)})
	}
	table.Render()
}
