package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/miniweb/internal/raster"
	"github.com/spf13/cobra"
)

var (
	outFlag  string
	fontFlag string
)

var renderCmd = &cobra.Command{
	Use:   "render [html-file]",
	Short: "Rasterize the laid-out document to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&outFlag, "out", "out.png", "output PNG path")
	renderCmd.Flags().StringVar(&fontFlag, "font", "", "TTF font file path (falls back to a built-in bitmap font if empty or unloadable)")
}

func runRender(cmd *cobra.Command, args []string) error {
	measurer := raster.NewMeasurer(fontFlag)
	c, err := loadDocumentWithMeasurer(args[0], measurer)
	if err != nil {
		return err
	}

	arr := c.RenderArray()
	rz := raster.NewRasterizer(int(widthFlag), int(heightFlag), fontFlag)
	rz.Paint(arr)

	f, err := os.Create(outFlag)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outFlag, err)
	}
	defer f.Close()
	if err := rz.Encode(f); err != nil {
		return fmt.Errorf("encoding %s: %w", outFlag, err)
	}
	fmt.Printf("wrote %s\n", outFlag)
	return nil
}
