package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/miniweb/controller"
	"github.com/npillmayer/miniweb/internal/raster"
	"github.com/npillmayer/miniweb/layout"
	"github.com/spf13/cobra"
)

func loadDocumentWithMeasurer(htmlPath string, measurer layout.TextMeasurer) (*controller.Controller, error) {
	htmlSrc, err := os.ReadFile(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", htmlPath, err)
	}
	var cssSrc []byte
	if cssFlag != "" {
		cssSrc, err = os.ReadFile(cssFlag)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", cssFlag, err)
		}
	}
	c := controller.New(measurer)
	c.Resize(widthFlag, heightFlag)
	if err := c.Load(string(htmlSrc), string(cssSrc)); err != nil {
		return nil, err
	}
	return c, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	c, err := loadDocumentWithMeasurer(args[0], raster.FallbackMeasurer{})
	if err != nil {
		return err
	}
	fmt.Println(c.Dump())
	return nil
}
