package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/catalog"
)

// loadCatalog loads dir when set, else the embedded catalog.
func loadCatalog(ctx context.Context, dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Load(ctx)
	}
	return catalog.LoadDir(ctx, dir)
}

// writeOutput writes v as indented JSON to outFile, or to w when outFile is empty.
func writeOutput(w io.Writer, outFile string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outFile == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// checkFormat rejects output formats other than json and text.
func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("unknown --format %q (want json or text)", format)
}
