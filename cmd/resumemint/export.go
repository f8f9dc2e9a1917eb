package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resumemint/internal/export"
	"github.com/jonathan/resumemint/internal/render"
	"github.com/jonathan/resumemint/internal/store"
	"github.com/jonathan/resumemint/internal/templates"
)

var (
	exportProfile  string
	exportDataDir  string
	exportTemplate string
	exportOutDir   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a saved draft to PDF",
	Long: `Render a saved draft through a headless browser and package it as an
A4 PDF. With --template all, every registered template is exported, one
PDF per template.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", "", "Profile whose draft to export (required)")
	exportCmd.Flags().StringVar(&exportDataDir, "data-dir", "data", "Directory holding draft files")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template to export (defaults to the draft's template; \"all\" exports every template)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", ".", "Output directory for PDF files")
	_ = exportCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fs, err := store.NewFileStore(exportDataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	adapter := store.NewAdapter(fs)

	state, err := adapter.Load(ctx, exportProfile)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}
	if state.Document == nil {
		return fmt.Errorf("no draft saved for profile %q", exportProfile)
	}

	var ids []string
	switch exportTemplate {
	case "all":
		ids = templates.IDs()
	case "":
		id := state.TemplateID
		if id == "" {
			id = templates.DefaultTemplate
		}
		ids = []string{id}
	default:
		if !templates.IsValid(exportTemplate) {
			return fmt.Errorf("unknown template %q (known: %v)", exportTemplate, templates.IDs())
		}
		ids = []string{exportTemplate}
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	exporter := export.NewExporter()

	// Each export drives its own browser; keep a couple in flight.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)

	for _, id := range ids {
		g.Go(func() error {
			tree, err := render.Render(state.Document, id, state.Premium)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", id, err)
			}

			pdf, err := exporter.ExportPDF(gctx, tree)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", id, err)
			}

			out := filepath.Join(exportOutDir, fmt.Sprintf("%s-%s.pdf", exportProfile, id))
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Printf("Exported %s\n", out)
			return nil
		})
	}

	return g.Wait()
}
