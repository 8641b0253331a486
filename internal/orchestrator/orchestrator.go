// Package orchestrator runs the translation pipeline: load, parse, estimate,
// translate, reconstruct, write. Execution is strictly sequential — one
// backend call at a time — and every failure is fatal. The output file is
// written only after every translation has succeeded, so a run either
// produces the fully reconstructed document or nothing at all.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/almamala/pagetran/internal/document"
	"github.com/almamala/pagetran/internal/placeholder"
	"github.com/almamala/pagetran/internal/translator"
)

type Config struct {
	InputPath  string
	OutputPath string
	SourceLang string
	TargetLang string
	// Fields lists the front-matter keys to translate, in order. Fields
	// absent from the document are skipped silently.
	Fields []string
	DryRun bool
}

// Report summarizes a run. CharCount is an estimate for cost visibility
// only: it sums the pre-translation lengths of the body and of the requested
// fields' raw values, and is reported unchanged even after translation.
type Report struct {
	CharCount  int
	OutputPath string
	DryRun     bool
}

type Runner struct {
	service translator.TranslationService
	svcCfg  translator.ServiceConfig
	// progress receives per-step status lines; os.Stderr in production.
	progress io.Writer
}

func New(service translator.TranslationService, svcCfg translator.ServiceConfig, progress io.Writer) *Runner {
	if progress == nil {
		progress = io.Discard
	}
	return &Runner{
		service:  service,
		svcCfg:   svcCfg,
		progress: progress,
	}
}

// DefaultOutputPath derives the destination when none is given: a
// subdirectory next to the input named after the target-language short code,
// keeping the original basename.
func DefaultOutputPath(inputPath, targetLang string) string {
	return filepath.Join(filepath.Dir(inputPath), document.ShortLang(targetLang), filepath.Base(inputPath))
}

func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	doc, err := document.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfg.InputPath, err)
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(cfg.InputPath, cfg.TargetLang)
	}

	report := &Report{
		CharCount:  estimateChars(doc, cfg.Fields),
		OutputPath: outputPath,
		DryRun:     cfg.DryRun,
	}

	if cfg.DryRun {
		return report, nil
	}

	fmt.Fprintf(r.progress, "Translating body\n")
	body, err := r.translateBody(ctx, doc.Body, cfg)
	if err != nil {
		return nil, err
	}

	translated := make(map[string]string)
	for _, field := range cfg.Fields {
		value, ok := doc.Fields[field]
		if !ok {
			continue
		}
		fmt.Fprintf(r.progress, "Translating field %q\n", field)
		res, err := r.translate(ctx, value, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to translate field %q: %w", field, err)
		}
		translated[field] = res
	}

	final := document.Reconstruct(doc.FrontMatterRaw, translated, body, cfg.TargetLang)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(final), 0644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	return report, nil
}

// translateBody shields shortcodes and template expressions from the backend
// before the call and puts them back afterwards.
func (r *Runner) translateBody(ctx context.Context, body string, cfg Config) (string, error) {
	protected, markers := placeholder.Protect(body)

	out, err := r.translate(ctx, protected, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to translate body: %w", err)
	}

	if missing := placeholder.Validate(out, markers); len(missing) > 0 {
		fmt.Fprintf(r.progress, "Warning: %d shortcode markers dropped by the backend\n", len(missing))
	}
	return placeholder.Restore(out, markers), nil
}

func (r *Runner) translate(ctx context.Context, text string, cfg Config) (string, error) {
	res, err := r.service.Translate(ctx, r.svcCfg, translator.TranslateRequest{
		Text:       text,
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
	})
	if err != nil {
		return "", err
	}
	return res.TranslatedText, nil
}

func estimateChars(doc *document.Document, fields []string) int {
	count := utf8.RuneCountInString(doc.Body)
	for _, field := range fields {
		if value, ok := doc.Fields[field]; ok {
			count += utf8.RuneCountInString(value)
		}
	}
	return count
}
