package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/KSP08-life/document-processing-assistant/internal/acquire"
	"github.com/KSP08-life/document-processing-assistant/internal/async"
	"github.com/KSP08-life/document-processing-assistant/internal/common"
	"github.com/KSP08-life/document-processing-assistant/internal/export"
	"github.com/KSP08-life/document-processing-assistant/internal/extract"
	"github.com/KSP08-life/document-processing-assistant/internal/ocr"
	"github.com/KSP08-life/document-processing-assistant/internal/pdf"
	"github.com/KSP08-life/document-processing-assistant/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		format  = flag.String("export", "", "export format: json | csv | xlsx (default from EXPORT_FORMAT)")
		outDir  = flag.String("out", "", "output directory for exports (default from EXPORT_DIR)")
		lang    = flag.String("lang", "", "OCR language (default from OCR_LANGUAGE)")
		enhance = flag.Bool("enhance", false, "enhance images before OCR")
		workers = flag.Int("workers", 1, "process files concurrently with this many workers")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		printError("usage: docassist [flags] <file> [<file>...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// .env is optional
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *outDir != "" {
		cfg.Export.OutDir = *outDir
	}
	if *lang != "" {
		cfg.OCR.Language = *lang
	}
	if *enhance {
		cfg.OCR.Enhance = true
	}
	if err := cfg.Validate(); err != nil {
		printError("invalid configuration: %v\n", err)
		os.Exit(1)
	}

	engine := ocr.NewTesseractEngine(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)
	rasterizer := pdf.NewPdftoppmRasterizer(pdf.Config{
		Pdftoppm: cfg.PDF.Pdftoppm,
		MaxPages: cfg.PDF.MaxPages,
	}, logger)
	source := acquire.NewSource(engine, rasterizer, acquire.Config{
		Language:    cfg.OCR.Language,
		RenderScale: cfg.PDF.RenderScale,
		Enhance:     cfg.OCR.Enhance,
	}, logger)
	proc := pipeline.NewProcessor(source, logger)

	if *workers > 1 {
		os.Exit(runQueued(proc, cfg, *workers, flag.Args(), logger))
	}

	failed := 0
	for _, path := range flag.Args() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.OCR.Timeout)
		res, err := proc.ProcessFile(ctx, path, func(percent int) {
			logger.Debug("progress", "path", path, "percent", percent)
		})
		cancel()
		if err != nil {
			logger.Error("processing failed", "path", path, "error", err)
			failed++
			continue
		}

		fmt.Printf("%s: %s (%d%% confidence), %d page(s)\n",
			filepath.Base(path), res.Classification.Type.Display(), res.Classification.Confidence, res.Pages)
		for _, f := range res.Metadata.Fields() {
			fmt.Printf("  %s: %s\n", f.Name, export.FormatValue(f.Value))
		}

		if err := writeExport(cfg.Export, path, res.Metadata); err != nil {
			logger.Error("export failed", "path", path, "error", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// runQueued fans the files out over a worker queue. Each document owns its
// own progress and result; only the exit code is shared.
func runQueued(proc *pipeline.Processor, cfg *common.Config, workers int, paths []string, logger *slog.Logger) int {
	var (
		mu     sync.Mutex
		failed int
	)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(workers),
		async.WithProcessTimeout(cfg.OCR.Timeout),
		async.WithResultFunc(func(job async.Job, res pipeline.Result, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				return
			}
			fmt.Printf("%s: %s (%d%% confidence), %d page(s)\n",
				filepath.Base(job.Path), res.Classification.Type.Display(), res.Classification.Confidence, res.Pages)
			if err := writeExport(cfg.Export, job.Path, res.Metadata); err != nil {
				logger.Error("export failed", "path", job.Path, "error", err)
				failed++
			}
		}),
	)
	for _, path := range paths {
		_ = queue.Enqueue(context.Background(), async.Job{Path: path, SubmittedAt: time.Now()})
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(len(paths))*cfg.OCR.Timeout)
	queue.Shutdown(shutdownCtx)
	cancel()

	if failed > 0 {
		return 1
	}
	return 0
}

func writeExport(cfg common.ExportConfig, sourcePath string, rec *extract.Record) error {
	var (
		data []byte
		err  error
	)
	switch cfg.Format {
	case "json":
		data, err = export.JSON(rec)
	case "csv":
		data, err = export.CSV(rec)
	case "xlsx":
		data, err = export.XLSX(rec)
	default:
		return fmt.Errorf("unsupported export format: %q", cfg.Format)
	}
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	out := filepath.Join(cfg.OutDir, base+"-metadata."+cfg.Format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
