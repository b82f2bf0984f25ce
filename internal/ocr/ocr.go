package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ProgressFunc receives recognition progress for one image as a
// non-decreasing integer in [0,100]. It may be invoked zero or more times
// before Recognize returns.
type ProgressFunc func(percent int)

// Engine converts a raster image into recognized text. Implementations are
// black boxes: bytes in, text out, optional progress feedback.
type Engine interface {
	Recognize(ctx context.Context, image []byte, lang string, progress ProgressFunc) (string, error)
}

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language    string // default "eng"
	TessdataDir string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// TesseractEngine shells out to tesseract. It is the default Engine.
type TesseractEngine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseractEngine(cfg Config, logger *slog.Logger) *TesseractEngine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &TesseractEngine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize writes the image to a scratch file and runs
// tesseract <file> stdout -l <lang>. An empty lang falls back to the
// configured default. Progress is reported at start and completion only;
// tesseract gives no incremental signal over stdout.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, lang string, progress ProgressFunc) (string, error) {
	if lang == "" {
		lang = e.cfg.Language
	}
	if progress != nil {
		progress(0)
	}

	tmpDir, err := os.MkdirTemp("", "dpa-ocr-*")
	if err != nil {
		return "", fmt.Errorf("ocr scratch dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove ocr scratch dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	in := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(in, image, 0o600); err != nil {
		return "", fmt.Errorf("ocr scratch file: %w", err)
	}

	args := []string{in, "stdout", "-l", lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		e.logger.Error("tesseract failed", "error", err, "stderr_bytes", len(errb))
		return "", fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	if progress != nil {
		progress(100)
	}
	return txt, nil
}
