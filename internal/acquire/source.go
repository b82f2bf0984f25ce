package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KSP08-life/document-processing-assistant/constants"
	"github.com/KSP08-life/document-processing-assistant/internal/common"
	"github.com/KSP08-life/document-processing-assistant/internal/ocr"
	"github.com/KSP08-life/document-processing-assistant/internal/pdf"
)

// Config holds acquisition behavior flags.
type Config struct {
	Language    string  // OCR language, default "eng"
	RenderScale float64 // PDF page render scale, default 2.0
	Enhance     bool    // run images through the enhancement pre-pass
}

// Source turns a single image or a multi-page PDF into one aggregated text
// stream. Pages are OCRed strictly in page order, one at a time; the
// progress callback spans the whole document.
type Source struct {
	engine     ocr.Engine
	rasterizer pdf.Rasterizer
	cfg        Config
	logger     *slog.Logger
}

func NewSource(engine ocr.Engine, rasterizer pdf.Rasterizer, cfg Config, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.RenderScale <= 0 {
		cfg.RenderScale = 2.0
	}
	return &Source{engine: engine, rasterizer: rasterizer, cfg: cfg, logger: logger}
}

// Text acquires the aggregated text for one document and returns it with the
// page count. Any failure aborts the whole document: no partial text is ever
// returned.
func (s *Source) Text(ctx context.Context, data []byte, format constants.Format, progress ProgressFunc) (string, int, error) {
	switch format {
	case constants.IMAGE:
		return s.imageText(ctx, data, progress)
	case constants.PDF:
		return s.pdfText(ctx, data, progress)
	default:
		return "", 0, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
}

func (s *Source) imageText(ctx context.Context, image []byte, progress ProgressFunc) (string, int, error) {
	image, err := s.maybeEnhance(image)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", common.ErrAcquisition, err)
	}

	txt, err := s.engine.Recognize(ctx, image, s.cfg.Language, perPage(monotonic(progress), 0, 1))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", common.ErrAcquisition, err)
	}
	return ocr.Normalize(txt), 1, nil
}

func (s *Source) pdfText(ctx context.Context, doc []byte, progress ProgressFunc) (string, int, error) {
	pages, err := s.rasterizer.Render(ctx, doc, s.cfg.RenderScale)
	if err != nil {
		return "", 0, fmt.Errorf("%w: render pdf: %w", common.ErrAcquisition, err)
	}
	pageCount := len(pages)
	s.logger.Debug("pdf rendered", "pages", pageCount, "scale", s.cfg.RenderScale)

	guarded := monotonic(progress)
	texts := make([]string, 0, pageCount)
	for i, image := range pages {
		// A newly started document cancels this one between page iterations.
		if err := ctx.Err(); err != nil {
			return "", 0, fmt.Errorf("%w: %w", common.ErrAcquisition, err)
		}

		txt, err := s.engine.Recognize(ctx, image, s.cfg.Language, perPage(guarded, i, pageCount))
		if err != nil {
			return "", 0, fmt.Errorf("%w: page %d: %w", common.ErrAcquisition, i+1, err)
		}
		texts = append(texts, ocr.Normalize(txt))
	}

	return strings.Join(texts, "\n"), pageCount, nil
}

func (s *Source) maybeEnhance(image []byte) ([]byte, error) {
	if !s.cfg.Enhance {
		return image, nil
	}
	enhanced, err := ocr.EnhanceForOCR(image)
	if err != nil {
		// enhancement is best-effort; OCR the original rather than failing
		s.logger.Warn("image enhancement failed, using original", "error", err)
		return image, nil
	}
	return enhanced, nil
}

// perPage scopes an already-guarded document-level callback to one page's
// engine progress.
func perPage(report ProgressFunc, pageIndex, pageCount int) ocr.ProgressFunc {
	if report == nil {
		return nil
	}
	return func(p int) {
		report(pageProgress(pageIndex, pageCount, p))
	}
}
