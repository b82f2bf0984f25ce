package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KSP08-life/document-processing-assistant/constants"
	"github.com/KSP08-life/document-processing-assistant/internal/acquire"
	"github.com/KSP08-life/document-processing-assistant/internal/classify"
	"github.com/KSP08-life/document-processing-assistant/internal/common"
	"github.com/KSP08-life/document-processing-assistant/internal/extract"
)

// Processor coordinates acquisition (pages -> text), classification and
// field extraction for one document at a time.
type Processor struct {
	Logger *slog.Logger
	Source *acquire.Source
}

// Result is the complete outcome for one document: the aggregated text, the
// classification and the extracted metadata. It is produced once and not
// mutated afterwards.
type Result struct {
	DocumentID     uuid.UUID
	SourcePath     string
	Format         constants.Format
	Text           string
	Pages          int
	Classification classify.Result
	Metadata       *extract.Record
	Duration       time.Duration
}

func NewProcessor(source *acquire.Source, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Source: source}
}

// ProcessFile reads a document from disk, picks the format from the file
// extension, and runs the full sequence.
func (p *Processor) ProcessFile(ctx context.Context, path string, progress acquire.ProgressFunc) (Result, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}

	res, err := p.Process(ctx, data, format, progress)
	res.SourcePath = path
	return res, err
}

// Process runs acquisition, classification and extraction over in-memory
// document bytes. Acquisition failure aborts the document; classification
// and extraction cannot fail.
func (p *Processor) Process(ctx context.Context, data []byte, format constants.Format, progress acquire.ProgressFunc) (Result, error) {
	start := time.Now()
	id := uuid.New()
	ctx = common.WithDocumentID(ctx, id.String())

	text, pages, err := p.Source.Text(ctx, data, format, progress)
	if err != nil {
		p.Logger.Error("processor.acquire.failed", "document_id", id, "format", format, "err", err)
		return Result{DocumentID: id, Format: format}, err
	}
	p.Logger.Info("processor.acquire.ok",
		"document_id", id,
		"format", format,
		"pages", pages,
		"text_bytes", len(text),
	)

	cls := classify.Classify(text)
	p.Logger.Info("processor.classify.ok",
		"document_id", id,
		"type", cls.Type,
		"confidence", cls.Confidence,
	)

	rec := extract.Metadata(string(cls.Type), text)
	p.Logger.Info("processor.extract.ok",
		"document_id", id,
		"type", rec.DocumentType(),
		"fields", rec.Len(),
	)

	return Result{
		DocumentID:     id,
		Format:         format,
		Text:           text,
		Pages:          pages,
		Classification: cls,
		Metadata:       rec,
		Duration:       time.Since(start),
	}, nil
}
