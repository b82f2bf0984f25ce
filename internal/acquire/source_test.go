package acquire

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KSP08-life/document-processing-assistant/constants"
	"github.com/KSP08-life/document-processing-assistant/internal/common"
	"github.com/KSP08-life/document-processing-assistant/internal/ocr"
)

type fakeEngine struct {
	texts   map[string]string // keyed by image bytes
	failOn  string
	calls   int
	onCall  func(call int)
	reports []int // progress values the engine emits per page
}

func (f *fakeEngine) Recognize(_ context.Context, image []byte, _ string, progress ocr.ProgressFunc) (string, error) {
	f.calls++
	if f.onCall != nil {
		f.onCall(f.calls)
	}
	key := string(image)
	if f.failOn != "" && key == f.failOn {
		return "", errors.New("engine exploded")
	}
	reports := f.reports
	if reports == nil {
		reports = []int{0, 50, 100}
	}
	if progress != nil {
		for _, p := range reports {
			progress(p)
		}
	}
	return f.texts[key], nil
}

type fakeRasterizer struct {
	pages [][]byte
	err   error
	scale float64
}

func (f *fakeRasterizer) Render(_ context.Context, _ []byte, scale float64) ([][]byte, error) {
	f.scale = scale
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestSourceImageText(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"img": "  Hello   World  \n"}}
	src := NewSource(engine, &fakeRasterizer{}, Config{}, nil)

	var seen []int
	text, pages, err := src.Text(context.Background(), []byte("img"), constants.IMAGE, func(p int) {
		seen = append(seen, p)
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
	if text != "Hello World" {
		t.Errorf("text = %q, want normalized %q", text, "Hello World")
	}
	if len(seen) == 0 || seen[len(seen)-1] != 100 {
		t.Errorf("progress reports = %v, want final 100", seen)
	}
}

func TestSourcePDFTextOrderAndSeparator(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"p1": "page one",
		"p2": "page two",
		"p3": "page three",
	}}
	raster := &fakeRasterizer{pages: [][]byte{[]byte("p1"), []byte("p2"), []byte("p3")}}
	src := NewSource(engine, raster, Config{}, nil)

	text, pages, err := src.Text(context.Background(), []byte("%PDF"), constants.PDF, nil)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	want := "page one\npage two\npage three"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if raster.scale != 2.0 {
		t.Errorf("render scale = %v, want default 2.0", raster.scale)
	}
	if engine.calls != 3 {
		t.Errorf("engine called %d times, want 3", engine.calls)
	}
}

func TestSourcePDFProgressSpansDocument(t *testing.T) {
	engine := &fakeEngine{
		texts: map[string]string{"p1": "a", "p2": "b"},
	}
	raster := &fakeRasterizer{pages: [][]byte{[]byte("p1"), []byte("p2")}}
	src := NewSource(engine, raster, Config{}, nil)

	var seen []int
	_, _, err := src.Text(context.Background(), []byte("%PDF"), constants.PDF, func(p int) {
		seen = append(seen, p)
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	// engine emits 0,50,100 per page:
	// page 1 -> 0,25,50; page 2 -> 50 (suppressed as equal is kept),75,100
	last := -1
	for _, p := range seen {
		if p < last {
			t.Fatalf("progress regressed in %v", seen)
		}
		last = p
	}
	if last != 100 {
		t.Errorf("final progress = %d in %v, want 100", last, seen)
	}
	if seen[0] != 0 {
		t.Errorf("first progress = %d, want 0", seen[0])
	}
}

func TestSourcePDFPageFailureAbortsDocument(t *testing.T) {
	engine := &fakeEngine{
		texts:  map[string]string{"p1": "ok"},
		failOn: "p2",
	}
	raster := &fakeRasterizer{pages: [][]byte{[]byte("p1"), []byte("p2"), []byte("p3")}}
	src := NewSource(engine, raster, Config{}, nil)

	text, pages, err := src.Text(context.Background(), []byte("%PDF"), constants.PDF, nil)
	if !errors.Is(err, common.ErrAcquisition) {
		t.Fatalf("err = %v, want ErrAcquisition", err)
	}
	if text != "" || pages != 0 {
		t.Errorf("partial output returned: text=%q pages=%d", text, pages)
	}
	if engine.calls != 2 {
		t.Errorf("engine called %d times, want 2 (stop at first failure)", engine.calls)
	}
}

func TestSourcePDFRenderFailureAbortsDocument(t *testing.T) {
	src := NewSource(&fakeEngine{}, &fakeRasterizer{err: fmt.Errorf("not a pdf")}, Config{}, nil)

	_, _, err := src.Text(context.Background(), []byte("junk"), constants.PDF, nil)
	if !errors.Is(err, common.ErrAcquisition) {
		t.Fatalf("err = %v, want ErrAcquisition", err)
	}
}

func TestSourcePDFCancellationBetweenPages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	engine := &fakeEngine{
		texts: map[string]string{"p1": "a", "p2": "b", "p3": "c"},
		onCall: func(call int) {
			if call == 1 {
				cancel() // a newer document invalidates this one mid-flight
			}
		},
	}
	raster := &fakeRasterizer{pages: [][]byte{[]byte("p1"), []byte("p2"), []byte("p3")}}
	src := NewSource(engine, raster, Config{}, nil)

	text, _, err := src.Text(ctx, []byte("%PDF"), constants.PDF, nil)
	if !errors.Is(err, common.ErrAcquisition) {
		t.Fatalf("err = %v, want ErrAcquisition", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled in chain", err)
	}
	if text != "" {
		t.Errorf("partial text returned: %q", text)
	}
	if engine.calls != 1 {
		t.Errorf("engine called %d times, want 1 (cancelled before page 2)", engine.calls)
	}
}

func TestSourceUnsupportedFormat(t *testing.T) {
	src := NewSource(&fakeEngine{}, &fakeRasterizer{}, Config{}, nil)
	_, _, err := src.Text(context.Background(), []byte("x"), constants.Format("DOCX"), nil)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
