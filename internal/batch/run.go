package batch

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	cookbook "github.com/opengeos/pyqgis-cookbook"
	"github.com/opengeos/pyqgis-cookbook/internal/logging"
	"github.com/opengeos/pyqgis-cookbook/internal/mdstat"
)

// Result is the outcome of converting one document.
type Result struct {
	Target   Target
	Title    string
	Outline  mdstat.Outline
	Prose    int
	Code     int
	Duration time.Duration
	// Err is nil when both outputs were written.
	Err error
	// Trace is the diagnostic trace attached to Err.
	Trace string
}

// Report collects the results of a run in discovery order.
type Report struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// OK reports whether every document converted.
func (r Report) OK() bool { return r.Failed == 0 }

// Failures returns the failed results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Run converts every document matched by cfg. A returned error means the run
// could not start or was cancelled; per-document failures are only recorded
// in the report.
func Run(ctx context.Context, cfg Config, logger glog.Logger) (Report, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	rels, err := Discover(ctx, cfg.RSTDir, cfg.Pattern)
	if err != nil {
		return Report{}, err
	}
	logger.Info("discovered documents", "rst_dir", cfg.RSTDir, "count", len(rels))

	opts := cfg.ConvertOptions()
	convert := func(src []byte, title string) (*cookbook.Document, error) {
		return cookbook.ConvertBytes(src, title, opts...)
	}
	results := make([]Result, len(rels))
	jobs := make(chan int)

	workers := min(cfg.Workers, len(rels))
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = convertOne(cfg.Target(rels[i]), convert, logger)
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range rels {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()

	report := Report{Results: results[:dispatched]}
	for _, res := range report.Results {
		if res.Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	logger.Info("batch finished", "succeeded", report.Succeeded, "failed", report.Failed)

	if dispatched < len(rels) {
		return report, ctx.Err()
	}
	return report, nil
}

// convertFunc converts one source document under the given fallback title.
type convertFunc func(src []byte, title string) (*cookbook.Document, error)

func convertOne(t Target, convert convertFunc, logger glog.Logger) (res Result) {
	res.Target = t
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = goerrors.New(fmt.Sprintf("panic converting %s: %v", t.Rel, r), goerrors.CategoryInternal).
				WithTextCode(TextCodeConvertFailed)
			res.Trace = string(debug.Stack())
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			logger.Error("conversion failed", "file", t.Rel, "error", res.Err.Error())
		}
	}()

	logger.Info("converting", "file", t.Rel)

	src, err := os.ReadFile(t.Source)
	if err != nil {
		res.fail(err, goerrors.CategoryCommand, TextCodeReadFailed, "read "+t.Source)
		return res
	}
	doc, err := convert(src, cookbook.FallbackTitle(t.Rel))
	if err != nil {
		res.fail(err, goerrors.CategoryCommand, TextCodeConvertFailed, "convert "+t.Rel)
		return res
	}
	res.Title = doc.Title

	md, err := stage(t.Markdown, doc.WriteMarkdown)
	if err != nil {
		res.fail(err, goerrors.CategoryCommand, TextCodeMarkdownWriteFailed, "write markdown for "+t.Rel)
		return res
	}
	nb, err := stage(t.Notebook, doc.WriteNotebook)
	if err != nil {
		md.discard()
		res.fail(err, goerrors.CategoryCommand, TextCodeNotebookWriteFailed, "write notebook for "+t.Rel)
		return res
	}
	if err := md.commit(); err != nil {
		nb.discard()
		res.fail(err, goerrors.CategoryCommand, TextCodeMarkdownWriteFailed, "write markdown for "+t.Rel)
		return res
	}
	if err := nb.commit(); err != nil {
		os.Remove(t.Markdown)
		res.fail(err, goerrors.CategoryCommand, TextCodeNotebookWriteFailed, "write notebook for "+t.Rel)
		return res
	}

	res.Outline = mdstat.Analyze([]byte(doc.Markdown))
	res.Prose, res.Code = doc.Notebook.Counts()
	logger.Info("converted",
		"file", t.Rel,
		"markdown", t.Markdown,
		"notebook", t.Notebook,
		"prose_cells", res.Prose,
		"code_cells", res.Code,
		"headings", len(res.Outline.Headings),
		"code_blocks", res.Outline.CodeBlocks,
		"links", res.Outline.Links,
	)
	return res
}

func (r *Result) fail(err error, category goerrors.Category, code, message string) {
	e := goerrors.Wrap(err, category, message).WithTextCode(code).WithStackTrace()
	r.Err = e
	r.Trace = e.ErrorWithStack()
}
