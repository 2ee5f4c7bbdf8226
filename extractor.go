package takeoff

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/obrafacil/takeoff/annotation"
	"github.com/obrafacil/takeoff/quantity"
	"github.com/obrafacil/takeoff/report"
	"github.com/obrafacil/takeoff/source"
)

var (
	// ErrNoSource is returned when an Extractor has no document to read.
	ErrNoSource = errors.New("no document source")

	// ErrNoInterpreter is returned by Analyze when given a nil Interpreter.
	ErrNoInterpreter = errors.New("no interpreter")
)

// document is one input: a file path, raw bytes, or pre-loaded pages.
type document struct {
	name   string
	path   string
	data   []byte
	pages  []source.Page
	loaded bool
}

// load returns the selected pages of the document and any failures.
func (d document) load(opts ExtractOptions) ([]source.Page, []error) {
	if d.loaded {
		var pages []source.Page
		for _, p := range d.pages {
			if opts.wantsPage(p.Number) {
				pages = append(pages, p)
			}
		}
		return pages, nil
	}

	loadOpts := []source.Option{source.WithPages(opts.pages...)}
	if d.path != "" {
		return source.LoadFile(d.path, loadOpts...)
	}
	return source.Load(d.data, loadOpts...)
}

// pageJob is one page waiting for analysis.
type pageJob struct {
	file string
	page source.Page
}

// Extractor provides a fluent interface over the takeoff pipeline.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	docs []document

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		docs:    append([]document(nil), e.docs...),
		options: e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts processing to the given pages (1-indexed) of every
// document. Multiple calls are cumulative. Pages a document does not have
// are ignored.
//
// Example:
//
//	report, _, err := takeoff.Open("planta.pdf").Pages(1, 3).Report(ctx)
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// Concurrency sets how many pages are analysed in parallel. Values below
// one mean one.
func (e *Extractor) Concurrency(n int) *Extractor {
	newExt := e.clone()
	newExt.options.concurrency = max(1, n)
	return newExt
}

// UnitPreference sets the unit chosen for dimension values that read as
// both meters and centimeters.
func (e *Extractor) UnitPreference(p annotation.UnitPreference) *Extractor {
	newExt := e.clone()
	newExt.options.unitPreference = p
	return newExt
}

// Logger sets the logger used for progress and document failures. A nil
// logger restores the standard logger.
func (e *Extractor) Logger(l *logrus.Logger) *Extractor {
	newExt := e.clone()
	if l == nil {
		l = logrus.StandardLogger()
	}
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Facts loads every document and analyses the selected pages in parallel.
// Results keep document order and page order. A document or page that
// cannot be read becomes a warning; the error is reserved for a missing
// source and for cancellation of ctx.
func (e *Extractor) Facts(ctx context.Context) ([]report.PageFacts, []Warning, error) {
	if len(e.docs) == 0 {
		return nil, nil, ErrNoSource
	}
	log := e.options.logger

	var warnings []Warning
	var jobs []pageJob
	for _, doc := range e.docs {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}

		pages, errs := doc.load(e.options)
		for _, err := range errs {
			w := warningFromError(doc.name, err)
			log.WithFields(logrus.Fields{
				"file": doc.name,
				"page": w.Page,
			}).Warn(w.Message)
			warnings = append(warnings, w)
		}
		for _, p := range pages {
			jobs = append(jobs, pageJob{file: doc.name, page: p})
		}
	}

	facts, err := e.analyze(ctx, jobs)
	if err != nil {
		return nil, warnings, err
	}
	return facts, warnings, nil
}

// Report renders the text report of all qualifying pages. The report is
// empty when no page is a vector drawing.
//
// Example:
//
//	report, warnings, err := takeoff.Open("planta.pdf").Report(ctx)
//	if report == "" {
//	    // fall back to a raster-only interpretation
//	}
func (e *Extractor) Report(ctx context.Context) (string, []Warning, error) {
	facts, warnings, err := e.Facts(ctx)
	if err != nil {
		return "", warnings, err
	}

	rep := report.Summarize(facts)
	if rep == "" {
		e.options.logger.Debug("no page qualified for the vector report")
	}
	return rep, warnings, nil
}

// Analyze runs the whole flow: the report is handed to interp, and the
// model it returns is validated and its quantities derived. Validation
// findings are returned both in the result and as warnings.
func (e *Extractor) Analyze(ctx context.Context, interp Interpreter) (*quantity.Result, []Warning, error) {
	if interp == nil {
		return nil, nil, ErrNoInterpreter
	}

	rep, warnings, err := e.Report(ctx)
	if err != nil {
		return nil, warnings, err
	}

	m, err := interp.Interpret(ctx, rep)
	if err != nil {
		return nil, warnings, fmt.Errorf("interpreting report: %w", err)
	}

	res := quantity.Apply(m)
	for _, msg := range res.Warnings {
		warnings = append(warnings, Warning{Message: msg})
	}
	return &res, warnings, nil
}

// analyze runs AnalyzePage over jobs on a bounded pool of workers. Each
// worker writes only its own result slot, so results stay in job order.
// When ctx is cancelled no further jobs are dispatched.
func (e *Extractor) analyze(ctx context.Context, jobs []pageJob) ([]report.PageFacts, error) {
	results := make([]report.PageFacts, len(jobs))
	workers := min(max(1, e.options.concurrency), len(jobs))
	log := e.options.logger

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				job := jobs[i]
				facts := AnalyzePage(job.file, job.page, e.options.unitPreference)
				results[i] = facts

				log.WithFields(logrus.Fields{
					"file":       job.file,
					"page":       job.page.Number,
					"lines":      len(facts.Geometry.Lines),
					"texts":      len(facts.Text.Items),
					"dimensions": len(facts.Text.Dimensions),
				}).Debug("page analysed")
				if !facts.Qualifies() {
					log.WithFields(logrus.Fields{
						"file": job.file,
						"page": job.page.Number,
					}).Debug("page skipped: not a vector drawing")
				}
			}
		}()
	}

	var err error
dispatch:
	for i := range jobs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}
