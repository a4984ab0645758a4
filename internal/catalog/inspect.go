package catalog

import (
	"context"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/studydeck/internal/progress"
)

// inspectLimit bounds how many PDFs are parsed at once.
const inspectLimit = 4

// Report is the result of checking one record's file.
type Report struct {
	Record Record `json:"record"`
	File   string `json:"file"`
	Exists bool   `json:"exists"`
	Size   int64  `json:"size"`
	Pages  int    `json:"pages"`
	Err    string `json:"error,omitempty"`
}

// OK reports whether the file exists and parsed as a PDF.
func (r Report) OK() bool { return r.Exists && r.Err == "" }

// Inspect checks every record's file under materialsDir: that it exists and
// that pdfcpu can read its page count. Page counts are for operators; the
// viewer never relies on them. Per-file problems are recorded in the report;
// the returned error is only set when ctx is cancelled.
func Inspect(ctx context.Context, materialsDir string, records []Record, reporter progress.Reporter) ([]Report, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reports := make([]Report, len(records))

	reporter.Start(len(records))
	defer reporter.Finish()

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inspectLimit)

	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = inspectOne(materialsDir, rec)

			mu.Lock()
			done++
			reporter.Update(done, rec.Title)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func inspectOne(materialsDir string, rec Record) Report {
	rep := Report{Record: rec}

	file, ok := FilePath(materialsDir, rec.Path)
	if !ok {
		rep.Err = "path is outside " + MaterialsPrefix
		return rep
	}
	rep.File = file

	info, err := os.Stat(file)
	if err != nil {
		rep.Err = err.Error()
		return rep
	}
	rep.Exists = true
	rep.Size = info.Size()

	pages, err := pageCount(file)
	if err != nil {
		rep.Err = "reading pdf: " + err.Error()
		return rep
	}
	rep.Pages = pages
	return rep
}

// pageCount reads the page count with relaxed validation; exported course
// material is often not strictly conformant but renders fine in browsers.
func pageCount(file string) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(f, conf)
}
