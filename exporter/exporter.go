package exporter

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"zola-posts/emitter"
	"zola-posts/frontmatter"
	"zola-posts/logger"
	"zola-posts/models"
	"zola-posts/trace"
)

// State of an export run.
type State string

const (
	StateStart         State = "start"
	StateListFetched   State = "list_fetched"
	StateDetailFetched State = "detail_fetched"
	StateMapped        State = "mapped"
	StateWritten       State = "written"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// PostSource is where posts come from. *postapi.Client implements it.
type PostSource interface {
	BaseURL() string
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (models.Post, error)
}

// Result summarizes a run. Written lists the files created before the run
// ended, in order, including on failure.
type Result struct {
	State   State
	Found   int
	Written []string
}

// Exporter turns every post of a PostSource into a Zola content file.
type Exporter struct {
	source    PostSource
	outputDir string
	out       io.Writer
}

// New creates an Exporter. Progress lines are printed to out.
func New(source PostSource, outputDir string, out io.Writer) *Exporter {
	if out == nil {
		out = io.Discard
	}
	return &Exporter{
		source:    source,
		outputDir: outputDir,
		out:       out,
	}
}

// Run lists all posts, then for each one fetches it in full, maps it to a
// header and writes the file. Posts are handled one at a time in list order.
// The first error stops the run; files already written are left in place.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	ctx = trace.WithRun(ctx)
	res := Result{State: StateStart}

	fmt.Fprintf(e.out, "Parsing %s into %s\n", e.source.BaseURL(), e.outputDir)

	posts, err := e.source.ListPosts(ctx)
	if err != nil {
		return e.fail(ctx, res, errors.Wrap(err, "list posts"))
	}
	res.Found = len(posts)
	res.State = StateListFetched
	fmt.Fprintf(e.out, "Found %d posts\n", len(posts))

	for _, summary := range posts {
		post, err := e.source.GetPost(ctx, summary.ID)
		if err != nil {
			return e.fail(ctx, res, errors.Wrapf(err, "post %d", summary.ID))
		}
		res.State = StateDetailFetched

		header := frontmatter.ToHeader(post)
		body := frontmatter.TransformBody(post.Content)
		res.State = StateMapped

		// list title names the file, the detail record fills the header
		path, err := emitter.WritePostFile(e.outputDir, summary.Title, header, body)
		if err != nil {
			return e.fail(ctx, res, errors.Wrapf(err, "post %d", summary.ID))
		}
		res.State = StateWritten
		res.Written = append(res.Written, path)

		logger.DebugWithFields("post exported", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"post_id":    summary.ID,
			"path":       path,
		})
		fmt.Fprintf(e.out, "Wrote %s\n", path)
	}

	res.State = StateDone
	logger.InfoWithFields("export finished", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"found":      res.Found,
		"written":    len(res.Written),
		"output_dir": e.outputDir,
	})
	return res, nil
}

func (e *Exporter) fail(ctx context.Context, res Result, err error) (Result, error) {
	logger.ErrorWithFields("export failed", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"state":      string(res.State),
		"written":    len(res.Written),
		"error":      err.Error(),
	})
	res.State = StateFailed
	return res, err
}
