package generator

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Options controls a single generation run.
type Options struct {
	// Progress receives a progress bar while points are written. Nil disables it.
	Progress io.Writer
}

// Summary describes a finished (or failed) run.
type Summary struct {
	ID      string
	Path    string
	Points  int64
	Bytes   int64
	Elapsed time.Duration
}

// WriteFile creates or truncates path and writes an instance to it.
// The file is closed on every return path. A write failure leaves the
// partially written file in place.
func WriteFile(path string, g Generator, opts Options) (Summary, error) {
	file, err := os.Create(path)
	if err != nil {
		return Summary{Path: path}, fmt.Errorf("failed to create instance file: %w", err)
	}

	summary, err := writeAndClose(file, g, opts)
	summary.Path = path
	return summary, err
}

// writeAndClose writes an instance to wc and closes it. A close error is
// returned only when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, g Generator, opts Options) (summary Summary, err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close instance file: %w", cerr)
		}
	}()

	return Write(wc, g, opts)
}

// Write streams the header line and g.DefaultCount() point lines to w.
// Points are serialized as they are sampled and never retained.
func Write(w io.Writer, g Generator, opts Options) (Summary, error) {
	start := time.Now()
	count := g.DefaultCount()
	summary := Summary{ID: uuid.New().String()}

	cw := &countingWriter{w: w}
	writer := bufio.NewWriter(cw)
	bar := newProgressBar(opts.Progress, count)

	finish := func(err error) (Summary, error) {
		summary.Bytes = cw.n
		summary.Elapsed = time.Since(start)
		return summary, err
	}

	if _, err := writer.WriteString(strconv.FormatInt(count, 10) + "\n"); err != nil {
		return finish(fmt.Errorf("failed to write header: %w", err))
	}

	for i := int64(0); i < count; i++ {
		if err := g.WriteLine(writer); err != nil {
			return finish(fmt.Errorf("failed to write point %d: %w", i+1, err))
		}
		summary.Points++
		if bar != nil {
			if err := bar.Add(1); err != nil {
				log.Printf("Progress bar disabled: %v", err)
				bar = nil
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return finish(fmt.Errorf("failed to flush instance: %w", err))
	}
	if bar != nil {
		if err := bar.Finish(); err != nil {
			log.Printf("Progress bar failed to finish: %v", err)
		}
	}

	return finish(nil)
}

func newProgressBar(w io.Writer, count int64) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions64(count,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating points"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// countingWriter tracks bytes that actually reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
