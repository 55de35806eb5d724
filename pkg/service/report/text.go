package report

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// TextReader reads a report as plain text lines
type TextReader struct{}

var _ interfaces.LineReader = (*TextReader)(nil)

// NewTextReader creates a new text reader
func NewTextReader() *TextReader {
	return &TextReader{}
}

// ReadLines returns the lines of the file without their line terminators.
// "\n", "\r\n" and a bare "\r" all end a line. Lines have no length limit.
func (r *TextReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open report file", goerr.V("path", path))
	}
	defer f.Close()

	var lines []string
	br := bufio.NewReader(f)
	for {
		chunk, err := br.ReadString('\n')
		if chunk != "" {
			lines = append(lines, splitLines(chunk)...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read report file", goerr.V("path", path))
		}
	}

	return lines, nil
}

// splitLines splits a chunk ending with at most one "\n" into lines,
// treating a bare "\r" as a line break as well.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}
