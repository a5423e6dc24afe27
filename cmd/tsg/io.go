package main

import (
	"io"
	"os"

	"github.com/tsgeco/tsg-go/tsg"
)

// openInput opens path for reading, or returns stdin for "-" or "".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	return f, nil
}

// openOutput opens path for writing, or returns stdout for "-" or "".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, ioError(err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// parseFile reads and parses a TSG document from path, reporting parse
// and validation failures with the §spec.md 6 exit-code-2 class.
func parseFile(path string) (*tsg.Document, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	doc, err := tsg.Parse(r)
	if err != nil {
		return nil, validationError(err)
	}
	return doc, nil
}
