// Package logfile reads build console output from local files or streams,
// for pipelines that hand the log to the send command directly.
package logfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"linenotify/internal/domain/ports"
)

const maxLineBytes = 1024 * 1024

// File reads the console log from a path.
type File struct {
	Path string
}

var _ ports.LogSource = File{}

// LogTail returns the last maxLines lines of the file.
func (f File) LogTail(ctx context.Context, maxLines int) ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open build log: %w", err)
	}
	defer file.Close()

	return tail(ctx, file, maxLines)
}

// Reader reads the console log from a stream such as stdin.
type Reader struct {
	R io.Reader
}

var _ ports.LogSource = Reader{}

// LogTail consumes the stream and returns its last maxLines lines.
func (r Reader) LogTail(ctx context.Context, maxLines int) ([]string, error) {
	return tail(ctx, r.R, maxLines)
}

func tail(ctx context.Context, r io.Reader, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}

	ring := make([]string, 0, maxLines)
	next := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(ring) < maxLines {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read build log: %w", err)
	}

	out := make([]string, 0, len(ring))
	out = append(out, ring[next:]...)
	out = append(out, ring[:next]...)
	return out, nil
}
