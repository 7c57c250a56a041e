package hal

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// maxLineBytes caps a single scanned line; a longer one stops the scan with
// bufio.ErrTooLong.
const maxLineBytes = 1 << 20

// ScanLines returns a LineReader fed by a goroutine scanning r.
//
// A trailing '\r' is stripped from every line. Once r is exhausted ReadLine
// returns io.EOF, or the read error that stopped the scan.
func ScanLines(r io.Reader) LineReader {
	l := &scanLines{ch: make(chan string)}
	go l.run(r)
	return l
}

type scanLines struct {
	ch chan string

	mu  sync.Mutex
	err error
}

func (l *scanLines) run(r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		l.ch <- strings.TrimSuffix(sc.Text(), "\r")
	}
	l.mu.Lock()
	l.err = sc.Err()
	l.mu.Unlock()
	close(l.ch)
}

func (l *scanLines) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.ch:
		if ok {
			return line, nil
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return "", l.err
	}
	return "", io.EOF
}
