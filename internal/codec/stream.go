package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxFrameSize bounds a single frame on read.
const maxFrameSize = 1 << 22

// Writer appends length delimited frames to w.
type Writer struct {
	mu  sync.Mutex
	w   *bufio.Writer
	buf []byte
	n   int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (fw *Writer) Write(f *Frame) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.buf = protowire.AppendBytes(fw.buf[:0], EncodeFrame(f))
	if _, err := fw.w.Write(fw.buf); err != nil {
		return fmt.Errorf("write frame %d: %w", f.Tick, err)
	}
	fw.n++
	return nil
}

// Count is the number of frames written so far.
func (fw *Writer) Count() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.n
}

func (fw *Writer) Flush() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.w.Flush()
}

// Reader reads frames written by Writer.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns io.EOF after the last complete frame.
func (fr *Reader) Next() (*Frame, error) {
	size, err := binary.ReadUvarint(fr.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: frame length: %v", ErrMalformed, err)
	}
	if size > maxFrameSize {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrMalformed, size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated frame: %v", ErrMalformed, err)
	}
	return DecodeFrame(payload)
}

// ReadAll drains r.
func ReadAll(r io.Reader) ([]*Frame, error) {
	fr := NewReader(r)
	frames := make([]*Frame, 0)
	for {
		f, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
