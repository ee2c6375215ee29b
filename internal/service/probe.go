package service

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnseekable indicates the upload stream does not support seeking, so its
// true length cannot be probed.
var ErrUnseekable = errors.New("upload stream is not seekable")

// probeSize determines the exact byte length of an open stream by seeking to
// its end, then restores the read cursor to offset 0 so a later consumer can
// read from the first byte. It never buffers stream content, so memory use is
// constant regardless of file size.
func probeSize(s io.Seeker) (int64, error) {
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: seek end: %v", ErrUnseekable, err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: rewind: %v", ErrUnseekable, err)
	}
	return end, nil
}
