// Package netx holds the streaming helpers behind the upload transport.
package netx

import "io"

// ProgressReader counts bytes read from Reader and reports the running
// total after every read that returned data. Reports are monotonic and the
// last one equals the number of bytes consumed.
type ProgressReader struct {
	Total   int64
	Current int64
	Reader  io.Reader

	onProgress func(current, total int64)
	reported   bool
}

func NewProgressReader(total int64, r io.Reader, onProgress func(current, total int64)) *ProgressReader {
	return &ProgressReader{
		Total:      total,
		Reader:     r,
		onProgress: onProgress,
	}
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.Reader.Read(p)
	pr.Current += int64(n)

	// an empty source still gets one tick at EOF
	if n > 0 || (err == io.EOF && !pr.reported) {
		pr.report()
	}
	return n, err
}

func (pr *ProgressReader) report() {
	pr.reported = true
	if pr.onProgress != nil {
		pr.onProgress(pr.Current, pr.Total)
	}
}
