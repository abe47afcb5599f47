package container

import (
	"io"
)

// Monitor は、入力の読み出し状況を受け取る関数です。
// pass は入力を先頭から読み直すたびに 1 から増えます。
type Monitor func(pass int, done, total int64)

type monitoredReader struct {
	reader  io.ReadSeeker
	monitor Monitor
	pass    int
	done    int64
	total   int64
}

func newMonitoredReader(rdr io.ReadSeeker, total int64, monitor Monitor) *monitoredReader {
	return &monitoredReader{reader: rdr, monitor: monitor, pass: 1, total: total}
}

func (r *monitoredReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if 0 < n {
		r.done += int64(n)
		r.monitor(r.pass, r.done, r.total)
	}
	return n, err
}

func (r *monitoredReader) Seek(offset int64, whence int) (int64, error) {
	pos, err := r.reader.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	if pos == 0 && 0 < r.done {
		r.pass++
	}
	r.done = pos
	return pos, nil
}
