package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FetchLog describes one upstream call.
type FetchLog struct {
	Endpoint   string
	StatusCode int
	Records    int
	Latency    time.Duration
	Err        error
}

// WriteFetchLog writes one line per upstream call; failures go out at error level.
func WriteFetchLog(log *logrus.Logger, entry FetchLog) {
	if log == nil {
		return
	}
	fields := logrus.Fields{
		"endpoint":   entry.Endpoint,
		"latency_ms": entry.Latency.Milliseconds(),
	}
	if entry.StatusCode != 0 {
		fields["status"] = entry.StatusCode
	}
	if entry.Err != nil {
		log.WithFields(fields).WithError(entry.Err).Error("upstream fetch failed")
		return
	}
	fields["records"] = entry.Records
	log.WithFields(fields).Info("upstream fetch completed")
}
