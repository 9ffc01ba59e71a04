package logging

import "log/slog"

// Common field names for consistent logging across the harvester.
const (
	FieldService    = "service"
	FieldSourceURL  = "source_url"
	FieldBucket     = "bucket"
	FieldBackend    = "backend"
	FieldObjectPath = "object_path"
	FieldRecords    = "records"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// SourceURL returns a slog attribute for the feed endpoint.
func SourceURL(url string) slog.Attr {
	return slog.String(FieldSourceURL, url)
}

// Bucket returns a slog attribute for the destination bucket.
func Bucket(name string) slog.Attr {
	return slog.String(FieldBucket, name)
}

// Backend returns a slog attribute for the storage backend in use.
func Backend(name string) slog.Attr {
	return slog.String(FieldBackend, name)
}

// ObjectPath returns a slog attribute for a stored object path.
func ObjectPath(path string) slog.Attr {
	return slog.String(FieldObjectPath, path)
}

// Records returns a slog attribute for a record count.
func Records(n int) slog.Attr {
	return slog.Int(FieldRecords, n)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
