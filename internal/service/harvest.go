package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nexusscout/chronicle-harvester/internal/logging"
	"github.com/nexusscout/chronicle-harvester/internal/metrics"
	"github.com/nexusscout/chronicle-harvester/internal/models"
	"github.com/nexusscout/chronicle-harvester/internal/source"
	"github.com/nexusscout/chronicle-harvester/internal/storage"
)

// Timestamp layout for object keys. Microsecond precision keeps keys from
// colliding on fast consecutive uploads before the random suffix is even
// considered.
const keyTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

const DefaultSampleSize = 3

type Options struct {
	SourceURL     string
	Agent         string
	SampleSize    int
	Prefix        string
	FetchTimeout  time.Duration
	UploadTimeout time.Duration
}

// HarvestService runs the fetch-annotate-store pipeline. Each Run is a
// single straight-line invocation; the service itself holds no mutable
// state, so concurrent invocations are independent.
type HarvestService struct {
	fetcher source.Fetcher
	store   storage.Store
	opts    Options
	logger  *logging.Logger
	now     func() time.Time
}

func NewHarvestService(fetcher source.Fetcher, store storage.Store, opts Options, logger *logging.Logger) *HarvestService {
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}
	if opts.Prefix == "" {
		opts.Prefix = "raw_data"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &HarvestService{
		fetcher: fetcher,
		store:   store,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one harvest invocation and returns the result body together
// with the HTTP status code to report: 200 when every selected record was
// stored, 500 otherwise. Objects uploaded before a failure stay persisted.
func (s *HarvestService) Run(ctx context.Context) (*models.InvocationResult, int) {
	start := time.Now()
	s.logger.InfoContext(ctx, "initiating data collection", logging.SourceURL(s.opts.SourceURL))

	records, err := s.fetch(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	if len(records) > s.opts.SampleSize {
		records = records[:s.opts.SampleSize]
	}

	uploaded := make([]string, 0, len(records))
	for i, record := range records {
		// Fetchers must hand over objects; annotating a nil map would panic.
		if record == nil {
			return s.fail(ctx, fmt.Errorf("record %d is not a JSON object", i))
		}

		record.Annotate(s.now(), s.opts.SourceURL, s.opts.Agent)

		path, err := s.upload(ctx, record)
		if err != nil {
			return s.fail(ctx, err)
		}

		uploaded = append(uploaded, path)
		s.logger.InfoContext(ctx, "uploaded record", logging.ObjectPath(path))
	}

	metrics.HarvestsTotal.WithLabelValues(models.StatusSuccess).Inc()
	metrics.RecordsHarvested.Add(float64(len(uploaded)))
	s.logger.InfoContext(ctx, "harvest complete",
		logging.Records(len(uploaded)),
		logging.Duration(time.Since(start).Milliseconds()),
	)

	return &models.InvocationResult{
		Status:        models.StatusSuccess,
		UploadedFiles: uploaded,
	}, http.StatusOK
}

func (s *HarvestService) fetch(ctx context.Context) ([]models.Record, error) {
	if s.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.FetchTimeout)
		defer cancel()
	}

	start := time.Now()
	records, err := s.fetcher.Fetch(ctx)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())

	return records, err
}

func (s *HarvestService) upload(ctx context.Context, record models.Record) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize record: %w", err)
	}

	if s.opts.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.UploadTimeout)
		defer cancel()
	}

	key := s.objectKey()
	start := time.Now()
	path, err := s.store.Put(ctx, key, data, "application/json")
	metrics.UploadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorageErrors.Inc()
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	metrics.UploadBytesTotal.Add(float64(len(data)))
	return path, nil
}

// objectKey builds a unique key: <prefix>/<timestamp>-<8 hex chars>.json.
func (s *HarvestService) objectKey() string {
	u := uuid.New()
	suffix := hex.EncodeToString(u[:4])
	return fmt.Sprintf("%s/%s-%s.json", s.opts.Prefix, s.now().UTC().Format(keyTimeLayout), suffix)
}

func (s *HarvestService) fail(ctx context.Context, err error) (*models.InvocationResult, int) {
	metrics.HarvestsTotal.WithLabelValues(models.StatusError).Inc()

	var message string
	var fetchErr *source.FetchError
	if errors.As(err, &fetchErr) {
		metrics.FetchErrors.Inc()
		message = fmt.Sprintf("HTTP request failed: %v", err)
		s.logger.ErrorContext(ctx, "feed request failed", logging.Error(err))
	} else {
		message = fmt.Sprintf("An unexpected error occurred: %v", err)
		s.logger.ErrorContext(ctx, "harvest failed", logging.Error(err))
	}

	return &models.InvocationResult{
		Status:  models.StatusError,
		Message: message,
	}, http.StatusInternalServerError
}
