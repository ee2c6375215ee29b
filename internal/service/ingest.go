package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loganalyzer/internal/model"
)

// ErrBodyNil is returned when an upload request carries no stream.
var ErrBodyNil = errors.New("upload body is nil")

const tracerName = "loganalyzer/internal/service"

// IngestService defines the use case for admitting uploaded log files.
type IngestService interface {
	// Admit runs one upload through the admission checks: extension
	// allow-list, declared-length fast reject, probed-length verification,
	// then the optional line classification pass.
	//
	// Rejections are reported inside the returned AdmissionResult; a non-nil
	// error means an I/O fault (nil body, unseekable stream, classifier
	// failure), never a policy decision.
	//
	// Admit takes ownership of req.Body and closes it exactly once on every
	// path, including faults.
	Admit(ctx context.Context, req model.UploadRequest) (*model.AdmissionResult, error)
}

// ingestService is a concrete implementation of IngestService.
type ingestService struct {
	policy     model.AdmissionPolicy
	classifier LineClassifier
	metrics    *IngestMetrics
	tracer     trace.Tracer
}

// NewIngestService constructs a new IngestService. classifier and metrics may
// be nil: without a classifier admitted bodies are never read, and without
// metrics no counters are recorded.
func NewIngestService(policy model.AdmissionPolicy, classifier LineClassifier, metrics *IngestMetrics) IngestService {
	return &ingestService{
		policy:     policy,
		classifier: classifier,
		metrics:    metrics,
		tracer:     otel.Tracer(tracerName),
	}
}

func (s *ingestService) Admit(ctx context.Context, req model.UploadRequest) (*model.AdmissionResult, error) {
	if req.Body == nil {
		return nil, ErrBodyNil
	}
	// Released exactly once no matter which check fails or whether probing
	// faults mid-request.
	defer req.Body.Close()

	ctx, span := s.tracer.Start(ctx, "IngestService.Admit")
	defer span.End()
	span.SetAttributes(
		attribute.String("upload.filename", req.Filename),
		attribute.Int64("upload.declared_size", req.DeclaredSize),
	)

	if !checkExtension(req.Filename, s.policy) {
		detail := fmt.Sprintf("unsupported file extension (allowed: %s)",
			strings.Join(s.policy.AllowedExtensions, ", "))
		return s.reject(span, req.Filename, model.RejectionInvalidExtension, detail), nil
	}

	// Fast reject on the transport length hint before touching the stream.
	if req.DeclaredSize >= 0 && !checkSize(req.DeclaredSize, s.policy) {
		return s.reject(span, req.Filename, model.RejectionDeclaredTooLarge, s.tooLargeDetail()), nil
	}

	actual, err := probeSize(req.Body)
	if err != nil {
		s.metrics.observe("fault")
		span.RecordError(err)
		return nil, fmt.Errorf("probe upload size: %w", err)
	}
	span.SetAttributes(attribute.Int64("upload.actual_size", actual))

	// The declared hint is untrusted; the probed length decides.
	if !checkSize(actual, s.policy) {
		return s.reject(span, req.Filename, model.RejectionActualTooLarge, s.tooLargeDetail()), nil
	}

	// probeSize left the cursor at offset 0, so a classifier sees the stream
	// from the first byte.
	if s.classifier != nil {
		if err := s.classifyLines(ctx, req.Body); err != nil {
			s.metrics.observe("fault")
			span.RecordError(err)
			return nil, fmt.Errorf("classify upload: %w", err)
		}
	}

	s.metrics.observe("admitted")
	span.SetAttributes(attribute.String("upload.outcome", "admitted"))
	return &model.AdmissionResult{
		Admitted:  true,
		Filename:  req.Filename,
		SizeBytes: actual,
	}, nil
}

// reject records the outcome and builds the rejection result.
func (s *ingestService) reject(span trace.Span, filename string, kind model.RejectionKind, detail string) *model.AdmissionResult {
	outcome := strings.ToLower(string(kind))
	s.metrics.observe(outcome)
	span.SetAttributes(attribute.String("upload.outcome", outcome))
	return &model.AdmissionResult{
		Filename:  filename,
		Rejection: kind,
		Detail:    detail,
	}
}

func (s *ingestService) tooLargeDetail() string {
	return fmt.Sprintf("File too large (max %dMB)", s.policy.MaxBytes/(1024*1024))
}

// classifyLines feeds the stream to the classifier one line at a time.
func (s *ingestService) classifyLines(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := s.classifier.ClassifyLine(ctx, sc.Bytes()); err != nil {
			return err
		}
	}
	return sc.Err()
}
