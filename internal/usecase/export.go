package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
	"github.com/paramveer-prakash/career-sub001/internal/model"
	"github.com/paramveer-prakash/career-sub001/internal/render"
	"github.com/paramveer-prakash/career-sub001/pkg/metrics"
)

// Renderer transcodes a complete HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ResumeSource looks up a resume by id, forwarding the bearer token.
type ResumeSource interface {
	Fetch(ctx context.Context, resumeID, token string) domain.FetchResult
}

// ExportService is the public surface of the render and export pipeline.
type ExportService interface {
	// ListTemplates returns every template usable for HTML rendering.
	ListTemplates() []render.Template

	// RenderHTML renders the resume with the given template.
	RenderHTML(ctx context.Context, key, resumeID, token string) (string, error)

	// RenderPDF renders the resume and prints it to PDF. Only the
	// PDF-safe template subset is accepted.
	RenderPDF(ctx context.Context, key, resumeID, token string) ([]byte, error)

	// RenderThumbnail renders the seed resume; it never looks up a resume.
	RenderThumbnail(key string) (string, error)
}

type ExportConfig struct {
	Templates *render.Registry
	// PDFKeys restricts PDF export; defaults to render.PDFKeys.
	PDFKeys  []string
	Source   ResumeSource
	Renderer Renderer
	// FallbackEnabled substitutes sample data whenever the source cannot
	// produce the resume. When false those requests fail with
	// domain.ErrResumeNotFound.
	FallbackEnabled bool
	Metrics         *metrics.Export
	Logger          *slog.Logger
}

type exportService struct {
	templates    *render.Registry
	pdfTemplates *render.Registry
	source       ResumeSource
	renderer     Renderer
	fallback     bool
	thumbnails   map[string]string
	metrics      *metrics.Export
	log          *slog.Logger
	tracer       trace.Tracer
}

// NewExportService validates cfg and pre-renders every thumbnail.
func NewExportService(cfg ExportConfig) (ExportService, error) {
	if cfg.Templates == nil {
		return nil, errors.New("export service: templates are required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("export service: pdf renderer is required")
	}
	if cfg.PDFKeys == nil {
		cfg.PDFKeys = render.PDFKeys
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	pdfTemplates, err := cfg.Templates.Subset(cfg.PDFKeys...)
	if err != nil {
		return nil, fmt.Errorf("export service: pdf templates: %w", err)
	}

	thumbs := make(map[string]string)
	seed := model.SeedResume()
	for _, t := range cfg.Templates.List() {
		html, err := cfg.Templates.Render(t.Key, seed)
		if err != nil {
			return nil, fmt.Errorf("export service: thumbnail %q: %w", t.Key, err)
		}
		thumbs[t.Key] = html
	}

	return &exportService{
		templates:    cfg.Templates,
		pdfTemplates: pdfTemplates,
		source:       cfg.Source,
		renderer:     cfg.Renderer,
		fallback:     cfg.FallbackEnabled,
		thumbnails:   thumbs,
		metrics:      cfg.Metrics,
		log:          cfg.Logger,
		tracer:       otel.Tracer("github.com/paramveer-prakash/career-sub001/internal/usecase"),
	}, nil
}

func (s *exportService) ListTemplates() []render.Template {
	return s.templates.List()
}

func (s *exportService) RenderHTML(ctx context.Context, key, resumeID, token string) (html string, err error) {
	ctx, span := s.tracer.Start(ctx, "export.RenderHTML", trace.WithAttributes(
		attribute.String("template.key", key),
		attribute.String("resume.id", resumeID),
	))
	defer func() { endSpan(span, err) }()

	if !s.templates.Has(key) {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	}

	r, err := s.resolve(ctx, resumeID, token)
	if err != nil {
		return "", err
	}

	html, err = s.templates.Render(key, r)
	if err != nil {
		return "", err
	}
	s.metrics.Rendered(key, "html")
	return html, nil
}

func (s *exportService) RenderPDF(ctx context.Context, key, resumeID, token string) (pdf []byte, err error) {
	ctx, span := s.tracer.Start(ctx, "export.RenderPDF", trace.WithAttributes(
		attribute.String("template.key", key),
		attribute.String("resume.id", resumeID),
	))
	defer func() { endSpan(span, err) }()

	if !s.pdfTemplates.Has(key) {
		return nil, fmt.Errorf("%w: %q is not available for pdf export", domain.ErrTemplateNotFound, key)
	}

	r, err := s.resolve(ctx, resumeID, token)
	if err != nil {
		return nil, err
	}

	html, err := s.pdfTemplates.Render(key, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pdf, err = s.renderer.RenderHTMLToPDF(ctx, html)
	s.metrics.Exported(key, time.Since(start), err)
	if err != nil {
		s.log.Error("pdf export failed", "template", key, "resume_id", resumeID, "error", err)
		var exp *domain.ExportError
		if !errors.As(err, &exp) {
			err = &domain.ExportError{Stage: domain.StageCapture, Err: err}
		}
		return nil, err
	}
	return pdf, nil
}

func (s *exportService) RenderThumbnail(key string) (string, error) {
	html, ok := s.thumbnails[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	}
	s.metrics.Rendered(key, "thumbnail")
	return html, nil
}

// resolve fetches the resume and applies the fallback policy. Auth
// failures fall back exactly like outages; the two are logged apart so
// they can be told apart during triage.
func (s *exportService) resolve(ctx context.Context, resumeID, token string) (*model.Resume, error) {
	res := domain.FetchResult{Status: domain.Unreachable}
	reason := "unconfigured"
	if s.source != nil {
		ctx, span := s.tracer.Start(ctx, "export.FetchResume")
		res = s.source.Fetch(ctx, resumeID, token)
		span.SetAttributes(attribute.String("fetch.status", res.Status.String()))
		span.End()
		reason = res.Status.String()
	}

	if res.Status == domain.Found && res.Resume != nil {
		return res.Resume, nil
	}

	attrs := []any{"resume_id", resumeID, "reason", reason, "authenticated", token != ""}
	if res.StatusCode != 0 {
		attrs = append(attrs, "status_code", res.StatusCode)
	}
	if res.Err != nil {
		attrs = append(attrs, "error", res.Err)
	}

	if !s.fallback {
		s.log.Warn("resume unavailable", attrs...)
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrResumeNotFound, resumeID, reason)
	}

	switch res.Status {
	case domain.Unauthorized:
		s.log.Warn("resume backend rejected credentials, serving fallback data", attrs...)
	case domain.NotFound:
		s.log.Warn("resume not found upstream, serving fallback data", attrs...)
	default:
		s.log.Warn("resume backend unavailable, serving fallback data", attrs...)
	}
	s.metrics.FellBack(reason)

	return model.SampleResume().WithID(resumeID), nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
