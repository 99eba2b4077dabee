package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paramveer-prakash/career-sub001/internal/adapter/backend"
	"github.com/paramveer-prakash/career-sub001/internal/model"
	"github.com/paramveer-prakash/career-sub001/internal/render"
	"github.com/paramveer-prakash/career-sub001/internal/usecase"
	"github.com/paramveer-prakash/career-sub001/pkg/infrastructure"
)

// Runs the export pipeline against a local mock backend and a real headless
// Chrome, writing every artifact to -out and checking the PDF text.

const smokeName = "Smoke Test Candidate"

func startMockBackend() (*http.Server, string, error) {
	resume := model.SeedResume().WithID("smoke-1")
	resume.Name = smokeName
	payload, err := json.Marshal(resume)
	if err != nil {
		return nil, "", err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/resumes/", func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/api/v1/resumes/") {
		case "smoke-1":
			if r.Header.Get("Authorization") != "Bearer smoke-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("mock backend failed", "error", err)
		}
	}()
	return srv, "http://" + ln.Addr().String(), nil
}

func main() {
	out := flag.String("out", "smoke-output", "directory for generated artifacts")
	chrome := flag.String("chrome", os.Getenv("CHROME_PATH"), "chrome executable (default: discover)")
	pool := flag.Int("pool", 2, "browser pool size")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv, baseURL, err := startMockBackend()
	if err != nil {
		logger.Error("mock backend", "error", err)
		os.Exit(1)
	}
	defer srv.Shutdown(context.Background())

	renderer := infrastructure.NewChromedpRenderer(infrastructure.ChromedpOptions{
		ExecPath: *chrome,
		PoolSize: *pool,
		Reuse:    true,
		Timeout:  60 * time.Second,
	})
	defer renderer.Close()

	templates, err := render.NewBuiltinRegistry()
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}
	svc, err := usecase.NewExportService(usecase.ExportConfig{
		Templates:       templates,
		Source:          backend.NewClient(baseURL, 5*time.Second),
		Renderer:        renderer,
		FallbackEnabled: true,
		Logger:          logger,
	})
	if err != nil {
		logger.Error("export service", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Error("output dir", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	failed := 0
	for _, t := range templates.List() {
		html, err := svc.RenderHTML(ctx, t.Key, "smoke-1", "smoke-token")
		if err == nil {
			err = os.WriteFile(filepath.Join(*out, "resume-smoke-1-"+t.Key+".html"), []byte(html), 0o644)
		}
		if err != nil {
			logger.Error("html", "template", t.Key, "error", err)
			failed++
		}
	}

	for _, key := range render.PDFKeys {
		if err := exportOne(ctx, svc, key, *out); err != nil {
			logger.Error("pdf", "template", key, "error", err)
			failed++
			continue
		}
		logger.Info("pdf ok", "template", key)
	}

	// an unreachable resume must still export, with fallback data
	if pdf, err := svc.RenderPDF(ctx, "modern", "missing-7", ""); err != nil {
		logger.Error("fallback pdf", "error", err)
		failed++
	} else if text, _ := infrastructure.PDFText(pdf); !strings.Contains(compact(text), compact(model.SampleResume().Name)) {
		logger.Error("fallback pdf does not contain sample data")
		failed++
	}

	if failed > 0 {
		fmt.Printf("smoke run finished with %d failure(s); artifacts in %s\n", failed, *out)
		os.Exit(1)
	}
	fmt.Printf("smoke run ok; artifacts in %s\n", *out)
}

func exportOne(ctx context.Context, svc usecase.ExportService, key, out string) error {
	pdf, err := svc.RenderPDF(ctx, key, "smoke-1", "smoke-token")
	if err != nil {
		return err
	}
	text, err := infrastructure.PDFText(pdf)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	if !strings.Contains(compact(text), compact(smokeName)) {
		return fmt.Errorf("pdf text does not contain %q", smokeName)
	}
	return os.WriteFile(filepath.Join(out, fmt.Sprintf("resume-smoke-1-%s.pdf", key)), pdf, 0o644)
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
