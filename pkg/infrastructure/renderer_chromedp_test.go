package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
)

// minimalPDF assembles a one-page PDF with a correct xref table.
func minimalPDF(text string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	offsets := make([]int, 0, len(objs))
	for i, o := range objs {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestVerifyPDF(t *testing.T) {
	assert.NoError(t, VerifyPDF(minimalPDF("hello")))

	assert.Error(t, VerifyPDF(nil))
	assert.Error(t, VerifyPDF([]byte("<html></html>")))
	assert.Error(t, VerifyPDF([]byte("%PDF-1.4\nthis is not really a pdf")))

	full := minimalPDF("truncated")
	assert.Error(t, VerifyPDF(full[:len(full)/2]))
}

func TestRenderAfterCloseFails(t *testing.T) {
	r := NewChromedpRenderer(ChromedpOptions{PoolSize: 2})
	r.Close()
	r.Close()

	out, err := r.RenderHTMLToPDF(context.Background(), "<p>x</p>")
	assert.Nil(t, out)

	var exp *domain.ExportError
	require.True(t, errors.As(err, &exp))
	assert.Equal(t, domain.StageLaunch, exp.Stage)
	assert.ErrorIs(t, err, errRendererClosed)
	assert.Len(t, r.slots, 2)
}

func TestLaunchFailureReleasesSlot(t *testing.T) {
	r := NewChromedpRenderer(ChromedpOptions{
		ExecPath: "/nonexistent/chrome-binary",
		PoolSize: 1,
		Reuse:    true,
		Timeout:  5 * time.Second,
	})
	defer r.Close()

	for i := 0; i < 2; i++ {
		out, err := r.RenderHTMLToPDF(context.Background(), "<p>x</p>")
		assert.Nil(t, out)

		var exp *domain.ExportError
		require.True(t, errors.As(err, &exp))
		assert.Equal(t, domain.StageLaunch, exp.Stage)
		assert.Len(t, r.slots, 1, "slot must be returned after a failed launch")
	}
}

func TestAcquireHonoursContext(t *testing.T) {
	r := NewChromedpRenderer(ChromedpOptions{PoolSize: 1})
	defer r.Close()

	held := <-r.slots
	defer func() { r.slots <- held }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.RenderHTMLToPDF(ctx, "<p>x</p>")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func findChrome(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping headless chrome test in short mode")
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no chrome binary available")
	return ""
}

func htmlPage(name string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><style>body{background:#eef}</style></head><body><h1>` + name + `</h1></body></html>`
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestRenderHTMLToPDFWithChrome(t *testing.T) {
	chrome := findChrome(t)

	for _, reuse := range []bool{false, true} {
		t.Run(fmt.Sprintf("reuse=%v", reuse), func(t *testing.T) {
			r := NewChromedpRenderer(ChromedpOptions{ExecPath: chrome, PoolSize: 1, Reuse: reuse, Timeout: 60 * time.Second})
			defer r.Close()

			for i := 0; i < 2; i++ {
				out, err := r.RenderHTMLToPDF(context.Background(), htmlPage("Ada Lovelace"))
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

				text, err := PDFText(out)
				require.NoError(t, err)
				assert.Contains(t, compact(text), "AdaLovelace")
			}
		})
	}
}

func TestConcurrentExportsDoNotLeak(t *testing.T) {
	chrome := findChrome(t)

	r := NewChromedpRenderer(ChromedpOptions{ExecPath: chrome, PoolSize: 2, Reuse: true, Timeout: 60 * time.Second})
	defer r.Close()

	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"}
	texts := make([]string, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			out, err := r.RenderHTMLToPDF(context.Background(), htmlPage("Candidate"+name))
			if err != nil {
				errs[i] = err
				return
			}
			text, err := PDFText(out)
			texts[i], errs[i] = compact(text), err
		}(i, name)
	}
	wg.Wait()

	for i, name := range names {
		require.NoError(t, errs[i], name)
		assert.Contains(t, texts[i], "Candidate"+name)
		for j, other := range names {
			if j != i {
				assert.NotContains(t, texts[i], "Candidate"+other)
			}
		}
	}
	assert.Len(t, r.slots, 2)
}

func TestCancelledExportReleasesBrowser(t *testing.T) {
	chrome := findChrome(t)

	r := NewChromedpRenderer(ChromedpOptions{ExecPath: chrome, PoolSize: 1, Reuse: true, Timeout: 60 * time.Second})
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderHTMLToPDF(ctx, htmlPage("Cancelled"))
	var exp *domain.ExportError
	require.True(t, errors.As(err, &exp))
	assert.Len(t, r.slots, 1)

	// the pool still works afterwards
	out, err := r.RenderHTMLToPDF(context.Background(), htmlPage("After"))
	require.NoError(t, err)
	assert.NoError(t, VerifyPDF(out))
}
