package infrastructure

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// VerifyPDF checks that b is a parseable PDF with at least one page.
func VerifyPDF(b []byte) (err error) {
	if len(b) == 0 {
		return errors.New("empty pdf")
	}
	if !bytes.HasPrefix(b, pdfMagic) {
		return errors.New("missing pdf signature")
	}

	// the parser panics on some malformed inputs
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	if r.NumPage() < 1 {
		return errors.New("pdf has no pages")
	}
	return nil
}

// PDFText extracts the plain text of every page of b.
func PDFText(b []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	rd, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(rd)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
