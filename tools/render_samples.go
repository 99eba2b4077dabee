package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paramveer-prakash/career-sub001/internal/model"
	"github.com/paramveer-prakash/career-sub001/internal/render"
)

// Renders a resume with every registered template so the designs can be
// compared side by side in a browser. Without -in the seed resume is used.
func main() {
	in := flag.String("in", "", "resume JSON file (default: seed resume)")
	out := flag.String("out", filepath.Join("resume-data", "generated"), "output directory")
	flag.Parse()

	resume := model.SeedResume()
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
			os.Exit(2)
		}
		if resume, err = model.Decode(b); err != nil {
			fmt.Fprintf(os.Stderr, "decode resume: %v\n", err)
			os.Exit(2)
		}
	}

	reg, err := render.NewBuiltinRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "templates: %v\n", err)
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out: %v\n", err)
		os.Exit(2)
	}

	index := make([]render.Template, 0)
	for _, t := range reg.List() {
		html, err := reg.Render(t.Key, resume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", t.Key, err)
			os.Exit(2)
		}
		outFile := filepath.Join(*out, t.Key+".html")
		if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", outFile, err)
			os.Exit(2)
		}
		index = append(index, t)
		fmt.Printf("wrote %s\n", outFile)
	}

	b, _ := json.MarshalIndent(index, "", "  ")
	if err := os.WriteFile(filepath.Join(*out, "templates.json"), b, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write index: %v\n", err)
		os.Exit(2)
	}
}
