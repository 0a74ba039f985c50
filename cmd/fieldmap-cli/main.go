package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	fieldmap "github.com/devnolife/go-fieldmap"
	"github.com/devnolife/go-fieldmap/pkg/backend"
	"github.com/devnolife/go-fieldmap/pkg/report"
)

func main() {
	input := flag.String("input", "", "template text file to analyze")
	asJSON := flag.Bool("json", false, "print the variable contract as JSON instead of the report")
	review := flag.Bool("review", false, "interactively review detected fields before output")
	submit := flag.Bool("submit", false, "submit the contract to the backend template service")
	templateID := flag.String("template-id", "", "template identifier for submission (defaults to the input file name)")
	backendURL := flag.String("backend", "", "backend base URL (defaults to FIELDMAP_BACKEND_URL)")
	timeout := flag.Duration("timeout", 30*time.Second, "submission timeout")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input file")
	}

	// .env is optional; environment variables win regardless.
	_ = godotenv.Load()

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	options := []fieldmap.Option{}
	var client *backend.Client
	if *submit {
		url := *backendURL
		if url == "" {
			url = os.Getenv("FIELDMAP_BACKEND_URL")
		}
		client, err = backend.New(url, backend.WithAuthToken(os.Getenv("FIELDMAP_BACKEND_TOKEN")))
		if err != nil {
			log.Fatalf("backend: %v", err)
		}
		options = append(options, fieldmap.WithBackend(client))
	}

	session, err := fieldmap.Analyze(string(raw), options...)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *review {
		if err := reviewSession(session); err != nil {
			log.Fatalf("review: %v", err)
		}
	}

	entries, violations := session.Export()

	if *asJSON {
		payload := map[string]any{
			"fields":   entries,
			"metadata": session.Metadata(),
		}
		if len(violations) > 0 {
			payload["violations"] = violations
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			log.Fatalf("encode: %v", err)
		}
	} else {
		out, err := report.Render(report.Data{
			Title:      templateTitle(*input, *templateID),
			Fields:     session.Fields(),
			Metadata:   session.Metadata(),
			Violations: violations,
		})
		if err != nil {
			log.Fatalf("render report: %v", err)
		}
		fmt.Println(out)
	}

	if !*submit {
		return
	}
	if len(violations) > 0 {
		log.Fatalf("refusing to submit: %d contract violation(s)", len(violations))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	info, _ := os.Stat(*input)
	var size int64
	if info != nil {
		size = info.Size()
	}
	resp, err := session.Submit(ctx, templateTitle(*input, *templateID), backend.FileMetadata{
		FileName:    filepath.Base(*input),
		Size:        size,
		ContentType: "text/plain",
	})
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	if !resp.Success {
		log.Fatalf("backend rejected template: %s", resp.Message)
	}
	fmt.Printf("Template stored as %s", resp.TemplateID)
	if resp.TemplateURL != "" {
		fmt.Printf(" (%s)", resp.TemplateURL)
	}
	fmt.Println()
}

func templateTitle(input, override string) string {
	if override != "" {
		return override
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
