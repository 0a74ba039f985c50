package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devnolife/go-fieldmap/pkg/backend"
	"github.com/devnolife/go-fieldmap/pkg/contract"
	"github.com/devnolife/go-fieldmap/pkg/field"
)

func sampleRequest() backend.SubmitRequest {
	return backend.SubmitRequest{
		TemplateID: "surat-aktif-kuliah",
		DetectedFields: []contract.Entry{
			{
				Key:           "nama_mahasiswa",
				Label:         "Nama Mahasiswa",
				Type:          field.FieldTypeContent,
				DefaultValue:  "{{nama_mahasiswa}}",
				OriginalValue: "{{nama_mahasiswa}}",
				Position:      contract.Position{StartIndex: 8, EndIndex: 26},
				Confidence:    0.9,
			},
		},
		SourceFile: backend.FileMetadata{FileName: "surat.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}
}

func TestSubmit_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/templates" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekret" {
			t.Errorf("missing bearer token, got %q", got)
		}
		var req backend.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(backend.SubmitResponse{
			Success:     true,
			TemplateID:  req.TemplateID,
			Message:     "stored",
			TemplateURL: "https://files.example/surat-aktif-kuliah.docx",
			Variables:   req.DetectedFields,
		})
	}))
	defer server.Close()

	client, err := backend.New(server.URL, backend.WithAuthToken("sekret"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Submit(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !resp.Success || resp.TemplateID != "surat-aktif-kuliah" {
		t.Fatalf("unexpected response: %#v", resp)
	}
	if len(resp.Variables) != 1 {
		t.Fatalf("expected echoed variables, got %#v", resp.Variables)
	}
}

func TestSubmit_FailureIsAValueNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(backend.SubmitResponse{
			Success: false,
			Message: "template name already in use",
		})
	}))
	defer server.Close()

	client, err := backend.New(server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Submit(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("success=false must not be an error, got %v", err)
	}
	if resp.Success {
		t.Fatalf("expected failure response")
	}
	if resp.Message != "template name already in use" {
		t.Fatalf("message must pass through unchanged, got %q", resp.Message)
	}
}

func TestSubmit_NonJSONBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client, err := backend.New(server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Submit(context.Background(), sampleRequest()); err == nil {
		t.Fatalf("expected decode error for non-JSON body")
	}
}

func TestSubmit_ContextTimeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client, err := backend.New(server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Submit(ctx, sampleRequest())
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := backend.New("   "); !errors.Is(err, backend.ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}
