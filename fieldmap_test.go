package fieldmap_test

import (
	"testing"

	fieldmap "github.com/devnolife/go-fieldmap"
	"github.com/devnolife/go-fieldmap/pkg/contract"
	"github.com/devnolife/go-fieldmap/pkg/testsupport"
)

func TestAnalyze_SampleLetter(t *testing.T) {
	session, err := fieldmap.Analyze(testsupport.SampleLetter)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	variables := session.Variables()
	if len(variables) != len(testsupport.SampleLetterKeys) {
		t.Fatalf("expected %d variables, got %d", len(testsupport.SampleLetterKeys), len(variables))
	}
	for i, want := range testsupport.SampleLetterKeys {
		if variables[i].Key != want {
			t.Fatalf("variable %d: key %q, want %q", i, variables[i].Key, want)
		}
	}

	byKey := make(map[string]fieldmap.Field, len(variables))
	for _, f := range variables {
		byKey[f.Key] = f
	}
	if !byKey["no_surat"].IsAutoNumber {
		t.Fatalf("no_surat should be auto-number")
	}
	if byKey["tanggal"].Type != fieldmap.FieldTypeDate {
		t.Fatalf("tanggal should classify as date, got %s", byKey["tanggal"].Type)
	}
	if byKey["nama_mahasiswa"].Label != "Nama Mahasiswa" {
		t.Fatalf("expected dictionary label, got %q", byKey["nama_mahasiswa"].Label)
	}
	// {keperluan} is a single-brace match and must rank below the doubles.
	if !(byKey["keperluan"].Confidence < byKey["nim"].Confidence) {
		t.Fatalf("single-brace confidence %v should be below double-brace %v",
			byKey["keperluan"].Confidence, byKey["nim"].Confidence)
	}
}

func TestAnalyzeExtraction_HTMLFallback(t *testing.T) {
	session, err := fieldmap.AnalyzeExtraction(fieldmap.Extraction{
		HTML: "<p>Kepada: <b>{{nama_mahasiswa}}</b></p><p>NIM: {{nim}}</p>",
	})
	if err != nil {
		t.Fatalf("analyze extraction: %v", err)
	}
	if got := len(session.Variables()); got != 2 {
		t.Fatalf("expected 2 variables from HTML rendition, got %d", got)
	}
}

func TestAnalyze_ExportContract(t *testing.T) {
	session, err := fieldmap.Analyze(testsupport.SampleLetter)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	entries, violations := session.Export()
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %#v", violations)
	}
	if len(entries) != len(testsupport.SampleLetterKeys) {
		t.Fatalf("expected %d entries, got %d", len(testsupport.SampleLetterKeys), len(entries))
	}

	schema := contract.Schema("surat_aktif_kuliah", entries)
	if len(schema.Properties) != len(entries) {
		t.Fatalf("schema should carry one property per entry, got %d", len(schema.Properties))
	}
}
