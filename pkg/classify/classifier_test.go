package classify_test

import (
	"testing"
	"testing/fstest"

	"github.com/devnolife/go-fieldmap/pkg/classify"
	"github.com/devnolife/go-fieldmap/pkg/detect"
	"github.com/devnolife/go-fieldmap/pkg/field"
)

func TestClassify_OrderedRules(t *testing.T) {
	classifier := classify.NewClassifier(classify.Default())

	tests := []struct {
		key        string
		wantType   field.FieldType
		autoNumber bool
	}{
		{key: "no_surat", wantType: field.FieldTypeContent, autoNumber: true},
		{key: "nomor_surat", wantType: field.FieldTypeContent, autoNumber: true},
		{key: "document_number", wantType: field.FieldTypeContent, autoNumber: true},
		{key: "lampiran_no_surat", wantType: field.FieldTypeContent, autoNumber: true},
		{key: "tanggal_lahir", wantType: field.FieldTypeDate},
		{key: "start_date", wantType: field.FieldTypeDate},
		{key: "nomor_induk", wantType: field.FieldTypeNumber},
		{key: "no_hp", wantType: field.FieldTypeNumber},
		{key: "phone_number", wantType: field.FieldTypeNumber},
		{key: "email_wali", wantType: field.FieldTypeEmail},
		{key: "alamat_rumah", wantType: field.FieldTypeTextarea},
		{key: "keterangan", wantType: field.FieldTypeTextarea},
		{key: "deskripsi_kegiatan", wantType: field.FieldTypeTextarea},
		{key: "nama_mahasiswa", wantType: field.FieldTypeContent},
		{key: "judul_skripsi", wantType: field.FieldTypeContent},
	}

	for _, tc := range tests {
		got := classifier.Classify(tc.key)
		if got.Type != tc.wantType {
			t.Errorf("key %q: type %s, want %s", tc.key, got.Type, tc.wantType)
		}
		if got.AutoNumber != tc.autoNumber {
			t.Errorf("key %q: autoNumber %v, want %v", tc.key, got.AutoNumber, tc.autoNumber)
		}
	}
}

func TestClassify_DateWinsOverNumber(t *testing.T) {
	// "tanggal_nomor" matches both the date and number heuristics; the
	// ordered rules must pick date.
	classifier := classify.NewClassifier(classify.Default())

	got := classifier.Classify("tanggal_nomor")
	if got.Type != field.FieldTypeDate {
		t.Fatalf("expected date, got %s", got.Type)
	}
}

func TestClassify_DictionaryLabelWins(t *testing.T) {
	classifier := classify.NewClassifier(classify.Default())

	got := classifier.Classify("ipk")
	if got.Label != "IPK" {
		t.Fatalf("expected curated label IPK, got %q", got.Label)
	}
	if !got.DictionaryMatch {
		t.Fatalf("expected dictionary match for ipk")
	}
}

func TestClassify_DerivedLabelFallback(t *testing.T) {
	classifier := classify.NewClassifier(classify.Default())

	got := classifier.Classify("catatan_tambahan_panitia")
	if got.Label != "Catatan Tambahan Panitia" {
		t.Fatalf("unexpected derived label %q", got.Label)
	}
	if got.DictionaryMatch {
		t.Fatalf("did not expect a dictionary match")
	}
}

func TestClassify_CaseInsensitiveLookup(t *testing.T) {
	classifier := classify.NewClassifier(classify.Default())

	got := classifier.Classify("NAMA MAHASISWA")
	if got.Label != "Nama Mahasiswa" {
		t.Fatalf("expected case-insensitive dictionary hit, got %q", got.Label)
	}
}

func TestLoadFS_MergesOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"base.yaml": &fstest.MapFile{Data: []byte(
			"labels:\n  kode_mk: Kode MK\nautoNumber:\n  - ref_number\n",
		)},
		"extra.yml": &fstest.MapFile{Data: []byte(
			"labels:\n  kode_mk: Kode Mata Kuliah\n",
		)},
	}

	dict, err := classify.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !dict.IsAutoNumber("ref_number_internal") {
		t.Fatalf("expected ref_number vocabulary to match by substring")
	}
	if label, ok := dict.Label("kode_mk"); !ok || label == "" {
		t.Fatalf("expected merged label, got %q (%v)", label, ok)
	}
}

func TestLoadFS_BadYAMLSurfaces(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml": &fstest.MapFile{Data: []byte("labels: [not a map")},
	}

	if _, err := classify.LoadFS(fsys); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestScorer_Ordering(t *testing.T) {
	scorer := classify.DefaultScorer()

	double := scorer.Score(detect.BracketDouble, false)
	dictSingle := scorer.Score(detect.BracketSingle, true)
	single := scorer.Score(detect.BracketSingle, false)

	if !(double > dictSingle && dictSingle > single) {
		t.Fatalf("ordering violated: double=%v dict=%v single=%v", double, dictSingle, single)
	}
	if field.ManualConfidence <= double {
		t.Fatalf("manual confidence must top the scale")
	}
	if scorer.Score(detect.BracketDouble, true) < double {
		t.Fatalf("dictionary recognition must never lower a double-brace score")
	}
}

func TestScorer_Clamped(t *testing.T) {
	scorer := classify.Scorer{DoubleBrace: 1.7, SingleBrace: -0.4}

	if got := scorer.Score(detect.BracketDouble, false); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := scorer.Score(detect.BracketSingle, false); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}
