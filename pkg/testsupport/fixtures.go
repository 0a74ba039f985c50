// Package testsupport holds shared fixtures for the engine's tests: sample
// academic letter templates with known placeholder layouts.
package testsupport

import (
	"os"
	"testing"
)

// SampleLetter is a typical student-status letter template with a mix of
// auto-number, dictionary-recognized, and free-form placeholders.
const SampleLetter = `Nomor: {{no_surat}}
Perihal: Surat Keterangan Aktif Kuliah

Yang bertanda tangan di bawah ini menerangkan bahwa:

  Nama     : {{nama_mahasiswa}}
  NIM      : {{nim}}
  Program  : {{program_studi}}
  Semester : {{semester}}

adalah mahasiswa aktif pada tahun akademik {{tahun_akademik}}.

Surat ini dibuat untuk {keperluan}.

Makassar, {{tanggal}}
`

// SampleLetterKeys lists the variable keys of SampleLetter in reading order.
var SampleLetterKeys = []string{
	"no_surat", "nama_mahasiswa", "nim", "program_studi",
	"semester", "tahun_akademik", "keperluan", "tanggal",
}

// WriteTempTemplate writes contents to a temp file and returns its path. The
// file is removed when the test finishes.
func WriteTempTemplate(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "template-*.txt")
	if err != nil {
		t.Fatalf("testsupport: create temp template: %v", err)
	}
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("testsupport: write temp template: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("testsupport: close temp template: %v", err)
	}
	return f.Name()
}
