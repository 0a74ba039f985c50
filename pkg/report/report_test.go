package report_test

import (
	"strings"
	"testing"

	"github.com/devnolife/go-fieldmap/pkg/analyzer"
	"github.com/devnolife/go-fieldmap/pkg/report"
)

func TestRender_SummarizesFields(t *testing.T) {
	session, err := analyzer.New().NewSessionFromText(
		"Nomor: {{no_surat}}\nKepada: {{nama_mahasiswa}}\nTanggal: {{tanggal}}")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	out, err := report.Render(report.Data{
		Title:    "surat_keterangan",
		Fields:   session.Fields(),
		Metadata: session.Metadata(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"surat_keterangan",
		"nama_mahasiswa",
		"Nama Mahasiswa",
		"auto-number",
		"date",
		"3 variable",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Contract violations") {
		t.Fatalf("no violations section expected:\n%s", out)
	}
}

func TestRender_EmptyTemplate(t *testing.T) {
	out, err := report.Render(report.Data{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "No placeholders detected") {
		t.Fatalf("expected empty-state message:\n%s", out)
	}
}
