package fill

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"docfill/config"
	"docfill/state"
)

func testEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	return &state.LocalEnv{Cfg: cfg, Log: zap.NewNop()}
}

func TestBuildOutputPath_DefaultTemplate(t *testing.T) {
	env := testEnv(t)

	// default template is "{{ .Name }}-filled"
	got := buildOutputPath("consent.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "consent-filled.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_NoTemplate(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = ""

	got := buildOutputPath("forms/consent.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "forms", "consent-filled.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_NoDirs(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = ""
	env.NoDirs = true

	got := buildOutputPath("deep/nested/consent.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "consent-filled.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_RefTemplate(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = "{{ .Name }}-{{ .Ref }}"

	got := buildOutputPath("consent.docx", "/out", "abc123", env)
	want := filepath.Join("/out", "consent-abc123.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_TemplateWithSubdirs(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = "filled/{{ .Name }}"

	got := buildOutputPath("consent.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "filled", "consent.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_BadTemplateFallsBack(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = "{{ .NoSuchField }}"

	got := buildOutputPath("consent.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "consent-filled.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_Transliterate(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.FileNameTransliterate = true

	got := buildOutputPath("Patient Form.docx", "/out", "ref-1", env)
	want := filepath.Join("/out", "patient-form-filled.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestExpandTemplate_Date(t *testing.T) {
	got, err := expandTemplate(config.OutputNameTemplateFieldName, "{{ .Name }}-{{ .Date }}", Values{Name: "x", Date: "2026-01-02"})
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "x-2026-01-02" {
		t.Errorf("expandTemplate() = %q", got)
	}
}

func TestExpandTemplate_SprigFunctions(t *testing.T) {
	got, err := expandTemplate(config.OutputNameTemplateFieldName, `{{ .Name | upper }}`, Values{Name: "consent"})
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "CONSENT" {
		t.Errorf("expandTemplate() = %q, want CONSENT", got)
	}
}
