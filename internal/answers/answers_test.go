package answers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/complykit/complykit/internal/rules"
)

func builtinPack(t *testing.T) *rules.Pack {
	t.Helper()
	pack, err := rules.Get("eu-ai-act")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return pack
}

const answersYAML = `medical_diagnosis: other
automated_decision_making: "no"
biometric_identification: "no"
emotion_recognition: "no"
critical_infrastructure: "no"
data_processing: none
transparency: full
human_oversight: continuous
`

func TestParse_ValidAnswers(t *testing.T) {
	set, err := Parse([]byte(answersYAML), builtinPack(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(set) != 8 {
		t.Errorf("answer count = %d, want 8", len(set))
	}
	if set["transparency"] != "full" {
		t.Errorf("transparency = %q, want full", set["transparency"])
	}
}

func TestParse_UnknownQuestion(t *testing.T) {
	data := answersYAML + "favorite_color: blue\n"
	_, err := Parse([]byte(data), builtinPack(t))
	if err == nil || !strings.Contains(err.Error(), "unknown question id") {
		t.Fatalf("err = %v, want unknown question id", err)
	}
}

func TestParse_UnknownOptionValue(t *testing.T) {
	data := strings.Replace(answersYAML, "transparency: full", "transparency: total", 1)
	_, err := Parse([]byte(data), builtinPack(t))
	if err == nil || !strings.Contains(err.Error(), "is not an option") {
		t.Fatalf("err = %v, want not-an-option", err)
	}
}

func TestParse_PartialAnswers_Allowed(t *testing.T) {
	// Completeness is enforced by the scorer, not the loader.
	set, err := Parse([]byte("transparency: full\n"), builtinPack(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(set) != 1 {
		t.Errorf("answer count = %d, want 1", len(set))
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(answersYAML), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	set, err := Load(path, builtinPack(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set["human_oversight"] != "continuous" {
		t.Errorf("human_oversight = %q, want continuous", set["human_oversight"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), builtinPack(t))
	if err == nil {
		t.Fatal("Load succeeded for missing file")
	}
}
