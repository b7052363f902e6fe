// ABOUTME: Tests for the profile document loader
// ABOUTME: Covers the single-path contract and parse errors
package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `{
		"about_me": {
			"intro": "I'm a developer.",
			"background": "Healthcare first.",
			"current_role": "Software developer at Acme"
		},
		"work_experience": {
			"current_job": {"company": "Acme", "team": "Platform"}
		},
		"skills_and_interests": {
			"programming": {"daily_drivers": ["Go", "Python"]}
		}
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.AboutMe.Intro != "I'm a developer." {
		t.Errorf("Intro = %q", doc.AboutMe.Intro)
	}
	if doc.WorkExperience.CurrentJob.Company != "Acme" {
		t.Errorf("Company = %q", doc.WorkExperience.CurrentJob.Company)
	}
	if len(doc.SkillsAndInterests.Programming.DailyDrivers) != 2 {
		t.Errorf("DailyDrivers = %v", doc.SkillsAndInterests.Programming.DailyDrivers)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeProfile(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_UnknownSectionsIgnored(t *testing.T) {
	path := writeProfile(t, `{"about_me": {"intro": "hi"}, "future_section": {"x": 1}}`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.AboutMe.Intro != "hi" {
		t.Errorf("Intro = %q", doc.AboutMe.Intro)
	}
}
