package cmd

import (
	"testing"

	"github.com/almamala/pagetran/internal/translator"
)

func TestBuildService_DeepL(t *testing.T) {
	svc, err := buildService("deepl", "key", translator.TierFree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Name() != "deepl" {
		t.Errorf("expected 'deepl', got %q", svc.Name())
	}
}

func TestBuildService_Google(t *testing.T) {
	svc, err := buildService("google", "", translator.TierFree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
}

func TestBuildService_Unknown(t *testing.T) {
	_, err := buildService("bing", "", translator.TierFree)
	if err == nil {
		t.Error("expected error for unknown service")
	}
}
