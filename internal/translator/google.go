package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService is an alternative backend using the Google Cloud Translation
// API. Text is submitted in HTML format so markup survives translation.
type GoogleService struct{}

func NewGoogleService() *GoogleService {
	return &GoogleService{}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetLangTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	translateOpts := &translate.Options{Format: translate.HTML}
	if req.SourceLang != "" {
		sourceLangTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return result, fmt.Errorf("invalid source language: %w", err)
		}
		translateOpts.Source = sourceLangTag
	}

	translations, err := client.Translate(ctx, []string{req.Text}, targetLangTag, translateOpts)
	if err != nil {
		return result, fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		return result, fmt.Errorf("%w: no translation returned", ErrResponseFormat)
	}

	result.TranslatedText = translations[0].Text

	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}
