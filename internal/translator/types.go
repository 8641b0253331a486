package translator

import (
	"context"
	"time"
)

// Tier selects which backend endpoint variant the DeepL service calls.
// The request and response shape is identical on both.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

type ServiceConfig struct {
	AuthKey     string `mapstructure:"auth_key" json:"auth_key"`
	Credentials string `mapstructure:"credentials" json:"credentials"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// ServiceResult carries one translated blob. Backend metadata such as the
// detected source language or billed character counts is discarded.
type ServiceResult struct {
	ServiceName    string        `json:"service_name"`
	TranslatedText string        `json:"translated_text"`
	Latency        time.Duration `json:"latency"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
}
