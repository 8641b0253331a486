package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	deeplFreeBaseURL = "https://api-free.deepl.com"
	deeplProBaseURL  = "https://api.deepl.com"
)

// DeepLService calls the DeepL v2 text translation endpoint. The tier picks
// the free or the pro hostname; everything else is identical between them.
//
// The payload is sent with tag_handling=html so markup in the text is not
// mangled, and with outline_detection disabled so the backend treats the
// whole blob as flat flowing text instead of inferring a heading structure.
//
// The HTTP client carries no timeout: a hung call blocks until an external
// process-level timeout intervenes.
type DeepLService struct {
	authKey string
	baseURL string
	client  *http.Client
}

func NewDeepLService(authKey string, tier Tier) *DeepLService {
	baseURL := deeplFreeBaseURL
	if tier == TierPro {
		baseURL = deeplProBaseURL
	}
	return &DeepLService{
		authKey: authKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (s *DeepLService) Name() string {
	return "deepl"
}

func (s *DeepLService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	authKey := s.authKey
	if authKey == "" {
		authKey = cfg.AuthKey
	}
	if authKey == "" {
		return result, fmt.Errorf("DeepL auth key required")
	}

	deeplReq := map[string]interface{}{
		"text":              []string{req.Text},
		"target_lang":       req.TargetLang,
		"tag_handling":      "html",
		"outline_detection": false,
	}
	if req.SourceLang != "" {
		deeplReq["source_lang"] = req.SourceLang
	}

	jsonData, err := json.Marshal(deeplReq)
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v2/translate", bytes.NewBuffer(jsonData))
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+authKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return result, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return result, &BackendError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&deeplResp); err != nil {
		return result, fmt.Errorf("%w: %v", ErrResponseFormat, err)
	}

	if len(deeplResp.Translations) == 0 {
		return result, fmt.Errorf("%w: no translations in response", ErrResponseFormat)
	}

	result.TranslatedText = deeplResp.Translations[0].Text

	return result, nil
}

func (s *DeepLService) IsAvailable(ctx context.Context) error {
	if s.authKey == "" {
		return fmt.Errorf("DeepL auth key not configured")
	}
	return nil
}
