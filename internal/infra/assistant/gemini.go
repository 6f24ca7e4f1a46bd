// Package assistant answers admin chat questions, preferring a hosted
// generative model and degrading to a canned keyword table when the
// model is unconfigured or unreachable.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"staradmin/config"
	"staradmin/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	systemInstruction = "Sen Star Store onlayn do'konining yordamchi botisan. " +
		"Administratorga do'kon boshqaruvi bo'yicha qisqa va aniq javob ber. " +
		"Faqat o'zbek tilida yoz. Do'konning joriy holati quyida berilgan; " +
		"raqamlar kerak bo'lsa shulardan foydalan."
)

type geminiAssistant struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	stats   StatsFunc
	logger  *slog.Logger
}

// New builds the assistant. A nil assistant config or empty API key
// yields an offline-only assistant backed by the canned table.
func New(cfg *config.Config, stats StatsFunc, logger *slog.Logger) service.Assistant {
	a := &geminiAssistant{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		http:    &http.Client{Timeout: 30 * time.Second},
		stats:   stats,
		logger:  logger,
	}
	if cfg.Assistant != nil {
		a.apiKey = cfg.Assistant.APIKey
		if cfg.Assistant.Model != "" {
			a.model = cfg.Assistant.Model
		}
		if cfg.Assistant.BaseURL != "" {
			a.baseURL = strings.TrimRight(cfg.Assistant.BaseURL, "/")
		}
	}

	return a
}

// Reply answers one chat message. It never returns an error: model
// failures are logged and collapse into the canned fallback.
func (a *geminiAssistant) Reply(ctx context.Context, message string) service.AssistantReply {
	stats := a.stats()

	if a.apiKey == "" {
		return service.AssistantReply{Text: cannedReply(message, stats), Offline: true}
	}

	text, err := a.generate(ctx, message, stats)
	if err != nil {
		a.logger.WarnContext(ctx, "assistant model call failed, using canned reply", slog.Any("error", err))

		return service.AssistantReply{Text: cannedReply(message, stats), Offline: true}
	}

	return service.AssistantReply{Text: text}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (a *geminiAssistant) generate(ctx context.Context, message string, stats Stats) (string, error) {
	instruction := fmt.Sprintf(
		"%s\n\nMahsulotlar: %d\nBuyurtmalar: %d (jarayonda: %d)\nMijozlar: %d\nUmumiy savdo: $%.2f",
		systemInstruction, stats.Products, stats.Orders, stats.Processing, stats.Customers, stats.TotalRevenue,
	)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
		GenerationConfig:  &generationConfig{Temperature: 0.4, MaxOutputTokens: 512},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode model request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build model request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call model endpoint")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read model response")
	}

	var body geminiResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.Wrap(err, "decode model response")
	}
	if resp.StatusCode != http.StatusOK {
		if body.Error != nil && body.Error.Message != "" {
			return "", errors.Errorf("model endpoint: %s", body.Error.Message)
		}
		return "", errors.Errorf("model endpoint returned %d", resp.StatusCode)
	}

	var out strings.Builder
	for _, candidate := range body.Candidates {
		for _, part := range candidate.Content.Parts {
			out.WriteString(part.Text)
		}

		break
	}
	if strings.TrimSpace(out.String()) == "" {
		return "", errors.New("model returned no text")
	}

	return out.String(), nil
}
