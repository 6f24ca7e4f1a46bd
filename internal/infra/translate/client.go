// Package translate calls the machine-translation endpoint used to
// enrich catalog and layout text with English and Russian variants.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"staradmin/config"
	"staradmin/internal/domain/service"

	"github.com/pkg/errors"
)

type client struct {
	url  string
	http *http.Client
}

// New builds the translation client. The endpoint defaults to the
// upstream backend's /translate route when not configured explicitly.
func New(cfg *config.Config) service.Translator {
	return &client{
		url:  cfg.Translate.URL,
		http: &http.Client{Timeout: cfg.Upstream.Timeout},
	}
}

// Translate converts Uzbek source text into the target language. The
// caller treats failures as best-effort and falls back to the original
// text, so errors here carry context but no user-facing message.
func (c *client) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": "uz",
		"target": target,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode translate request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build translate request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call translate endpoint")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read translate response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("translate endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.Wrap(err, "decode translate response")
	}
	if strings.TrimSpace(body.TranslatedText) == "" {
		return "", errors.New("translate endpoint returned empty text")
	}

	return body.TranslatedText, nil
}
