package impl

import (
	"context"

	"staradmin/internal/domain/service"
)

// i18nTargets are the translation languages derived from the Uzbek
// source text.
var i18nTargets = []string{"en", "ru"}

// translations builds the {lang: text} map for one source string.
// Translation is best-effort: a failed target falls back to the source
// text so the storefront never shows a hole.
func translations(ctx context.Context, translator service.Translator, text string) map[string]string {
	out := make(map[string]string, len(i18nTargets))
	if text == "" {
		return out
	}

	for _, target := range i18nTargets {
		translated, err := translator.Translate(ctx, text, target)
		if err != nil || translated == "" {
			translated = text
		}
		out[target] = translated
	}

	return out
}
