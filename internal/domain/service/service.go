// Package service declares side-effecting service ports implemented by
// the infra layer.
package service

import (
	"context"
	"io"

	"staradmin/internal/domain/entity"
)

// Translator performs best-effort machine translation. Implementations
// must return an error rather than a fallback; callers decide whether a
// failure is fatal (for primary CRUD it never is).
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// MediaUploader posts a file directly to the media host using a signed
// ticket and returns the resulting secure URL.
type MediaUploader interface {
	Upload(ctx context.Context, ticket entity.UploadTicket, filename string, file io.Reader) (string, error)
}

// AssistantReply is the assistant's answer to one chat message.
type AssistantReply struct {
	Text    string
	Offline bool // true when the canned fallback produced the answer
}

// Assistant answers admin chat messages. Implementations never surface
// errors: any failure collapses into a canned offline reply.
type Assistant interface {
	Reply(ctx context.Context, message string) AssistantReply
}

// QRCodeService renders content as a QR PNG, used for opening the
// storefront preview on a phone.
type QRCodeService interface {
	GeneratePNG(content string) ([]byte, error)
}
