// Package media posts files to the media host using signed tickets
// issued by the backend, so the gateway never holds the media account's
// API secret.
package media

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"staradmin/config"
	"staradmin/internal/domain/entity"
	domainErrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/service"

	"github.com/pkg/errors"
)

type uploader struct {
	http *http.Client
}

// New builds the signed-upload client.
func New(cfg *config.Config) service.MediaUploader {
	return &uploader{
		http: &http.Client{Timeout: cfg.Upstream.Timeout},
	}
}

// Upload streams the file as multipart form data to the ticket's upload
// URL together with the signature fields, and returns the hosted URL.
func (u *uploader) Upload(ctx context.Context, ticket entity.UploadTicket, filename string, file io.Reader) (string, error) {
	if !ticket.Valid() {
		return "", domainErrors.ErrUploadTicketInvalid
	}

	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)

	go func() {
		err := writeForm(form, ticket, filename, file)
		if closeErr := form.Close(); err == nil {
			err = closeErr
		}
		pipeWriter.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ticket.UploadURL, pipeReader)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post file to media host")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read media host response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("media host returned %d", resp.StatusCode)
	}

	var body struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.Wrap(err, "decode media host response")
	}

	hosted := body.SecureURL
	if hosted == "" {
		hosted = body.URL
	}
	if hosted == "" {
		return "", errors.New("media host returned no file URL")
	}

	return hosted, nil
}

func writeForm(form *multipart.Writer, ticket entity.UploadTicket, filename string, file io.Reader) error {
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return errors.Wrap(err, "create file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "copy file part")
	}

	fields := map[string]string{
		"api_key":   ticket.APIKey,
		"timestamp": strconv.FormatInt(ticket.Timestamp, 10),
		"signature": ticket.Signature,
		"folder":    ticket.Folder,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := form.WriteField(name, value); err != nil {
			return errors.Wrapf(err, "write %s field", name)
		}
	}

	return nil
}
