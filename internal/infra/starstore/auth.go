package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	domainErrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository implements repository.AuthRepository over the
// backend's auth endpoints.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

type accountDTO struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (d accountDTO) toEntity() entity.AdminUser {
	role := entity.Role(d.Role)
	if role != entity.RoleAdmin {
		role = entity.RoleEditor
	}

	name := d.Username
	if name == "" {
		name = d.Email
	}
	if name == "" {
		name = "Admin"
	}

	avatar := d.AvatarURL
	if avatar == "" {
		avatar = avatarFallback(name)
	}

	return entity.AdminUser{
		Name:        name,
		Email:       d.Email,
		Role:        role,
		Avatar:      avatar,
		Permissions: permissionsFor(role),
	}
}

// permissionsFor lists the display permissions the profile card shows
// for each role.
func permissionsFor(role entity.Role) []string {
	if role == entity.RoleAdmin {
		return []string{
			"Mahsulotlarni boshqarish",
			"Buyurtmalarni boshqarish",
			"Mijozlarni boshqarish",
			"Sayt tuzilishini tahrirlash",
			"Moliyaviy hisobotlarni korish",
		}
	}

	return []string{"Malumotlarni korish"}
}

func (r *authRepository) Login(ctx context.Context, login, password string) (entity.AdminUser, string, error) {
	body := map[string]string{"login": login, "password": password}

	raw, err := r.client.do(ctx, http.MethodPost, "/auth/login", body, WithoutAuth())
	if err != nil {
		return entity.AdminUser{}, "", err
	}

	var resp struct {
		Success bool       `json:"success"`
		User    accountDTO `json:"user"`
		Token   string     `json:"token"`
	}
	if err := decodeInto(raw, &resp); err != nil {
		return entity.AdminUser{}, "", errors.Wrap(err, "decode login response")
	}
	if !resp.Success || resp.Token == "" {
		return entity.AdminUser{}, "", domainErrors.ErrLoginFailed
	}

	return resp.User.toEntity(), resp.Token, nil
}

func (r *authRepository) Me(ctx context.Context) (entity.AdminUser, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		return entity.AdminUser{}, err
	}

	var resp struct {
		Success bool       `json:"success"`
		User    accountDTO `json:"user"`
	}
	if err := decodeInto(raw, &resp); err != nil {
		return entity.AdminUser{}, errors.Wrap(err, "decode me response")
	}
	if !resp.Success {
		return entity.AdminUser{}, domainErrors.ErrSessionInvalid
	}

	return resp.User.toEntity(), nil
}

func (r *authRepository) SignUpload(ctx context.Context, scope entity.UploadScope) (entity.UploadTicket, error) {
	body := map[string]string{"scope": string(scope)}

	raw, err := r.client.do(ctx, http.MethodPost, "/uploads/sign", body)
	if err != nil {
		return entity.UploadTicket{}, err
	}

	var dto struct {
		CloudName string     `json:"cloud_name"`
		APIKey    string     `json:"api_key"`
		Timestamp flexMillis `json:"timestamp"`
		Folder    string     `json:"folder"`
		Signature string     `json:"signature"`
		UploadURL string     `json:"upload_url"`
	}
	if err := decodeInto(raw, &dto); err != nil {
		return entity.UploadTicket{}, errors.Wrap(err, "decode upload ticket")
	}

	ticket := entity.UploadTicket{
		CloudName: dto.CloudName,
		APIKey:    dto.APIKey,
		Timestamp: int64(dto.Timestamp),
		Folder:    dto.Folder,
		Signature: dto.Signature,
		UploadURL: dto.UploadURL,
	}
	if !ticket.Valid() {
		return entity.UploadTicket{}, domainErrors.ErrUploadTicketInvalid
	}

	return ticket, nil
}
