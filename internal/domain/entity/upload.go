package entity

// UploadScope selects the media folder an upload is signed for.
type UploadScope string

const (
	ScopeProducts UploadScope = "products"
	ScopeSite     UploadScope = "site"
	ScopeAvatars  UploadScope = "avatars"
	ScopeGeneral  UploadScope = "general"
)

// UploadTicket is a short-lived signed credential issued by the backend
// that lets the gateway post a file directly to the media host without
// ever holding the media account's API secret.
type UploadTicket struct {
	CloudName string
	APIKey    string
	Timestamp int64
	Folder    string
	Signature string
	UploadURL string
}

// Valid reports whether the ticket carries every field the media host
// requires for a signed upload.
func (t UploadTicket) Valid() bool {
	return t.UploadURL != "" && t.APIKey != "" && t.Signature != ""
}
