package starstore

import (
	"strings"

	"staradmin/internal/domain/entity"
)

// resolveImageURL prefixes relative image paths with the configured CDN
// base. Absolute, protocol-relative, data: and blob: URLs pass through.
func resolveImageURL(base, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || base == "" {
		return value
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") || strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "blob:") {
		return value
	}

	if strings.HasPrefix(value, "/") {
		return base + value
	}

	return base + "/" + value
}

func (c *Client) imageURL(raw string) string {
	return resolveImageURL(c.imageBase, raw)
}

func (c *Client) resolveProductImages(p *entity.Product) {
	p.Image = c.imageURL(p.Image)
	for i, item := range p.Gallery {
		p.Gallery[i] = c.imageURL(item)
	}
	for color, url := range p.ColorImages {
		p.ColorImages[color] = c.imageURL(url)
	}
}
