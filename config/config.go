package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	// Base URL resolution chain for the upstream backend: explicit config
	// or env override first, then the production host, then local dev.
	productionUpstreamURL = "https://star-store-backend.onrender.com"
	localUpstreamURL      = "http://localhost:5000"

	defaultPreviewURL  = "http://localhost:5173/"
	defaultMaxImageMB  = 3
	defaultPollEvery   = 15 * time.Second
	defaultToastTTL    = 4 * time.Second
	defaultHTTPPort    = 7080
	defaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream is the Star Store backend that owns every record the
	// gateway caches. There is no local persistence behind it.
	Upstream struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"upstream" yaml:"upstream"`

	// Translate points at a LibreTranslate-compatible endpoint. Empty
	// means "<upstream>/translate".
	Translate struct {
		URL string `json:"url" yaml:"url"`
	} `json:"translate" yaml:"translate"`

	Uploads struct {
		MaxImageMB float64 `json:"maxImageMb" yaml:"maxImageMb"`
	} `json:"uploads" yaml:"uploads"`

	// Images optionally prefixes relative image paths with a CDN base URL.
	Images struct {
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"images" yaml:"images"`

	// Assistant configuration for the generative endpoint. Nil or an
	// empty key keeps the assistant on the canned-response table.
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	Builder struct {
		PreviewURL string `json:"previewUrl" yaml:"previewUrl"`
	} `json:"builder" yaml:"builder"`

	// Prefs is the file-backed store holding the bearer token and the
	// operator's display preferences between runs.
	Prefs struct {
		Path string `json:"path" yaml:"path"`
	} `json:"prefs" yaml:"prefs"`

	Poll struct {
		Interval time.Duration `json:"interval" yaml:"interval"`
	} `json:"poll" yaml:"poll"`

	Notifications struct {
		ToastTTL time.Duration `json:"toastTtl" yaml:"toastTtl"`
	} `json:"notifications" yaml:"notifications"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AssistantConfig defines the generative assistant endpoint
type AssistantConfig struct {
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	Model   string `json:"model" yaml:"model"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: UPSTREAM_BASEURL -> upstream.baseUrl (not upstream.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional field with its documented default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Upstream.BaseURL) == "" {
		if strings.EqualFold(c.Env.Env, "production") {
			c.Upstream.BaseURL = productionUpstreamURL
		} else {
			c.Upstream.BaseURL = localUpstreamURL
		}
	}
	c.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(c.Upstream.BaseURL), "/")
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = defaultHTTPTimeout
	}
	if strings.TrimSpace(c.Translate.URL) == "" {
		c.Translate.URL = c.Upstream.BaseURL + "/translate"
	}
	if c.Uploads.MaxImageMB <= 0 {
		c.Uploads.MaxImageMB = defaultMaxImageMB
	}
	if strings.TrimSpace(c.Builder.PreviewURL) == "" {
		c.Builder.PreviewURL = defaultPreviewURL
	}
	if strings.TrimSpace(c.Prefs.Path) == "" {
		c.Prefs.Path = filepath.Join(defaultPath, "staradmin-prefs.json")
	}
	if c.Poll.Interval <= 0 {
		c.Poll.Interval = defaultPollEvery
	}
	if c.Notifications.ToastTTL <= 0 {
		c.Notifications.ToastTTL = defaultToastTTL
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
}

// MaxImageBytes converts the configured image size limit to bytes.
func (c *Config) MaxImageBytes() int64 {
	return int64(c.Uploads.MaxImageMB * 1024 * 1024)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
