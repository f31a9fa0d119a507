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
	defaultPath           = "."
	defaultHTTPPort       = 8080
	defaultAPITimeout     = 10 * time.Second
	defaultTokenStorePath = ".jobboard/session.db"
	defaultLoginPath      = "/login"
	defaultHomePath       = "/"
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

	// API points at the remote job-board service (identity, listing, applications).
	API *APIConfig `json:"api" yaml:"api"`

	// TokenStore configures the durable session slots.
	TokenStore *TokenStoreConfig `json:"tokenStore" yaml:"tokenStore"`

	// Gate holds the redirect targets used by route gating.
	Gate *GateConfig `json:"gate" yaml:"gate"`
}

// APIConfig defines how the remote job-board API is reached.
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// TokenStoreConfig defines where session credentials are persisted.
type TokenStoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// GateConfig defines where gated routes redirect to.
type GateConfig struct {
	LoginPath string `json:"loginPath" yaml:"loginPath"`
	HomePath  string `json:"homePath" yaml:"homePath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// API_BASEURL -> api.baseUrl, TOKENSTORE_PATH -> tokenStore.path
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, errors.New("api.baseUrl must be provided")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.TokenStore == nil {
		cfg.TokenStore = &TokenStoreConfig{}
	}
	if strings.TrimSpace(cfg.TokenStore.Path) == "" {
		cfg.TokenStore.Path = defaultTokenStorePath
	}

	if cfg.Gate == nil {
		cfg.Gate = &GateConfig{}
	}
	if cfg.Gate.LoginPath == "" {
		cfg.Gate.LoginPath = defaultLoginPath
	}
	if cfg.Gate.HomePath == "" {
		cfg.Gate.HomePath = defaultHomePath
	}
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// canonicalizeEnvKey maps an environment key onto the casing of the loaded YAML keys.
// It returns "" for keys that would replace a YAML section with a scalar or descend
// below a YAML scalar, so unrelated variables such as API_TIMEOUT_MS are skipped.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing
	matchedSection := false
	matchedLeaf := false

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matchedLeaf {
			return ""
		}

		matched, value, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil
			matchedSection = false

			continue
		}

		canonical = append(canonical, matched)
		current, matchedSection = value.(map[string]any)
		// A null YAML value can still be filled from the environment at any depth.
		matchedLeaf = !matchedSection && value != nil
	}

	if matchedSection {
		return ""
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, value any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) == needle {
			return key, value, true
		}
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
