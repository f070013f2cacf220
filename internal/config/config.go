package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language string `json:"language"`
		UseEmoji bool   `json:"use_emoji"`
		PathFile string `json:"path_file"`

		// TemplatesDir overrides the provider-derived template directory.
		// Relative paths are resolved against the repository root.
		TemplatesDir string `json:"templates_dir,omitempty"`

		ActiveVCSProvider string               `json:"active_vcs_provider,omitempty"` // "github", "gitlab"
		VCSConfigs        map[string]VCSConfig `json:"vcs_configs,omitempty"`

		AIConfig    AIConfig                    `json:"ai_config"`
		AIProviders map[string]AIProviderConfig `json:"ai_providers,omitempty"`

		DisableUpdateCheck bool `json:"disable_update_check,omitempty"`
	}

	VCSConfig struct {
		Provider string `json:"provider,omitempty"`
		Owner    string `json:"owner,omitempty"`
		Repo     string `json:"repo,omitempty"`
		Token    string `json:"token,omitempty"`
	}

	AIConfig struct {
		ActiveAI AI           `json:"active_ai,omitempty"`
		Models   map[AI]Model `json:"models,omitempty"`
	}

	AIProviderConfig struct {
		APIKey string `json:"api_key,omitempty"`
	}
)

const (
	defaultLang     = "en"
	defaultUseEmoji = true

	configDirName  = ".issuemate"
	configFileName = "config.json"
)

// LoadConfig loads the configuration from path. When path points at a .json
// file it is used directly; otherwise path is treated as the home directory
// and ~/.issuemate/config.json is used, created with defaults if absent.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		UseEmoji: defaultUseEmoji,
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}

	switch config.ActiveVCSProvider {
	case "", "github", "gitlab":
	default:
		return fmt.Errorf("proveedor de VCS no soportado: %s", config.ActiveVCSProvider)
	}

	if ai := config.AIConfig.ActiveAI; ai != "" && !isSupportedAI(ai) {
		return fmt.Errorf("proveedor de IA no soportado: %s", ai)
	}

	return nil
}

func isSupportedAI(ai AI) bool {
	for _, supported := range SupportedAIs() {
		if ai == supported {
			return true
		}
	}
	return false
}

// ConfigDir returns the directory the config file lives in. Drafts and
// other per-user state are stored alongside it.
func (c *Config) ConfigDir() string {
	return filepath.Dir(c.PathFile)
}

// ActiveVCS returns the configuration of the active VCS provider. The
// ISSUEMATE_GITHUB_TOKEN environment variable overrides a stored github
// token.
func (c *Config) ActiveVCS() (VCSConfig, bool) {
	provider := c.ActiveVCSProvider
	if provider == "" {
		provider = "github"
	}

	vcsConfig, exists := c.VCSConfigs[provider]
	if !exists {
		vcsConfig = VCSConfig{Provider: provider}
	}
	if vcsConfig.Provider == "" {
		vcsConfig.Provider = provider
	}

	if provider == "github" {
		if token := os.Getenv("ISSUEMATE_GITHUB_TOKEN"); token != "" {
			vcsConfig.Token = token
		}
	}

	return vcsConfig, vcsConfig.Token != ""
}
