package config

import (
	"context"
	"sort"

	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("config_show.header", 0, nil))

			ui.PrintKeyValue("Config", cfg.PathFile)
			ui.PrintKeyValue("Language", cfg.Language)
			ui.PrintKeyValue("Emoji", onOff(cfg.UseEmoji))
			if cfg.TemplatesDir != "" {
				ui.PrintKeyValue("Templates dir", cfg.TemplatesDir)
			}

			provider := cfg.ActiveVCSProvider
			if provider == "" {
				provider = "github"
			}
			ui.PrintKeyValue("VCS provider", provider)
			for _, name := range sortedKeys(cfg.VCSConfigs) {
				vcsCfg := cfg.VCSConfigs[name]
				slug := "(no repo)"
				if vcsCfg.Owner != "" || vcsCfg.Repo != "" {
					slug = vcsCfg.Owner + "/" + vcsCfg.Repo
				}
				ui.PrintKeyValue(name, slug+"  token "+maskSecret(vcsCfg.Token))
			}

			activeAI := string(cfg.AIConfig.ActiveAI)
			if activeAI == "" {
				activeAI = "(none)"
			}
			ui.PrintKeyValue("AI provider", activeAI)
			for _, ai := range sortedAIKeys(cfg.AIConfig.Models) {
				ui.PrintKeyValue("Model "+ai, string(cfg.AIConfig.Models[config.AI(ai)]))
			}
			for _, name := range sortedKeys(cfg.AIProviders) {
				ui.PrintKeyValue("Key "+name, maskSecret(cfg.AIProviders[name].APIKey))
			}

			return nil
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedAIKeys(m map[config.AI]config.Model) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)
	return keys
}

// maskSecret keeps just enough of a token to recognize which one it is.
func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
