package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-github/v80/github"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"golang.org/x/mod/semver"
)

const updateCacheFile = "last_update_check.json"

// releaseRepo is where issuemate releases live.
var releaseOwner, releaseRepo = "thomas-vilte", "issuemate"

// VersionChecker looks up the latest published release once a day and
// nudges the user when a newer version exists. It never blocks a command:
// lookups run with a short timeout and failures stay silent.
type VersionChecker struct {
	currentVersion string
	trans          *i18n.Translations
	config         *config.Config
	out            io.Writer
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
	ReleaseURL  string    `json:"release_url,omitempty"`
}

type CheckerOption func(*VersionChecker)

func WithCheckerOutput(w io.Writer) CheckerOption {
	return func(v *VersionChecker) {
		v.out = w
	}
}

func NewVersionChecker(version string, trans *i18n.Translations, cfg *config.Config, opts ...CheckerOption) *VersionChecker {
	v := &VersionChecker{
		currentVersion: version,
		trans:          trans,
		config:         cfg,
		out:            os.Stdout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv("ISSUEMATE_DISABLE_UPDATE_CHECK") != "" {
		return
	}
	if v.config != nil && v.config.DisableUpdateCheck {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown, cache.ReleaseURL)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(UpdateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
		ReleaseURL:  release.GetHTMLURL(),
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion, release.GetHTMLURL())
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) printUpdateNotification(latest, url string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	if url == "" {
		url = fmt.Sprintf("https://github.com/%s/%s/releases/latest", releaseOwner, releaseRepo)
	}

	message := v.trans.GetMessage("app.update_available", 0, map[string]interface{}{
		"Version": green(latest),
		"URL":     url,
	})
	_, _ = fmt.Fprintf(v.out, "\n%s\n", yellow(message))
}

func (v *VersionChecker) cachePath() string {
	if v.config != nil && v.config.PathFile != "" {
		return filepath.Join(v.config.ConfigDir(), updateCacheFile)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".issuemate", updateCacheFile)
}

func (v *VersionChecker) loadCache() (UpdateCache, error) {
	path := v.cachePath()
	if path == "" {
		return UpdateCache{}, os.ErrNotExist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}
	return cache, nil
}

func (v *VersionChecker) saveCache(cache UpdateCache) error {
	path := v.cachePath()
	if path == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
