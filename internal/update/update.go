package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// DefaultRepo is the GitHub slug releases are published under.
const DefaultRepo = "justinpbarnett/ps3decui"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned by Apply for builds without a release version.
var ErrDevBuild = errors.New("cannot update a development build, install from a release first")

// Release describes a published build.
type Release struct {
	Version string
	URL     string
	Notes   string
}

type Updater struct {
	repo string
}

func New(repo string) *Updater {
	if repo == "" {
		repo = DefaultRepo
	}
	return &Updater{repo: repo}
}

// IsDevBuild reports whether v was not stamped by a release build.
func IsDevBuild(v string) bool {
	return v == "" || v == "dev"
}

// Check returns the latest release when it is newer than current, or nil.
// Development builds and unparseable versions are never checked.
func (u *Updater) Check(ctx context.Context, current string) (*Release, error) {
	if IsDevBuild(current) {
		return nil, nil
	}
	cur, err := parseVersion(current)
	if err != nil {
		return nil, nil
	}

	up, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	latest, found, err := up.DetectLatest(ctx, selfupdate.ParseSlug(u.repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	lv, err := parseVersion(latest.Version())
	if err != nil || !lv.GreaterThan(cur) {
		return nil, nil
	}
	return &Release{Version: latest.Version(), URL: latest.URL, Notes: latest.ReleaseNotes}, nil
}

// Apply replaces the running executable with the latest release.
func (u *Updater) Apply(ctx context.Context, current string) (*Release, error) {
	if IsDevBuild(current) {
		return nil, ErrDevBuild
	}

	up, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := up.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(u.repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &Release{Version: rel.Version(), URL: rel.URL, Notes: rel.ReleaseNotes}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	up, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return up, nil
}

// Compare orders two versions like strings.Compare. Unparseable versions sort
// before any valid one.
func Compare(current, latest string) int {
	cv, errC := parseVersion(current)
	lv, errL := parseVersion(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseVersion accepts an optional "v" prefix. git-describe suffixes such as
// "0.1.0-3-gabcdef" parse as prereleases.
func parseVersion(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
