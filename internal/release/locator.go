// Package release finds downloadable assets among the releases of a GitHub repository.
package release

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"obenseuer-installer/internal/logger"
)

var (
	// ErrNoMatchingRelease means no release satisfied the release predicate.
	ErrNoMatchingRelease = errors.New("no matching release")
	// ErrNoMatchingAsset means the selected release has no asset satisfying the asset predicate.
	ErrNoMatchingAsset = errors.New("no matching asset")
)

// Lister fetches the releases of a repository in the order the hosting API returns them.
type Lister interface {
	ListReleases(ctx context.Context, owner, repo string) ([]Release, error)
}

// Query selects the first release accepted by AcceptRelease and, within it,
// the first asset accepted by AcceptAsset.
type Query struct {
	Owner         string
	Repo          string
	AcceptRelease func(Release) bool
	AcceptAsset   func(Asset) bool
}

// Locate runs q against the releases returned by lister. Order is whatever the API returned;
// the first match wins and later matches are never considered.
func Locate(ctx context.Context, lister Lister, q Query) (ReleaseAsset, error) {
	releases, err := lister.ListReleases(ctx, q.Owner, q.Repo)
	if err != nil {
		return ReleaseAsset{}, fmt.Errorf("failed to list releases of %s/%s: %w", q.Owner, q.Repo, err)
	}
	logger.Debug("[DEBUG] %s/%s has %d releases\n", q.Owner, q.Repo, len(releases))

	rel, ok := first(releases, q.AcceptRelease)
	if !ok {
		return ReleaseAsset{}, fmt.Errorf("%w in %s/%s (%d releases checked)", ErrNoMatchingRelease, q.Owner, q.Repo, len(releases))
	}
	logger.Debug("[DEBUG] Selected release %s with %d assets\n", rel.TagName, len(rel.Assets))

	asset, ok := first(rel.Assets, q.AcceptAsset)
	if !ok {
		return ReleaseAsset{}, fmt.Errorf("%w in release %s of %s/%s", ErrNoMatchingAsset, rel.TagName, q.Owner, q.Repo)
	}
	logger.Debug("[DEBUG] Selected asset %s (%d bytes)\n", asset.Name, asset.Size)

	return ReleaseAsset{
		Tag:         rel.TagName,
		Name:        asset.Name,
		DownloadURL: asset.BrowserDownloadURL,
		Size:        asset.Size,
	}, nil
}

func first[T any](items []T, accept func(T) bool) (T, bool) {
	for _, item := range items {
		if accept == nil || accept(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// NotPrerelease accepts releases that are not marked as pre-release.
func NotPrerelease() func(Release) bool {
	return func(r Release) bool { return !r.Prerelease }
}

// NameContains accepts assets whose name contains substr.
func NameContains(substr string) func(Asset) bool {
	return func(a Asset) bool { return strings.Contains(a.Name, substr) }
}

// All combines predicates; the result accepts only what every predicate accepts.
func All[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}
