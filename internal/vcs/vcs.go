// Package vcs inspects the upstream OpenCV repository.
package vcs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"
)

// Tags lists the tag names published on remote via an in-process
// ls-remote, ordered newest first.
func Tags(remote string) ([]string, error) {
	rem := git.NewRemote(nil, &gitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{remote},
	})
	refs, err := rem.List(&git.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("ls-remote %s: %w", remote, err)
	}
	tags := tagNames(refs)
	SortTags(tags)
	return tags, nil
}

// tagNames extracts plain tag names from listed references, skipping
// peeled duplicates.
func tagNames(refs []*plumbing.Reference) []string {
	var tags []string
	for _, ref := range refs {
		name, ok := strings.CutPrefix(ref.Name().String(), "refs/tags/")
		if !ok || strings.HasSuffix(name, "^{}") {
			continue
		}
		tags = append(tags, name)
	}
	return tags
}

// SortTags orders release tags newest first. Tags that parse as
// semantic versions come before those that don't; the rest sort
// lexically, also descending.
func SortTags(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		vi, vj := canonical(tags[i]), canonical(tags[j])
		switch {
		case vi != "" && vj != "":
			return semver.Compare(vi, vj) > 0
		case vi != "":
			return true
		case vj != "":
			return false
		default:
			return tags[i] > tags[j]
		}
	})
}

// canonical maps an upstream tag ("3.3.1", "v4.0.0") to canonical
// semver form, or "" if it is not semver-shaped.
func canonical(tag string) string {
	v := tag
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
