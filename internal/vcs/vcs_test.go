package vcs

import (
	"reflect"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
)

const testHash = "0123456789012345678901234567890123456789"

func TestTagNames(t *testing.T) {
	refs := []*plumbing.Reference{
		plumbing.NewReferenceFromStrings("refs/heads/master", testHash),
		plumbing.NewReferenceFromStrings("refs/tags/4.0.0", testHash),
		plumbing.NewReferenceFromStrings("refs/tags/4.0.0^{}", testHash),
		plumbing.NewReferenceFromStrings("refs/tags/3.3.1", testHash),
	}
	got := tagNames(refs)
	want := []string{"4.0.0", "3.3.1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tagNames = %v, want %v", got, want)
	}
}

func TestSortTags(t *testing.T) {
	tags := []string{"2.4.13.6", "3.3.1", "4.0.0-alpha", "4.10.0", "4.2.0", "junk-tag"}
	SortTags(tags)
	want := []string{"4.10.0", "4.2.0", "4.0.0-alpha", "3.3.1", "junk-tag", "2.4.13.6"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("SortTags = %v, want %v", tags, want)
	}
}

func TestSortTagsEmpty(t *testing.T) {
	var tags []string
	SortTags(tags)
	if len(tags) != 0 {
		t.Errorf("SortTags on empty = %v", tags)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"3.3.1", "v3.3.1"},
		{"v4.0.0", "v4.0.0"},
		{"4.0.0-alpha", "v4.0.0-alpha"},
		{"2.4.13.6", ""},
		{"junk-tag", ""},
	}
	for _, tt := range tests {
		if got := canonical(tt.tag); got != tt.want {
			t.Errorf("canonical(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
