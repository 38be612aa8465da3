// Package domain contains the core data structures and domain logic for the application.
package domain

import "strings"

// Contribution holds the commit contributions a user made to a single
// repository inside the lookback window. Commits is always at least 1.
type Contribution struct {
	NameWithOwner string `json:"name_with_owner"`
	URL           string `json:"url"`
	Commits       int    `json:"commits"`
}

// Repository is one public repository owned by the user.
// It is the core domain entity of this application.
type Repository struct {
	NameWithOwner string `json:"name_with_owner"`
	URL           string `json:"url"`
	Stars         int    `json:"stars"`
	// PushedAt is the raw ISO-8601 timestamp reported by GitHub, empty when unknown.
	PushedAt string `json:"pushed_at,omitempty"`
	// Language is the primary language name, empty when GitHub has not classified the repository.
	Language string `json:"language,omitempty"`
	// Commits is the history length of the default branch. Zero means no commits were observed.
	Commits int `json:"commits"`
}

// ShortName returns the repository name without its owner.
func (r Repository) ShortName() string {
	return ShortName(r.NameWithOwner)
}

// ShortName returns the part of a qualified "owner/repo" name after the last slash.
func ShortName(nameWithOwner string) string {
	if i := strings.LastIndex(nameWithOwner, "/"); i >= 0 {
		return nameWithOwner[i+1:]
	}
	return nameWithOwner
}

// Profile is the public header information of a GitHub user.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

// DisplayName returns the user's name, falling back to the login.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
