package lookup

import (
	"net/url"
	"time"

	"github.com/steviee/mclookup/internal/ashcon"
	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/skin"
)

const (
	// UnknownDate is shown when the account creation date is not known.
	UnknownDate = "Unknown"

	// NoCape is shown when the player has no cape.
	NoCape = "None"
)

// DateFormatter renders a calendar date for display.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// Link is an outbound reference to an external lookup site.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Result is a resolved identity and profile projected for display.
// It is rebuilt from scratch on every successful lookup.
type Result struct {
	Username     string     `json:"username"`
	PlayerID     string     `json:"id"`
	SkinURL      string     `json:"skin_url"`
	SkinAlt      string     `json:"skin_alt"`
	CapeURL      string     `json:"cape_url,omitempty"`
	Model        string     `json:"model"`
	ModelLabel   string     `json:"model_label"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	CreatedLabel string     `json:"created_label"`
	Links        []Link     `json:"links"`
	DownloadName string     `json:"download_name"`
	// History is always empty; rendering it clears any list left by a previous result.
	History []string `json:"history"`
}

// BuildResult projects an identity and profile for display.
func BuildResult(identity *playerdb.Identity, profile *ashcon.Profile, dates DateFormatter) *Result {
	name := identity.Username

	created := UnknownDate
	if profile.CreatedAt != nil {
		created = dates.FormatDate(*profile.CreatedAt)
	}

	return &Result{
		Username:     name,
		PlayerID:     identity.ID,
		SkinURL:      profile.SkinURL,
		SkinAlt:      name + "'s skin",
		CapeURL:      profile.CapeURL,
		Model:        string(profile.Model),
		ModelLabel:   profile.Model.Label(),
		CreatedAt:    profile.CreatedAt,
		CreatedLabel: created,
		Links: []Link{
			{Label: "NameMC", URL: "https://namemc.com/profile/" + url.PathEscape(name)},
			{Label: "UUID Lookup", URL: "https://mcuuid.net/?q=" + url.QueryEscape(name)},
		},
		DownloadName: skin.FileName(name),
		History:      []string{},
	}
}

// HasCape reports whether a cape image should be shown.
func (r *Result) HasCape() bool {
	return r.CapeURL != ""
}

// CapeLabel returns the cape URL or NoCape.
func (r *Result) CapeLabel() string {
	if r.HasCape() {
		return r.CapeURL
	}
	return NoCape
}
