package ashcon

import "time"

// UserResponse is the subset of the Ashcon /mojang/v2/user payload this package reads.
// Every field is optional.
type UserResponse struct {
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	CreatedAt *string   `json:"created_at"`
	Textures  *Textures `json:"textures"`
}

// Textures holds the texture block of a UserResponse.
type Textures struct {
	Custom bool         `json:"custom"`
	Slim   bool         `json:"slim"`
	Raw    *RawTextures `json:"raw"`
}

// RawTextures holds direct texture URLs and their metadata.
type RawTextures struct {
	Skin     string           `json:"skin"`
	Cape     string           `json:"cape"`
	Metadata *TextureMetadata `json:"metadata"`
}

// TextureMetadata describes the skin model.
type TextureMetadata struct {
	Model string `json:"model"`
}

// SkinModel is the player model a skin is drawn for.
type SkinModel string

const (
	ModelClassic SkinModel = "classic"
	ModelSlim    SkinModel = "slim"
)

// Label returns the display name of the model.
func (m SkinModel) Label() string {
	if m == ModelSlim {
		return "Alex (Slim)"
	}
	return "Classic"
}

// Profile is the detail derived for a player id.
type Profile struct {
	SkinURL string
	// CapeURL is empty when the player has no cape.
	CapeURL string
	Model   SkinModel
	// CreatedAt is nil when the account creation date is unknown.
	CreatedAt *time.Time
}
