// Package i18n translates the handful of strings the configurator shows around the scene.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTitle    = "window.title"
	KeyHeading  = "panel.heading"
	KeySelected = "status.selected"
	KeyTexture  = "status.texture"

	keyTextureLoaded  = "texture.loaded"
	keyTextureLoading = "texture.loading"
	keyTextureFlat    = "texture.flat"
)

// TextureState is how far the applied finish's texture has got.
type TextureState int

const (
	TextureLoading TextureState = iota
	TextureLoaded
	// TextureFlat means the texture failed and the floor shows its tint only.
	TextureFlat
)

var textureKeys = map[TextureState]string{
	TextureLoading: keyTextureLoading,
	TextureLoaded:  keyTextureLoaded,
	TextureFlat:    keyTextureFlat,
}

var supported = []language.Tag{language.Spanish, language.English}

var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		KeyTitle:    "Visualizador 3D de Cerámica para Apartamentos",
		KeyHeading:  "Seleccione una cerámica",
		KeySelected: "Cerámica: %s",
		KeyTexture:  "Textura: %s",

		keyTextureLoaded:  "cargada",
		keyTextureLoading: "cargando",
		keyTextureFlat:    "color plano",
	},
	language.English: {
		KeyTitle:    "3D Ceramic Visualizer for Apartments",
		KeyHeading:  "Select a Ceramic Tile",
		KeySelected: "Tile: %s",
		KeyTexture:  "Texture: %s",

		keyTextureLoaded:  "loaded",
		keyTextureLoading: "loading",
		keyTextureFlat:    "flat color",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, text := range msgs {
			if err := message.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
}

var matcher = language.NewMatcher(supported)

// Translator prints messages in one supported language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New picks the supported language closest to locale (a BCP 47 tag such as "es" or "en-GB").
// Unknown or malformed locales fall back to Spanish.
func New(locale string) *Translator {
	tag := supported[0]
	if t, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{tag: tag, p: message.NewPrinter(tag)}
}

// Language returns the language in use.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Title is the window title.
func (t *Translator) Title() string {
	return t.p.Sprintf(KeyTitle)
}

// Heading is the selection panel heading.
func (t *Translator) Heading() string {
	return t.p.Sprintf(KeyHeading)
}

// Selected is the status line naming the applied finish.
func (t *Translator) Selected(name string) string {
	return t.p.Sprintf(KeySelected, name)
}

// Texture is the status line describing the applied finish's texture.
func (t *Translator) Texture(state TextureState) string {
	return t.p.Sprintf(KeyTexture, t.p.Sprintf(textureKeys[state]))
}
