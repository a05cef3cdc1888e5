package textures

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Store owns the GPU copies of loaded textures, keyed by URI. Use it only on the
// render thread, after the window and GL context exist.
type Store struct {
	textures map[string]rl.Texture2D
	thumbs   map[string]rl.Texture2D
	failed   map[string]error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		textures: make(map[string]rl.Texture2D),
		thumbs:   make(map[string]rl.Texture2D),
		failed:   make(map[string]error),
	}
}

// Upload moves decoded images to the GPU. Scene textures get mipmaps and repeat
// wrapping so tiled UVs wrap; thumbnails are clamped.
func (s *Store) Upload(batch []Decoded) {
	for _, d := range batch {
		if d.Err != nil {
			s.failed[d.URI] = d.Err
			continue
		}
		if tex, ok := upload(d.Image, true); ok {
			s.textures[d.URI] = tex
		}
		if d.Thumb != nil {
			if tex, ok := upload(d.Thumb, false); ok {
				s.thumbs[d.URI] = tex
			}
		}
	}
}

func upload(img image.Image, tiled bool) (rl.Texture2D, bool) {
	cpu := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(cpu)
	rl.UnloadImage(cpu)
	if !rl.IsTextureValid(tex) {
		return tex, false
	}
	if tiled {
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	} else {
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		rl.SetTextureWrap(tex, rl.WrapClamp)
	}
	return tex, true
}

// Get returns the scene texture for uri once it is uploaded.
func (s *Store) Get(uri string) (rl.Texture2D, bool) {
	tex, ok := s.textures[uri]
	return tex, ok
}

// Thumb returns the panel thumbnail for uri once it is uploaded.
func (s *Store) Thumb(uri string) (rl.Texture2D, bool) {
	tex, ok := s.thumbs[uri]
	return tex, ok
}

// Failed reports whether uri could not be loaded.
func (s *Store) Failed(uri string) bool {
	_, ok := s.failed[uri]
	return ok
}

// Unload releases every GPU texture.
func (s *Store) Unload() {
	for uri, tex := range s.textures {
		rl.UnloadTexture(tex)
		delete(s.textures, uri)
	}
	for uri, tex := range s.thumbs {
		rl.UnloadTexture(tex)
		delete(s.thumbs, uri)
	}
}
