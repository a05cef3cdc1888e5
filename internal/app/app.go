// Package app is the top-level controller: it owns the selection state, feeds it to
// the apartment composer every frame, and draws the panel, viewport and overlay.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tile-configurator/internal/apartment"
	"tile-configurator/internal/config"
	"tile-configurator/internal/debug"
	"tile-configurator/internal/finish"
	"tile-configurator/internal/fonts"
	"tile-configurator/internal/graphics"
	"tile-configurator/internal/i18n"
	"tile-configurator/internal/logger"
	"tile-configurator/internal/panel"
	"tile-configurator/internal/render"
	"tile-configurator/internal/selection"
	"tile-configurator/internal/stage"
	"tile-configurator/internal/textures"
	"tile-configurator/internal/ui"
)

// App implements graphics.Loop.
type App struct {
	prefs    config.Prefs
	log      *logger.Logger
	tr       *i18n.Translator
	catalog  *finish.Catalog
	state    *selection.State
	composer *apartment.Composer
	panel    *panel.Panel

	loader   *textures.Loader
	store    *textures.Store
	renderer *render.Renderer
	stage    *stage.Stage
	ui       *ui.Engine
	details  *ui.Details
	overlay  *debug.Overlay
	chrome   *chrome

	screen screenLayout
	cancel context.CancelFunc
	wg     sync.WaitGroup
	// fontReady receives a font path downloaded in the background.
	fontReady chan string
}

// New builds the controller from prefs. It fails only when the catalog cannot be
// loaded or is empty, or the wall color is invalid. No window is needed until Load.
func New(prefs config.Prefs, log *logger.Logger) (*App, error) {
	catalog, err := finish.Load(prefs.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	state, err := selection.New(catalog)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	palette := apartment.DefaultPalette()
	if prefs.WallColor != "" {
		c, ok := finish.ParseHex(prefs.WallColor)
		if !ok {
			return nil, fmt.Errorf("app: invalid wall color %q", prefs.WallColor)
		}
		palette.WallColor = c
	}

	a := &App{
		prefs:    prefs,
		log:      log,
		tr:       i18n.New(prefs.Locale),
		catalog:  catalog,
		state:    state,
		composer: apartment.New(palette, state.Current()),
		loader:   textures.NewLoader(textures.NewFetcher(prefs.TextureCacheDir), log, textures.DefaultThumbSize),
		store:    textures.NewStore(),
		renderer: render.New(),
		stage:    stage.New(),
		ui:       ui.New(),
		details:  ui.NewDetails(),
		overlay:  debug.New(prefs.ShowFPS),
		chrome:   newChrome(catalog.Len()),

		fontReady: make(chan string, 1),
	}
	a.screen = computeLayout(float32(prefs.WindowWidth), float32(prefs.WindowHeight))
	a.panel = panel.New(catalog, a.screen.panelLayout(), state.Select)
	state.Subscribe(func(prev, next finish.Option) {
		log.Logf("selection: %s -> %s", prev.Name, next.Name)
	})
	log.Logf("catalog: %d finishes, initial %s", catalog.Len(), state.Current().Name)
	log.Logf("scene: %d nodes, locale %s", a.composer.Root().Count(), a.tr.Language())
	return a, nil
}

// Window returns the window the app wants, titled in the configured language.
func (a *App) Window() graphics.Window {
	return graphics.Window{
		Width:     a.prefs.WindowWidth,
		Height:    a.prefs.WindowHeight,
		Title:     a.tr.Title(),
		TargetFPS: a.prefs.TargetFPS,
	}
}

// State returns the selection state.
func (a *App) State() *selection.State {
	return a.state
}

// Composer returns the scene composer.
func (a *App) Composer() *apartment.Composer {
	return a.composer
}

// textureURIs lists catalog textures first so thumbnails arrive before scene surfaces.
func (a *App) textureURIs() []string {
	return append(a.catalog.Textures(), a.composer.Textures()...)
}

// Load starts the texture prefetch and loads the UI font. Runs after the window exists.
func (a *App) Load() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	uris := a.textureURIs()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.loader.Prefetch(ctx, uris); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Logf("textures: %v", err)
		}
	}()
	if path, err := fonts.Find(a.prefs.Font, fonts.BaseDirs()); err == nil {
		a.applyFont(path)
	} else if a.prefs.Font != "" {
		a.fetchFont(ctx, a.prefs.Font)
	} else {
		a.log.Log("font: none found, using raylib default")
	}
	a.relayout(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// fetchFont downloads family from Google Fonts in the background; Update applies it.
func (a *App) fetchFont(ctx context.Context, family string) {
	a.log.Logf("font: %s not found locally, downloading", family)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		path, err := fonts.NewRemote().Download(ctx, family, fonts.BaseDirs()[0])
		if err != nil {
			a.log.Logf("font %s: %v", family, err)
			return
		}
		a.fontReady <- path
	}()
}

// fontTexts is every string the UI can show; the font is rasterised with their runes.
func (a *App) fontTexts() []string {
	texts := []string{a.tr.Title(), a.tr.Heading()}
	for _, o := range a.catalog.All() {
		texts = append(texts, o.Name, a.tr.Selected(o.Name))
	}
	for _, s := range []i18n.TextureState{i18n.TextureLoading, i18n.TextureLoaded, i18n.TextureFlat} {
		texts = append(texts, a.tr.Texture(s))
	}
	return texts
}

func (a *App) applyFont(path string) {
	if err := a.ui.LoadFont(path, fonts.Codepoints(a.fontTexts()...)); err != nil {
		a.log.Logf("font %s: %v", path, err)
		return
	}
	a.overlay.SetFont(a.ui.Font())
	a.log.Logf("font: %s", path)
}

func (a *App) relayout(w, h float32) {
	a.screen = computeLayout(w, h)
	a.panel.SetLayout(a.screen.panelLayout())
	a.stage.SetViewport(toRect(a.screen.viewport))
}

// Update runs once per frame: uploads finished textures, routes clicks to the panel,
// moves the camera and applies the current finish to the floor.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.relayout(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}
	if batch := a.loader.Drain(); len(batch) > 0 {
		a.store.Upload(batch)
	}
	select {
	case path := <-a.fontReady:
		a.applyFont(path)
	default:
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		a.panel.Press(m.X, m.Y)
	}
	a.stage.Update()
	a.step()
}

// step is the per-frame state propagation: selection to composer to overlay.
func (a *App) step() {
	current := a.state.Current()
	a.composer.Update(current)
	a.overlay.SetFinish(a.tr.Selected(current.Name))
}

// Draw renders the viewport, then the chrome and panel over it, then the overlay.
func (a *App) Draw() {
	lights := append(a.composer.Lights(), a.stage.Lights()...)
	a.stage.Draw(func() {
		a.renderer.Draw(a.composer.Root(), lights, a.stage.ViewPos(), a.store)
	})

	current := a.state.Current()
	nodes := a.chrome.nodes(a.screen, a.tr, a.panel.Rows(current.ID), a.store.Thumb)
	last := a.panel.Layout().RowBounds(a.catalog.Len())
	nodes = a.details.AppendNodes(nodes, last.X, last.Y, last.W, ui.FinishInfo{
		Status:  a.tr.Selected(current.Name),
		Hex:     current.BaseColor.Hex(),
		Swatch:  rgba(current.BaseColor),
		Texture: a.tr.Texture(a.textureState(current.Texture)),
	})
	a.ui.Draw(nodes)

	v := a.screen.viewport
	a.overlay.Draw(v.X+v.W, v.Y)
}

func (a *App) textureState(uri string) i18n.TextureState {
	if _, ok := a.store.Get(uri); ok {
		return i18n.TextureLoaded
	}
	if uri == "" || a.store.Failed(uri) {
		return i18n.TextureFlat
	}
	return i18n.TextureLoading
}

// Unload cancels outstanding fetches, waits for them, and frees GPU resources.
func (a *App) Unload() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	a.store.Unload()
	a.renderer.Unload()
	a.stage.Unload()
	a.ui.Unload()
}
