package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/authority"
	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/config"
	"github.com/chillibeats/chilli/internal/keymap"
	"github.com/chillibeats/chilli/internal/media"
	"github.com/chillibeats/chilli/internal/notify"
	"github.com/chillibeats/chilli/internal/playback"
	"github.com/chillibeats/chilli/internal/surface"
	"github.com/chillibeats/chilli/internal/ui/queuepanel"
	"github.com/chillibeats/chilli/internal/ui/searchpopup"
	"github.com/chillibeats/chilli/internal/ui/tracklist"
)

// Deps are the collaborators the root model is built from.
type Deps struct {
	Catalog *catalog.Catalog
	Search  searchpopup.Searcher
	Store   playback.Service
	Auth    *authority.Coordinator
	Factory media.Factory
	Config  *config.Config
	// NowPlaying is optional; nil disables notifications.
	NowPlaying *notify.NowPlaying
	Logger     zerolog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	Catalog    *catalog.Catalog
	Store      playback.Service
	Auth       *authority.Coordinator
	Player     surface.Pair
	Sub        *playback.Subscription
	Snapshot   playback.Snapshot
	NowPlaying *notify.NowPlaying
	Config     *config.Config
	Nav        NavigationManager
	Layout     LayoutManager
	Popups     PopupManager
	Focus      FocusTarget
	Keys       *keymap.Resolver
	StatusMsg  string
	StatusErr  bool
	log        zerolog.Logger
}

// New builds the root model: home page with every track, mounted mini
// player, and a store subscription.
func New(deps Deps) (Model, error) {
	if deps.Catalog == nil || deps.Store == nil || deps.Auth == nil {
		return Model{}, errors.New("app: catalog, store and authority are required")
	}
	if deps.Factory == nil {
		deps.Factory = func() media.Element { return media.NewPreview() }
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	tracks, err := deps.Catalog.AllTracks()
	if err != nil {
		return Model{}, fmt.Errorf("load tracks: %w", err)
	}
	home := &Page{Kind: PageHome, Crumb: "Home", List: tracklist.New("Songs")}
	home.List.SetTracks(tracks)
	home.List.SetFocused(true)

	opts := []surface.Option{
		surface.WithLogger(deps.Logger),
		surface.WithVolume(cfg.Volume()),
	}
	pair := surface.Pair{
		Mini: surface.New(surface.KindMini, deps.Store, deps.Auth, deps.Factory, opts...),
		Full: surface.New(surface.KindFull, deps.Store, deps.Auth, deps.Factory, opts...),
	}
	pair.Mini.Mount()

	m := Model{
		Catalog:    deps.Catalog,
		Store:      deps.Store,
		Auth:       deps.Auth,
		Player:     pair,
		Sub:        deps.Store.Subscribe(),
		Snapshot:   deps.Store.Snapshot(),
		NowPlaying: deps.NowPlaying,
		Config:     cfg,
		Nav:        NewNavigationManager(home),
		Layout:     NewLayoutManager(queuepanel.New()),
		Popups:     NewPopupManager(deps.Search),
		Focus:      FocusPage,
		Keys:       keymap.NewResolver(appBindings()),
		log:        deps.Logger.With().Str("component", "app").Logger(),
	}
	m.Layout.QueuePanel().SetSnapshot(m.Snapshot)
	m.applyCurrentMarker()
	return m, nil
}

// appBindings are the keys the root model resolves before any component.
func appBindings() []keymap.Binding {
	var out []keymap.Binding
	for _, ctx := range []string{"global", "playback", "song"} {
		out = append(out, keymap.ByContext(ctx)...)
	}
	return out
}

// Init starts the clock and the snapshot watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), WatchSnapshots(m.Sub))
}

// Close unmounts both surfaces and detaches from the store.
func (m Model) Close() error {
	m.Player.Full.Unmount()
	m.Player.Mini.Unmount()
	m.Store.Unsubscribe(m.Sub)
	if m.NowPlaying != nil {
		return m.NowPlaying.Close()
	}
	return nil
}
