package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chillibeats/chilli/internal/app"
	"github.com/chillibeats/chilli/internal/authority"
	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/media"
	"github.com/chillibeats/chilli/internal/mpris"
	"github.com/chillibeats/chilli/internal/notify"
	"github.com/chillibeats/chilli/internal/playback"
	"github.com/chillibeats/chilli/internal/search"
)

// runTUI wires the store, surfaces and desktop integrations and runs the
// terminal UI until the user quits.
func runTUI(cmd *cobra.Command, opts *options) error {
	cat, err := opts.openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	engine, err := search.FromSource(cat)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpSearchIndex, err)
	}

	store := playback.New(playback.WithLogger(opts.log))
	defer store.Close()

	var nowPlaying *notify.NowPlaying
	if opts.cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			opts.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
		} else {
			nowPlaying = notify.NewNowPlaying(n, opts.log)
		}
	}

	model, err := app.New(app.Deps{
		Catalog:    cat,
		Search:     engine,
		Store:      store,
		Auth:       authority.New(),
		Factory:    func() media.Element { return media.NewPreview() },
		Config:     opts.cfg,
		NowPlaying: nowPlaying,
		Logger:     opts.log,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	if opts.cfg.MPRISEnabled() {
		remote, err := mpris.New(store, model.Player, opts.log)
		if err != nil {
			opts.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer remote.Close()
		}
	}

	opts.log.Info().Msg("starting ui")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, runErr := p.Run()
	if m, ok := final.(app.Model); ok {
		runErr = errors.Join(runErr, m.Close())
	}
	opts.log.Info().Msg("ui stopped")
	return runErr
}
