package main

import (
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/wcmckee/SortPictures/internal/action"
	"github.com/wcmckee/SortPictures/internal/config"
	"github.com/wcmckee/SortPictures/internal/dispatch"
	"github.com/wcmckee/SortPictures/internal/gui"
	"github.com/wcmckee/SortPictures/internal/log"
	"github.com/wcmckee/SortPictures/internal/sequence"
	"github.com/wcmckee/SortPictures/internal/watch"
)

// options collects the CLI flags shared by the root and browse commands.
type options struct {
	cfgFile  string
	acts     []string
	moves    []string
	movecs   []string
	movesubs []string
	sortName string
	random   bool
	start    int
	scale    string
	filter   string
	watch    bool
	debug    bool
}

// session is everything a started viewer needs: the expanded and sorted file
// list, the key bindings and the validated configuration.
type session struct {
	cfg      *config.Config
	seq      *sequence.Sequencer
	registry *action.Registry
	filter   glob.Glob
}

// NewRootCmd creates the root command: expand the items, bind the keys and
// show the first image in the viewer window.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sortpictures [flags] item ...",
		Short: "View images and sort them with single keystrokes",
		Long: `SortPictures shows one image at a time and applies a bound action to it
with a single keystroke: move it into a directory, run a command on it,
or sort it into a subdirectory named after its parent.

An item is an image file, a directory (its files are shown), or a
directory with a trailing "..." (its subdirectories are walked too).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSession(cmd, opts, args)
			if err != nil {
				return err
			}

			scale, err := config.ParseScale(s.cfg.Settings.Scale)
			if err != nil {
				return err
			}
			viewer := gui.New(scale)
			d := dispatch.New(s.seq, s.registry, viewer, os.Stdout)
			viewer.Attach(d)

			if s.cfg.Settings.Watch {
				if w := startWatch(s, args); w != nil {
					defer w.Stop()
				}
			}

			viewer.Run()
			return nil
		},
	}

	addSessionFlags(cmd, opts)
	return cmd
}

func addSessionFlags(cmd *cobra.Command, opts *options) {
	addBindingFlags(cmd, opts)
	f := cmd.Flags()
	f.StringVar(&opts.sortName, "sort", "", "order to show files in: none, name, mod, random")
	f.BoolVar(&opts.random, "random", false, "shuffle the files (same as --sort random)")
	f.IntVarP(&opts.start, "start", "n", 0, "1-based position to start at, after sorting")
	f.StringVar(&opts.scale, "scale", "", `window scale "factor[,method]", method smooth or pixels`)
	f.StringVar(&opts.filter, "filter", "", "show only files whose base name matches this glob")
	f.BoolVarP(&opts.watch, "watch", "w", false, "append files created while the session runs")
	f.BoolVar(&opts.debug, "debug", false, "debug logging")
}

// addBindingFlags registers the subset of flags that affect the key bindings;
// the keys subcommand registers only these.
func addBindingFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/sortpictures/config.yaml)")
	f.StringArrayVarP(&opts.acts, "act", "a", nil, `bind a key to a shell command: "<key>:<command>" (%s becomes the path)`)
	f.StringArrayVarP(&opts.moves, "move", "m", nil, `bind a key to move the file into a directory: "<key>:<dir>"`)
	f.StringArrayVar(&opts.movecs, "movec", nil, `like --move, but create the directory on first use`)
	f.StringArrayVar(&opts.movesubs, "movesub", nil, `bind a key to move into "<base>/<parent dir name>": "<key>:<base>"`)
}

// buildSession loads the configuration, lets changed flags override it, binds
// the keys and expands the items. Any error here aborts before a window is
// shown.
func buildSession(cmd *cobra.Command, opts *options, items []string) (*session, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	log.SetDebug(cfg.Settings.Debug)

	registry, err := buildRegistry(cfg, opts)
	if err != nil {
		return nil, err
	}

	filter, err := sequence.CompileFilter(cfg.Settings.Filter)
	if err != nil {
		return nil, err
	}
	seq, err := sequence.Build(items, filter)
	if err != nil {
		return nil, err
	}

	policy, err := sequence.ParsePolicy(cfg.Settings.Sort)
	if err != nil {
		return nil, err
	}
	seq.ApplySort(policy)
	if err := seq.SetStart(cfg.Settings.Start); err != nil {
		return nil, err
	}

	log.With(
		log.F("files", seq.Len()),
		log.F("bindings", registry.Len()),
		log.F("sort", policy.String()),
	).Debug("session ready")

	return &session{cfg: cfg, seq: seq, registry: registry, filter: filter}, nil
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.cfgFile != "" {
		cfg, err = config.LoadConfigFile(opts.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	// Changed flags win over the file.
	flags := cmd.Flags()
	if flags.Changed("sort") {
		cfg.Settings.Sort = opts.sortName
	}
	if opts.random {
		cfg.Settings.Sort = "random"
	}
	if flags.Changed("start") {
		cfg.Settings.Start = opts.start
	}
	if flags.Changed("scale") {
		cfg.Settings.Scale = opts.scale
	}
	if flags.Changed("filter") {
		cfg.Settings.Filter = opts.filter
	}
	if opts.watch {
		cfg.Settings.Watch = true
	}
	if opts.debug {
		cfg.Settings.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildRegistry binds the config-file specs first, then the flag specs, so a
// flag colliding with the file is reported as a duplicate.
func buildRegistry(cfg *config.Config, opts *options) (*action.Registry, error) {
	registry := action.NewRegistry()
	for _, spec := range append(append([]string{}, cfg.Bindings.Act...), opts.acts...) {
		if err := registry.BindCommand(spec); err != nil {
			return nil, err
		}
	}
	for _, spec := range append(append([]string{}, cfg.Bindings.Move...), opts.moves...) {
		if err := registry.BindMove(spec, false); err != nil {
			return nil, err
		}
	}
	for _, spec := range append(append([]string{}, cfg.Bindings.MoveCreate...), opts.movecs...) {
		if err := registry.BindMove(spec, true); err != nil {
			return nil, err
		}
	}
	for _, spec := range append(append([]string{}, cfg.Bindings.MoveSub...), opts.movesubs...) {
		if err := registry.BindMoveSub(spec); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// startWatch wires the directory items into an fsnotify watcher. Watch
// failures degrade to a warning; the session runs without them.
func startWatch(s *session, items []string) *watch.Watcher {
	w, err := watch.New(s.filter)
	if err != nil {
		log.With(log.F("error", err)).Warn("watch mode unavailable")
		return nil
	}
	for _, item := range items {
		dir := strings.TrimSuffix(item, sequence.RecursionMarker)
		if err := w.AddDirectory(dir); err != nil {
			log.With(log.F("path", dir), log.F("error", err)).Warn("cannot watch directory")
		}
	}
	w.Start()

	go func() {
		for path := range w.Paths() {
			s.seq.Append(path)
			log.With(log.F("path", path)).Info("appended to sequence")
		}
	}()
	return w
}
