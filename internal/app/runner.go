package app

import (
	"errors"

	"example.com/gapedit/pkg/clipboard"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/document"
	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/fileio"
	"example.com/gapedit/pkg/logs"
	"example.com/gapedit/pkg/search"
	"github.com/gdamore/tcell/v2"
)

// Runner owns the terminal lifecycle and a minimal event loop.
type Runner struct {
	Screen    tcell.Screen
	Editor    *editor.Editor
	Keymap    map[string]config.Keybinding
	Theme     config.Theme
	Logger    *logs.Logger
	Clipboard clipboard.Ring
	MiniBuf   []string
	Message   string
	ShowHelp  bool
	TopLine   int
	LeftX     int

	// EventCh, when set, replaces Screen.PollEvent as the event source.
	EventCh chan tcell.Event

	layout     cellLayout
	docOpts    []document.Option
	highlights []search.Match
	lastQuery  string
}

// New creates a Runner over a fresh Editor built from cfg. Files are read
// and written through store.
func New(cfg *config.Config, store *fileio.Store, logger *logs.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logs.Disabled()
	}
	layout := newCellLayout(cfg.TabWidth)
	ed := editor.New(store, editor.WithLayout(layout), editor.WithLogger(logger))
	return &Runner{
		Editor:  ed,
		Keymap:  cfg.Keymap,
		Theme:   config.DefaultTheme(),
		Logger:  logger,
		layout:  layout,
		docOpts: DocOptions(cfg),
	}
}

// DocOptions returns the document options for a configuration.
func DocOptions(cfg *config.Config) []document.Option {
	return []document.Option{document.WithLineCapacity(cfg.LineCapacity)}
}

func (r *Runner) setMiniBuffer(lines []string) {
	r.MiniBuf = lines
}

func (r *Runner) clearMiniBuffer() {
	r.MiniBuf = nil
}

func (r *Runner) logEvent(event string, fields map[string]any) {
	if r.Logger != nil {
		r.Logger.Event(event, fields)
	}
}

// ensure fills in defaults for a Runner built as a bare struct literal.
func (r *Runner) ensure() {
	if r.layout.cond == nil {
		r.layout = newCellLayout(config.DefaultTabWidth)
	}
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	if r.Editor == nil {
		r.Editor = editor.New(nil, editor.WithLayout(r.layout), editor.WithLogger(r.Logger))
	}
}

// session returns the focused session, opening an empty buffer if needed.
func (r *Runner) session() *editor.Session {
	r.ensure()
	bs := r.Editor.CurrentBuffer()
	if bs == nil {
		bs = r.Editor.NewEmpty(r.docOpts...)
	}
	return bs.Session
}

// buffer returns the focused buffer state.
func (r *Runner) buffer() *editor.BufferState {
	r.session()
	return r.Editor.CurrentBuffer()
}

// LoadFile opens path in a new buffer.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.ensure()
	r.logEvent("open.attempt", map[string]any{"file": path})
	bs, err := r.Editor.LoadFile(path)
	if err != nil {
		r.logEvent("open.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	r.TopLine, r.LeftX = 0, 0
	r.logEvent("open.success", map[string]any{
		"file":   path,
		"lines":  bs.Session.Document().LineCount(),
		"ending": bs.Ending.Name(),
	})
	return nil
}

// Save writes the focused buffer to its path.
func (r *Runner) Save() error {
	bs := r.buffer()
	if bs.FilePath == "" {
		return fileio.ErrNoPath
	}
	if err := r.Editor.SaveCurrent(); err != nil {
		r.logEvent("save.error", map[string]any{"file": bs.FilePath, "error": err.Error()})
		return err
	}
	r.logEvent("save.success", map[string]any{"file": bs.FilePath, "lines": bs.Session.Document().LineCount()})
	return nil
}

// SaveAs writes the focused buffer to path and adopts the new name.
func (r *Runner) SaveAs(path string) error {
	if path == "" {
		return fileio.ErrNoPath
	}
	r.buffer()
	if err := r.Editor.SaveCurrentAs(path); err != nil {
		r.logEvent("save.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	r.logEvent("save.success", map[string]any{"file": path})
	return nil
}

// saveOrPrompt saves, asking for a path first when the buffer has none.
func (r *Runner) saveOrPrompt() {
	err := r.Save()
	if errors.Is(err, fileio.ErrNoPath) {
		r.runSaveAsPrompt()
		return
	}
	if err != nil {
		r.Message = err.Error()
		return
	}
	r.Message = "Saved " + r.buffer().FilePath
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	if r.Logger != nil {
		r.Logger.Close()
	}
}

// waitEvent blocks for the next event from EventCh or the screen.
func (r *Runner) waitEvent() tcell.Event {
	if r.EventCh != nil {
		return <-r.EventCh
	}
	return r.Screen.PollEvent()
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user requests quit.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	file := r.buffer().FilePath
	r.logEvent("run.start", map[string]any{"file": file, "session": r.session().ID()})
	defer r.logEvent("run.end", map[string]any{"file": file})

	r.draw()
	for {
		ev := r.waitEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			r.logEvent("key", map[string]any{
				"key":       int(ev.Key()),
				"rune":      string(ev.Rune()),
				"modifiers": int(ev.Modifiers()),
			})
			// any key dismisses help
			if r.ShowHelp {
				r.ShowHelp = false
				r.draw()
				continue
			}
			if r.handleKeyEvent(ev) {
				r.logEvent("action", map[string]any{"name": "quit"})
				return nil
			}
			r.draw()
		case *tcell.EventResize:
			r.Screen.Sync()
			r.draw()
		}
	}
}
