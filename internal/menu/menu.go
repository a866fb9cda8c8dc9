// Package menu implements the player's hierarchical menu: a stack machine
// over a fixed page graph with list paging, detail pages, a now-playing
// page, and a single transition guard that drops overlapping navigation.
package menu

import (
	"time"

	"github.com/MichaelTJones/pcg"
	"github.com/brunoga/deep"

	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/media"
)

// Page identifies a screen in the page graph.
type Page string

const (
	PageMain             Page = "main"
	PageExperience       Page = "experience"
	PageExperienceDetail Page = "experience-detail"
	PageEducation        Page = "education"
	PageSkills           Page = "skills"
	PageSkillsDetail     Page = "skills-detail"
	PagePortfolio        Page = "portfolio"
	PagePortfolioDetail  Page = "portfolio-detail"
	PageNowPlaying       Page = "nowplaying"
)

// IsList reports whether the page is a selectable list.
func (p Page) IsList() bool {
	switch p {
	case PageMain, PageExperience, PageSkills, PagePortfolio:
		return true
	}
	return false
}

// Command is an input to the engine.
type Command int

const (
	CmdAdvance Command = iota
	CmdRetreat
	CmdSelect
	CmdBack
	CmdTogglePlay
	CmdNextTrack
	CmdPrevTrack
)

var commandNames = [...]string{
	CmdAdvance:    "advance",
	CmdRetreat:    "retreat",
	CmdSelect:     "select",
	CmdBack:       "back",
	CmdTogglePlay: "toggle-play",
	CmdNextTrack:  "next-track",
	CmdPrevTrack:  "prev-track",
}

// String returns the command name.
func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Navigation reports whether the command is subject to the transition guard.
func (c Command) Navigation() bool {
	switch c {
	case CmdAdvance, CmdRetreat, CmdSelect, CmdBack:
		return true
	}
	return false
}

// KeyCommand maps the select, back, and play keys to a command. Up and
// down are directional and go through the input package.
func KeyCommand(key string) (Command, bool) {
	switch key {
	case "right":
		return CmdSelect, true
	case "left":
		return CmdBack, true
	case " ", "space":
		return CmdTogglePlay, true
	}
	return 0, false
}

// Direction is the slide direction of a page transition.
type Direction int

const (
	DirNone Direction = iota
	DirForward
	DirBackward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// Frame is one saved navigation stack entry.
type Frame struct {
	Page  Page
	Index int
}

// Playback describes the current track.
type Playback struct {
	Track    int
	Loaded   bool
	Playing  bool
	Elapsed  float64 // Seconds
	Duration float64 // Seconds
}

// State is a snapshot of the engine. Transition is non-zero while a page
// change is animating.
type State struct {
	Page       Page
	Index      int
	Detail     int // Item shown by a detail page
	Scroll     int // Line offset on scrollable pages
	Stack      []Frame
	Playback   Playback
	Transition Direction
}

// Animating reports whether a page transition is in progress.
func (s State) Animating() bool {
	return s.Transition != DirNone
}

// Library is the content the menu pages present.
type Library struct {
	Experience []content.Job
	Education  content.School
	Skills     []content.SkillGroup
	Portfolio  []content.Project
	Tracks     []content.Track
}

// DefaultLibrary returns the built-in content.
func DefaultLibrary() Library {
	return Library{
		Experience: content.Experience,
		Education:  content.Education,
		Skills:     content.Skills,
		Portfolio:  content.Portfolio,
		Tracks:     content.Tracks,
	}
}

// Config holds engine settings.
type Config struct {
	Title              string
	TransitionDuration float64 // Seconds a page slide takes
	PollInterval       float64 // Seconds between playback polls
	Seed               uint64  // Shuffle seed
	Library            Library

	// FallbackLength is how long a track that the player cannot load plays
	// silently.
	FallbackLength time.Duration
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Title:              "Enrique's iPod",
		TransitionDuration: 0.35,
		PollInterval:       0.5,
		Seed:               1,
		Library:            DefaultLibrary(),
		FallbackLength:     3 * time.Minute,
	}
}

// item is one entry of the root menu.
type item struct {
	title string
	// target is the page opened; shuffle starts playback first.
	target  Page
	shuffle bool
}

var mainMenu = []item{
	{title: "Experience", target: PageExperience},
	{title: "Education", target: PageEducation},
	{title: "Skills", target: PageSkills},
	{title: "Portfolio", target: PagePortfolio},
	{title: "Shuffle Songs", target: PageNowPlaying, shuffle: true},
	{title: "Now Playing", target: PageNowPlaying},
}

// Engine is the menu navigation engine. It is driven by Dispatch and Tick
// from a single goroutine.
type Engine struct {
	cfg    Config
	lib    Library
	state  State
	player media.Player
	click  media.Clicker
	rng    *pcg.PCG32
	log    *logging.Logger

	transitionLeft float64
	pollLeft       float64
}

// New creates an engine on the root page. click may be nil. Tracks the
// player fails to load play on a silent clock instead.
func New(cfg Config, player media.Player, click media.Clicker, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	player = media.NewFallbackPlayer(player, media.NewSilentPlayer(cfg.FallbackLength), log)
	rng := pcg.NewPCG32()
	rng.Seed(cfg.Seed, 0xda3e39cb94b95bdb)
	return &Engine{
		cfg:    cfg,
		lib:    cfg.Library,
		state:  State{Page: PageMain},
		player: player,
		click:  click,
		rng:    rng,
		log:    log,
	}
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return deep.MustCopy(e.state)
}

// Dispatch applies one command and returns the resulting snapshot.
// Navigation received during a page transition is dropped.
func (e *Engine) Dispatch(cmd Command) State {
	if cmd.Navigation() && e.state.Animating() {
		e.log.Debug("menu: %s dropped during %s transition", cmd, e.state.Transition)
		return e.State()
	}

	switch cmd {
	case CmdAdvance:
		e.step(+1)
	case CmdRetreat:
		e.step(-1)
	case CmdSelect:
		e.selectItem()
	case CmdBack:
		e.back()
	case CmdTogglePlay:
		e.togglePlay()
	case CmdNextTrack:
		e.playClick()
		e.changeTrack(+1)
	case CmdPrevTrack:
		e.playClick()
		e.changeTrack(-1)
	}
	return e.State()
}

// Tick advances the transition timer and polls playback. It returns the
// current playback descriptor.
func (e *Engine) Tick(dt float64) Playback {
	if dt < 0 {
		dt = 0
	}
	if e.state.Animating() {
		e.transitionLeft -= dt
		if e.transitionLeft <= 0 {
			e.FinishTransition()
		}
	}

	e.pollLeft -= dt
	if e.pollLeft <= 0 {
		e.pollLeft = e.cfg.PollInterval
		e.poll()
	}
	return e.state.Playback
}

// FinishTransition ends the running page transition. A renderer whose
// animation completes early may call it; otherwise Tick does.
func (e *Engine) FinishTransition() {
	e.state.Transition = DirNone
	e.transitionLeft = 0
}

// Suspend pauses playback when the player loses focus. Navigation state is
// kept for the next focus.
func (e *Engine) Suspend() {
	if e.state.Playback.Playing {
		e.player.Pause()
		e.state.Playback.Playing = false
		e.log.Debug("menu: playback suspended")
	}
}

// Close pauses playback and releases the player.
func (e *Engine) Close() error {
	e.Suspend()
	return e.player.Close()
}

func (e *Engine) step(delta int) {
	e.playClick()
	s := &e.state
	switch {
	case s.Page.IsList():
		s.Index = clampInt(s.Index+delta, 0, e.listLen(s.Page)-1)
	case s.Page == PageNowPlaying:
		e.changeTrack(delta)
	default:
		s.Scroll = clampInt(s.Scroll+delta, 0, len(e.detailLines())-1)
	}
}

func (e *Engine) selectItem() {
	s := &e.state
	if !s.Page.IsList() || e.listLen(s.Page) == 0 {
		return
	}
	e.playClick()
	s.Stack = append(s.Stack, Frame{Page: s.Page, Index: s.Index})

	switch s.Page {
	case PageMain:
		it := mainMenu[s.Index]
		if it.shuffle {
			e.shuffle()
		} else if it.target == PageNowPlaying && !s.Playback.Loaded {
			e.loadTrack(0)
		}
		s.Page = it.target
	case PageExperience:
		s.Detail, s.Page = s.Index, PageExperienceDetail
	case PageSkills:
		s.Detail, s.Page = s.Index, PageSkillsDetail
	case PagePortfolio:
		s.Detail, s.Page = s.Index, PagePortfolioDetail
	}
	s.Index = 0
	s.Scroll = 0
	e.startTransition(DirForward)
}

func (e *Engine) back() {
	s := &e.state
	if len(s.Stack) == 0 {
		return
	}
	e.playClick()
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	s.Page = top.Page
	s.Index = top.Index
	s.Scroll = 0
	e.startTransition(DirBackward)
}

func (e *Engine) startTransition(dir Direction) {
	e.state.Transition = dir
	e.transitionLeft = e.cfg.TransitionDuration
	e.log.Debug("menu: %s to %s", dir, e.state.Page)
}

func (e *Engine) shuffle() {
	n := len(e.lib.Tracks)
	if n == 0 {
		return
	}
	e.loadTrack(int(e.rng.Bounded(uint32(n))))
	e.state.Playback.Playing = true
	e.player.Play()
}

func (e *Engine) togglePlay() {
	e.playClick()
	pb := &e.state.Playback
	if !pb.Loaded {
		e.loadTrack(0)
	}
	if pb.Playing {
		e.player.Pause()
		pb.Playing = false
	} else {
		e.player.Play()
		pb.Playing = true
	}
}

// changeTrack moves to the next or previous track, wrapping around, and
// keeps playing if the current track was playing.
func (e *Engine) changeTrack(delta int) {
	n := len(e.lib.Tracks)
	if n == 0 {
		return
	}
	idx := ((e.state.Playback.Track+delta)%n + n) % n
	e.loadTrack(idx)
	if e.state.Playback.Playing {
		e.player.Play()
	}
}

func (e *Engine) loadTrack(idx int) {
	if idx < 0 || idx >= len(e.lib.Tracks) {
		return
	}
	pb := &e.state.Playback
	pb.Track = idx
	pb.Loaded = true
	pb.Elapsed = 0
	pb.Duration = 0
	slug := e.lib.Tracks[idx].Slug
	if err := e.player.Load(slug); err != nil {
		e.log.Warn("menu: loading track %s: %v", slug, err)
	}
}

func (e *Engine) poll() {
	pb := &e.state.Playback
	if !pb.Loaded {
		return
	}
	if pb.Playing && e.player.Ended() {
		e.changeTrack(+1)
		return
	}
	pb.Elapsed = e.player.Position().Seconds()
	pb.Duration = e.player.Duration().Seconds()
}

func (e *Engine) playClick() {
	if e.click != nil {
		e.click.Click()
	}
}

func (e *Engine) listLen(p Page) int {
	switch p {
	case PageMain:
		return len(mainMenu)
	case PageExperience:
		return len(e.lib.Experience)
	case PageSkills:
		return len(e.lib.Skills)
	case PagePortfolio:
		return len(e.lib.Portfolio)
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
