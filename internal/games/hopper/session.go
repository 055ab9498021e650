package hopper

import (
	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Mode is the state of the session state machine.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeSettings
	ModeLoading
	ModePlaying
	ModePaused // declared, nothing enters it
	ModeGameOver
	ModeRespawning
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModeSettings:
		return "settings"
	case ModeLoading:
		return "loading"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeRespawning:
		return "respawning"
	default:
		return "unknown"
	}
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score      int
	HighScore  int
	NewBest    bool
	Distance   float64
	Zone       string
	Ticks      int
	Difficulty string
}

// StepResult is what one tick produced.
type StepResult struct {
	Mode     Mode
	PrevMode Mode
	Events   Events
	Summary  *RunSummary // set on the tick a run ends
	Quit     bool
}

// ModeChanged reports whether the tick switched modes.
func (r StepResult) ModeChanged() bool {
	return r.Mode != r.PrevMode
}

// Session owns the whole simulation: player, entities, camera, zones,
// scores, menus and settings.
type Session struct {
	cfg        config.HopperConfig
	resolver   Resolver
	spawner    Spawner
	difficulty *config.DifficultyManager
	zones      []Zone

	player    *Player
	entities  []Entity
	camera    *Camera
	zoneIndex int

	mode         Mode
	menu         Menu
	settings     Settings
	score        int
	highScore    int
	loading      int
	respawnTimer int
	tick         int
	runTicks     int
	quit         bool
	lastEvents   Events
}

// NewSession creates a session in the main menu. A nil spawner selects
// the built-in generator with the given random source.
func NewSession(cfg config.HopperConfig, rng Rand, spawner Spawner) *Session {
	catalog := NewCatalog(cfg.Entities, cfg.Portals)
	if spawner == nil {
		spawner = NewGenerator(rng, catalog, cfg.Screen.Height)
	}
	dm := config.NewDifficultyManager(cfg.Difficulty)

	s := &Session{
		cfg:          cfg,
		resolver:     NewResolver(catalog, cfg.Player.DeathParticles, cfg.Portals.Particles),
		spawner:      spawner,
		difficulty:   dm,
		zones:        BuildZones(cfg.Zones),
		camera:       NewCamera(cfg.Camera, cfg.Screen.Width, cfg.Screen.Height),
		player:       NewPlayer(cfg.Player, cfg.GroundY()),
		mode:         ModeMainMenu,
		settings:     NewSettings(cfg.Audio, dm.Preset()),
		respawnTimer: cfg.Timing.RespawnDuration,
	}
	return s
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	res := StepResult{PrevMode: s.mode}
	s.tick++

	switch s.mode {
	case ModeMainMenu:
		s.stepMainMenu(in)
	case ModeSettings:
		s.stepSettings(in)
	case ModeLoading:
		s.stepLoading()
	case ModePlaying:
		s.stepPlaying(in, &res)
	case ModeGameOver:
		s.stepGameOver(in)
	case ModeRespawning:
		s.stepRespawning(&res)
	}

	res.Mode = s.mode
	res.Quit = s.quit
	s.lastEvents = res.Events
	return res
}

func (s *Session) stepMainMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.menu.Move(-1)
	case in.Has(core.ActionDown):
		s.menu.Move(1)
	case in.Has(core.ActionConfirm):
		switch s.menu.Current() {
		case MenuPlay:
			s.loading = 0
			s.mode = ModeLoading
		case MenuSettings:
			s.mode = ModeSettings
		case MenuQuit:
			s.quit = true
		}
	}
}

func (s *Session) stepSettings(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.settings.Move(-1)
	case in.Has(core.ActionDown):
		s.settings.Move(1)
	case in.Has(core.ActionLeft):
		s.adjustSetting(-1)
	case in.Has(core.ActionRight):
		s.adjustSetting(1)
	case in.Has(core.ActionConfirm):
		if s.settings.Current() == OptionBack {
			s.mode = ModeMainMenu
		}
	}
}

func (s *Session) adjustSetting(dir int) {
	if s.settings.Adjust(dir) && s.settings.Current() == OptionDifficulty {
		s.difficulty.SetPreset(s.settings.Preset())
	}
}

func (s *Session) stepLoading() {
	s.loading += s.cfg.Timing.LoadingStep
	if s.loading >= 100 {
		s.loading = 100
		s.startRun()
		s.mode = ModePlaying
	}
}

func (s *Session) stepPlaying(in core.InputFrame, res *StepResult) {
	if s.player.Dead {
		s.endRun(res)
		return
	}

	if in.Has(core.ActionBack) {
		s.mode = ModeMainMenu
		return
	}
	if in.Has(core.ActionJump) && s.player.Jump(false) {
		res.Events.AddSound(SoundJump)
	}

	s.simulate(&res.Events)
}

func (s *Session) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
		s.startRun()
		s.respawnTimer = s.cfg.Timing.RespawnDuration
		s.mode = ModeRespawning
	}
}

// stepRespawning keeps the world running while the countdown ticks;
// input is ignored and the player can die in this window.
func (s *Session) stepRespawning(res *StepResult) {
	s.simulate(&res.Events)

	s.respawnTimer--
	if s.respawnTimer <= 0 {
		s.mode = ModePlaying
		s.respawnTimer = s.cfg.Timing.RespawnDuration
	}
}

// simulate runs physics, camera, zone, collisions, pruning and generation.
func (s *Session) simulate(ev *Events) {
	s.runTicks++

	s.player.Update()
	s.camera.Update(s.player.X, s.player.Y)
	s.zoneIndex = ZoneIndex(s.zones, s.player.X, s.zoneIndex)

	if s.cfg.World.ScrollEntities {
		for i := range s.entities {
			s.entities[i].Advance()
		}
	}

	s.resolver.Resolve(s.player, s.entities, ev)
	s.prune()
	s.generate()
}

// prune drops entities whose right edge is more than a screen width behind
// the player and scores one point for each.
func (s *Session) prune() {
	cutoff := s.player.X - s.cfg.Screen.Width
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Right() < cutoff {
			s.score++
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept
}

// generate appends a segment once the look-ahead runs out.
func (s *Session) generate() {
	rightmost, ok := s.rightmost()
	if ok && s.player.X <= rightmost-s.cfg.Screen.Width {
		return
	}

	next := s.player.X + s.cfg.Screen.Width
	if ok {
		next = rightmost
	}
	d := s.difficulty.Difficulty(s.player.Distance)
	s.entities = append(s.entities, s.spawner.GenerateSegment(int(next), d)...)
}

// rightmost returns the largest entity x, or false when there are none.
func (s *Session) rightmost() (float64, bool) {
	if len(s.entities) == 0 {
		return 0, false
	}
	best := s.entities[0].X
	for _, e := range s.entities[1:] {
		best = max(best, e.X)
	}
	return best, true
}

// startRun resets the run state and lays the first segment.
func (s *Session) startRun() {
	s.player = NewPlayer(s.cfg.Player, s.cfg.GroundY())
	s.camera.Reset()
	s.zoneIndex = 0
	s.score = 0
	s.runTicks = 0
	s.entities = append(s.entities[:0], s.spawner.GenerateSegment(int(s.cfg.Entities.FirstSegmentX), 0)...)
}

// endRun moves to GameOver and records the high score.
func (s *Session) endRun(res *StepResult) {
	prevHigh := s.highScore
	s.highScore = max(s.highScore, s.score)
	s.mode = ModeGameOver

	res.Summary = &RunSummary{
		Score:      s.score,
		HighScore:  s.highScore,
		NewBest:    s.score > prevHigh,
		Distance:   s.player.Distance,
		Zone:       s.Zone().Name,
		Ticks:      s.runTicks,
		Difficulty: string(s.difficulty.Preset()),
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score of this process.
func (s *Session) HighScore() int { return s.highScore }

// Player returns the live player.
func (s *Session) Player() *Player { return s.player }

// Entities returns the live entities in spawn order. Callers must not modify it.
func (s *Session) Entities() []Entity { return s.entities }

// Settings returns the current settings.
func (s *Session) Settings() Settings { return s.settings }

// Quit reports whether Quit was selected from the main menu.
func (s *Session) Quit() bool { return s.quit }

// Zone returns the zone the player is in.
func (s *Session) Zone() Zone {
	if len(s.zones) == 0 {
		return Zone{Name: "void"}
	}
	return s.zones[s.zoneIndex]
}

// Difficulty returns the generator difficulty at the current distance.
func (s *Session) Difficulty() int {
	return s.difficulty.Difficulty(s.player.Distance)
}
