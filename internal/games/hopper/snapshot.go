package hopper

// PlayerPose is the render-facing view of the player.
type PlayerPose struct {
	X, Y              float64
	Size              float64
	Rotation          float64
	Velocity          float64
	Jumping           bool
	Dead              bool
	Distance          float64
	SpeedMultiplier   float64
	GravityMultiplier float64
	SizeMultiplier    float64
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Mode       Mode
	Tick       int
	CameraX    float64
	CameraY    float64
	ScreenW    float64
	ScreenH    float64
	GroundY    float64 // resting y of the player's top edge
	GroundLine float64 // y of the ground surface
	TickRate   int
	Zone       Zone
	Entities   []Entity
	Player     PlayerPose
	Bursts     []Burst // emitted by the last tick
	Score      int
	HighScore  int
	Difficulty int

	MenuItems    []MenuItem
	MenuSelected int
	Settings     Settings

	LoadingProgress  int     // 0..100
	RespawnRemaining int     // ticks left in Respawning
	RespawnProgress  float64 // 0..1 through the respawn countdown
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	entities := make([]Entity, len(s.entities))
	copy(entities, s.entities)
	bursts := make([]Burst, len(s.lastEvents.Bursts))
	copy(bursts, s.lastEvents.Bursts)

	snap := Snapshot{
		Mode:       s.mode,
		Tick:       s.tick,
		CameraX:    s.camera.X,
		CameraY:    s.camera.Y,
		ScreenW:    s.cfg.Screen.Width,
		ScreenH:    s.cfg.Screen.Height,
		GroundY:    s.cfg.GroundY(),
		GroundLine: s.cfg.GroundY() + s.cfg.Player.Size,
		TickRate:   s.cfg.Timing.TickRate,
		Zone:       s.Zone(),
		Entities:   entities,
		Bursts:     bursts,
		Score:      s.score,
		HighScore:  s.highScore,
		Difficulty: s.Difficulty(),
		Player: PlayerPose{
			X:                 p.X,
			Y:                 p.Y,
			Size:              p.Size,
			Rotation:          p.Rotation,
			Velocity:          p.Velocity,
			Jumping:           p.Jumping,
			Dead:              p.Dead,
			Distance:          p.Distance,
			SpeedMultiplier:   p.SpeedMultiplier,
			GravityMultiplier: p.GravityMultiplier,
			SizeMultiplier:    p.SizeMultiplier,
		},
		MenuItems:       MenuItems(),
		MenuSelected:    s.menu.Selected,
		Settings:        s.settings,
		LoadingProgress: s.loading,
	}

	if s.mode == ModeRespawning {
		snap.RespawnRemaining = s.respawnTimer
		if d := s.cfg.Timing.RespawnDuration; d > 0 {
			snap.RespawnProgress = 1 - float64(s.respawnTimer)/float64(d)
		}
	}
	return snap
}
