package hopper

import (
	"testing"

	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

func TestMainMenuNavigationWraps(t *testing.T) {
	s, _ := newTestSession(t)

	s.Step(core.NewInputFrame(core.ActionUp))
	if got := s.menu.Current(); got != MenuQuit {
		t.Errorf("Up from Play should wrap to Quit, got %s", got)
	}
	for i := 0; i < 3; i++ {
		s.Step(core.NewInputFrame(core.ActionDown))
	}
	if got := s.menu.Current(); got != MenuQuit {
		t.Errorf("three Downs should cycle back to Quit, got %s", got)
	}

	s.Step(core.NewInputFrame(core.ActionConfirm))
	if !s.Quit() {
		t.Error("confirming Quit should ask the host to exit")
	}
	if res := s.Step(idle()); !res.Quit {
		t.Error("Quit should be reported in every later step result")
	}
}

func TestLoadingStartsFreshRun(t *testing.T) {
	s, sp := newTestSession(t)

	s.Step(core.NewInputFrame(core.ActionConfirm))
	ticks := 0
	for s.Mode() == ModeLoading {
		s.Step(idle())
		ticks++
		if ticks > 100 {
			t.Fatal("loading never finished")
		}
	}

	if ticks != 50 {
		t.Errorf("loading took %d ticks, expected 50 at step 2", ticks)
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing, got %s", s.Mode())
	}
	if sp.startXs[0] != 800 || sp.difficulties[0] != 0 {
		t.Errorf("first segment requested at %d difficulty %d, expected 800 and 0", sp.startXs[0], sp.difficulties[0])
	}
	if s.Score() != 0 || s.Player().X != 100 {
		t.Errorf("fresh run should start at score 0, x 100; got %d, %f", s.Score(), s.Player().X)
	}
}

func TestLoadingProgressResetsOnReentry(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	s.Step(core.NewInputFrame(core.ActionBack))
	if s.Mode() != ModeMainMenu {
		t.Fatalf("Escape should return to the main menu, got %s", s.Mode())
	}

	s.Step(core.NewInputFrame(core.ActionConfirm))
	if got := s.Snapshot().LoadingProgress; got != 0 {
		t.Errorf("loading progress should restart from 0, got %d", got)
	}
}

func TestSettingsScreen(t *testing.T) {
	s, _ := newTestSession(t)

	s.Step(core.NewInputFrame(core.ActionDown))
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if s.Mode() != ModeSettings {
		t.Fatalf("expected Settings, got %s", s.Mode())
	}

	// Music volume clamps at 100 and 0.
	s.Step(core.NewInputFrame(core.ActionRight))
	if got := s.Settings().MusicVolume; got != 100 {
		t.Errorf("music volume = %d, expected clamp at 100", got)
	}
	for i := 0; i < 12; i++ {
		s.Step(core.NewInputFrame(core.ActionLeft))
	}
	if got := s.Settings().MusicVolume; got != 0 {
		t.Errorf("music volume = %d, expected clamp at 0", got)
	}

	// SFX volume steps by 10.
	s.Step(core.NewInputFrame(core.ActionDown))
	s.Step(core.NewInputFrame(core.ActionLeft))
	if got := s.Settings().SFXVolume; got != 90 {
		t.Errorf("sfx volume = %d, expected 90", got)
	}

	// Difficulty cycles Normal -> Hard -> Easy and drives the generator scale.
	s.Step(core.NewInputFrame(core.ActionDown))
	s.Step(core.NewInputFrame(core.ActionRight))
	if got := s.Settings().DifficultyName(); got != "Hard" {
		t.Errorf("difficulty = %s, expected Hard", got)
	}
	s.Step(core.NewInputFrame(core.ActionRight))
	if got := s.Settings().DifficultyName(); got != "Easy" {
		t.Errorf("difficulty = %s, expected Easy", got)
	}
	if s.difficulty.Preset() != config.DifficultyEasy {
		t.Errorf("difficulty manager preset = %s, expected easy", s.difficulty.Preset())
	}

	// Confirm only leaves on Back.
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if s.Mode() != ModeSettings {
		t.Fatal("Confirm on Difficulty should not leave settings")
	}
	s.Step(core.NewInputFrame(core.ActionBack))
	if s.Mode() != ModeSettings {
		t.Fatal("Escape should not leave settings")
	}
	s.Step(core.NewInputFrame(core.ActionDown))
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if s.Mode() != ModeMainMenu {
		t.Fatalf("Confirm on Back should return to the menu, got %s", s.Mode())
	}

	// Both cursors survive the round trip.
	if got := s.menu.Current(); got != MenuSettings {
		t.Errorf("menu cursor = %s, expected Settings", got)
	}
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if got := s.settings.Current(); got != OptionBack {
		t.Errorf("settings cursor = %s, expected Back", got)
	}
}

func TestSettingsWrap(t *testing.T) {
	var st Settings
	st.Move(-1)
	if st.Current() != OptionBack {
		t.Errorf("Up from the first option should wrap to Back, got %s", st.Current())
	}
	st.Move(1)
	if st.Current() != OptionMusicVolume {
		t.Errorf("Down from Back should wrap to Music Volume, got %s", st.Current())
	}

	st.Selected = int(OptionDifficulty)
	st.Difficulty = 0
	st.Adjust(-1)
	if st.DifficultyName() != "Hard" {
		t.Errorf("Left from Easy should wrap to Hard, got %s", st.DifficultyName())
	}
}

func TestDeathMovesToGameOverNextTick(t *testing.T) {
	tests := []struct {
		name     string
		prevHigh int
		score    int
		wantHigh int
		wantBest bool
	}{
		{"new best", 3, 12, 12, true},
		{"below best", 10, 3, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			startPlaying(t, s)
			s.highScore = tc.prevHigh
			s.score = tc.score

			s.player.Dead = true
			res := s.Step(idle())

			if res.Mode != ModeGameOver || !res.ModeChanged() {
				t.Fatalf("expected transition to GameOver, got %s -> %s", res.PrevMode, res.Mode)
			}
			if s.HighScore() != tc.wantHigh {
				t.Errorf("high score = %d, expected %d", s.HighScore(), tc.wantHigh)
			}
			if res.Summary == nil {
				t.Fatal("run summary should be reported on game over")
			}
			if res.Summary.Score != tc.score || res.Summary.NewBest != tc.wantBest {
				t.Errorf("summary = %+v", res.Summary)
			}
		})
	}
}

func TestSpikeAheadKillsWithoutInput(t *testing.T) {
	spike := testCatalog().Obstacle(KindSpike, 300, 450)
	s, _ := newTestSession(t, spike)
	startPlaying(t, s)

	deathTick, gameOverTick := -1, -1
	deathSounds := 0
	for tick := 1; tick <= 200; tick++ {
		res := s.Step(idle())
		deathSounds += res.Events.Count(SoundDeath)
		if deathTick < 0 && s.player.Dead {
			deathTick = tick
		}
		if gameOverTick < 0 && res.Mode == ModeGameOver {
			gameOverTick = tick
		}
	}

	// Overlap starts once 100 + 5k + 40 > 300.
	if deathTick != 33 {
		t.Errorf("died at tick %d, expected 33", deathTick)
	}
	if deathTick > 40 {
		t.Errorf("player should be dead by tick 40")
	}
	if gameOverTick != deathTick+1 {
		t.Errorf("game over at tick %d, expected the tick after death", gameOverTick)
	}
	if deathSounds != 1 {
		t.Errorf("death sound fired %d times, expected 1", deathSounds)
	}
	if s.Mode() != ModeGameOver {
		t.Errorf("session should wait in GameOver, got %s", s.Mode())
	}
}

func TestRestartRespawnsAndRunsPhysics(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)
	s.player.Dead = true
	s.Step(idle())
	if s.Mode() != ModeGameOver {
		t.Fatalf("expected GameOver, got %s", s.Mode())
	}

	s.Step(core.NewInputFrame(core.ActionJump))
	if s.Mode() != ModeRespawning {
		t.Fatalf("Space should restart into Respawning, got %s", s.Mode())
	}
	if s.player.Dead || s.score != 0 {
		t.Error("restart should reset the player and score")
	}

	for i := 0; i < 59; i++ {
		s.Step(core.NewInputFrame(core.ActionJump))
		if s.Mode() != ModeRespawning {
			t.Fatalf("tick %d: left Respawning early", i)
		}
	}
	if s.player.Jumping {
		t.Error("input should be ignored while respawning")
	}
	if want := 100 + 59*5.0; s.player.X != want {
		t.Errorf("physics should run while respawning: x=%f, expected %f", s.player.X, want)
	}

	s.Step(idle())
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing after 60 ticks, got %s", s.Mode())
	}
	if s.respawnTimer != 60 {
		t.Errorf("respawn timer should be rearmed, got %d", s.respawnTimer)
	}
}

func TestDeathDuringRespawn(t *testing.T) {
	spike := testCatalog().Obstacle(KindSpike, 300, 450)
	s, sp := newTestSession(t)
	startPlaying(t, s)
	s.player.Dead = true
	s.Step(idle())

	// The restart lays a fresh layout with a spike in the respawn window.
	sp.calls = 0
	sp.layout = []Entity{spike}
	s.Step(core.NewInputFrame(core.ActionRestart))

	for i := 0; i < 60; i++ {
		s.Step(idle())
	}
	if !s.player.Dead {
		t.Fatal("spike should kill the player during the respawn window")
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("countdown should still complete, got %s", s.Mode())
	}

	s.Step(idle())
	if s.Mode() != ModeGameOver {
		t.Errorf("first Playing tick should end the run, got %s", s.Mode())
	}
}

func TestScoreCountsEachEntityOnce(t *testing.T) {
	cat := testCatalog()
	var layout []Entity
	for x := 0.0; x < 1000; x += 100 {
		layout = append(layout, cat.Obstacle(KindBlock, x, 450))
	}
	s, _ := newTestSession(t, layout...)
	startPlaying(t, s)

	for i := 0; i < 200; i++ {
		s.Step(idle())
	}

	// Player at x = 1100: blocks with right edge < 300 are gone.
	cutoff := s.player.X - 800
	want := 0
	for _, e := range layout {
		if e.Right() < cutoff {
			want++
		}
	}
	if s.Score() != want {
		t.Errorf("score = %d, expected %d", s.Score(), want)
	}
	if got := len(s.Entities()); got != len(layout)-want {
		t.Errorf("%d entities left, expected %d", got, len(layout)-want)
	}

	for i := 0; i < 200; i++ {
		s.Step(idle())
	}
	if s.Score() != len(layout) {
		t.Errorf("score = %d after every block passed, expected %d", s.Score(), len(layout))
	}
	for i := 0; i < 100; i++ {
		s.Step(idle())
	}
	if s.Score() != len(layout) {
		t.Errorf("score should not grow once the blocks are gone, got %d", s.Score())
	}
}

func TestGenerationTrigger(t *testing.T) {
	block := testCatalog().Obstacle(KindBlock, 1500, 450)
	s, sp := newTestSession(t, block)
	startPlaying(t, s)

	// Rightmost 1500: nothing until the player passes x = 700.
	for s.player.X < 700 {
		s.Step(idle())
	}
	if sp.calls != 1 {
		t.Fatalf("segment requested %d times before the horizon ran out", sp.calls)
	}
	s.Step(idle())
	if sp.calls != 2 || sp.startXs[1] != 1500 {
		t.Fatalf("expected a segment at the rightmost entity, got calls=%d starts=%v", sp.calls, sp.startXs)
	}
	if sp.difficulties[1] != int(s.player.Distance) {
		t.Errorf("difficulty = %d, expected distance %d", sp.difficulties[1], int(s.player.Distance))
	}
}

func TestGenerationWhenEmpty(t *testing.T) {
	s, sp := newTestSession(t)
	startPlaying(t, s)

	s.Step(idle())
	if got := sp.startXs[len(sp.startXs)-1]; got != int(s.player.X+800) {
		t.Errorf("empty world should generate at player x + width, got %d", got)
	}
}

func TestJumpSoundOnlyWhenJumpTakesEffect(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	res := s.Step(core.NewInputFrame(core.ActionJump))
	if res.Events.Count(SoundJump) != 1 {
		t.Errorf("first jump should emit a sound, got %v", res.Events.Sounds)
	}
	res = s.Step(core.NewInputFrame(core.ActionJump))
	if res.Events.Has(SoundJump) {
		t.Error("mid-air jump should be silent")
	}
}

func TestPausedIsNeverEntered(t *testing.T) {
	s := NewSession(config.DefaultHopperConfig(), &scriptedRand{floats: []float64{0.9}, ints: []int{0, 1, 2, 3}}, nil)
	pilot := NewAutopilot(true)
	for i := 0; i < 2000; i++ {
		s.Step(pilot.Decide(s.Snapshot()))
		if s.Mode() == ModePaused {
			t.Fatal("Paused should never be entered")
		}
	}
}

func TestZones(t *testing.T) {
	zones := BuildZones(config.DefaultHopperConfig().Zones)
	if len(zones) != 3 {
		t.Fatalf("expected 3 zones, got %d", len(zones))
	}

	tests := []struct {
		x        float64
		current  int
		expected string
	}{
		{0, 0, "grass"},
		{2999, 0, "grass"},
		{3000, 0, "snow"},
		{6500, 1, "lava"},
		{9000, 2, "lava"},
		{50000, 2, "lava"},
	}
	for _, tc := range tests {
		if got := zones[ZoneIndex(zones, tc.x, tc.current)].Name; got != tc.expected {
			t.Errorf("zone at x=%g is %s, expected %s", tc.x, got, tc.expected)
		}
	}

	if zones[1].StartX != 3000 || zones[2].StartX != 6000 {
		t.Errorf("zones should be laid end to end, got starts %f, %f", zones[1].StartX, zones[2].StartX)
	}
	if zones[2].Background != (RGB{150, 50, 0}) || zones[0].Tint != core.ColorGreen {
		t.Errorf("unexpected zone look: %+v", zones)
	}
}

func TestCamera(t *testing.T) {
	cam := NewCamera(config.DefaultHopperConfig().Camera, 800, 600)

	cam.Update(400, 450)
	if abs(cam.X-(400-800.0/3)) > eps {
		t.Errorf("camera x = %f, expected %f", cam.X, 400-800.0/3)
	}
	if abs(cam.Y-15) > eps {
		t.Errorf("camera y = %f, expected 15 after one smoothing step", cam.Y)
	}

	for i := 0; i < 200; i++ {
		cam.Update(400, 450)
	}
	if abs(cam.Y-150) > 1e-6 {
		t.Errorf("camera y should converge to 150, got %f", cam.Y)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	block := testCatalog().Obstacle(KindBlock, 900, 450)
	s, _ := newTestSession(t, block)
	startPlaying(t, s)

	snap := s.Snapshot()
	snap.Entities[0].X = -1
	if s.Entities()[0].X == -1 {
		t.Error("snapshot entities should not alias session state")
	}
	if snap.Mode != ModePlaying || snap.Player.X != 100 || snap.Zone.Name != "grass" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestSettingsReadableFromSessionCopy(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step(core.NewInputFrame(core.ActionDown))
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if s.Mode() != ModeSettings {
		t.Fatalf("expected Settings, got %s", s.Mode())
	}

	if got := s.Settings().Current(); got != OptionMusicVolume {
		t.Errorf("current option = %s, expected Music Volume", got)
	}
	if got := s.Settings().DifficultyName(); got != "Normal" {
		t.Errorf("difficulty = %s, expected Normal", got)
	}
	if got := s.Settings().Preset(); got != config.DifficultyNormal {
		t.Errorf("preset = %s, expected normal", got)
	}
	if got := s.Settings().SFXLevel(); got < 0 || got > 1 {
		t.Errorf("sfx level %f outside [0, 1]", got)
	}
}

func TestKillingSpikeStaysInWorld(t *testing.T) {
	spike := testCatalog().Obstacle(KindSpike, 300, 450)
	s, _ := newTestSession(t, spike)
	startPlaying(t, s)

	for tick := 0; tick < 40 && !s.player.Dead; tick++ {
		s.Step(idle())
	}
	if !s.player.Dead {
		t.Fatal("player should have hit the spike")
	}

	found := false
	for _, e := range s.Entities() {
		if e.Kind == KindSpike && e.X == 300 {
			found = true
		}
	}
	if !found {
		t.Error("the spike that killed the player should still be live")
	}
}
