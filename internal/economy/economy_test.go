package economy

import (
	"errors"
	"testing"
)

func TestSpendAndEarn(t *testing.T) {
	s := New(500, 20, 50)

	if !s.CanAfford(500) {
		t.Error("exact balance should be affordable")
	}
	if err := s.Spend(200); err != nil {
		t.Fatalf("Spend(200) = %v", err)
	}
	if s.Money() != 300 {
		t.Errorf("money = %d, want 300", s.Money())
	}
	if err := s.Spend(301); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overspend = %v, want ErrInsufficientFunds", err)
	}
	if s.Money() != 300 {
		t.Error("a rejected spend must not debit anything")
	}

	s.Earn(25)
	if s.Money() != 325 || s.Score() != 25 {
		t.Errorf("money/score = %d/%d, want 325/25", s.Money(), s.Score())
	}
}

func TestRecordKill(t *testing.T) {
	s := New(0, 20, 50)
	s.RecordKill(25)
	s.RecordKill(30)
	if s.Kills() != 2 {
		t.Errorf("kills = %d, want 2", s.Kills())
	}
	if s.Money() != 55 || s.Score() != 55 {
		t.Errorf("money/score = %d/%d, want 55/55", s.Money(), s.Score())
	}
}

func TestLoseLifeLatchesGameOver(t *testing.T) {
	s := New(0, 2, 50)
	s.LoseLife()
	if s.GameOver() {
		t.Fatal("game over with a life remaining")
	}
	s.LoseLife()
	if s.Lives() != 0 || !s.GameOver() {
		t.Fatalf("lives/gameOver = %d/%v, want 0/true", s.Lives(), s.GameOver())
	}
	// Further losses are no-ops; lives never go negative.
	s.LoseLife()
	if s.Lives() != 0 {
		t.Errorf("lives = %d, want 0", s.Lives())
	}
}

func TestWaveLifecycle(t *testing.T) {
	s := New(100, 20, 50)

	if err := s.StartWave(3, 14); err != nil {
		t.Fatalf("StartWave = %v", err)
	}
	if err := s.StartWave(4, 16); !errors.Is(err, ErrWaveActive) {
		t.Errorf("second StartWave = %v, want ErrWaveActive", err)
	}
	for i := 0; i < 14; i++ {
		s.EnemySpawned()
	}
	if s.EnemiesSpawned() != s.EnemiesInWave() {
		t.Errorf("spawned %d of %d", s.EnemiesSpawned(), s.EnemiesInWave())
	}

	s.WaveComplete()
	if s.WaveActive() {
		t.Error("wave should be inactive after completion")
	}
	if s.Money() != 100+50*3 {
		t.Errorf("money = %d, want %d (wave bonus scales with the wave number)", s.Money(), 100+50*3)
	}
	// Completing twice pays once.
	s.WaveComplete()
	if s.Money() != 100+50*3 {
		t.Error("WaveComplete must be idempotent while inactive")
	}
}

func TestReset(t *testing.T) {
	s := New(500, 20, 50)
	s.Spend(400)
	s.StartWave(1, 8)
	s.RecordKill(25)
	s.LoseLife()
	s.Reset()

	if s.Money() != 500 || s.Lives() != 20 || s.Score() != 0 || s.Kills() != 0 {
		t.Errorf("reset state = money %d lives %d score %d kills %d", s.Money(), s.Lives(), s.Score(), s.Kills())
	}
	if s.Wave() != 0 || s.WaveActive() || s.GameOver() {
		t.Error("reset must clear wave progression and the game-over flag")
	}
}
