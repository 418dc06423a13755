// internal/economy/economy.go

// Package economy tracks money, lives, score and wave progression for one
// simulation instance. Other components never assign these counters
// directly; everything goes through the mutation methods here.
package economy

import "errors"

var (
	ErrInsufficientFunds = errors.New("economy: insufficient funds")
	ErrWaveActive        = errors.New("economy: a wave is already active")
)

// State is the progression bookkeeping object, passed by reference into
// each tick. Money and lives never go negative.
type State struct {
	money int
	lives int
	score int
	kills int

	currentWave     int
	waveActive      bool
	enemiesSpawned  int
	enemiesInWave   int
	waveBonusPerNum int

	gameOver bool

	startingMoney int
	startingLives int
}

// New returns a fresh progression state.
func New(startingMoney, startingLives, waveBonusPerNum int) *State {
	return &State{
		money:           startingMoney,
		lives:           startingLives,
		waveBonusPerNum: waveBonusPerNum,
		startingMoney:   startingMoney,
		startingLives:   startingLives,
	}
}

func (s *State) Money() int { return s.money }
func (s *State) Lives() int { return s.lives }
func (s *State) Score() int { return s.score }
func (s *State) Kills() int { return s.kills }

func (s *State) Wave() int           { return s.currentWave }
func (s *State) WaveActive() bool    { return s.waveActive }
func (s *State) EnemiesSpawned() int { return s.enemiesSpawned }
func (s *State) EnemiesInWave() int  { return s.enemiesInWave }

// GameOver reports the sticky terminal flag.
func (s *State) GameOver() bool { return s.gameOver }

// CanAfford reports whether cost is payable.
func (s *State) CanAfford(cost int) bool {
	return s.money >= cost
}

// Spend debits cost, rejecting the whole operation when unaffordable.
func (s *State) Spend(cost int) error {
	if !s.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	s.money -= cost
	return nil
}

// Earn credits money. Money earned also counts toward score.
func (s *State) Earn(amount int) {
	s.money += amount
	s.score += amount
}

// LoseLife deducts one life; at zero the game-over flag latches.
func (s *State) LoseLife() {
	if s.lives == 0 {
		return
	}
	s.lives--
	if s.lives == 0 {
		s.gameOver = true
	}
}

// RecordKill counts a kill and pays its reward.
func (s *State) RecordKill(reward int) {
	s.kills++
	s.Earn(reward)
}

// StartWave begins wave number n with the given enemy count. Rejected
// while a wave is active.
func (s *State) StartWave(n, enemyCount int) error {
	if s.waveActive {
		return ErrWaveActive
	}
	s.currentWave = n
	s.waveActive = true
	s.enemiesInWave = enemyCount
	s.enemiesSpawned = 0
	return nil
}

// EnemySpawned counts one spawn in the active wave.
func (s *State) EnemySpawned() {
	s.enemiesSpawned++
}

// WaveComplete ends the active wave and pays the completion bonus,
// proportional to the wave number.
func (s *State) WaveComplete() {
	if !s.waveActive {
		return
	}
	s.waveActive = false
	s.Earn(s.waveBonusPerNum * s.currentWave)
}

// Reset restores the initial state.
func (s *State) Reset() {
	s.money = s.startingMoney
	s.lives = s.startingLives
	s.score = 0
	s.kills = 0
	s.currentWave = 0
	s.waveActive = false
	s.enemiesSpawned = 0
	s.enemiesInWave = 0
	s.gameOver = false
}
