// cmd/game/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/state"
	"go-grid-defense/pkg/gridmap"
)

var (
	configPath  string
	towersPath  string
	enemiesPath string
)

var rootCmd = &cobra.Command{
	Use:   "grid-defense",
	Short: "Tower defense on a mutable grid with dynamic pathfinding",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runGame(cfg)
	},
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless for a number of waves",
	RunE: func(cmd *cobra.Command, args []string) error {
		waves, err := cmd.Flags().GetInt("waves")
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runHeadless(cfg, waves)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML tunables file")
	rootCmd.PersistentFlags().StringVar(&towersPath, "towers", "", "tower definitions JSON override")
	rootCmd.PersistentFlags().StringVar(&enemiesPath, "enemies", "", "enemy definitions JSON override")
	simCmd.Flags().Int("waves", 5, "number of waves to simulate")
	rootCmd.AddCommand(simCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if towersPath != "" {
		if err := defs.LoadTowerDefinitions(towersPath); err != nil {
			return cfg, err
		}
	}
	if enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(enemiesPath); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// appGame adapts the state machine to ebiten's game loop. Ebiten calls
// Update at a fixed 60 TPS, which maps one call to one simulation tick.
type appGame struct {
	stateMachine *state.StateMachine
}

func (a *appGame) Update() error {
	a.stateMachine.Update(1)
	return nil
}

func (a *appGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *appGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runGame(cfg config.Config) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	game := app.NewGame(cfg, logger)

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	return ebiten.RunGame(&appGame{stateMachine: sm})
}

// runHeadless plays the core without a window: a fixed tower loadout,
// then wave after wave until the target or game over.
func runHeadless(cfg config.Config, waves int) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	game := app.NewGame(cfg, logger)

	// A basic tower above and below the corridor, a sniper behind.
	loadout := []struct {
		cell gridmap.Point
		t    defs.TowerType
	}{
		{gridmap.Point{X: cfg.StartX + 5, Y: cfg.StartY - 1}, defs.TowerBasic},
		{gridmap.Point{X: cfg.StartX + 5, Y: cfg.StartY + 1}, defs.TowerBasic},
		{gridmap.Point{X: cfg.StartX + 9, Y: cfg.StartY - 1}, defs.TowerSlow},
		{gridmap.Point{X: cfg.StartX + 13, Y: cfg.StartY - 2}, defs.TowerSniper},
	}
	for _, l := range loadout {
		if err := game.PlaceTower(l.cell, l.t); err != nil {
			logger.Warn("placement rejected", "cell", l.cell, "type", l.t, "err", err)
		}
	}

	const maxTicksPerWave = 200000
	for w := 1; w <= waves; w++ {
		if err := game.StartWave(); err != nil {
			return fmt.Errorf("wave %d: %w", w, err)
		}
		ticks := 0
		for game.Economy.WaveActive() && !game.Economy.GameOver() {
			game.Update(1)
			if ticks++; ticks > maxTicksPerWave {
				return fmt.Errorf("wave %d did not finish after %d ticks", w, maxTicksPerWave)
			}
		}
		logger.Info("wave finished",
			"wave", w,
			"money", game.Economy.Money(),
			"lives", game.Economy.Lives(),
			"score", game.Economy.Score(),
			"kills", game.Economy.Kills(),
			"ticks", ticks)
		if game.Economy.GameOver() {
			logger.Error("game over", "wave", w)
			return nil
		}
	}
	return nil
}
