// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower definitions file and overrides the
// built-in entries for the types it lists.
func LoadTowerDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		if _, ok := TowerLibrary[def.Type]; !ok {
			return fmt.Errorf("unknown tower type %q", def.Type)
		}
		TowerLibrary[def.Type] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy definitions file and overrides the
// built-in entries for the types it lists.
func LoadEnemyDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if _, ok := EnemyLibrary[def.Type]; !ok {
			return fmt.Errorf("unknown enemy type %q", def.Type)
		}
		EnemyLibrary[def.Type] = def
	}
	return nil
}

// ResetLibraries restores the built-in definition tables.
func ResetLibraries() {
	TowerLibrary = defaultTowerDefs()
	EnemyLibrary = defaultEnemyDefs()
}
