// internal/app/errors.go
package app

import "errors"

// Expected failure conditions, reported as values so the caller can show
// the right rejection reason. None of these is fatal.
var (
	ErrOccupied    = errors.New("cell is not empty")
	ErrBlocksRoute = errors.New("placement would sever the route")
	ErrNoTower     = errors.New("no tower at that cell")
	ErrNoRoute     = errors.New("no route from start to end")
	ErrGameOver    = errors.New("game is over")
)
