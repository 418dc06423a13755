// internal/defs/waves.go
package defs

// ComposeWave returns the spawn queue for a wave (1-indexed), basic
// enemies first, then fast, then tanks.
//
//	waves 1–3:  basic 5+3n
//	waves 4–6:  basic 5+2n, fast n−3
//	waves ≥7:   basic 8+n, fast n/2, tank (n−6)/2
func ComposeWave(wave int) []EnemyType {
	var queue []EnemyType
	appendN := func(t EnemyType, n int) {
		for i := 0; i < n; i++ {
			queue = append(queue, t)
		}
	}

	switch {
	case wave <= 3:
		appendN(EnemyBasic, 5+wave*3)
	case wave <= 6:
		appendN(EnemyBasic, 5+wave*2)
		appendN(EnemyFast, wave-3)
	default:
		appendN(EnemyBasic, 8+wave)
		appendN(EnemyFast, wave/2)
		appendN(EnemyTank, (wave-6)/2)
	}
	return queue
}
