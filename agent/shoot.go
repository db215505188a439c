package agent

import "github.com/katalvlaran/wumpus/grid"

// Shoot fires an arrow from pos straight toward target: the step vector is
// (sign(Δi), sign(Δj)). The arrow travels cell by cell while in bounds; at
// the first wumpus it encounters it kills that wumpus (the cell becomes
// empty) and stops. Passing over pits is harmless. Returns the killed
// position, or nil if nothing was hit (§4.9).
func Shoot(world *grid.Grid, pos, target grid.Coord) []grid.Coord {
	di := sign(target.I - pos.I)
	dj := sign(target.J - pos.J)

	i, j := pos.I+di, pos.J+dj
	for world.InBounds(i, j) {
		if world.At(i, j) == grid.Wumpus {
			world.Clear(i, j)

			return []grid.Coord{{I: i, J: j}}
		}
		i += di
		j += dj
	}

	return nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
