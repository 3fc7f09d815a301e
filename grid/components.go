package grid

// Reachable returns every open cell reachable from `from` through
// 4-directional moves that avoid walls, in BFS order. A wall or
// out-of-bounds origin yields nil.
//
// Time:   O(Rows·Cols).
// Memory: O(Rows·Cols) for seen flags and the queue.
func (g *Grid) Reachable(from Coord) []Coord {
	if !g.InBounds(from.Row, from.Col) || g.At(from).IsWall {
		return nil
	}
	seen := make([]bool, g.Len())
	return g.flood(from, seen)
}

// Components finds all contiguous regions of open (non-wall) cells.
// Regions are returned in the row-major order of their first cell, and each
// region lists its cells in BFS order from that cell.
//
// Time:   O(Rows·Cols·4).
// Memory: O(Rows·Cols).
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, g.Len())
	var comps [][]Coord
	for r, row := range g.nodes {
		for c, n := range row {
			if n.IsWall || seen[r*g.cfg.Cols+c] {
				continue
			}
			comps = append(comps, g.flood(Coord{Row: r, Col: c}, seen))
		}
	}
	return comps
}

func (g *Grid) flood(from Coord, seen []bool) []Coord {
	queue := []Coord{from}
	seen[g.Index(from)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			vi := g.Index(v)
			if seen[vi] || g.nodes[v.Row][v.Col].IsWall {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
		}
	}
	return queue
}
