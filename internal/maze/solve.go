package maze

// ShortestPath returns the cells from `from` to `to` inclusive along open
// cells of v, using breadth-first search with a came-from map. It returns
// nil when `to` is unreachable or either end is a wall.
func ShortestPath(v View, from, to Pos) []Pos {
	if !v.IsPath(from) || !v.IsPath(to) {
		return nil
	}

	cameFrom := map[Pos]Pos{from: from}
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			break
		}
		for _, d := range Directions {
			n := p.Add(d)
			if _, seen := cameFrom[n]; seen || !v.IsPath(n) {
				continue
			}
			cameFrom[n] = p
			queue = append(queue, n)
		}
	}

	if _, ok := cameFrom[to]; !ok {
		return nil
	}
	var path []Pos
	for p := to; p != from; p = cameFrom[p] {
		path = append(path, p)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Par returns the minimum number of moves from the player to the treasure,
// or -1 if the treasure is not placed or not reachable.
func (c *Controller) Par() int {
	if !c.placed {
		return -1
	}
	path := ShortestPath(c.Revealed(), c.player, c.treasure)
	if path == nil {
		return -1
	}
	return len(path) - 1
}
