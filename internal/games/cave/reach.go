package cave

// Reachability is the result of exploring a world under the move rules with
// every hazard ignored.
type Reachability struct {
	Rest    map[Coord]bool // cells where the player can stand idle
	Crossed map[Coord]bool // every cell a move passes through, rest cells included
}

// Reaches reports whether some move passes through c.
func (r Reachability) Reaches(c Coord) bool {
	return r.Crossed[c]
}

// Reachable explores every rest cell reachable from start by steps, jumps
// and grapples, each followed by the fall it ends in.
func Reachable(w *World, start Coord) Reachability {
	r := Reachability{
		Rest:    map[Coord]bool{start: true},
		Crossed: map[Coord]bool{start: true},
	}
	if !w.IsPassable(start) {
		return r
	}

	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, path := range movesFrom(w, cur) {
			for _, c := range path {
				r.Crossed[c] = true
			}
			end := path[len(path)-1]
			if !r.Rest[end] {
				r.Rest[end] = true
				queue = append(queue, end)
			}
		}
	}
	return r
}

// movesFrom returns the cells crossed by each legal move from cur, ending
// where the player comes to rest.
func movesFrom(w *World, cur Coord) [][]Coord {
	var paths [][]Coord

	for _, in := range []Intent{IntentStepLeft, IntentStepRight, IntentJump} {
		dx, dy := in.delta()
		next := cur.Add(dx, dy)
		if !w.IsPassable(next) {
			continue
		}
		paths = append(paths, withFall(w, []Coord{next}))
	}

	for _, in := range []Intent{IntentGrappleLeft, IntentGrappleRight, IntentGrappleUp} {
		dx, dy := in.delta()
		var path []Coord
		for next := cur.Add(dx, dy); w.IsPassable(next); next = next.Add(dx, dy) {
			path = append(path, next)
		}
		if len(path) == 0 {
			continue
		}
		paths = append(paths, withFall(w, path))
	}

	return paths
}

func withFall(w *World, path []Coord) []Coord {
	last := path[len(path)-1]
	for i := 0; i < w.FallDistance(last); i++ {
		path = append(path, last.Add(0, i+1))
	}
	return path
}
