package game

func intPtr(n int) *int {
	return &n
}

func activeSession(phase Phase) Session {
	session := Initial()
	session.ID = Active(1)
	session.Difficulty = Easy
	session.Phase = phase
	session.MinesRemaining = intPtr(10)
	return session
}

// everyCoord yields the board's positions plus a ring just outside it.
func everyCoord(size int) []Coord {
	var coords []Coord
	for row := -1; row <= size; row++ {
		for col := -1; col <= size; col++ {
			coords = append(coords, Coord{row, col})
		}
	}
	return coords
}
