package domain

// TheaterShowtimes groups a movie's slots under the theater hosting them.
type TheaterShowtimes struct {
	Theater Theater
	Slots   []SlotWithScreen
}

// MovieShowtimes groups a theater's slots under the movie being screened.
type MovieShowtimes struct {
	Movie Movie
	Slots []SlotWithScreen
}

type SlotWithScreen struct {
	Slot   Slot
	Screen Screen
}

// GroupSlotsByTheater builds the showtime view for a movie: each theater
// appears once, in the order its first slot occurs, carrying the slots that
// run on its screens. Slots whose screen or theater is missing from the
// lookup sets are skipped; catalog deletions race with this read and a
// dangling reference is not an error.
func GroupSlotsByTheater(slots []Slot, screens []Screen, theaters []Theater) []TheaterShowtimes {
	screensById := make(map[int]Screen, len(screens))
	for _, s := range screens {
		screensById[s.ID] = s
	}

	theatersById := make(map[int]Theater, len(theaters))
	for _, t := range theaters {
		theatersById[t.ID] = t
	}

	groups := make([]TheaterShowtimes, 0, len(theaters))
	groupIdx := make(map[int]int, len(theaters))

	for _, slot := range slots {
		screen, ok := screensById[slot.ScreenID]
		if !ok {
			continue
		}

		theater, ok := theatersById[screen.TheaterID]
		if !ok {
			continue
		}

		i, ok := groupIdx[theater.ID]
		if !ok {
			i = len(groups)
			groupIdx[theater.ID] = i
			groups = append(groups, TheaterShowtimes{Theater: theater})
		}

		groups[i].Slots = append(groups[i].Slots, SlotWithScreen{Slot: slot, Screen: screen})
	}

	return groups
}

// GroupSlotsByMovie builds the movie listing for a theater: each movie
// appears once, in the order its first slot occurs, carrying the slots that
// screen it. The same dangling-reference skip policy as GroupSlotsByTheater
// applies.
func GroupSlotsByMovie(slots []Slot, screens []Screen, movies []Movie) []MovieShowtimes {
	screensById := make(map[int]Screen, len(screens))
	for _, s := range screens {
		screensById[s.ID] = s
	}

	moviesById := make(map[int]Movie, len(movies))
	for _, m := range movies {
		moviesById[m.ID] = m
	}

	groups := make([]MovieShowtimes, 0, len(movies))
	groupIdx := make(map[int]int, len(movies))

	for _, slot := range slots {
		screen, ok := screensById[slot.ScreenID]
		if !ok {
			continue
		}

		movie, ok := moviesById[slot.MovieID]
		if !ok {
			continue
		}

		i, ok := groupIdx[movie.ID]
		if !ok {
			i = len(groups)
			groupIdx[movie.ID] = i
			groups = append(groups, MovieShowtimes{Movie: movie})
		}

		groups[i].Slots = append(groups[i].Slots, SlotWithScreen{Slot: slot, Screen: screen})
	}

	return groups
}
