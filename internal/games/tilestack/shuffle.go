package tilestack

// Shuffle re-randomizes the available part of the scene in place.
// Identities are permuted among the available slots with a single
// swap-with-random-index pass, then every shuffled tile gets a fresh
// position from the level's density rule. Queued and matched tiles do not
// move. Occlusion is recomputed before returning.
func Shuffle(scene Scene, level int, rules Rules, rng RNG) {
	slots := make([]int, 0, len(scene))
	for i := range scene {
		if scene[i].Status == StatusAvailable {
			slots = append(slots, i)
		}
	}

	n := len(slots)
	for i := range n {
		j := rng.Intn(n)
		a, b := slots[i], slots[j]
		scene[a], scene[b] = scene[b], scene[a]
	}

	for _, idx := range slots {
		scene[idx].X, scene[idx].Y = rules.place(level, rng)
	}

	Recompute(scene, InsertionOrder)
}
