package queue

// TimeRequiredToBuy returns the seconds until person k has bought all of
// tickets[k]. Each second the front person buys one ticket and, if they
// need more, rejoins at the back. An out-of-range k, or a person k who
// needs no tickets, yields 0.
//
// People up to k buy min(t, tickets[k]) tickets before k is done; people
// after k buy min(t, tickets[k]-1).
//
// Complexity: O(n) time, O(1) space.
func TimeRequiredToBuy(tickets []int, k int) int {
	if k < 0 || k >= len(tickets) || tickets[k] <= 0 {
		return 0
	}
	target, total := tickets[k], 0
	for i, t := range tickets {
		if i <= k {
			total += min(t, target)
		} else {
			total += min(t, target-1)
		}
	}

	return total
}

// TimeRequiredToBuySimulation runs the line second by second.
// Complexity: O(n·tickets[k]) time, O(n) space.
func TimeRequiredToBuySimulation(tickets []int, k int) int {
	if k < 0 || k >= len(tickets) || tickets[k] <= 0 {
		return 0
	}
	type person struct{ idx, need int }
	line := make([]person, 0, len(tickets))
	for i, t := range tickets {
		if t > 0 {
			line = append(line, person{i, t})
		}
	}
	elapsed := 0
	for len(line) > 0 {
		p := line[0]
		line = line[1:]
		elapsed++
		p.need--
		if p.need > 0 {
			line = append(line, p)
		} else if p.idx == k {
			return elapsed
		}
	}

	return elapsed
}

// TimeRequiredToBuyLoop counts one second per buyer per round until the
// round in which person k buys the last ticket.
func TimeRequiredToBuyLoop(tickets []int, k int) int {
	if k < 0 || k >= len(tickets) || tickets[k] <= 0 {
		return 0
	}
	target, elapsed := tickets[k], 0
	for round := 1; round <= target; round++ {
		for i, t := range tickets {
			if t < round {
				continue
			}
			elapsed++
			if i == k && round == target {
				return elapsed
			}
		}
	}

	return elapsed
}

// TimeRequiredToBuyOnePass starts from person k's own tickets and adds
// everyone else's contribution.
func TimeRequiredToBuyOnePass(tickets []int, k int) int {
	if k < 0 || k >= len(tickets) || tickets[k] <= 0 {
		return 0
	}
	total := tickets[k]
	for i, t := range tickets {
		switch {
		case i < k:
			total += min(t, tickets[k])
		case i > k:
			total += min(t, tickets[k]-1)
		}
	}

	return total
}
