package queue

// CountStudents returns how many students cannot eat. Students queue with a
// preference (0 circular, 1 square); the sandwich stack is served top first
// and a student whose preference differs goes to the back of the line.
//
// Order in the line is irrelevant: the process stops exactly when no
// remaining student wants the top sandwich.
//
// Complexity: O(n) time, O(1) space.
func CountStudents(students, sandwiches []int) int {
	circular, square := 0, 0
	for _, s := range students {
		if s == 0 {
			circular++
		} else {
			square++
		}
	}
	for _, s := range sandwiches {
		if s == 0 {
			if circular == 0 {
				break
			}
			circular--
		} else {
			if square == 0 {
				break
			}
			square--
		}
	}

	return circular + square
}

// CountStudentsSimulation runs the line literally on a slice-backed queue
// and stops once a full rotation passes without anyone eating.
// Complexity: O(n²) time, O(n) space.
func CountStudentsSimulation(students, sandwiches []int) int {
	line := append([]int(nil), students...)
	top, misses := 0, 0
	for len(line) > 0 && top < len(sandwiches) && misses < len(line) {
		front := line[0]
		line = line[1:]
		if front == sandwiches[top] {
			top++
			misses = 0
			continue
		}
		line = append(line, front)
		misses++
	}

	return len(line)
}

// CountStudentsCounter tallies preferences in a map.
func CountStudentsCounter(students, sandwiches []int) int {
	count := make(map[int]int, 2)
	for _, s := range students {
		count[s]++
	}
	for _, s := range sandwiches {
		if count[s] == 0 {
			break
		}
		count[s]--
	}
	left := 0
	for _, c := range count {
		left += c
	}

	return left
}

// CountStudentsRotation scans the fixed student array round after round,
// marking served students instead of moving them.
// Complexity: O(n²) time, O(n) space.
func CountStudentsRotation(students, sandwiches []int) int {
	served := make([]bool, len(students))
	remaining, top := len(students), 0
	for top < len(sandwiches) && remaining > 0 {
		found := false
		for i, s := range students {
			if !served[i] && s == sandwiches[top] {
				served[i] = true
				remaining--
				top++
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	return remaining
}

// CountStudentsCompact indexes a two-slot counter by preference and answers
// with the number of sandwiches left once the top one has no taker.
func CountStudentsCompact(students, sandwiches []int) int {
	var count [2]int
	for _, s := range students {
		count[s&1]++
	}
	for i, s := range sandwiches {
		if count[s&1] == 0 {
			return len(sandwiches) - i
		}
		count[s&1]--
	}

	return 0
}
