package stack

import (
	"fmt"
	"strconv"
	"strings"
)

type logEntry struct {
	id    int
	start bool
	ts    int
}

// parseLog decodes "id:start|end:timestamp" and checks id against n.
func parseLog(line string, n int) (logEntry, error) {
	idStr, rest, ok := strings.Cut(line, ":")
	if !ok {
		return logEntry{}, fmt.Errorf("%w: %q", ErrMalformedLog, line)
	}
	kind, tsStr, ok := strings.Cut(rest, ":")
	if !ok {
		return logEntry{}, fmt.Errorf("%w: %q", ErrMalformedLog, line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 || id >= n {
		return logEntry{}, fmt.Errorf("%w: bad function id in %q", ErrMalformedLog, line)
	}
	ts, err := strconv.Atoi(tsStr)
	if err != nil || ts < 0 {
		return logEntry{}, fmt.Errorf("%w: bad timestamp in %q", ErrMalformedLog, line)
	}
	switch kind {
	case "start":
		return logEntry{id: id, start: true, ts: ts}, nil
	case "end":
		return logEntry{id: id, ts: ts}, nil
	}

	return logEntry{}, fmt.Errorf("%w: bad event %q", ErrMalformedLog, kind)
}

func newResult(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative function count %d", ErrMalformedLog, n)
	}
	return make([]int, n), nil
}

func unmatchedEnd(e logEntry) error {
	return fmt.Errorf("%w: end of function %d at %d has no matching start", ErrMalformedLog, e.id, e.ts)
}

func unfinished(depth int) error {
	return fmt.Errorf("%w: %d calls never ended", ErrMalformedLog, depth)
}

// ExclusiveTime returns, for each of n functions on a single-threaded CPU,
// the time spent in the function itself excluding nested calls. A start at
// t begins at the start of unit t; an end at t finishes at the end of unit t.
//
// The stack holds the running call chain; prev is the first unit not yet
// credited to anyone.
//
// Complexity: O(m) time for m logs, O(n) space.
func ExclusiveTime(n int, logs []string) ([]int, error) {
	res, err := newResult(n)
	if err != nil {
		return nil, err
	}
	var st []int
	prev := 0
	for _, line := range logs {
		e, err := parseLog(line, n)
		if err != nil {
			return nil, err
		}
		if e.start {
			if len(st) > 0 {
				res[st[len(st)-1]] += e.ts - prev
			}
			st = append(st, e.id)
			prev = e.ts
			continue
		}
		if len(st) == 0 || st[len(st)-1] != e.id {
			return nil, unmatchedEnd(e)
		}
		res[e.id] += e.ts - prev + 1
		st = st[:len(st)-1]
		prev = e.ts + 1
	}
	if len(st) > 0 {
		return nil, unfinished(len(st))
	}

	return res, nil
}

// ExclusiveTimePairing pushes raw log lines and pairs every end with the
// start on top; the call's full duration is credited to it and debited from
// its caller.
func ExclusiveTimePairing(n int, logs []string) ([]int, error) {
	res, err := newResult(n)
	if err != nil {
		return nil, err
	}
	var st []string
	for _, line := range logs {
		e, err := parseLog(line, n)
		if err != nil {
			return nil, err
		}
		if e.start {
			st = append(st, line)
			continue
		}
		if len(st) == 0 {
			return nil, unmatchedEnd(e)
		}
		open, _ := parseLog(st[len(st)-1], n)
		st = st[:len(st)-1]
		if open.id != e.id {
			return nil, unmatchedEnd(e)
		}
		spent := e.ts - open.ts + 1
		res[e.id] += spent
		if len(st) > 0 {
			caller, _ := parseLog(st[len(st)-1], n)
			res[caller.id] -= spent
		}
	}
	if len(st) > 0 {
		return nil, unfinished(len(st))
	}

	return res, nil
}

// ExclusiveTimeSegments keeps parallel stacks of ids and segment starts.
// When a nested call returns, the caller's segment restarts right after it.
func ExclusiveTimeSegments(n int, logs []string) ([]int, error) {
	res, err := newResult(n)
	if err != nil {
		return nil, err
	}
	var ids, starts []int
	for _, line := range logs {
		e, err := parseLog(line, n)
		if err != nil {
			return nil, err
		}
		if e.start {
			if len(ids) > 0 {
				res[ids[len(ids)-1]] += e.ts - starts[len(starts)-1]
			}
			ids = append(ids, e.id)
			starts = append(starts, e.ts)
			continue
		}
		if len(ids) == 0 || ids[len(ids)-1] != e.id {
			return nil, unmatchedEnd(e)
		}
		res[e.id] += e.ts - starts[len(starts)-1] + 1
		ids, starts = ids[:len(ids)-1], starts[:len(starts)-1]
		if len(starts) > 0 {
			starts[len(starts)-1] = e.ts + 1
		}
	}
	if len(ids) > 0 {
		return nil, unfinished(len(ids))
	}

	return res, nil
}

// ExclusiveTimeSubtract stacks (id, start) frames: an end credits the whole
// duration to the callee and subtracts it from the caller below.
func ExclusiveTimeSubtract(n int, logs []string) ([]int, error) {
	type frame struct{ id, start int }
	res, err := newResult(n)
	if err != nil {
		return nil, err
	}
	var st []frame
	for _, line := range logs {
		e, err := parseLog(line, n)
		if err != nil {
			return nil, err
		}
		if e.start {
			st = append(st, frame{e.id, e.ts})
			continue
		}
		if len(st) == 0 || st[len(st)-1].id != e.id {
			return nil, unmatchedEnd(e)
		}
		top := st[len(st)-1]
		st = st[:len(st)-1]
		d := e.ts - top.start + 1
		res[top.id] += d
		if len(st) > 0 {
			res[st[len(st)-1].id] -= d
		}
	}
	if len(st) > 0 {
		return nil, unfinished(len(st))
	}

	return res, nil
}

// ExclusiveTimeParsed validates and decodes every line before computing, so
// a malformed line anywhere rejects the log without partial work.
// Complexity: O(m) time, O(m+n) space.
func ExclusiveTimeParsed(n int, logs []string) ([]int, error) {
	entries := make([]logEntry, 0, len(logs))
	for _, line := range logs {
		e, err := parseLog(line, n)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	res, err := newResult(n)
	if err != nil {
		return nil, err
	}
	var st []int
	prev := 0
	for _, e := range entries {
		if e.start {
			if len(st) > 0 {
				res[st[len(st)-1]] += e.ts - prev
			}
			st = append(st, e.id)
			prev = e.ts
			continue
		}
		if len(st) == 0 || st[len(st)-1] != e.id {
			return nil, unmatchedEnd(e)
		}
		res[e.id] += e.ts - prev + 1
		st = st[:len(st)-1]
		prev = e.ts + 1
	}
	if len(st) > 0 {
		return nil, unfinished(len(st))
	}

	return res, nil
}
