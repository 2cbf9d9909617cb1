package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// Task is one block of work to place on a resource's calendar.
type Task struct {
	Title         string
	DurationHours float64
	Phase         domain.Phase
	Tags          []string
	Meta          domain.EventMeta
}

// Request asks for Tasks to be placed, in order, on ResourceID's calendar
// no earlier than Anchor.
type Request struct {
	ResourceID string
	Anchor     time.Time
	Tasks      []Task
}

// Result holds the placed events in task order and the tasks that could not
// be placed. Failures never prevent the remaining tasks from being placed.
type Result struct {
	Placed   []domain.CalendarEvent
	Failures []*domain.SchedulingAdvisoryError
}

type interval struct {
	start, end time.Time
}

// Schedule places each task at the earliest start at or after the running
// anchor whose half-open interval does not overlap any event of the same
// resource, including events placed earlier in this call. After each
// placement the anchor advances to the placed event's end.
//
// Schedule is a pure function of its inputs: re-running it with the same
// request and existing events yields the same placements.
func Schedule(req Request, existing []domain.CalendarEvent) Result {
	busy := busyIntervals(req.ResourceID, existing)
	anchor := req.Anchor

	var res Result
	for i, task := range req.Tasks {
		d, reason := taskDuration(task)
		if reason != "" {
			res.Failures = append(res.Failures, &domain.SchedulingAdvisoryError{
				TaskIndex: i,
				Title:     task.Title,
				Reason:    reason,
			})
			continue
		}

		start := earliestFit(busy, anchor, d)
		ev := domain.CalendarEvent{
			Title:      task.Title,
			Start:      start,
			End:        start.Add(d),
			ResourceID: req.ResourceID,
			Phase:      task.Phase,
			Tags:       eventTags(task),
			Meta:       task.Meta,
		}
		res.Placed = append(res.Placed, ev)
		busy = insertSorted(busy, interval{start: ev.Start, end: ev.End})
		if ev.End.After(anchor) {
			anchor = ev.End
		}
	}
	return res
}

func taskDuration(task Task) (time.Duration, string) {
	h := task.DurationHours
	switch {
	case math.IsNaN(h) || math.IsInf(h, 0):
		return 0, "duration is not a finite number"
	case h <= 0:
		return 0, "duration must be positive"
	case h > maxTaskHours:
		return 0, "duration exceeds the scheduling horizon"
	}
	d := hoursToDuration(h)
	if d <= 0 {
		return 0, "duration rounds to zero seconds"
	}
	return d, ""
}

func eventTags(task Task) []string {
	if len(task.Tags) == 0 {
		if task.Phase == "" {
			return nil
		}
		return []string{string(task.Phase)}
	}
	tags := make([]string, len(task.Tags))
	copy(tags, task.Tags)
	return tags
}

// busyIntervals collects the resource's events as intervals sorted by start,
// then end. Events with no positive length cannot overlap anything and are
// dropped.
func busyIntervals(resourceID string, events []domain.CalendarEvent) []interval {
	var busy []interval
	for _, e := range events {
		if e.ResourceID != resourceID || !e.End.After(e.Start) {
			continue
		}
		busy = append(busy, interval{start: e.Start, end: e.End})
	}
	sort.Slice(busy, func(i, j int) bool {
		if !busy[i].start.Equal(busy[j].start) {
			return busy[i].start.Before(busy[j].start)
		}
		return busy[i].end.Before(busy[j].end)
	})
	return busy
}

// earliestFit scans busy (sorted by start) for the first gap of length d at
// or after anchor.
func earliestFit(busy []interval, anchor time.Time, d time.Duration) time.Time {
	start := anchor
	for _, b := range busy {
		if !b.end.After(start) {
			continue
		}
		if !start.Add(d).After(b.start) {
			// Every later interval starts no earlier than b.
			break
		}
		start = b.end
	}
	return start
}

func insertSorted(busy []interval, iv interval) []interval {
	idx := sort.Search(len(busy), func(i int) bool {
		return busy[i].start.After(iv.start)
	})
	busy = append(busy, interval{})
	copy(busy[idx+1:], busy[idx:])
	busy[idx] = iv
	return busy
}
