package fwchart

import (
	"math"
	"time"
)

// Calendar unit thresholds in milliseconds. A unit handles steps up
// to the next unit's threshold; months and years use conservative
// lower bounds since their true duration varies.
const (
	msSecond = 1000
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 28 * msDay
	msYear   = 365 * msDay
)

type calendarUnit int

const (
	unitMillisecond calendarUnit = iota
	unitSecond
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

// A CalendarStep is an explicit set of calendar component deltas.
// Adding one applies the year, month and day deltas with calendar
// arithmetic first and the fixed-duration components afterwards.
type CalendarStep struct {
	Years        int
	Months       int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// AddCalendarStep returns the instant one step after t. Month and
// year deltas follow calendar arithmetic, so consecutive steps are
// not generally equal durations.
func AddCalendarStep(t time.Time, step CalendarStep) time.Time {
	t = t.AddDate(step.Years, step.Months, step.Days)
	return t.Add(time.Duration(step.Hours)*time.Hour +
		time.Duration(step.Minutes)*time.Minute +
		time.Duration(step.Seconds)*time.Second +
		time.Duration(step.Milliseconds)*time.Millisecond)
}

// BuildTime partitions the time domain [minMs, maxMs] (millisecond
// timestamps) into weighted calendar-aligned segments targeting
// density ticks, in UTC. Degenerate domains follow the same rules as
// BuildLinear.
func BuildTime(minMs, maxMs float64, density int) Range {
	return BuildTimeIn(minMs, maxMs, density, time.UTC)
}

// BuildTimeIn is BuildTime with tick alignment and labels computed in
// the given location.
func BuildTimeIn(minMs, maxMs float64, density int, loc *time.Location) Range {
	if math.IsNaN(minMs) || math.IsNaN(maxMs) {
		return Range{}
	}
	if density < 1 {
		density = 1
	}
	if loc == nil {
		loc = time.UTC
	}
	if minMs == maxMs {
		t := Tick{Value: minMs, Labels: pointLabels(msToTime(minMs, loc))}
		return Range{Single: &t}
	}

	rawStep := (maxMs - minMs) / float64(density)
	unit, count := pickCalendarStep(rawStep)
	step := calendarStepFor(unit, count)

	minT, maxT := msToTime(minMs, loc), msToTime(maxMs, loc)
	start := alignDown(minT, unit, count)

	// Tick instants from the aligned start until max is covered.
	ticks := []time.Time{start}
	for t := start; t.Before(maxT); {
		t = AddCalendarStep(t, step)
		ticks = append(ticks, t)
	}

	label := labelerFor(step)
	segs := make([]Segment, 0, len(ticks))
	for i := 0; i+1 < len(ticks); i++ {
		lo, hi := timeToMs(ticks[i]), timeToMs(ticks[i+1])
		full := hi - lo // actual elapsed time of a full step at this edge

		seg := Segment{
			Min:    Tick{Value: lo, Labels: label(ticks[i])},
			Max:    Tick{Value: hi, Labels: label(ticks[i+1])},
			Weight: 1,
		}
		// Truncate at the domain edges, weighting by the covered
		// share of the full calendar step at that edge.
		if lo < minMs {
			seg.Min = Tick{Value: minMs}
			seg.Weight = (hi - minMs) / full
		}
		if hi > maxMs {
			seg.Max = Tick{Value: maxMs}
			seg.Weight = (seg.Max.Value - seg.Min.Value) / full
		}
		seg.Size = seg.Max.Value - seg.Min.Value
		if seg.Size <= 0 {
			continue
		}
		segs = append(segs, seg)
	}

	return Range{Segments: segs}
}

// pickCalendarStep selects the finest unit whose threshold exceeds
// the raw step, then the nice step count within that unit.
func pickCalendarStep(rawStep float64) (calendarUnit, int) {
	switch {
	case rawStep < msSecond:
		return unitMillisecond, int(PickTick(millisecondTicks, rawStep))
	case rawStep < msMinute:
		return unitSecond, int(PickTick(secondTicks, rawStep/msSecond))
	case rawStep < msHour:
		return unitMinute, int(PickTick(minuteTicks, rawStep/msMinute))
	case rawStep < msDay:
		return unitHour, int(PickTick(hourTicks, rawStep/msHour))
	case rawStep < msWeek:
		return unitDay, int(PickTick(dayTicks, rawStep/msDay))
	case rawStep < msMonth:
		return unitWeek, int(PickTick(weekTicks, rawStep/msWeek))
	case rawStep < msYear:
		return unitMonth, int(PickTick(monthTicks, rawStep/msMonth))
	default:
		years := niceStep(rawStep / msYear)
		if years < 1 {
			years = 1
		}
		return unitYear, int(math.Round(years))
	}
}

func calendarStepFor(unit calendarUnit, count int) CalendarStep {
	switch unit {
	case unitYear:
		return CalendarStep{Years: count}
	case unitMonth:
		return CalendarStep{Months: count}
	case unitWeek:
		return CalendarStep{Days: 7 * count}
	case unitDay:
		return CalendarStep{Days: count}
	case unitHour:
		return CalendarStep{Hours: count}
	case unitMinute:
		return CalendarStep{Minutes: count}
	case unitSecond:
		return CalendarStep{Seconds: count}
	default:
		return CalendarStep{Milliseconds: count}
	}
}

// alignDown truncates t to the nearest step boundary at or below it.
// Multi-count steps align within their natural cycle: hours within
// the day, months within the year, weeks to Monday.
func alignDown(t time.Time, unit calendarUnit, count int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	loc := t.Location()

	floor := func(v, n int) int { return v - mod(v, n) }

	switch unit {
	case unitYear:
		return time.Date(floor(y, count), 1, 1, 0, 0, 0, 0, loc)
	case unitMonth:
		return time.Date(y, time.Month(floor(int(mo)-1, count)+1), 1, 0, 0, 0, 0, loc)
	case unitWeek:
		day := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		return day.AddDate(0, 0, -mod(int(day.Weekday())+6, 7))
	case unitDay:
		return time.Date(y, mo, floor(d-1, count)+1, 0, 0, 0, 0, loc)
	case unitHour:
		return time.Date(y, mo, d, floor(h, count), 0, 0, 0, loc)
	case unitMinute:
		return time.Date(y, mo, d, h, floor(mi, count), 0, 0, loc)
	case unitSecond:
		return time.Date(y, mo, d, h, mi, floor(s, count), 0, loc)
	default:
		return time.Date(y, mo, d, h, mi, s, floor(ms, count)*int(time.Millisecond), loc)
	}
}

func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// labelerFor returns the tick label renderer for the coarsest
// non-zero component of the step: finer steps carry more context
// lines so a tick remains readable without its neighbors.
func labelerFor(step CalendarStep) func(time.Time) []string {
	switch {
	case step.Years != 0:
		return func(t time.Time) []string {
			return []string{t.Format("2006")}
		}
	case step.Months != 0:
		return func(t time.Time) []string {
			return []string{t.Format("Jan"), t.Format("2006")}
		}
	case step.Days != 0:
		return func(t time.Time) []string {
			return []string{t.Format("Jan 2"), t.Format("2006")}
		}
	case step.Hours != 0 || step.Minutes != 0:
		return func(t time.Time) []string {
			return []string{t.Format("15:04"), t.Format("Jan 2"), t.Format("2006")}
		}
	case step.Seconds != 0:
		return func(t time.Time) []string {
			return []string{t.Format("15:04:05"), t.Format("Jan 2"), t.Format("2006")}
		}
	default:
		return func(t time.Time) []string {
			return []string{t.Format("15:04:05.000"), t.Format("Jan 2"), t.Format("2006")}
		}
	}
}

// pointLabels renders the full-granularity label of a single-point
// time axis.
func pointLabels(t time.Time) []string {
	return []string{t.Format("15:04:05.000"), t.Format("Jan 2"), t.Format("2006")}
}

func msToTime(ms float64, loc *time.Location) time.Time {
	n := int64(math.Floor(ms))
	rem := ms - float64(n)
	return time.UnixMilli(n).Add(time.Duration(rem * float64(time.Millisecond))).In(loc)
}

func timeToMs(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%int(time.Millisecond))/float64(time.Millisecond)
}
