package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
)

// Point is one labeled value of a chart series. The shaper only
// supplies data; drawing is the consumer's job.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// HeatmapWeek is one row of the 4x7 activity grid.
type HeatmapWeek struct {
	Label string    `json:"label"`
	Days  []float64 `json:"days"`
}

// SkillTotal pairs a skill title with its accumulated hours.
type SkillTotal struct {
	SkillID string  `json:"skill_id"`
	Title   string  `json:"title"`
	Hours   float64 `json:"hours"`
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DailySeries shapes the trailing `days` calendar days ending today
// into ascending (label, value) pairs, zero-filled for days without
// entries. 7-day windows use weekday labels, longer windows "02 Jan".
func DailySeries(entries []*model.ProgressEntry, days int, today time.Time) []Point {
	sums := sumByDay(entries)
	end := model.DateOnly(today)

	points := make([]Point, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		label := day.Format("02 Jan")
		if days <= 7 {
			label = day.Format("Mon")
		}
		points = append(points, Point{Label: label, Value: sums[day]})
	}
	return points
}

// MovingAverage returns the trailing average over `window` points for
// each position of the series. The first window-1 positions have no
// defined average and are returned as nil rather than zero.
func MovingAverage(series []Point, window int) []*float64 {
	out := make([]*float64, len(series))
	for i := range series {
		if i < window-1 {
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += series[j].Value
		}
		avg := math.Round(sum/float64(window)*10) / 10
		out[i] = &avg
	}
	return out
}

// CumulativeSeries pairs the daily series with its running total.
func CumulativeSeries(series []Point) []Point {
	out := make([]Point, len(series))
	total := 0.0
	for i, p := range series {
		total += p.Value
		out[i] = Point{Label: p.Label, Value: total}
	}
	return out
}

// MonthlySeries buckets entries by calendar month for the trailing
// `months` months ending in today's month, ascending.
func MonthlySeries(entries []*model.ProgressEntry, months int, today time.Time) []Point {
	type month struct {
		year int
		mon  time.Month
	}

	sums := make(map[month]float64)
	for _, e := range entries {
		day := model.DateOnly(e.EntryDate)
		sums[month{day.Year(), day.Month()}] += float64(e.ActualTime)
	}

	end := model.DateOnly(today)
	points := make([]Point, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := end.AddDate(0, -i, 0)
		key := month{m.Year(), m.Month()}
		points = append(points, Point{Label: m.Format("Jan"), Value: sums[key]})
	}
	return points
}

// Heatmap shapes the 28 days ending today into a 4x7 grid, oldest week
// first, columns Mon..Sun of each week row. Week rows start 28, 21, 14
// and 7 days back from today.
func Heatmap(entries []*model.ProgressEntry, today time.Time) ([]HeatmapWeek, []string) {
	sums := sumByDay(entries)
	end := model.DateOnly(today)

	weeks := make([]HeatmapWeek, 0, 4)
	for w := 0; w < 4; w++ {
		start := end.AddDate(0, 0, -(28 - w*7))
		days := make([]float64, 0, 7)
		for d := 0; d < 7; d++ {
			days = append(days, sums[start.AddDate(0, 0, d)])
		}
		weeks = append(weeks, HeatmapWeek{
			Label: fmt.Sprintf("Week %d", w+1),
			Days:  days,
		})
	}
	return weeks, weekdayLabels[:]
}

// SkillTotals aggregates hours per skill, descending by total.
func SkillTotals(entries []*model.ProgressEntry, titles map[string]string) []SkillTotal {
	sums := make(map[string]float64)
	for _, e := range entries {
		sums[e.SkillID] += float64(e.ActualTime)
	}

	totals := make([]SkillTotal, 0, len(sums))
	for skillID, hours := range sums {
		totals = append(totals, SkillTotal{
			SkillID: skillID,
			Title:   titles[skillID],
			Hours:   hours,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Hours != totals[j].Hours {
			return totals[i].Hours > totals[j].Hours
		}
		return totals[i].Title < totals[j].Title
	})
	return totals
}

func sumByDay(entries []*model.ProgressEntry) map[time.Time]float64 {
	sums := make(map[time.Time]float64, len(entries))
	for _, e := range entries {
		sums[model.DateOnly(e.EntryDate)] += float64(e.ActualTime)
	}
	return sums
}
