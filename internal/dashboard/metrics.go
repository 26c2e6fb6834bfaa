// Package dashboard holds the four health metrics, their counter animations,
// progress bars and the edit form.
package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type MetricID int

const (
	HeartRate MetricID = iota
	Steps
	Calories
	Sleep
)

// All lists the metrics in display order.
var All = []MetricID{HeartRate, Steps, Calories, Sleep}

func (id MetricID) String() string {
	switch id {
	case HeartRate:
		return "heartRate"
	case Steps:
		return "steps"
	case Calories:
		return "calories"
	case Sleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// Label is the card heading.
func (id MetricID) Label() string {
	switch id {
	case HeartRate:
		return "Heart Rate"
	case Steps:
		return "Steps Today"
	case Calories:
		return "Calories Burned"
	case Sleep:
		return "Sleep"
	default:
		return ""
	}
}

func (id MetricID) Unit() string {
	switch id {
	case HeartRate:
		return "bpm"
	case Steps:
		return "steps"
	case Calories:
		return "kcal"
	case Sleep:
		return "hours"
	default:
		return ""
	}
}

// Goal is the value at which the progress bar is full.
func (id MetricID) Goal() float64 {
	switch id {
	case HeartRate:
		return 200
	case Steps:
		return 10000
	case Calories:
		return 2000
	case Sleep:
		return 8
	default:
		return 1
	}
}

// Fractional metrics show one decimal; the rest are floored whole numbers.
func (id MetricID) Fractional() bool {
	return id == Sleep
}

var printer = message.NewPrinter(language.English)

// Format renders a value the way the dashboard shows it: "7.5", "8,542".
func Format(id MetricID, v float64) string {
	if id.Fractional() {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return printer.Sprintf("%d", int64(math.Floor(v)))
}

// ParseDisplayed reads a displayed value back, ignoring grouping commas.
func ParseDisplayed(id MetricID, s string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if id.Fractional() {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %s value %q: %w", id, s, err)
		}
		return v, nil
	}
	v, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("parse %s value %q: %w", id, s, err)
	}
	return float64(v), nil
}

// Progress is the bar fill in [0, 1].
func Progress(id MetricID, v float64) float64 {
	p := v / id.Goal()
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
