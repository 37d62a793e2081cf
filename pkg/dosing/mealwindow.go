package dosing

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const minutesPerDay = 1440

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type MealWindowResult struct {
	CanTake          bool
	Reason           string
	Windows          []domain.MealWindow
	CurrentWindows   []domain.MealWindow
	NextWindow       *domain.MealWindow
	TimeUntilNext    string
	MinutesUntilNext int
}

// MealsForFrequency maps a daily frequency onto the meals a dose is tied to.
// The table is fixed and does not depend on which meals are enabled.
func MealsForFrequency(frequency int) []string {
	switch frequency {
	case 1:
		return []string{MealLunch}
	case 2:
		return []string{MealBreakfast, MealDinner}
	case 3:
		return []string{MealBreakfast, MealLunch, MealDinner}
	case 4:
		return []string{MealBreakfast, MealLunch, MealDinner, MealSnack}
	default:
		return []string{MealLunch}
	}
}

// ParseClock parses a strict 24h "HH:MM" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, domain.ErrInvalidMealTime
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, domain.ErrInvalidMealTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, domain.ErrInvalidMealTime
	}
	return hours*60 + minutes, nil
}

// CheckMealWindows decides whether nowLocal falls inside a valid intake
// window for the medication's timing relation, and if not, how long until
// the next window opens. Missing or broken configuration degrades to
// permissive: timing safety must never block harder than "not configured".
func CheckMealWindows(frequency int, relation string, cfg *entities.MealTimeConfig, nowLocal time.Time) MealWindowResult {
	if relation == domain.TimingAnytime {
		return MealWindowResult{CanTake: true, Reason: "can be taken anytime"}
	}

	if cfg == nil {
		return MealWindowResult{CanTake: true, Reason: "meal times not configured, timing check skipped"}
	}

	mealTimes, err := parseMealTimes(cfg)
	if err != nil {
		log.Warnf("meal time config for patient %s unparseable, permitting dose: %v", cfg.PatientID, err)
		return MealWindowResult{CanTake: true, Reason: "meal time configuration invalid, timing check skipped"}
	}

	assigned := MealsForFrequency(frequency)
	windows := make([]domain.MealWindow, 0, len(assigned))
	for _, meal := range assigned {
		if relation == domain.TimingEmptyStomach {
			if window, ok := emptyStomachWindow(meal, mealTimes); ok {
				windows = append(windows, window)
			}
			continue
		}
		window, ok := windowFor(relation, meal, mealTimes)
		if !ok {
			log.Warnf("unknown timing relation %q, permitting dose", relation)
			return MealWindowResult{CanTake: true, Reason: "unknown timing relation, timing check skipped"}
		}
		windows = append(windows, window)
	}

	if len(windows) == 0 {
		return MealWindowResult{CanTake: true, Reason: "meal schedule leaves no empty-stomach gap, timing check skipped"}
	}

	current := MinutesOfDay(nowLocal)

	var matched []domain.MealWindow
	for _, w := range windows {
		if windowContains(w, current) {
			matched = append(matched, w)
		}
	}

	if len(matched) > 0 {
		return MealWindowResult{
			CanTake:        true,
			Reason:         fmt.Sprintf("within %s window", matched[0].Meal),
			Windows:        windows,
			CurrentWindows: matched,
		}
	}

	next, wait := nextWindow(windows, current)
	return MealWindowResult{
		CanTake:          false,
		Reason:           fmt.Sprintf("outside intake windows, next window (%s) opens in %s", next.Meal, formatWait(wait)),
		Windows:          windows,
		NextWindow:       &next,
		TimeUntilNext:    formatWait(wait),
		MinutesUntilNext: wait,
	}
}

func parseMealTimes(cfg *entities.MealTimeConfig) (map[string]int, error) {
	times := make(map[string]int, 4)
	for meal, value := range map[string]string{
		MealBreakfast: cfg.Breakfast,
		MealLunch:     cfg.Lunch,
		MealDinner:    cfg.Dinner,
		MealSnack:     cfg.Snack,
	} {
		minutes, err := ParseClock(value)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", meal, value, err)
		}
		times[meal] = minutes
	}
	return times, nil
}

func windowFor(relation, meal string, mealTimes map[string]int) (domain.MealWindow, bool) {
	t := mealTimes[meal]

	switch relation {
	case domain.TimingAfterFood:
		return boundedWindow(meal, t-60, t+150), true
	case domain.TimingBeforeFood:
		return boundedWindow(meal, t-120, t+60), true
	case domain.TimingWithFood:
		return boundedWindow(meal, t-60, t+60), true
	default:
		return domain.MealWindow{}, false
	}
}

// emptyStomachWindow is the fasting gap between the main meals surrounding
// the assigned meal: it opens 2h30 after the preceding main meal and closes
// 2h before the following one. For a main meal the following meal is the
// meal itself; for the snack it is the next main meal on the clock. Both
// bounds are placed on one timeline so meals packed closer than the required
// margins report no window instead of inverting into a wrapped one.
func emptyStomachWindow(meal string, mealTimes map[string]int) (domain.MealWindow, bool) {
	t := mealTimes[meal]

	prev := previousMealTime(meal, t, mealTimes)
	if prev >= t {
		prev -= minutesPerDay
	}

	next := t
	if meal == MealSnack {
		next = nextMainMealTime(t, mealTimes)
		if next <= t {
			next += minutesPerDay
		}
	}

	start := prev + 150
	end := next - 120
	if start > end {
		return domain.MealWindow{}, false
	}
	return domain.MealWindow{Meal: meal, Start: wrapMinutes(start), End: wrapMinutes(end)}, true
}

// boundedWindow clamps the start at midnight (no wrap below 00:00) and wraps
// an end past 23:59 into the next day.
func boundedWindow(meal string, start, end int) domain.MealWindow {
	if start < 0 {
		start = 0
	}
	if end >= minutesPerDay {
		end -= minutesPerDay
	}
	return domain.MealWindow{Meal: meal, Start: start, End: end}
}

// previousMealTime finds the main meal (breakfast/lunch/dinner) immediately
// before the assigned meal on the clock, wrapping to the latest one when the
// assigned meal is the earliest of the day.
func previousMealTime(meal string, t int, mealTimes map[string]int) int {
	prev := -1
	latest := -1
	for _, candidate := range []string{MealBreakfast, MealLunch, MealDinner} {
		if candidate == meal {
			continue
		}
		ct := mealTimes[candidate]
		if ct > latest {
			latest = ct
		}
		if ct < t && ct > prev {
			prev = ct
		}
	}
	if prev < 0 {
		return latest
	}
	return prev
}

// nextMainMealTime finds the main meal immediately after t on the clock,
// wrapping to the earliest one when t is past the last meal of the day.
func nextMainMealTime(t int, mealTimes map[string]int) int {
	next := -1
	earliest := -1
	for _, candidate := range []string{MealBreakfast, MealLunch, MealDinner} {
		ct := mealTimes[candidate]
		if earliest < 0 || ct < earliest {
			earliest = ct
		}
		if ct > t && (next < 0 || ct < next) {
			next = ct
		}
	}
	if next < 0 {
		return earliest
	}
	return next
}

func wrapMinutes(m int) int {
	return ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
}

// windowContains treats Start > End as a window wrapping past midnight.
func windowContains(w domain.MealWindow, current int) bool {
	if w.Start <= w.End {
		return current >= w.Start && current <= w.End
	}
	return current >= w.Start || current <= w.End
}

func nextWindow(windows []domain.MealWindow, current int) (domain.MealWindow, int) {
	best := windows[0]
	bestWait := minutesPerDay
	for _, w := range windows {
		wait := w.Start - current
		if wait <= 0 {
			wait += minutesPerDay
		}
		if wait < bestWait {
			bestWait = wait
			best = w
		}
	}
	return best, bestWait
}

func formatWait(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
