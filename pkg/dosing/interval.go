package dosing

import (
	"MediTrack-Backend/domain"
	"fmt"
	"math"
	"time"
)

type IntervalResult struct {
	CanTake        bool
	Detail         string
	NextDoseTime   *time.Time
	HoursRemaining int
}

// CheckDoseInterval enforces the minimum spacing between doses derived from
// the daily frequency (24h / frequency). A medication with no recorded dose
// is always permitted.
func CheckDoseInterval(lastTaken *time.Time, frequency int, nowLocal time.Time) (IntervalResult, error) {
	if frequency < 1 || frequency > 6 {
		return IntervalResult{}, domain.ErrInvalidFrequency
	}

	if lastTaken == nil {
		return IntervalResult{
			CanTake: true,
			Detail:  "no previous dose recorded",
		}, nil
	}

	intervalHours := 24.0 / float64(frequency)
	elapsedHours := nowLocal.Sub(*lastTaken).Hours()

	if elapsedHours >= intervalHours {
		return IntervalResult{
			CanTake: true,
			Detail:  "dose interval elapsed",
		}, nil
	}

	hoursRemaining := int(math.Ceil(intervalHours - elapsedHours))
	if hoursRemaining < 1 {
		hoursRemaining = 1
	}

	nextDose := lastTaken.Add(time.Duration(intervalHours * float64(time.Hour)))

	return IntervalResult{
		CanTake:        false,
		Detail:         fmt.Sprintf("too soon since last dose, next dose in %d hour(s)", hoursRemaining),
		NextDoseTime:   &nextDose,
		HoursRemaining: hoursRemaining,
	}, nil
}
