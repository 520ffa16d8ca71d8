package timeline

import (
	"math"

	"github.com/lovedays/internal/catalog"
)

// MilestoneProgress describes where daysElapsed falls inside the milestone
// catalog. Next is nil once the largest threshold has been passed.
type MilestoneProgress struct {
	Reached          []catalog.Milestone `json:"reached"`
	Current          *catalog.Milestone  `json:"current,omitempty"`
	Next             *catalog.Milestone  `json:"next,omitempty"`
	ProgressFraction float64             `json:"progressFraction"`
	DaysRemaining    int                 `json:"daysRemaining"`
	ReachedCount     int                 `json:"reachedCount"`
	TotalCount       int                 `json:"totalCount"`
	ProgressPercent  int                 `json:"progressPercent"`
}

// TrackMilestones walks the ascending catalog and classifies every entry
// against daysElapsed. ProgressFraction toward the next milestone is clamped
// to [0,1] to guard float edge cases.
func TrackMilestones(daysElapsed int, milestones []catalog.Milestone) MilestoneProgress {
	progress := MilestoneProgress{
		Reached:    make([]catalog.Milestone, 0, len(milestones)),
		TotalCount: len(milestones),
	}

	for i := range milestones {
		m := milestones[i]
		switch {
		case m.Days <= daysElapsed:
			progress.Reached = append(progress.Reached, m)
			if m.Days == daysElapsed {
				progress.Current = &milestones[i]
			}
		case progress.Next == nil:
			progress.Next = &milestones[i]
		}
	}

	progress.ReachedCount = len(progress.Reached)
	if progress.TotalCount > 0 {
		progress.ProgressPercent = int(math.Round(100 * float64(progress.ReachedCount) / float64(progress.TotalCount)))
	}

	if progress.Next != nil {
		progress.DaysRemaining = progress.Next.Days - daysElapsed
		fraction := float64(daysElapsed) / float64(progress.Next.Days)
		if fraction < 0 {
			fraction = 0
		} else if fraction > 1 {
			fraction = 1
		}
		progress.ProgressFraction = fraction
	} else {
		progress.ProgressFraction = 1
	}

	return progress
}
