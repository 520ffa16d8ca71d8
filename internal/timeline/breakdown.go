package timeline

// avgDaysPerMonth is the average Gregorian month length used to estimate the
// days not covered by full months. The narrative breakdown is display-only and
// documented as approximate; it is not exact calendar accounting.
const avgDaysPerMonth = 30.44

// Breakdown is the non-overlapping decomposition shown on the home screen:
// "X năm, Y tháng, Z ngày" plus a live clock. The clock fields are exact and
// always satisfy 0 <= DisplayHours < 24, 0 <= DisplayMinutes < 60 and
// 0 <= DisplaySeconds < 60.
type Breakdown struct {
	Years           int `json:"years"`
	RemainingMonths int `json:"remainingMonths"`
	RemainingDays   int `json:"remainingDays"`
	DisplayHours    int `json:"displayHours"`
	DisplayMinutes  int `json:"displayMinutes"`
	DisplaySeconds  int `json:"displaySeconds"`
}

// FormatBreakdown derives the display decomposition from raw elapsed units.
func FormatBreakdown(e Elapsed) Breakdown {
	remainingDays := e.Days - int(float64(e.Months)*avgDaysPerMonth)
	if remainingDays < 0 {
		remainingDays = 0
	}

	// Hours is exact duration while Days is calendar days, so a DST
	// transition can push the difference outside a clock day.
	hours := e.Hours - e.Days*24
	if hours < 0 {
		hours = 0
	} else if hours > 23 {
		hours = 23
	}

	return Breakdown{
		Years:           e.Years,
		RemainingMonths: e.Months - e.Years*12,
		RemainingDays:   remainingDays,
		DisplayHours:    hours,
		DisplayMinutes:  e.Minutes - e.Hours*60,
		DisplaySeconds:  e.Seconds % 60,
	}
}
