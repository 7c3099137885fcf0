package rubric

// Letter grade bands applied to a total-score percentage.
const (
	gradeABand = 90.0
	gradeBBand = 80.0
	gradeCBand = 70.0
	gradeDBand = 60.0
)

// LetterGrade maps a percentage to a coarse letter grade:
// A ≥ 90, B ≥ 80, C ≥ 70, D ≥ 60, F < 60.
func LetterGrade(pct float64) string {
	switch {
	case pct >= gradeABand:
		return "A"
	case pct >= gradeBBand:
		return "B"
	case pct >= gradeCBand:
		return "C"
	case pct >= gradeDBand:
		return "D"
	default:
		return "F"
	}
}

// FineLetterGrade maps a percentage to a signed letter grade. Each 10-point
// band splits at +4 and +8: 90-93 is A-, 94-97 is A, 98-100 is A+. F is
// never signed.
func FineLetterGrade(pct float64) string {
	letter := LetterGrade(pct)
	if letter == "F" {
		return letter
	}

	band := gradeDBand
	switch letter {
	case "A":
		band = gradeABand
	case "B":
		band = gradeBBand
	case "C":
		band = gradeCBand
	}

	switch offset := pct - band; {
	case offset < 4:
		return letter + "-"
	case offset < 8:
		return letter
	default:
		return letter + "+"
	}
}
