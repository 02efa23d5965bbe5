package hydraulics

const (
	secondsPerHour = 3600.0
	metersPerInch  = 2.54 / 100
)

func M3PerHourToM3PerSecond(q float64) float64 { return q / secondsPerHour }

func M3PerSecondToM3PerHour(q float64) float64 { return q * secondsPerHour }

func InchesToMeters(in float64) float64 { return in * metersPerInch }

// PercentToFraction converts an efficiency entered as 68 (%) into 0.68.
func PercentToFraction(p float64) float64 { return p / 100 }
