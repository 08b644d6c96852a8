package estimation

import (
	"fmt"
	"math"

	"github.com/jonathan/project-estimator/internal/types"
)

// Calibration recommendation thresholds.
const (
	lowAccuracyThreshold   = 0.7
	biasMagnitudeThreshold = 0.2
	smallSampleThreshold   = 10
)

// noCalibrationDataMessage is the sentinel recommendation for an empty
// input set.
const noCalibrationDataMessage = "No historical data available for calibration"

// CalibrateEstimates compares estimated against actual hours across
// completed projects. Accuracy is 1 minus the mean absolute relative
// error, clamped to [0,1]. Bias is the mean signed relative error of
// the estimate, (estimated-actual)/actual: positive bias means the
// engine systematically estimates high, negative means actuals ran
// over.
func (e *Engine) CalibrateEstimates(actualProjects []types.ProjectData) types.CalibrationReport {
	if len(actualProjects) == 0 {
		return types.CalibrationReport{
			Accuracy:        0,
			Bias:            0,
			Recommendations: []string{noCalibrationDataMessage},
		}
	}

	var errSum, biasSum float64
	var n int
	for _, p := range actualProjects {
		if p.ActualHours <= 0 {
			continue
		}
		errSum += math.Abs(p.ActualHours-p.EstimatedHours) / p.ActualHours
		biasSum += (p.EstimatedHours - p.ActualHours) / p.ActualHours
		n++
	}
	if n == 0 {
		return types.CalibrationReport{
			Accuracy:        0,
			Bias:            0,
			SampleSize:      len(actualProjects),
			Recommendations: []string{noCalibrationDataMessage},
		}
	}

	accuracy := clamp(1-errSum/float64(n), 0, 1)
	bias := biasSum / float64(n)

	return types.CalibrationReport{
		Accuracy:        accuracy,
		Bias:            bias,
		SampleSize:      n,
		Recommendations: calibrationRecommendations(accuracy, bias, n),
	}
}

func calibrationRecommendations(accuracy, bias float64, samples int) []string {
	var recs []string

	if accuracy < lowAccuracyThreshold {
		recs = append(recs, fmt.Sprintf("Estimation accuracy is %.0f%%; review the complexity factor weights against recent projects.", accuracy*100))
	}
	if math.Abs(bias) > biasMagnitudeThreshold {
		if bias > 0 {
			recs = append(recs, "Estimates systematically exceed actuals; consider reducing the historical adjustment factor.")
		} else {
			recs = append(recs, "Actuals systematically exceed estimates; consider adding buffer to future estimates.")
		}
	}
	if samples < smallSampleThreshold {
		recs = append(recs, fmt.Sprintf("Only %d completed projects available; calibration confidence is limited below %d samples.", samples, smallSampleThreshold))
	}

	if len(recs) == 0 {
		recs = append(recs, "Estimation accuracy is within acceptable bounds; no adjustment needed.")
	}
	return recs
}
