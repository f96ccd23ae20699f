package util

import (
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance is the relative tolerance used by NearlyEqual.
const Tolerance = 1e-8

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MapClamped remaps value from [inMin, inMax] to [outMin, outMax]. Values
// outside the input range are clamped to the nearest output bound rather
// than extrapolated.
func MapClamped(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return Lerp(outMin, outMax, 0.5)
	}
	t := mgl64.Clamp((value-inMin)/(inMax-inMin), 0, 1)
	return Lerp(outMin, outMax, t)
}

// NearlyEqual compares two floats with the default tolerance
func NearlyEqual(a, b float64) bool {
	return mgl64.FloatEqualThreshold(a, b, Tolerance)
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// TimeTrack reports how long a function took through logf.
// Usage: defer TimeTrack(time.Now(), "Generate", log.Debugf)
func TimeTrack(start time.Time, name string, logf func(format string, v ...interface{})) {
	logf("%s took %s", name, time.Since(start))
}
