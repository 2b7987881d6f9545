// Turn mean bandwidths into fractions of the architecture's theoretical peak.
//
// The effective peak of an architecture is the socket multiplier times the peak listed for its
// peak key (see tables.SocketMultiplier).  Every architecture in the data must resolve to a peak.

package normalize

import (
	"errors"
	"fmt"

	"bwreport/aggregate"
	"bwreport/common"
	"bwreport/results"
	"bwreport/tables"
)

var ErrMissingPeak = errors.New("No peak bandwidth for architecture")

// Effective peak bandwidth for `arch`.

func EffectivePeak(arch string, peaks results.Peaks) (float64, error) {
	mul, key := tables.SocketMultiplier(arch)
	peak, found := peaks[key]
	if !found {
		if key != arch {
			return 0, fmt.Errorf("%w: %s (peak key %s)", ErrMissingPeak, arch, key)
		}
		return 0, fmt.Errorf("%w: %s", ErrMissingPeak, arch)
	}
	return float64(mul) * peak, nil
}

// Divide the bandwidth of every aggregate by its architecture's effective peak, in place.  On error
// nothing has been modified.

func Normalize(aggs []*aggregate.Aggregate, peaks results.Peaks) error {
	effective := make(map[string]float64)
	for _, arch := range aggregate.AggregateArches(aggs) {
		p, err := EffectivePeak(arch, peaks)
		if err != nil {
			return err
		}
		common.Log.Debugf("Peak for %s: %g", arch, p)
		effective[arch] = p
	}
	for _, a := range aggs {
		a.Bandwidth /= effective[a.Arch]
		if a.Bandwidth > 1 {
			common.Log.Warningf(
				"%s/%s/%s/%s exceeds peak: %.1f%%",
				a.Kernel, a.Model, a.Arch, a.Compiler, a.Bandwidth*100)
		}
	}
	return nil
}
