package analysis

import (
	"math"

	"github.com/speechcore/lpc10/internal/tables"
	"github.com/speechcore/lpc10/internal/util"
)

// AnalyzeSegments runs autocorrelation, Leroux-Guéguen reflection
// coefficient extraction, voicing detection, and energy/K quantisation
// for every segment over the processing-filtered buffer buf. segments'
// Pitch fields must already hold the pitch estimator's output; this may
// force Pitch to 0 when the voicing decision says unvoiced.
func AnalyzeSegments(buf []float32, segments []Segment, segmentSize int, unvoicedThresh, unvoicedRMSMultiply float32) {
	var coeff [11]float32

	for i := range segments {
		if segments[i].Count == 0 {
			// Trailing zero-length segment; leave Energy/Pitch/K at their
			// zero defaults rather than deriving coefficients from an
			// empty window.
			continue
		}

		for j := range coeff {
			coeff[j] = 0
		}

		for j := 0; j < 11; j++ {
			size := segmentSize - j
			var sum float32
			for k := 0; k < size; k++ {
				l := k + i*segmentSize
				if l+j >= len(buf) {
					continue
				}
				sum += buf[l] * buf[l+j]
			}
			coeff[j] = sum
		}

		k, d11 := lerouxGueguen(coeff)

		if k[1] > unvoicedThresh {
			segments[i].Pitch = 0
		}

		rms := float32(math.Sqrt(float64(d11/float32(segmentSize)))) * (1 << 18)
		if segments[i].Pitch == 0 {
			rms *= unvoicedRMSMultiply
		}
		segments[i].Energy = nearest(tables.Energy[:len(tables.Energy)-1], rms)

		segments[i].K[0] = nearest(tables.K1[:], k[1])
		segments[i].K[1] = nearest(tables.K2[:], k[2])
		segments[i].K[2] = nearest(tables.K3[:], k[3])
		segments[i].K[3] = nearest(tables.K4[:], k[4])
		segments[i].K[4] = nearest(tables.K5[:], k[5])
		segments[i].K[5] = nearest(tables.K6[:], k[6])
		segments[i].K[6] = nearest(tables.K7[:], k[7])
		segments[i].K[7] = nearest(tables.K8[:], k[8])
		segments[i].K[8] = nearest(tables.K9[:], k[9])
		segments[i].K[9] = nearest(tables.K10[:], k[10])
	}
}

// lerouxGueguen derives reflection coefficients k[1..10] from
// autocorrelations coeff[0..10] without explicitly solving the Toeplitz
// normal equations. Returns k (1-indexed, k[0] unused) and d[11], the
// final prediction-error term used for RMS energy.
func lerouxGueguen(coeff [11]float32) (k [11]float32, d11 float32) {
	var b [11]float32
	var d [12]float32

	k[1] = -coeff[1] / coeff[0]
	d[1] = coeff[1]
	d[2] = coeff[0] + k[1]*coeff[1]

	for j := 2; j <= 10; j++ {
		y := coeff[j]
		b[1] = y

		for kk := 1; kk < j; kk++ {
			b[kk+1] = d[kk] + k[kk]*y
			y += k[kk] * d[kk]
			d[kk] = b[kk]
		}

		k[j] = -y / d[j]
		d[j+1] = d[j] + k[j]*y
		d[j] = b[j]
	}

	return k, d[11]
}

// nearest returns the index into table minimising the absolute distance
// to value, breaking ties to the lowest index.
func nearest(table []float32, value float32) int {
	minDist := util.Abs(table[0] - value)
	minIdx := 0

	for i := 1; i < len(table); i++ {
		dist := util.Abs(table[i] - value)
		if dist < minDist {
			minDist = dist
			minIdx = i
		}
	}

	return minIdx
}
