package problems

import (
	"fmt"
	"math/rand/v2"
)

var accessSizesBits = []int{8, 16, 32, 64, 128, 256}

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

// between returns a uniformly random int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// Bytes2Bits asks for a byte-to-bit unit conversion.
type Bytes2Bits struct{}

func (Bytes2Bits) Kind() string { return "bytes2bits" }

func (g Bytes2Bits) Generate(rng *rand.Rand) Question {
	n := between(rng, 0, 10)
	answer := n * 8

	options, correct := NumericOptions(rng, float64(answer))
	text := fmt.Sprintf("# Bit to byte\n\nConvert %d bytes to bits.", n)
	explanation := fmt.Sprintf(`## Solution Explanation

**Given:**
- Input: %d bytes

**Step 1: Convert bytes to bits**
Since 1 byte = 8 bits:
%d bytes × 8 bits/byte = %d bits

**Answer:** %d bits`, n, n, answer, answer)

	return Question{
		Kind:        g.Kind(),
		Text:        text,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
	}
}

// RAMBandwidth asks for the peak bandwidth of a DDR bus.
type RAMBandwidth struct{}

// ddrDataRate is the transfers per clock of double data rate memory.
const ddrDataRate = 2

func (RAMBandwidth) Kind() string { return "ram_bandwidth" }

func (g RAMBandwidth) Generate(rng *rand.Rand) Question {
	bits := pick(rng, accessSizesBits)
	clockGHz := pick(rng, []float64{0.25, 0.5, 1})
	widthBytes := float64(bits) / 8
	answer := widthBytes * clockGHz * ddrDataRate

	options, correct := NumericOptions(rng, answer)
	text := fmt.Sprintf("# Ram bandwidth\n\nCalculate the bandwidth in GB/s for a %d-bit DDR bus with clock frequency %s GHz:",
		bits, formatNumber(clockGHz))
	explanation := fmt.Sprintf(`## Solution Explanation

**Given:**
- Data width: %d bits
- Clock frequency: %s GHz
- Data rate: %dx (Double Data Rate)

**Step 1: Convert bits to bytes**
Data width in bytes = %d bits ÷ 8 = %s bytes

**Step 2: Calculate bandwidth**
Bandwidth = %s bytes × %s GHz × %d = %s GB/s

**Answer:** %s GB/s`,
		bits, formatNumber(clockGHz), ddrDataRate,
		bits, formatNumber(widthBytes),
		formatNumber(widthBytes), formatNumber(clockGHz), ddrDataRate, formatNumber(answer),
		formatNumber(answer))

	return Question{
		Kind:        g.Kind(),
		Text:        text,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
	}
}

// ArithmeticIntensity asks for the FLOP-per-byte ratio of a kernel.
type ArithmeticIntensity struct{}

func (ArithmeticIntensity) Kind() string { return "arithmetic_intensity" }

func (g ArithmeticIntensity) Generate(rng *rand.Rand) Question {
	flops := between(rng, 5, 30)
	accesses := between(rng, 5, 30)
	sizeBits := pick(rng, accessSizesBits)
	bytesPerThread := float64(sizeBits) / 8 * float64(accesses)
	answer := round2(float64(flops) / bytesPerThread)

	options, correct := NumericOptions(rng, answer)
	text := fmt.Sprintf("# Arithmetic intensity\n\nCalculate arithmetic intensity for a kernel with %d flops per thread, "+
		"%d memory accesses per thread and access size of %d bits. Round to 2dp:", flops, accesses, sizeBits)
	explanation := fmt.Sprintf(`## Solution Explanation

**Given:**
- FLOPS per thread: %d
- Memory accesses per thread: %d
- Memory access size: %d bits

**Step 1: Total bytes accessed per thread**
%d bits ÷ 8 × %d accesses = %s bytes

**Step 2: Arithmetic intensity**
%d ÷ %s = %s

**Answer:** %s FLOPS/byte`,
		flops, accesses, sizeBits,
		sizeBits, accesses, formatNumber(bytesPerThread),
		flops, formatNumber(bytesPerThread), formatNumber(answer),
		formatNumber(answer))

	return Question{
		Kind:        g.Kind(),
		Text:        text,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
	}
}

// Roofline asks whether a kernel is memory bound under the roofline model.
type Roofline struct{}

func (Roofline) Kind() string { return "roofline" }

func (g Roofline) Generate(rng *rand.Rand) Question {
	peakGFLOPs := between(rng, 2, 5) * 100
	peakBandwidth := between(rng, 2, 5) * 100
	flops := between(rng, 5, 10)
	accesses := between(rng, 5, 10)
	sizeBits := pick(rng, accessSizesBits)

	bytesPerThread := float64(sizeBits) / 8 * float64(accesses)
	intensity := float64(flops) / bytesPerThread
	attainable := intensity * float64(peakBandwidth)
	memoryBound := attainable < float64(peakGFLOPs)

	answer := "False"
	verdict := "compute bound"
	if memoryBound {
		answer = "True"
		verdict = "memory bound"
	}

	options, correct := ChoiceOptions(rng, []string{"True", "False"}, answer)
	text := fmt.Sprintf(`# GPU roofline model

Determine (True/False) if kernel is memory bound:

- Peak throughput in GFLOPs = %d
- Peak bandwidth = %d
- Flops per thread = %d
- memory access per thread = %d
- memory access size = %d`, peakGFLOPs, peakBandwidth, flops, accesses, sizeBits)
	explanation := fmt.Sprintf(`## Solution Explanation

**Step 1: Arithmetic intensity**
%d ÷ (%d bits ÷ 8 × %d) = %s FLOPS/byte

**Step 2: Bandwidth-limited throughput**
%s × %d GB/s = %s GFLOPs

**Step 3: Compare with peak**
%s GFLOPs vs peak %d GFLOPs, so the kernel is %s.

**Answer:** %s`,
		flops, sizeBits, accesses, formatNumber(round2(intensity)),
		formatNumber(round2(intensity)), peakBandwidth, formatNumber(round2(attainable)),
		formatNumber(round2(attainable)), peakGFLOPs, verdict,
		answer)

	return Question{
		Kind:        g.Kind(),
		Text:        text,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
	}
}
