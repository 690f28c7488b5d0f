// SPDX-License-Identifier: EPL-2.0

package spectro

import (
	"fmt"
	"io"

	"github.com/ik5/spectro/audio"
	"github.com/ik5/spectro/utils"
)

// ResampleToMono16 resamples src to targetRate, mixes it to mono and
// collects the whole stream as 16-bit samples. bufferSize is the number of
// samples pulled per read. It returns the samples and the output rate.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	resampled, err := audio.NewResampler(src, targetRate)
	if err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}
	mono := audio.NewMonoMixer(resampled)

	if bufferSize <= 0 {
		bufferSize = mono.BufSize()
	}
	buf := make([]float32, bufferSize)
	pcm16 := make([]int16, 0, targetRate)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
