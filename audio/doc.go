// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming stages that turn a decoded file into
// the PCM a clip is built from.
//
// Every stage implements Source and wraps another Source, so a pipeline is
// built by nesting:
//
//	r, err := audio.NewResampler(src, 16000)
//	if err != nil {
//		return err
//	}
//	pcm, err := audio.NewPCMReader(audio.NewMonoMixer(r), binary.BigEndian)
//
// Samples travel between stages as interleaved float32 values in [-1, 1].
// ReadSamples returns io.EOF once a stage has nothing more to give; data may
// accompany the io.EOF.
//
// Decoders are looked up by format name through a Registry. The format
// packages under formats/ provide the implementations.
package audio
