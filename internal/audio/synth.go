// Package audio sonifies the year on display as a quiet ambient pad: strong
// radiation years open the filter, lean years close it down. The synth is
// optional; any device failure leaves it inactive and the visualization
// runs silent.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// chord is a Gm7 add9 stack. Mellow intervals wear well over long sessions.
var chord = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

// Synth renders the pad. Synthesis state is touched only by the audio
// callback; the render loop just posts intensity targets through a mutex.
type Synth struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	target float64

	smooth    float64
	time      float64
	filter    [2]float64
	delay     [2][]float64
	delayHead int

	active bool
}

// NewSynth returns a silent synth; call Start to open the device.
func NewSynth() *Synth {
	// 0.6 second delay line for a larger space.
	delayLen := int(float64(SampleRate) * 0.6)
	return &Synth{
		delay: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Start opens the default output device, stereo at 44.1kHz. On failure the
// synth stays inactive; callers keep rendering without sound.
func (s *Synth) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start stream: %w", err)
	}
	s.stream = stream
	s.active = true
	return nil
}

// Stop tears the stream down. Safe to call after a failed Start.
func (s *Synth) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	if s.active {
		portaudio.Terminate()
	}
	s.active = false
}

// Active reports whether sound is running.
func (s *Synth) Active() bool { return s.active }

// SetIntensity posts the normalized total of the year on display, clamped
// to [0, 1]. Smoothing happens in the callback, so per-frame calls are
// cheap.
func (s *Synth) SetIntensity(norm float64) {
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	s.mu.Lock()
	s.target = norm
	s.mu.Unlock()
}

// triangle is a smooth, flute-like oscillator.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low pass.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (s *Synth) process(out [][]float32) {
	s.mu.Lock()
	target := s.target
	s.mu.Unlock()

	// Slow morph keeps year switches from clicking.
	s.smooth = s.smooth*0.995 + target*0.005

	// Intensity opens the filter: 300Hz floor up to 1200Hz.
	cutoff := 300.0 + s.smooth*900.0
	dt := 1.0 / float64(SampleRate)
	const vol = 0.252

	for i := 0; i < len(out[0]); i++ {
		sampleL, sampleR := 0.0, 0.0
		for j, f := range chord {
			// Slight detune widens the stereo image.
			oscL := triangle(s.time * (f * 0.999))
			oscR := triangle(s.time * (f * 1.001))

			g := 1.0 / float64(len(chord))
			lfo := math.Sin(s.time*0.2 + float64(j))

			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, s.filter[0] = lpf(sampleL, cutoff, dt, s.filter[0])
		outR, s.filter[1] = lpf(sampleR, cutoff, dt, s.filter[1])

		delayL := s.delay[0][s.delayHead]
		delayR := s.delay[1][s.delayHead]

		// Ping pong: each side hears a little of the other's tail.
		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		s.delay[0][s.delayHead] = mixL * 0.7
		s.delay[1][s.delayHead] = mixR * 0.7
		s.delayHead = (s.delayHead + 1) % len(s.delay[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		s.time += dt
	}
}
