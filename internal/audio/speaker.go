package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Speaker plays effects on the default audio device through one mixer.
// The beep speaker is process-wide, so only one Speaker should be open.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. volume is in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues an effect on the mixer and returns immediately.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	stream := Stream(e, SampleRate, s.volume)
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

var (
	_ Player = (*Speaker)(nil)
	_ Player = Nop{}
)
