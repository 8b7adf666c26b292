// Package audio plays short procedural cues for game events. Tones
// are synthesized once at startup and mixed through the speaker; a
// missing or failing audio device degrades to silence.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues owns the synthesized event sounds. The zero value is silent;
// call Init before use.
type Cues struct {
	fire      *beep.Buffer
	kill      *beep.Buffer
	explosion *beep.Buffer
	pickup    *beep.Buffer
	gameOver  *beep.Buffer
	enabled   bool
}

// Init opens the speaker and pre-renders every cue. Returns an error
// when no audio device is available; the caller may ignore it and
// keep a silent Cues.
func (c *Cues) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	c.fire = render(tone(880, 40*time.Millisecond, 0.25))
	c.kill = render(tone(1320, 60*time.Millisecond, 0.3))
	c.explosion = render(noise(180*time.Millisecond, 0.35))
	c.pickup = render(sweep(660, 1320, 90*time.Millisecond, 0.3))
	c.gameOver = render(sweep(440, 110, 400*time.Millisecond, 0.35))
	c.enabled = true
	return nil
}

func (c *Cues) play(buf *beep.Buffer) {
	if !c.enabled || buf == nil {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (c *Cues) Fire()      { c.play(c.fire) }
func (c *Cues) Kill()      { c.play(c.kill) }
func (c *Cues) Explosion() { c.play(c.explosion) }
func (c *Cues) Pickup()    { c.play(c.pickup) }
func (c *Cues) GameOver()  { c.play(c.gameOver) }

// render buffers a finite streamer so playback never re-synthesizes.
func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// tone is a sine burst with a linear release envelope.
func tone(freq float64, dur time.Duration, gain float64) beep.Streamer {
	return synth(dur, func(t, progress float64) float64 {
		return math.Sin(2*math.Pi*freq*t) * (1 - progress) * gain
	})
}

// sweep glides linearly between two frequencies.
func sweep(from, to float64, dur time.Duration, gain float64) beep.Streamer {
	return synth(dur, func(t, progress float64) float64 {
		freq := from + (to-from)*progress
		return math.Sin(2*math.Pi*freq*t) * (1 - progress) * gain
	})
}

// noise is a decaying white-noise burst, the blast sound.
func noise(dur time.Duration, gain float64) beep.Streamer {
	state := uint64(0x9e3779b97f4a7c15)
	return synth(dur, func(_, progress float64) float64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		sample := float64(state>>11)/(1<<53)*2 - 1
		return sample * (1 - progress) * (1 - progress) * gain
	})
}

func synth(dur time.Duration, f func(t, progress float64) float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sampleRate)
			v := f(t, float64(pos)/float64(total))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
