// tone plays a sine wave through the default output device. The phase
// accumulator is a Q0x32, so it wraps around exactly once per cycle
// with no bookkeeping.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gen2brain/malgo"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/qfix"
)

var (
	freqFlag = flag.Float64("freq", 440, "frequency in `hz`")
	durFlag  = flag.Duration("dur", 2*time.Second, "how long to play for")
	gainFlag = flag.Float64("gain", 0.2, "output gain, 0 to 1")
)

const sampleRate = 44100

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tone: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = 1
	cfg.SampleRate = sampleRate

	var phase qfix.Q0x32
	step := qfix.FromFloat[qfix.S0x32](*freqFlag / sampleRate)
	gain := *gainFlag

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frames uint32) {
			for i := uint32(0); i < frames; i++ {
				s := math.Sin(2 * math.Pi * qfix.Float[float64](phase))
				binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(s*gain)))
				phase = qfix.Add(phase, step)
			}
		},
	})
	if err != nil {
		return err
	}
	defer device.Uninit()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := device.Start(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
		case <-time.After(*durFlag):
		}
		return device.Stop()
	})
	return g.Wait()
}
