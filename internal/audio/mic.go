package audio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

const framesPerBuffer = 512

// Mic captures the default input device.
type Mic struct {
	source
	stream *portaudio.Stream
	log    *slog.Logger
}

// OpenMic initialises PortAudio and starts capturing mono audio from the
// default input device.
func OpenMic(ctx context.Context, log *slog.Logger) (*Mic, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("default input device: %w", err)
	}
	if err := ctx.Err(); err != nil {
		portaudio.Terminate()
		return nil, err
	}

	m := &Mic{source: newSource(config.SampleRate), log: log}
	stream, err := portaudio.OpenDefaultStream(1, 0, config.SampleRate, framesPerBuffer, m.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}
	m.stream = stream
	log.Info("microphone started", "device", dev.Name, "sample_rate", config.SampleRate)
	return m, nil
}

func (m *Mic) process(in []float32) {
	m.tap.WriteFloat32(in)
}

// SetPaused is a no-op: the device keeps filling the ring so resuming shows
// live audio straight away.
func (m *Mic) SetPaused(bool) {}

func (m *Mic) Close() error {
	err := m.stream.Stop()
	if cerr := m.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	m.log.Info("microphone closed")
	return err
}
