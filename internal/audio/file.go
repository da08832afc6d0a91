package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// FilePlayer plays an audio file through the speaker and taps the played
// samples as its input.
type FilePlayer struct {
	source
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	log      *slog.Logger
}

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// OpenFile decodes path and starts playback.
func OpenFile(path string, log *slog.Logger) (*FilePlayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	p := &FilePlayer{
		source:   newSource(float64(format.SampleRate)),
		file:     f,
		streamer: streamer,
		log:      log,
	}
	p.ctrl = &beep.Ctrl{}
	speaker.Play(playbackChain(streamer, p.ctrl, p.tap, func() {
		log.Info("playback finished", "path", path)
	}))

	log.Info("playing file", "path", path, "sample_rate", int(format.SampleRate), "channels", format.NumChannels)
	return p, nil
}

// playbackChain wires streamer -> tap -> ctrl and silences the tap once the
// streamer is exhausted, so finished playback reads as silence.
func playbackChain(streamer beep.Streamer, ctrl *beep.Ctrl, tap *Tap, done func()) beep.Streamer {
	ctrl.Streamer = &streamTap{Source: streamer, tap: tap}
	return beep.Seq(ctrl, beep.Callback(func() {
		tap.Reset()
		done()
	}))
}

func (p *FilePlayer) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *FilePlayer) Close() error {
	speaker.Clear()
	err := p.streamer.Close()
	if ferr := p.file.Close(); err == nil {
		err = ferr
	}
	p.log.Info("file input closed")
	return err
}
