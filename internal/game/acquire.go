package game

import (
	"context"
	"log/slog"

	"github.com/iburimskiy/sound-orbit/internal/audio"
	"github.com/iburimskiy/sound-orbit/internal/session"
)

// ChooseFile makes FileAcquirer show a file dialog instead of opening a path.
const ChooseFile = "?"

// MicAcquirer opens the default microphone.
func MicAcquirer(log *slog.Logger) session.Acquirer {
	return session.AcquirerFunc(func(ctx context.Context) (session.Input, error) {
		m, err := audio.OpenMic(ctx, log)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}

// FileAcquirer plays path and listens to it instead of the microphone.
func FileAcquirer(path string, log *slog.Logger) session.Acquirer {
	return session.AcquirerFunc(func(ctx context.Context) (session.Input, error) {
		name := path
		if name == ChooseFile {
			chosen, err := chooseFile()
			if err != nil {
				return nil, err
			}
			name = chosen
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := audio.OpenFile(name, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
