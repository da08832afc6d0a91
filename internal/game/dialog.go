package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrNoFile is returned when the file chooser is dismissed.
var ErrNoFile = errors.New("no audio file selected")

// showError blocks until the user dismisses the dialog.
func showError(err error) {
	_ = zenity.Error(err.Error(),
		zenity.Title("Sound Orbit"),
		zenity.ErrorIcon,
	)
}

// chooseFile asks the user for an audio file.
func chooseFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrNoFile
	}
	return filename, err
}
