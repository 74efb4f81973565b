package genome

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrDialogCanceled reports that the user dismissed a file dialog.
var ErrDialogCanceled = errors.New("dialog canceled")

// SaveDialog prompts for a destination path and writes the genome there.
func (g *Genome) SaveDialog() (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Genome"),
		zenity.Filename(g.Name+".json"),
		zenity.FileFilter{Name: "JSON", Patterns: []string{"*.json"}, CaseFold: true},
		zenity.ConfirmOverwrite(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrDialogCanceled
	}
	if err != nil {
		return "", err
	}
	return path, g.SaveToFile(path)
}

// LoadDialog prompts for a genome file and loads it.
func LoadDialog() (*Genome, string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Load Genome"),
		zenity.FileFilter{Name: "JSON", Patterns: []string{"*.json"}, CaseFold: true},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, "", ErrDialogCanceled
	}
	if err != nil {
		return nil, "", err
	}
	g, err := LoadFromFile(path)
	return g, path, err
}
