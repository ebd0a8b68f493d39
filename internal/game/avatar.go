package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/ncruces/zenity"
)

type avatarResult struct {
	path string
	img  image.Image
	err  error
}

// LoadAvatar decodes a PNG, JPEG or GIF file
func LoadAvatar(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode avatar %s: %w", path, err)
	}
	return img, nil
}

// pickAvatar shows a native file dialog and sends the decoded image back.
// It runs on its own goroutine; Update drains the result.
func pickAvatar(out chan<- avatarResult) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose an avatar"),
		zenity.FileFilters{
			{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif"}, CaseFold: true},
		},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("avatar dialog: %v", err)
		}
		out <- avatarResult{err: err}
		return
	}
	img, err := LoadAvatar(path)
	out <- avatarResult{path: path, img: img, err: err}
}
