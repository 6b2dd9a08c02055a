// Package asset resolves image identifiers to the ASCII-art images bundled
// with the binary.
package asset

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Image dimensions in cells. Art larger than this is clipped when drawn.
const (
	ImageWidth  = 12
	ImageHeight = 5
)

//go:embed art/*.txt
var artFS embed.FS

// Image is a displayable picture: rows of text.
type Image struct {
	ID          string
	Lines       []string
	Placeholder bool // True if the ID had no bundled art
}

// Width returns the widest row in cells.
func (img Image) Width() int {
	w := 0
	for _, line := range img.Lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// Store maps identifiers to images.
type Store struct {
	images map[string]Image
}

// Load reads every bundled image.
func Load() (*Store, error) {
	entries, err := artFS.ReadDir("art")
	if err != nil {
		return nil, err
	}

	s := &Store{images: make(map[string]Image, len(entries))}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".txt" {
			continue
		}
		data, err := artFS.ReadFile(path.Join("art", name))
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(name, ".txt")
		s.images[id] = Image{ID: id, Lines: splitArt(string(data))}
	}
	return s, nil
}

// MustLoad is Load for package-level initialisation; the art is embedded
// at build time so failure means a broken build.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic("asset: cannot read bundled art: " + err.Error())
	}
	return s
}

// Image returns the image for id. Unknown identifiers resolve to a
// placeholder rather than an error.
func (s *Store) Image(id string) Image {
	if img, ok := s.images[id]; ok {
		return img
	}
	return placeholder(id)
}

// Has reports whether id has bundled art.
func (s *Store) Has(id string) bool {
	_, ok := s.images[id]
	return ok
}

// IDs returns all bundled identifiers, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.images))
	for id := range s.images {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func splitArt(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) > ImageHeight {
		lines = lines[:ImageHeight]
	}
	return lines
}

func placeholder(id string) Image {
	label := runewidth.Truncate(id, ImageWidth-2, "")
	lines := make([]string, ImageHeight)
	for i := range lines {
		lines[i] = strings.Repeat("?", ImageWidth)
	}
	mid := ImageHeight / 2
	pad := (ImageWidth - runewidth.StringWidth(label)) / 2
	lines[mid] = strings.Repeat("?", pad) + label + strings.Repeat("?", ImageWidth-pad-runewidth.StringWidth(label))
	return Image{ID: id, Lines: lines, Placeholder: true}
}
