// Package terms holds the Terms & Conditions flashcards shown on the
// terms page, one card at a time.
package terms

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// raw HTML inside the markdown is escaped (no WithUnsafe)
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type Card struct {
	Name string
	Body template.HTML
}

type Deck struct {
	cards []Card
}

// Load renders every *.md file in dir of fsys, ordered by file name.
func Load(fsys fs.FS, dir string) (*Deck, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("terms: no cards found")
	}
	sort.Strings(files)

	d := &Deck{}
	for _, f := range files {
		src, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read card %s: %w", f, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render card %s: %w", f, err)
		}
		d.cards = append(d.cards, Card{
			Name: strings.TrimSuffix(path.Base(f), ".md"),
			Body: template.HTML(buf.String()),
		})
	}
	return d, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// View is one position in the deck, ready for the template.
type View struct {
	Card    Card
	Index   int // zero-based
	Step    string
	HasPrev bool
	HasNext bool
	Prev    int // one-based, for links
	Next    int
}

// At returns the card at zero-based index i, clamped to the deck.
func (d *Deck) At(i int) View {
	if i < 0 {
		i = 0
	}
	if i > len(d.cards)-1 {
		i = len(d.cards) - 1
	}
	return View{
		Card:    d.cards[i],
		Index:   i,
		Step:    fmt.Sprintf("%d / %d", i+1, len(d.cards)),
		HasPrev: i > 0,
		HasNext: i < len(d.cards)-1,
		Prev:    i,
		Next:    i + 2,
	}
}
