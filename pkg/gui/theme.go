package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var (
	ErrUnknownColor = errors.New("theme: unknown color")
	ErrUnknownTheme = errors.New("theme: no theme found")
)

// GhostShade is how far a ghost cell is blended from its piece colour toward
// the background.
const GhostShade = 0.6

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name string

	Pieces [mino.PieceCount]tcell.Color
	Ghosts [mino.PieceCount]tcell.Color

	Background tcell.Color
	Border     tcell.Color
	Text       tcell.Color
	Label      tcell.Color
	Clearing   tcell.Color
	Banner     tcell.Color
}

// ThemeHex is the JSON form of a Theme. Piece colours are listed in catalog
// order: I O T S Z J L.
type ThemeHex struct {
	Name       string   `json:"name"`
	Pieces     []string `json:"pieces"`
	Background string   `json:"background"`
	Border     string   `json:"border"`
	Text       string   `json:"text"`
	Label      string   `json:"label"`
	Clearing   string   `json:"clearing"`
	Banner     string   `json:"banner"`
}

func parseColor(field string, hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %s %q", ErrUnknownColor, field, hex)
	}

	return c, nil
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fmtHex(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// Theme converts a ThemeHex to a Theme. Ghost colours are derived from the
// piece colours.
func (t ThemeHex) Theme() (Theme, error) {
	if len(t.Pieces) != mino.PieceCount {
		return Theme{}, fmt.Errorf("theme %s: want %d piece colors, got %d", t.Name, mino.PieceCount, len(t.Pieces))
	}

	theme := Theme{Name: t.Name}

	background, err := parseColor("background", t.Background)
	if err != nil {
		return Theme{}, err
	}
	theme.Background = tcellColor(background)

	for i, hex := range t.Pieces {
		c, err := parseColor(mino.PieceType(i).String(), hex)
		if err != nil {
			return Theme{}, err
		}

		theme.Pieces[i] = tcellColor(c)
		theme.Ghosts[i] = tcellColor(c.BlendLab(background, GhostShade))
	}

	for _, f := range []struct {
		name  string
		hex   string
		color *tcell.Color
	}{
		{"border", t.Border, &theme.Border},
		{"text", t.Text, &theme.Text},
		{"label", t.Label, &theme.Label},
		{"clearing", t.Clearing, &theme.Clearing},
		{"banner", t.Banner, &theme.Banner},
	} {
		c, err := parseColor(f.name, f.hex)
		if err != nil {
			return Theme{}, err
		}
		*f.color = tcellColor(c)
	}

	return theme, nil
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	pieces := make([]string, len(t.Pieces))
	for i, c := range t.Pieces {
		pieces[i] = fmtHex(c)
	}

	return ThemeHex{
		Name:       t.Name,
		Pieces:     pieces,
		Background: fmtHex(t.Background),
		Border:     fmtHex(t.Border),
		Text:       fmtHex(t.Text),
		Label:      fmtHex(t.Label),
		Clearing:   fmtHex(t.Clearing),
		Banner:     fmtHex(t.Banner),
	}
}

// ReadThemes decodes a JSON list of themes.
func ReadThemes(r io.Reader) ([]ThemeHex, error) {
	var themes []ThemeHex
	if err := json.NewDecoder(r).Decode(&themes); err != nil {
		return nil, fmt.Errorf("failed to decode themes: %w", err)
	}

	return themes, nil
}

// ImportTheme returns the theme named want from themes.
func ImportTheme(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}

	return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, want)
}

// LoadTheme reads the theme named want from the JSON file at path. An empty
// path or the name of the built-in theme returns ThemeBasic.
func LoadTheme(path string, want string) (Theme, error) {
	if path == "" && (want == "" || want == ThemeBasic.Name) {
		return ThemeBasic, nil
	} else if path == "" {
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, want)
	}

	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to open theme file: %w", err)
	}
	defer f.Close()

	themes, err := ReadThemes(f)
	if err != nil {
		return Theme{}, err
	}

	if want == "" && len(themes) > 0 {
		want = themes[0].Name
	}

	return ImportTheme(want, themes)
}

// ThemeBasic is the default theme
var ThemeBasic = mustTheme(ThemeHex{
	Name:       "basic",
	Pieces:     []string{"#00eeee", "#dddd00", "#c000cc", "#00e900", "#ee0000", "#2864ff", "#ff7308"},
	Background: "#000000",
	Border:     "#bbbbbb",
	Text:       "#ffffff",
	Label:      "#9e9e9e",
	Clearing:   "#ffffff",
	Banner:     "#ff5f5f",
})

func mustTheme(t ThemeHex) Theme {
	theme, err := t.Theme()
	if err != nil {
		panic(err)
	}

	return theme
}
