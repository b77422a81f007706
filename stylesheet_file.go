package trellis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownBackground is returned for a background type no factory
	// handles.
	ErrUnknownBackground = errors.New("trellis: unknown background type")
	// ErrBadColor is returned for a color that is not #AARRGGBB, #RRGGBB or
	// 0xAARRGGBB.
	ErrBadColor = errors.New("trellis: bad color")
	// ErrBadInsets is returned for an inset list that does not have 1, 2 or
	// 4 values.
	ErrBadInsets = errors.New("trellis: bad insets")
	// ErrNoImageSource is returned when an image background is parsed
	// without an ImageSource, or when the source resolves a name to nil.
	ErrNoImageSource = errors.New("trellis: no image source")
)

// ImageSource resolves image names used by image backgrounds in stylesheet
// files.
type ImageSource func(name string) (*ebiten.Image, error)

// sheetFile is the document shape shared by the YAML and TOML formats:
//
//	Button:
//	  default:
//	    background: {type: solid, color: "#FF336699", inset: [4, 2]}
//	    text-color: "#FFFFFFFF"
//	  selected:
//	    background: {type: beveled, color: "#FF224477", ul: "#FF000000", br: "#FFFFFFFF"}
type sheetFile map[string]classFile

type classFile struct {
	Default          *propsFile `yaml:"default" toml:"default"`
	Selected         *propsFile `yaml:"selected" toml:"selected"`
	Disabled         *propsFile `yaml:"disabled" toml:"disabled"`
	DisabledSelected *propsFile `yaml:"disabled-selected" toml:"disabled-selected"`
}

type propsFile struct {
	Background *backgroundFile `yaml:"background" toml:"background"`
	TextColor  string          `yaml:"text-color" toml:"text-color"`
	HAlign     string          `yaml:"halign" toml:"halign"`
	VAlign     string          `yaml:"valign" toml:"valign"`
}

type backgroundFile struct {
	Type      string           `yaml:"type" toml:"type"`
	Color     string           `yaml:"color" toml:"color"`
	UL        string           `yaml:"ul" toml:"ul"`
	BR        string           `yaml:"br" toml:"br"`
	Border    string           `yaml:"border" toml:"border"`
	Thickness float64          `yaml:"thickness" toml:"thickness"`
	Radius    float64          `yaml:"radius" toml:"radius"`
	Image     string           `yaml:"image" toml:"image"`
	Borders   []float64        `yaml:"borders" toml:"borders"`
	Inset     []float64        `yaml:"inset" toml:"inset"`
	Alpha     *float64         `yaml:"alpha" toml:"alpha"`
	Layers    []backgroundFile `yaml:"layers" toml:"layers"`
}

// ParseStylesheetYAML builds a stylesheet from a YAML document. images may be
// nil when the document has no image backgrounds.
func ParseStylesheetYAML(data []byte, images ImageSource) (*Stylesheet, error) {
	var doc sheetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trellis: parse yaml stylesheet: %w", err)
	}
	return doc.build(images)
}

// ParseStylesheetTOML builds a stylesheet from a TOML document. images may be
// nil when the document has no image backgrounds.
func ParseStylesheetTOML(data []byte, images ImageSource) (*Stylesheet, error) {
	var doc sheetFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trellis: parse toml stylesheet: %w", err)
	}
	return doc.build(images)
}

// LoadStylesheet reads a .yaml, .yml or .toml stylesheet file. Image names
// are resolved relative to the file's directory.
func LoadStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trellis: load stylesheet: %w", err)
	}
	dir := filepath.Dir(path)
	images := func(name string) (*ebiten.Image, error) {
		return LoadImageFile(filepath.Join(dir, name))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseStylesheetYAML(data, images)
	case ".toml":
		return ParseStylesheetTOML(data, images)
	}
	return nil, fmt.Errorf("trellis: load stylesheet %s: unsupported extension", path)
}

func (doc sheetFile) build(images ImageSource) (*Stylesheet, error) {
	// Sorted so the first reported error is deterministic.
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewStylesheetBuilder()
	for _, class := range names {
		cf := doc[class]
		modes := []struct {
			mode  Mode
			props *propsFile
		}{
			{ModeDefault, cf.Default},
			{ModeSelected, cf.Selected},
			{ModeDisabled, cf.Disabled},
			{ModeDisabledSelected, cf.DisabledSelected},
		}
		for _, m := range modes {
			if m.props == nil {
				continue
			}
			bindings, err := m.props.bindings(images)
			if err != nil {
				return nil, fmt.Errorf("trellis: stylesheet %s/%s: %w", class, m.mode, err)
			}
			b.AddMode(class, m.mode, bindings...)
		}
	}
	return b.Create(), nil
}

func (p *propsFile) bindings(images ImageSource) ([]Binding, error) {
	var out []Binding
	if p.Background != nil {
		bg, err := p.Background.build(images)
		if err != nil {
			return nil, err
		}
		out = append(out, BackgroundStyle.Is(bg))
	}
	if p.TextColor != "" {
		c, err := ParseColor(p.TextColor)
		if err != nil {
			return nil, err
		}
		out = append(out, TextColorStyle.Is(c))
	}
	if p.HAlign != "" {
		a, err := parseHAlign(p.HAlign)
		if err != nil {
			return nil, err
		}
		out = append(out, HAlignStyle.Is(a))
	}
	if p.VAlign != "" {
		a, err := parseVAlign(p.VAlign)
		if err != nil {
			return nil, err
		}
		out = append(out, VAlignStyle.Is(a))
	}
	return out, nil
}

func (f *backgroundFile) build(images ImageSource) (*Background, error) {
	bg, err := f.variant(images)
	if err != nil {
		return nil, err
	}
	if len(f.Inset) > 0 {
		ins, err := parseInsets(f.Inset)
		if err != nil {
			return nil, err
		}
		bg.SetInsets(ins)
	}
	if f.Alpha != nil {
		bg.SetAlpha(*f.Alpha)
	}
	return bg, nil
}

func (f *backgroundFile) variant(images ImageSource) (*Background, error) {
	colors := func(specs ...string) ([]uint32, error) {
		out := make([]uint32, len(specs))
		for i, s := range specs {
			c, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}

	switch f.Type {
	case "", "blank":
		return Blank(), nil
	case "solid":
		c, err := colors(f.Color)
		if err != nil {
			return nil, err
		}
		return Solid(c[0]), nil
	case "beveled":
		c, err := colors(f.Color, f.UL, f.BR)
		if err != nil {
			return nil, err
		}
		return Beveled(c[0], c[1], c[2]), nil
	case "bordered":
		c, err := colors(f.Color, f.Border)
		if err != nil {
			return nil, err
		}
		return Bordered(c[0], c[1], f.Thickness), nil
	case "roundrect":
		if f.Border != "" {
			c, err := colors(f.Color, f.Border)
			if err != nil {
				return nil, err
			}
			return RoundRectBordered(c[0], f.Radius, c[1], f.Thickness), nil
		}
		c, err := colors(f.Color)
		if err != nil {
			return nil, err
		}
		return RoundRect(c[0], f.Radius), nil
	case "composite":
		parts := make([]*Background, len(f.Layers))
		for i := range f.Layers {
			p, err := f.Layers[i].build(images)
			if err != nil {
				return nil, err
			}
			parts[i] = p
		}
		return Composite(parts...), nil
	case "image", "centered-image", "cropped-image", "tiled-image", "scale9":
		if images == nil {
			return nil, fmt.Errorf("%w for %s background %q", ErrNoImageSource, f.Type, f.Image)
		}
		img, err := images(f.Image)
		if err != nil {
			return nil, err
		}
		if img == nil {
			return nil, fmt.Errorf("%w: %s background %q resolved to no image", ErrNoImageSource, f.Type, f.Image)
		}
		switch f.Type {
		case "image":
			return Image(img), nil
		case "centered-image":
			return CenteredImage(img), nil
		case "cropped-image":
			return CroppedImage(img), nil
		case "tiled-image":
			return TiledImage(img), nil
		}
		if len(f.Borders) > 0 {
			ins, err := parseInsets(f.Borders)
			if err != nil {
				return nil, err
			}
			return Scale9Borders(img, ins), nil
		}
		return Scale9(img), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBackground, f.Type)
}

// ParseColor parses "#AARRGGBB", "#RRGGBB" (opaque) or "0xAARRGGBB" into a
// packed 0xAARRGGBB color.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	default:
		return 0, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return uint32(v), nil
}

// parseInsets accepts [all], [horizontal, vertical] or
// [top, right, bottom, left].
func parseInsets(v []float64) (Insets, error) {
	switch len(v) {
	case 1:
		return UniformInsets(v[0]), nil
	case 2:
		return SymmetricInsets(v[0], v[1]), nil
	case 4:
		return NewInsets(v[0], v[1], v[2], v[3]), nil
	}
	return Insets{}, fmt.Errorf("%w: %d values", ErrBadInsets, len(v))
}

func parseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(s) {
	case "left":
		return HAlignLeft, nil
	case "center":
		return HAlignCenter, nil
	case "right":
		return HAlignRight, nil
	}
	return 0, fmt.Errorf("trellis: bad halign %q", s)
}

func parseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "top":
		return VAlignTop, nil
	case "center":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return 0, fmt.Errorf("trellis: bad valign %q", s)
}
