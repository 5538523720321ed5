package trackfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mgpai22/cueview/internal/caption"
)

// represents supported track file encodings
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// caption record as exported by Dotsub. v3 records carry end, v2 records
// carry duration instead.
type record struct {
	Start              int64                      `json:"start" yaml:"start"`
	End                *int64                     `json:"end" yaml:"end"`
	Duration           *int64                     `json:"duration" yaml:"duration"`
	Content            string                     `json:"content" yaml:"content"`
	InlineStyles       []caption.StyleSpan        `json:"inlineStyles" yaml:"inlineStyles"`
	HorizontalPosition caption.HorizontalPosition `json:"horizontalPosition" yaml:"horizontalPosition"`
	VerticalPosition   caption.VerticalPosition   `json:"verticalPosition" yaml:"verticalPosition"`
}

type language struct {
	Code      string `json:"code" yaml:"code"`
	Direction string `json:"direction" yaml:"direction"`
}

type document struct {
	Captions []record  `json:"captions" yaml:"captions"`
	Language *language `json:"language" yaml:"language"`
}

// decoded caption track
type Track struct {
	Cues []caption.Cue
	// nil when the file does not declare a language
	Language *caption.Language
}

// format based on file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported track file: %s", filepath.Ext(path))
	}
}

// Load reads a caption track from a JSON or YAML file.
func Load(path string) (*Track, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track file: %w", err)
	}

	track, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return track, nil
}

// Decode accepts either a bare list of captions or a document with
// "captions" and "language" keys.
func Decode(data []byte, format Format) (*Track, error) {
	var doc document

	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &doc.Captions); err != nil {
				return nil, err
			}
		} else if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			break
		}
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			if err := root.Decode(&doc.Captions); err != nil {
				return nil, err
			}
		} else if err := root.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return doc.track()
}

func (d document) track() (*Track, error) {
	track := &Track{Cues: make([]caption.Cue, 0, len(d.Captions))}

	for i, r := range d.Captions {
		cue, err := r.cue()
		if err != nil {
			return nil, fmt.Errorf("caption %d: %w", i, err)
		}
		track.Cues = append(track.Cues, cue)
	}

	if d.Language != nil {
		lang, err := d.Language.resolve()
		if err != nil {
			return nil, err
		}
		track.Language = &lang
	}

	return track, nil
}

func (r record) cue() (caption.Cue, error) {
	var end int64
	switch {
	case r.End != nil:
		end = *r.End
	case r.Duration != nil:
		end = r.Start + *r.Duration
	default:
		return caption.Cue{}, fmt.Errorf("missing end or duration")
	}

	return caption.Cue{
		Start:              r.Start,
		End:                end,
		Content:            r.Content,
		InlineStyles:       r.InlineStyles,
		HorizontalPosition: r.HorizontalPosition,
		VerticalPosition:   r.VerticalPosition,
	}, nil
}

// an explicit direction wins over the one derived from the code
func (l language) resolve() (caption.Language, error) {
	lang := caption.DefaultLanguage()
	if l.Code != "" {
		parsed, err := caption.ParseLanguage(l.Code)
		if err != nil {
			return caption.Language{}, err
		}
		lang = parsed
	}
	if l.Direction != "" {
		dir, err := caption.ParseLanguage(l.Direction)
		if err != nil {
			return caption.Language{}, err
		}
		lang.Direction = dir.Direction
	}
	return lang, nil
}
