package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	SectionColor ColorAttr = iota
	FieldColor
	ValueColor
	CommentColor
	BracketColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			SectionColor: color.RGB(128, 168, 196).SprintfFunc(),
			FieldColor:   color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:   color.RGB(128, 216, 236).SprintfFunc(),
			CommentColor: color.BlueString,
			BracketColor: color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}
