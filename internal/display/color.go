package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var attributeNames = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"hiblack":   color.FgHiBlack,
	"hired":     color.FgHiRed,
	"higreen":   color.FgHiGreen,
	"hiyellow":  color.FgHiYellow,
	"hiblue":    color.FgHiBlue,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"hiwhite":   color.FgHiWhite,
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
}

// ParseColor converts a color description such as "bold white" into a color.
func ParseColor(name string) (*color.Color, error) {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '+' || r == ','
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty color name")
	}

	attrs := make([]color.Attribute, 0, len(fields))
	for _, f := range fields {
		attr, ok := attributeNames[f]
		if !ok {
			return nil, fmt.Errorf("unknown color %q, must be one of: %s", f, strings.Join(ColorNames(), ", "))
		}
		attrs = append(attrs, attr)
	}
	return color.New(attrs...), nil
}

// ColorNames returns the recognized color and attribute names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(attributeNames))
	for n := range attributeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Paint renders s with c when enabled is true and returns s unchanged otherwise.
// The shared color is never mutated, so a Paint with enabled=false cannot leak
// into later colored output.
func Paint(c *color.Color, s string, enabled bool) string {
	if !enabled || c == nil {
		return s
	}
	painted := *c
	painted.EnableColor()
	return painted.Sprint(s)
}
