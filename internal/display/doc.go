// Package display provides the terminal color handling shared by the
// assetkit commands.
//
// Colors are named with short, space-separated attribute lists so they can be
// written in YAML configuration:
//
//	c, err := display.ParseColor("bold white")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(display.Paint(c, "README.md", true))
//
// Recognized names are the eight base colors (black, red, green, yellow, blue,
// magenta, cyan, white), their bright "hi" variants (hiblack ... hiwhite) and the
// modifiers bold, faint, italic and underline. Paint only emits ANSI codes when
// asked to, so callers decide color enablement once (TTY detection, --no-color)
// and tests can render plain text.
package display
