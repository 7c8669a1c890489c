package cli

import "strings"

// legacyFlags maps the single-dash RogueViz command-line options to
// persistent flags. A true value means the option takes an argument.
var legacyFlags = map[string]struct {
	flag  string
	value bool
}{
	"-grig-limit":    {"--limit", true},
	"-grig-nolines":  {"--no-lines", false},
	"-grig-nolabels": {"--no-labels", false},
	"-canvas":        {"--canvas", true},
}

// TranslateLegacyArgs rewrites legacy command-line options into their cobra
// equivalents. "-grigorchuk" selects the map and starts explore when no
// subcommand is named. Arguments after "--" are left alone.
func TranslateLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	explore := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg == "-grigorchuk" {
			explore = true
			continue
		}
		name, value, hasValue := strings.Cut(arg, "=")
		lf, ok := legacyFlags[name]
		if !ok {
			out = append(out, arg)
			continue
		}
		switch {
		case !lf.value:
			out = append(out, lf.flag)
		case hasValue:
			out = append(out, lf.flag+"="+value)
		case i+1 < len(args):
			out = append(out, lf.flag, args[i+1])
			i++
		default:
			out = append(out, lf.flag)
		}
	}
	if explore && !hasSubcommand(out) {
		out = append([]string{"explore"}, out...)
	}
	return out
}

// hasSubcommand reports whether args contain a positional argument. Values
// of the translated flags that take one are skipped.
func hasSubcommand(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return false
		}
		if !strings.HasPrefix(arg, "-") {
			return true
		}
		if (arg == "--limit" || arg == "--canvas" || arg == "--config") && i+1 < len(args) {
			i++
		}
	}
	return false
}
