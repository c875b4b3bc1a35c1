package listbox

// Option is one selectable entry: a visible label and an underlying value.
type Option struct {
	Label string
	Value string
}

// NewOption builds an Option whose label and value are both s.
func NewOption(s string) Option {
	return Option{Label: s, Value: s}
}

type Options struct {
	HistoryLimit int // default: 100; negative disables history
}

type item struct {
	opt      Option
	selected bool
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
