package widget

// Focus identifies the focused control.
type Focus uint8

const (
	FocusInput Focus = iota
	FocusAdd
	FocusRemove
	FocusList

	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusAdd:
		return "add"
	case FocusRemove:
		return "remove"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

func (f Focus) next() Focus { return (f + 1) % focusCount }

func (f Focus) prev() Focus { return (f + focusCount - 1) % focusCount }
