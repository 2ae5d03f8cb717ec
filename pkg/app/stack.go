package app

// Stack is a LIFO of screens. The top is the active screen.
type Stack struct {
	screens []Screen
}

// Push makes s the active screen
func (st *Stack) Push(s Screen) {
	st.screens = append(st.screens, s)
}

// Pop removes and returns the active screen, nil when empty
func (st *Stack) Pop() Screen {
	n := len(st.screens)
	if n == 0 {
		return nil
	}
	s := st.screens[n-1]
	st.screens[n-1] = nil
	st.screens = st.screens[:n-1]
	return s
}

// Top returns the active screen, nil when empty
func (st *Stack) Top() Screen {
	if len(st.screens) == 0 {
		return nil
	}
	return st.screens[len(st.screens)-1]
}

// Len returns the number of screens
func (st *Stack) Len() int {
	return len(st.screens)
}

// Empty reports whether no screen is left
func (st *Stack) Empty() bool {
	return len(st.screens) == 0
}

// Contains reports whether a screen of kind k is anywhere on the stack
func (st *Stack) Contains(k Kind) bool {
	for _, s := range st.screens {
		if s.Kind() == k {
			return true
		}
	}
	return false
}
