package gsam

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/deque"
)

// WalkingState is a cursor into a GSAM: an (automaton, current node,
// nil-flag) triple that advances by feeding symbols one at a time. Once
// nil (fed a symbol with no valid transition), it stays nil until Reset,
// Goto, or an UndoLast of the step that made it nil.
//
// A WalkingState only ever holds ids into its automaton's arena, so many
// independent walking states may share one GSAM and advance concurrently
// without synchronization.
type WalkingState[S alphabet.Symbol] struct {
	automaton *GSAM[S]
	current   int32
	isNil     bool

	// history backs UndoLast: one entry per fed symbol, so a caller can
	// backtrack a walking state the way a trie cursor backs itself up
	// with Pop. Nil until EnableHistory is called, so a caller that never
	// enables history pays nothing for it; Reset and Goto set it back to nil.
	history *deque.Deque[int32]
}

// Reset returns the walking state to the root.
func (w *WalkingState[S]) Reset() {
	w.current = 0
	w.isNil = false
	w.history = nil
}

// Goto repositions the walking state at an arbitrary node, clearing the
// nil flag. Returns alphabet.ErrInvalidNode if node does not belong to
// this walking state's automaton.
func (w *WalkingState[S]) Goto(node int32) error {
	if !w.automaton.valid(node) {
		return alphabet.ErrInvalidNode
	}
	w.current = node
	w.isNil = false
	w.history = nil
	return nil
}

// FeedOne advances the walking state by one symbol. If already nil, it
// stays nil. Otherwise, if the current node has no c-transition, the
// state becomes nil and current resets to root.
func (w *WalkingState[S]) FeedOne(c S) {
	if w.isNil {
		return
	}
	next, ok := w.automaton.nodes[w.current].trans.Get(c)
	if !ok {
		if w.history != nil {
			_, _ = w.history.OfferLast(w.current)
		}
		w.current = 0
		w.isNil = true
		return
	}
	if w.history != nil {
		_, _ = w.history.OfferLast(w.current)
	}
	w.current = next
}

// Feed feeds each symbol of seq in turn, stopping early once nil.
func (w *WalkingState[S]) Feed(seq []S) {
	for _, c := range seq {
		if w.isNil {
			return
		}
		w.FeedOne(c)
	}
}

// IsAccepting reports whether the current node is non-nil and accepting.
func (w *WalkingState[S]) IsAccepting() bool {
	return !w.isNil && w.automaton.nodes[w.current].accept
}

// IsNil reports whether the walking state has fed a symbol with no valid
// transition since the last Reset or Goto.
func (w *WalkingState[S]) IsNil() bool {
	return w.isNil
}

// CurrentNode returns the id of the current node.
func (w *WalkingState[S]) CurrentNode() int32 {
	return w.current
}

// NodeLength returns the len attribute of the current node: the length
// of the longest string reaching it from root.
func (w *WalkingState[S]) NodeLength() int64 {
	return w.automaton.nodes[w.current].length
}

// GotoSuffixParent moves the walking state to its current node's suffix
// link target. Returns alphabet.ErrInvalidNode if the state is nil or
// already at the root (whose link is nil).
func (w *WalkingState[S]) GotoSuffixParent() error {
	if w.isNil {
		return alphabet.ErrInvalidNode
	}
	link := w.automaton.nodes[w.current].link
	if link == alphabet.NilNode {
		return alphabet.ErrInvalidNode
	}
	w.current = link
	return nil
}

// UndoLast reverts the most recent FeedOne/Feed step, including a step
// that drove the state nil. Steps are only recorded after EnableHistory;
// Reset and Goto discard the history and turn recording off again.
// Returns alphabet.ErrInvalidNode when history is not enabled or there is
// no recorded step left to undo.
func (w *WalkingState[S]) UndoLast() error {
	if w.history == nil || w.history.IsEmpty() {
		return alphabet.ErrInvalidNode
	}
	prev, err := w.history.PollLast()
	if err != nil {
		return alphabet.ErrInvalidNode
	}
	w.current = prev
	w.isNil = false
	return nil
}

// EnableHistory turns on UndoLast bookkeeping for this walking state.
// Cheap, but not free, so it is opt-in rather than always-on.
func (w *WalkingState[S]) EnableHistory() {
	if w.history == nil {
		w.history = deque.NewDeque[int32]()
	}
}
