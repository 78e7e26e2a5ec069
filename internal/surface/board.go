package surface

// CardState is a copy of a card's regions and flipping marker.
type CardState struct {
	Text     [RegionCount]string
	Flipping bool
}

// Shown returns the text visible on the top and bottom halves. While flipping
// the top half already reveals the back face and the bottom half still shows
// the previous digit.
func (c CardState) Shown() (top, bottom string) {
	top = c.Text[FrontTop]
	if c.Flipping {
		top = c.Text[BackTop]
	}
	return top, c.Text[FrontBottom]
}

// Board is an in-memory Surface. It is not safe for concurrent use; the UI
// event loop owns it.
type Board struct {
	cards  map[string]*boardCard
	labels map[string]*boardLabel
}

type boardCard struct {
	state CardState
}

func (c *boardCard) SetText(region Region, text string) {
	if region < 0 || int(region) >= RegionCount {
		return
	}
	c.state.Text[region] = text
}

func (c *boardCard) SetFlipping(on bool) {
	c.state.Flipping = on
}

type boardLabel struct {
	text string
}

func (l *boardLabel) SetText(text string) {
	l.text = text
}

// NewBoard creates a board with the given card and label identifiers. Cards
// start with "0" in every region.
func NewBoard(cardIDs, labelIDs []string) *Board {
	b := &Board{
		cards:  make(map[string]*boardCard, len(cardIDs)),
		labels: make(map[string]*boardLabel, len(labelIDs)),
	}
	for _, id := range cardIDs {
		c := &boardCard{}
		for i := range c.state.Text {
			c.state.Text[i] = "0"
		}
		b.cards[id] = c
	}
	for _, id := range labelIDs {
		b.labels[id] = &boardLabel{}
	}
	return b
}

// Card implements Surface.
func (b *Board) Card(id string) (Card, bool) {
	c, ok := b.cards[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Label implements Surface.
func (b *Board) Label(id string) (Label, bool) {
	l, ok := b.labels[id]
	if !ok {
		return nil, false
	}
	return l, true
}

// CardState returns the current state of a card, or the zero state when the
// card does not exist.
func (b *Board) CardState(id string) CardState {
	if c, ok := b.cards[id]; ok {
		return c.state
	}
	return CardState{}
}

// LabelText returns the current text of a label.
func (b *Board) LabelText(id string) string {
	if l, ok := b.labels[id]; ok {
		return l.text
	}
	return ""
}
