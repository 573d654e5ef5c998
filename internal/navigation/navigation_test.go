package navigation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkit/internal/component"
	"listkit/internal/domain"
	"listkit/internal/eventbus"
	"listkit/internal/items"
	"listkit/internal/navigation"
	"listkit/internal/selection"
	"listkit/internal/state"
	"listkit/internal/trait"
)

func newNavList(texts []string, orientation domain.Orientation, extra ...trait.Trait) *component.Component {
	traits := append([]trait.Trait{items.New(), selection.New(), navigation.NewDirectional()}, extra...)
	return component.New(traits,
		component.WithContent(domain.ContentFromTexts(texts...)),
		component.WithOrientation(orientation),
	)
}

func TestGoRespectsOrientation(t *testing.T) {
	c := newNavList([]string{"a", "b", "c"}, domain.OrientationVertical)

	assert.False(t, c.Go(domain.DirectionRight))
	assert.Equal(t, -1, c.SelectedIndex())

	assert.True(t, c.Go(domain.DirectionDown))
	assert.Equal(t, 0, c.SelectedIndex())

	c.SetOrientation(domain.OrientationHorizontal)
	assert.False(t, c.Go(domain.DirectionDown))
	assert.True(t, c.Go(domain.DirectionRight))
	assert.Equal(t, 1, c.SelectedIndex())

	c.SetOrientation(domain.OrientationBoth)
	assert.True(t, c.Go(domain.DirectionDown))
	assert.True(t, c.Go(domain.DirectionLeft))
	assert.Equal(t, 1, c.SelectedIndex())
}

func TestHomeAndEndIgnoreOrientation(t *testing.T) {
	c := newNavList([]string{"a", "b", "c"}, domain.OrientationHorizontal)

	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyEnd)))
	assert.Equal(t, 2, c.SelectedIndex())
	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyHome)))
	assert.Equal(t, 0, c.SelectedIndex())
	assert.False(t, c.KeyDown(domain.NamedKey(domain.KeyHome)), "already at the start")
}

func TestModifiedArrowsJumpToEnds(t *testing.T) {
	vertical := newNavList([]string{"a", "b", "c"}, domain.OrientationVertical)
	assert.True(t, vertical.KeyDown(domain.Key{Name: domain.KeyDown, Alt: true}))
	assert.Equal(t, 2, vertical.SelectedIndex())
	assert.True(t, vertical.KeyDown(domain.Key{Name: domain.KeyUp, Alt: true}))
	assert.Equal(t, 0, vertical.SelectedIndex())

	horizontal := newNavList([]string{"a", "b", "c"}, domain.OrientationHorizontal)
	assert.True(t, horizontal.KeyDown(domain.Key{Name: domain.KeyRight, Meta: true}))
	assert.Equal(t, 2, horizontal.SelectedIndex())
	assert.True(t, horizontal.KeyDown(domain.Key{Name: domain.KeyLeft, Meta: true}))
	assert.Equal(t, 0, horizontal.SelectedIndex())
}

func TestArrowKeysNotifyListeners(t *testing.T) {
	c := newNavList([]string{"a", "b"}, domain.OrientationVertical)
	var got []int
	c.Subscribe(eventbus.EventSelectedIndexChanged, func(e eventbus.DomainEvent) {
		got = append(got, e.(eventbus.SelectedIndexChangedEvent).SelectedIndex)
	})

	c.KeyDown(domain.NamedKey(domain.KeyDown))
	c.KeyDown(domain.NamedKey(domain.KeyDown))
	c.SelectFirst()

	assert.Equal(t, []int{0, 1}, got)
	assert.False(t, c.RaisingChangeEvents())
}

// rows lays items out top to bottom with a fixed height and scrollable offset
type rows struct {
	height   float64
	padding  float64
	viewport float64
	offset   float64
	count    int
}

func (r *rows) ScrollOffset(trait.Axis) float64   { return r.offset }
func (r *rows) ViewportExtent(trait.Axis) float64 { return r.viewport }

func (r *rows) ItemBounds(index int, _ trait.Axis) (trait.Bounds, bool) {
	if index < 0 || index >= r.count {
		return trait.Bounds{}, false
	}
	return trait.Bounds{
		Start:        float64(index) * r.height,
		Size:         r.height,
		PaddingStart: r.padding,
		PaddingEnd:   r.padding,
	}, true
}

func TestPageDownSelectsEdgeThenNextPage(t *testing.T) {
	geometry := &rows{height: 10, viewport: 15, count: 3}
	c := newNavList([]string{"Zero", "One", "Two"}, domain.OrientationVertical, navigation.NewPaged(geometry))

	assert.True(t, c.PageDown())
	assert.Equal(t, 1, c.SelectedIndex(), "item cut by the bottom edge")

	// The host scrolls the selected item into view
	geometry.offset = 5

	assert.True(t, c.PageDown())
	assert.Equal(t, 2, c.SelectedIndex())

	geometry.offset = 15
	assert.False(t, c.PageDown(), "already at the last item")

	// Unequal rows: the page after the edge item lies past the end
	sized := &sizedRows{sizes: []float64{10, 30, 5, 5}, viewport: 20, offset: 25}
	c = newNavList([]string{"a", "b", "c", "d"}, domain.OrientationVertical, navigation.NewPaged(sized))
	c.SetSelectedIndex(2)

	assert.True(t, c.PageDown())
	assert.Equal(t, 3, c.SelectedIndex(), "falls back to the last item")

	sized.offset = 30
	assert.False(t, c.PageDown())
	assert.Equal(t, 3, c.SelectedIndex())
}

// sizedRows lays items out top to bottom with individual heights
type sizedRows struct {
	sizes    []float64
	viewport float64
	offset   float64
}

func (r *sizedRows) ScrollOffset(trait.Axis) float64   { return r.offset }
func (r *sizedRows) ViewportExtent(trait.Axis) float64 { return r.viewport }

func (r *sizedRows) ItemBounds(index int, _ trait.Axis) (trait.Bounds, bool) {
	if index < 0 || index >= len(r.sizes) {
		return trait.Bounds{}, false
	}
	start := 0.0
	for _, size := range r.sizes[:index] {
		start += size
	}
	return trait.Bounds{Start: start, Size: r.sizes[index]}, true
}

func TestPageDownWithoutScrolling(t *testing.T) {
	geometry := &rows{height: 10, viewport: 15, count: 3}
	c := newNavList([]string{"Zero", "One", "Two"}, domain.OrientationVertical, navigation.NewPaged(geometry))

	c.PageDown()
	c.PageDown()

	assert.Equal(t, 2, c.SelectedIndex())
}

func TestPageUpSelectsLeadingEdge(t *testing.T) {
	geometry := &rows{height: 10, viewport: 25, count: 6, offset: 30}
	c := newNavList([]string{"a", "b", "c", "d", "e", "f"}, domain.OrientationVertical, navigation.NewPaged(geometry))
	c.SetSelectedIndex(5)

	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyPageUp)))
	assert.Equal(t, 3, c.SelectedIndex())

	assert.True(t, c.PageUp())
	assert.Equal(t, 0, c.SelectedIndex())
}

func TestPagingSkipsPadding(t *testing.T) {
	geometry := &rows{height: 10, padding: 3, viewport: 21, count: 4}
	c := newNavList([]string{"a", "b", "c", "d"}, domain.OrientationVertical, navigation.NewPaged(geometry))

	// The edge at 21 only reaches the top padding of item 2
	assert.True(t, c.PageDown())
	assert.Equal(t, 1, c.SelectedIndex())
}

func TestPagingWithoutGeometryWarns(t *testing.T) {
	c := newNavList([]string{"a"}, domain.OrientationVertical, navigation.NewPaged(nil))

	assert.False(t, c.PageDown())
	assert.Equal(t, -1, c.SelectedIndex())
}

func newTypingList(t *testing.T, texts ...string) (*component.Component, *state.Queue, *state.ManualClock) {
	t.Helper()
	clock := state.NewManualClock(time.Unix(1000, 0))
	q := state.NewQueueWithClock(clock.Now)
	c := component.New(
		[]trait.Trait{items.New(), selection.New(), navigation.NewDirectional(), navigation.NewPrefix()},
		component.WithContent(domain.ContentFromTexts(texts...)),
		component.WithScheduler(q),
	)
	return c, q, clock
}

func TestTypingSelectsByPrefix(t *testing.T) {
	c, _, _ := newTypingList(t, "Apple", "Apricot", "Banana", "Blackberry")

	assert.False(t, c.KeyDown(domain.RuneKey('b')), "characters are left for the host")
	assert.Equal(t, 2, c.SelectedIndex())
	assert.Equal(t, "b", c.State().TypedPrefix)

	c.KeyDown(domain.RuneKey('L'))
	assert.Equal(t, 3, c.SelectedIndex())
	assert.Equal(t, "bl", c.State().TypedPrefix)

	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyBackspace)))
	assert.Equal(t, 2, c.SelectedIndex())
	assert.Equal(t, "b", c.State().TypedPrefix)
}

func TestUnmatchedPrefixKeepsSelection(t *testing.T) {
	c, _, _ := newTypingList(t, "Apple", "Banana")

	c.KeyDown(domain.RuneKey('b'))
	c.KeyDown(domain.RuneKey('x'))

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, "bx", c.State().TypedPrefix)
}

func TestPrefixClearsAfterTimeout(t *testing.T) {
	c, q, clock := newTypingList(t, "Apple", "Apricot", "Banana")

	c.KeyDown(domain.RuneKey('a'))
	q.RunDue(clock.Advance(navigation.DefaultPrefixTimeout / 2))
	c.KeyDown(domain.RuneKey('p'))
	q.RunDue(clock.Advance(navigation.DefaultPrefixTimeout / 2))
	assert.Equal(t, "ap", c.State().TypedPrefix, "each keystroke restarts the timer")

	q.RunDue(clock.Advance(navigation.DefaultPrefixTimeout))
	assert.Empty(t, c.State().TypedPrefix)
	assert.Equal(t, 0, c.SelectedIndex(), "the selection outlives the buffer")

	c.KeyDown(domain.RuneKey('b'))
	assert.Equal(t, 2, c.SelectedIndex())
}

func TestBackspaceToEmptyStopsTimer(t *testing.T) {
	c, q, _ := newTypingList(t, "Apple", "Banana")

	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyBackspace)))
	assert.Empty(t, c.State().TypedPrefix)
	_, pending := q.NextDeadline()
	assert.False(t, pending, "nothing to clear on an empty buffer")

	c.KeyDown(domain.RuneKey('b'))
	_, pending = q.NextDeadline()
	require.True(t, pending)

	assert.True(t, c.KeyDown(domain.NamedKey(domain.KeyBackspace)))
	assert.Empty(t, c.State().TypedPrefix)
	assert.Equal(t, 1, c.SelectedIndex())
	_, pending = q.NextDeadline()
	assert.False(t, pending, "the reset timer is cancelled with the buffer")
}

func TestPrefixClearsOnOtherSelectionChange(t *testing.T) {
	c, _, _ := newTypingList(t, "Apple", "Apricot", "Banana")

	c.KeyDown(domain.RuneKey('b'))
	require.Equal(t, "b", c.State().TypedPrefix)

	c.KeyDown(domain.NamedKey(domain.KeyUp))
	assert.Equal(t, 1, c.SelectedIndex())
	assert.Empty(t, c.State().TypedPrefix)
}

func TestPrefixClearsOnContentChange(t *testing.T) {
	c, q, clock := newTypingList(t, "Apple", "Banana")
	var prefixes []string
	c.Subscribe(eventbus.EventTypedPrefixChanged, func(e eventbus.DomainEvent) {
		prefixes = append(prefixes, e.(eventbus.TypedPrefixChangedEvent).Prefix)
	})

	c.KeyDown(domain.RuneKey('b'))
	c.SetContent(domain.ContentFromTexts("Cherry", "Banana"))
	assert.Empty(t, c.State().TypedPrefix)

	_, pending := q.NextDeadline()
	assert.False(t, pending, "the reset timer is cancelled")
	q.RunDue(clock.Advance(time.Hour))

	c.KeyDown(domain.RuneKey('c'))
	assert.Equal(t, 0, c.SelectedIndex(), "new items are matched")
	assert.Equal(t, []string{"b", "c"}, prefixes)
}

func TestSelectItemWithTextPrefix(t *testing.T) {
	c, _, _ := newTypingList(t, "Apple", "Apricot", "Banana")

	assert.True(t, c.SelectItemWithTextPrefix("APR"))
	assert.Equal(t, 1, c.SelectedIndex())
	assert.False(t, c.SelectItemWithTextPrefix("apr"), "already selected")
	assert.False(t, c.SelectItemWithTextPrefix("kiwi"))
	assert.Equal(t, 1, c.SelectedIndex())
}
