package editor

import (
	"testing"

	"github.com/flanksource/symbols/popup"
	"github.com/stretchr/testify/require"
)

type recordingHost struct {
	NopHost
	tags         [][]string
	dirty        []bool
	valid        []bool
	hidden       []bool
	zooms        int
	stateRender  map[string]bool
	clickActions map[string]bool
	edited       []string
}

func (h *recordingHost) TagsUpdated(tags []string)  { h.tags = append(h.tags, tags) }
func (h *recordingHost) OnDirtyChanged(dirty bool)  { h.dirty = append(h.dirty, dirty) }
func (h *recordingHost) OnValidChanged(valid bool)  { h.valid = append(h.valid, valid) }
func (h *recordingHost) HasHiddenElements(hid bool) { h.hidden = append(h.hidden, hid) }
func (h *recordingHost) OnZoom()                    { h.zooms++ }
func (h *recordingHost) TagHasStateRenderFunction(tag string) bool {
	return h.stateRender[tag]
}
func (h *recordingHost) TagHasClickAction(tag string) bool { return h.clickActions[tag] }
func (h *recordingHost) EditTagStateRenderFunction(tag string) {
	h.edited = append(h.edited, "render:"+tag)
}
func (h *recordingHost) EditTagClickAction(tag string) { h.edited = append(h.edited, "click:"+tag) }

func (h *recordingHost) lastTags() []string {
	if len(h.tags) == 0 {
		return nil
	}
	return h.tags[len(h.tags)-1]
}

type fixture struct {
	ed    *Editor
	host  *recordingHost
	board *popup.Board
}

// load creates an editor laid out in a w×h container
func load(t *testing.T, content string, w, h float64, opts ...Option) fixture {
	t.Helper()
	f := fixture{host: &recordingHost{}, board: popup.NewBoard()}
	f.ed = New(append([]Option{WithHost(f.host), WithPopups(f.board)}, opts...)...)
	require.NoError(t, f.ed.SetContent(content))
	f.ed.Resize(w, h)
	require.True(t, f.ed.Ready())
	return f
}
