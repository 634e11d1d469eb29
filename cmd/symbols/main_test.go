package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tank = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <rect id="tank" x="10" y="10" width="20" height="20"/>
  <circle cx="70" cy="70" r="10"/>
</svg>`

func TestSelectElement(t *testing.T) {
	ed, err := load(tank)
	require.NoError(t, err)
	defer ed.Destroy()

	e, err := selectElement(ed, "#tank")
	require.NoError(t, err)
	assert.Equal(t, 0, e.Index)

	e, err = selectElement(ed, "1")
	require.NoError(t, err)
	assert.Equal(t, "circle", e.Node.Name)

	_, err = selectElement(ed, "#pump")
	assert.ErrorIs(t, err, editor.ErrNoElement)
	_, err = selectElement(ed, "9")
	assert.ErrorIs(t, err, editor.ErrNoElement)
	_, err = selectElement(ed, "tank")
	assert.ErrorContains(t, err, "invalid element selector")
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("40, -2.5")
	require.NoError(t, err)
	assert.Equal(t, api.Point{X: 40, Y: -2.5}, p)

	_, err = parsePoint("40")
	assert.Error(t, err)
	_, err = parsePoint("a,1")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	ed, err := load(tank)
	require.NoError(t, err)
	defer ed.Destroy()
	require.NoError(t, ed.SetTag(0, "tank1"))

	out, err := Preview(ed)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `width="800"`)
	assert.Contains(t, s, `id="tank"`)
	assert.Contains(t, s, ">tank1</text>")
	assert.Contains(t, s, "stroke:#999")
}

func TestTooltipOrigin(t *testing.T) {
	anchor := api.Point{X: 100, Y: 50}
	tests := []struct {
		side api.Side
		x, y float64
	}{
		{api.SideTop, 50, 14},
		{api.SideBottom, 50, 50},
		{api.SideLeft, 0, 32},
		{api.SideRight, 100, 32},
	}
	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			x, y := tooltipOrigin(api.Placement{Anchor: anchor, Side: tt.side}, 100, 36)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tank.svg")
	require.NoError(t, os.WriteFile(path, []byte(tank), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, func() error {
			reloads <- struct{}{}
			return nil
		})
	}()

	wait := func() {
		t.Helper()
		select {
		case <-reloads:
		case <-time.After(5 * time.Second):
			t.Fatal("no reload")
		}
	}
	wait()
	require.NoError(t, os.WriteFile(path, []byte(tank+"\n"), 0o644))
	wait()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
