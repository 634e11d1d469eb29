package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols"
	"github.com/flanksource/symbols/config"
	"github.com/flanksource/symbols/editor"
	"github.com/flanksource/symbols/measure"
	"github.com/flanksource/symbols/shutdown"
)

// cliHost logs the editor callbacks
type cliHost struct {
	editor.NopHost
}

func (cliHost) TagsUpdated(tags []string) { logger.Debugf("tags: %s", strings.Join(tags, ", ")) }
func (cliHost) HasHiddenElements(hidden bool) {
	if hidden {
		logger.Infof("symbol has hidden elements")
	}
}
func (cliHost) OnDirtyChanged(dirty bool) { logger.Tracef("dirty=%v", dirty) }

func newMeasurer(opts symbols.MeasureOptions) (editor.Measurer, error) {
	switch opts.Measure {
	case "", "geometry":
		return measure.NewGeometry(), nil
	case "browser":
		b := measure.NewBrowser()
		b.Install = opts.InstallBrowser
		shutdown.AddHookWithPriority("close browser", shutdown.PriorityMeasurers, func() {
			if err := b.Close(); err != nil {
				logger.Warnf("failed to close browser: %v", err)
			}
		})
		return b, nil
	default:
		return nil, fmt.Errorf("unknown measurer %q, expected geometry or browser", opts.Measure)
	}
}

func settings(flags symbols.AllFlags) (editor.Settings, error) {
	s, err := config.Load(flags.Config)
	if err != nil {
		return s, err
	}
	if flags.MeasureOptions.Width > 0 {
		s.ContainerWidth = flags.MeasureOptions.Width
	}
	if flags.MeasureOptions.Height > 0 {
		s.ContainerHeight = flags.MeasureOptions.Height
	}
	return s, s.Validate()
}

// open loads a symbol file and lays it out in the configured container
func open(path string) (*editor.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return load(string(data))
}

func load(content string) (*editor.Editor, error) {
	s, err := settings(symbols.Flags)
	if err != nil {
		return nil, err
	}
	m, err := newMeasurer(symbols.Flags.MeasureOptions)
	if err != nil {
		return nil, err
	}
	ed := editor.New(editor.WithSettings(s), editor.WithHost(cliHost{}), editor.WithMeasurer(m))
	if err := ed.SetContent(content); err != nil {
		return nil, err
	}
	ed.Resize(s.ContainerWidth, s.ContainerHeight)
	return ed, nil
}

// selectElement resolves an element index or a #id
func selectElement(ed *editor.Editor, selector string) (*editor.Element, error) {
	if id, ok := strings.CutPrefix(selector, "#"); ok {
		e, found := ed.FindByID(id)
		if !found {
			return nil, fmt.Errorf("no element with id %q: %w", id, editor.ErrNoElement)
		}
		return e, nil
	}
	i, err := strconv.Atoi(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid element selector %q, expected an index or #id", selector)
	}
	return ed.Element(i)
}

// writeOutput writes content to file, or stdout when file is empty
func writeOutput(content []byte, file string) error {
	if file == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(file, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	logger.Infof("wrote %s", file)
	return nil
}
