package measure

import (
	"fmt"
	"sync"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
	"github.com/playwright-community/playwright-go"
)

const markAttr = "data-symbols-node"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { margin: 0; padding: 0; }
        svg { display: block; }
        %s
    </style>
</head>
<body>
    %s
</body>
</html>`

// bboxScript maps an element's getBBox() into the root's user space
const bboxScript = `([attr, index, cls]) => {
  const el = document.querySelector('[' + attr + '="' + index + '"]');
  const root = document.querySelector('svg');
  if (!el || !root || typeof el.getBBox !== 'function') {
    return null;
  }
  if (cls === '') {
    el.removeAttribute('class');
  } else {
    el.setAttribute('class', cls);
  }
  const b = el.getBBox();
  const m = root.getScreenCTM().inverse().multiply(el.getScreenCTM());
  const xs = [], ys = [];
  for (const [x, y] of [[b.x, b.y], [b.x + b.width, b.y], [b.x, b.y + b.height], [b.x + b.width, b.y + b.height]]) {
    const p = new DOMPoint(x, y).matrixTransform(m);
    xs.push(p.x);
    ys.push(p.y);
  }
  const x = Math.min(...xs), y = Math.min(...ys);
  return {x: x, y: y, width: Math.max(...xs) - x, height: Math.max(...ys) - y};
}`

// Browser measures elements with getBBox() in a headless Chromium page. The
// document is loaded once by Prepare; class changes made by the editor (such as
// revealing hidden nodes) are synced to the page before each measurement.
type Browser struct {
	// Install downloads the browser before launching
	Install bool

	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	index   map[*svgdoc.Node]int
}

func NewBrowser() *Browser {
	return &Browser{}
}

func (b *Browser) start() error {
	if b.browser != nil {
		return nil
	}
	if b.Install {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return fmt.Errorf("failed to install browsers: %w", err)
		}
	}
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch()
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	b.pw, b.browser = pw, browser
	return nil
}

// Prepare loads doc, editor nodes included, into a fresh page
func (b *Browser) Prepare(doc *svgdoc.Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.start(); err != nil {
		return err
	}
	if b.page != nil {
		_ = b.page.Close()
		b.page = nil
	}
	page, err := b.browser.NewPage()
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	markup, nodes := doc.Marked(markAttr)
	if err := page.SetContent(fmt.Sprintf(pageTemplate, svgdoc.EditorStylesheet("tb-glow"), markup)); err != nil {
		_ = page.Close()
		return fmt.Errorf("failed to set content: %w", err)
	}
	b.page = page
	b.index = make(map[*svgdoc.Node]int, len(nodes))
	for i, n := range nodes {
		b.index[n] = i
	}
	log.Debugf("loaded %d elements into browser page", len(nodes))
	return nil
}

func (b *Browser) BBox(n *svgdoc.Node) (api.Box, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page == nil {
		return api.Box{}, fmt.Errorf("browser measurer is not prepared")
	}
	i, ok := b.index[n]
	if !ok {
		return api.Box{}, fmt.Errorf("<%s> was not part of the prepared document", n.Name)
	}
	res, err := b.page.Evaluate(bboxScript, []interface{}{markAttr, i, n.AttrOr("class", "")})
	if err != nil {
		return api.Box{}, fmt.Errorf("getBBox failed: %w", err)
	}
	obj, ok := res.(map[string]interface{})
	if !ok {
		return api.Box{}, fmt.Errorf("<%s> is not a graphics element", n.Name)
	}
	return api.NewBox(toFloat(obj["x"]), toFloat(obj["y"]), toFloat(obj["width"]), toFloat(obj["height"])), nil
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// Close stops the browser and playwright
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page != nil {
		_ = b.page.Close()
		b.page = nil
	}
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
		b.browser = nil
	}
	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			return err
		}
		b.pw = nil
	}
	return nil
}
