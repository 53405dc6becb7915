package render

import (
	"fmt"

	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/terminal"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

type rendererEntry struct {
	renderer LayerRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Pages holds one renderer per page, every field is required
type Pages struct {
	SetList   PageRenderer
	CreateSet PageRenderer
}

// Orchestrator coordinates the render pipeline: layers in priority order with the
// active page drawn at PriorityPage
// It implements app.Renderer
type Orchestrator struct {
	ctx       Context
	pages     Pages
	renderers []rendererEntry
	regCount  int
}

var _ app.Renderer = (*Orchestrator)(nil)

// NewOrchestrator creates an orchestrator drawing pages with ctx settings
func NewOrchestrator(ctx Context, pages Pages) *Orchestrator {
	o := &Orchestrator{
		ctx:       ctx,
		pages:     pages,
		renderers: make([]rendererEntry, 0, 4),
	}
	for _, p := range app.Pages() {
		if o.pageRenderer(p) == nil {
			panic(fmt.Sprintf("render: missing renderer for page %v", p))
		}
	}
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
// PriorityPage is reserved for the active page
func (o *Orchestrator) Register(r LayerRenderer, priority RenderPriority) {
	if priority == PriorityPage {
		panic("render: PriorityPage is reserved for page renderers")
	}
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Render executes the pipeline into buf: clear, layers below the page, page, layers above
// The view is only read
func (o *Orchestrator) Render(buf *terminal.Buffer, view app.View) {
	buf.Clear()

	ctx := o.ctx
	root := tui.Root(buf)
	page := o.pageRenderer(view.Page())

	pageDrawn := false
	for _, entry := range o.renderers {
		if !pageDrawn && entry.priority > PriorityPage {
			page.Render(ctx, view, root)
			pageDrawn = true
		}
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, root)
	}
	if !pageDrawn {
		page.Render(ctx, view, root)
	}
}

// pageRenderer selects the renderer for p, panics on a page without one
func (o *Orchestrator) pageRenderer(p app.Page) PageRenderer {
	//exhaustive:enforce
	switch p {
	case app.PageSetList:
		return o.pages.SetList
	case app.PageCreateSet:
		return o.pages.CreateSet
	default:
		panic(fmt.Sprintf("render: unhandled page %v", p))
	}
}
