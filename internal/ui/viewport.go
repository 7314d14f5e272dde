package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ViewportWatcher wraps the window content and tells subscribers whenever
// the content area changes size. It is the window resize notification.
type ViewportWatcher struct {
	widget.BaseWidget
	content fyne.CanvasObject
	last    fyne.Size
	subs    map[int]func(fyne.Size)
	next    int
	mu      sync.Mutex
}

func NewViewportWatcher(content fyne.CanvasObject) *ViewportWatcher {
	v := &ViewportWatcher{
		content: content,
		subs:    make(map[int]func(fyne.Size)),
	}
	v.ExtendBaseWidget(v)
	return v
}

// Subscribe registers fn for size changes. The returned cancel func removes
// it again and is safe to call more than once.
func (v *ViewportWatcher) Subscribe(fn func(fyne.Size)) (cancel func()) {
	v.mu.Lock()
	id := v.next
	v.next++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

func (v *ViewportWatcher) notify(size fyne.Size) {
	v.mu.Lock()
	if size == v.last {
		v.mu.Unlock()
		return
	}
	v.last = size
	fns := make([]func(fyne.Size), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(size)
	}
}

func (v *ViewportWatcher) CreateRenderer() fyne.WidgetRenderer {
	return &viewportRenderer{watcher: v}
}

type viewportRenderer struct {
	watcher *ViewportWatcher
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.watcher.content.Resize(size)
	r.watcher.content.Move(fyne.NewPos(0, 0))
	r.watcher.notify(size)
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return r.watcher.content.MinSize()
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.watcher.content}
}

func (r *viewportRenderer) Refresh() {
	r.watcher.content.Refresh()
}

func (r *viewportRenderer) Destroy() {}
