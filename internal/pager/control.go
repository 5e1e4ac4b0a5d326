package pager

// Binder installs a keyboard binding for a control that has pages pages.
// The returned release function removes it again; it must be safe to call once.
type Binder interface {
	Install(pages int) (release func())
}

// BinderFunc adapts a function to Binder
type BinderFunc func(pages int) func()

// Install implements Binder
func (f BinderFunc) Install(pages int) func() {
	return f(pages)
}

// Option configures a Control
type Option func(*Control)

// WithBinder sets the binder used on mount and on page count changes.
func WithBinder(b Binder) Option {
	return func(c *Control) {
		c.binder = b
	}
}

// WithNotifyOnMount controls whether Mount reports the current page to the host.
func WithNotifyOnMount(notify bool) Option {
	return func(c *Control) {
		c.notifyOnMount = notify
	}
}

// Control owns the current page of a pagination widget.
//
// All methods are meant to run on the UI goroutine. Every change of the current
// page is reported through the change callback; operations that leave the page
// where it is report nothing.
type Control struct {
	pages         int
	current       int
	onChange      func(page int)
	binder        Binder
	release       func()
	mounted       bool
	notifyOnMount bool
}

// New creates a control for pages pages starting on page 1.
func New(pages int, onChange func(page int), opts ...Option) *Control {
	c := &Control{
		onChange:      onChange,
		notifyOnMount: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pages = normalizePages(pages)
	c.current = Clamp(1, c.pages)
	return c
}

// Mount installs the keyboard binding and, unless disabled, reports the
// current page. Mounting twice is a no-op.
func (c *Control) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.bind()
	if c.notifyOnMount {
		c.notify()
	}
}

// Unmount releases the keyboard binding.
func (c *Control) Unmount() {
	if !c.mounted {
		return
	}
	c.unbind()
	c.mounted = false
}

// Mounted reports whether the control is mounted
func (c *Control) Mounted() bool {
	return c.mounted
}

// SetPages changes the page count. The current page goes back to 1 and, when
// mounted, the binding is reinstalled for the new count and the host is told.
// Setting the same count again does nothing.
func (c *Control) SetPages(pages int) {
	pages = normalizePages(pages)
	if pages == c.pages {
		return
	}

	if c.mounted {
		c.unbind()
	}
	c.pages = pages
	c.current = Clamp(1, pages)
	if c.mounted {
		c.bind()
		c.notify()
	}
}

// Pages returns the page count; 0 means there is nothing to show.
func (c *Control) Pages() int {
	return c.pages
}

// Current returns the selected page, or 0 when there are no pages.
func (c *Control) Current() int {
	return c.current
}

// Items returns the window for the current state
func (c *Control) Items() []Item {
	return Window(c.pages, c.current)
}

// CanPrev reports whether Prev would move
func (c *Control) CanPrev() bool {
	return c.pages > 0 && c.current > 1
}

// CanNext reports whether Next would move
func (c *Control) CanNext() bool {
	return c.pages > 0 && c.current < c.pages
}

// Select moves to page p, clamped into range.
func (c *Control) Select(p int) bool {
	return c.set(Clamp(p, c.pages))
}

// Prev steps back one page.
func (c *Control) Prev() bool {
	if !c.CanPrev() {
		return false
	}
	return c.set(c.current - 1)
}

// Next steps forward one page.
func (c *Control) Next() bool {
	if !c.CanNext() {
		return false
	}
	return c.set(c.current + 1)
}

// First jumps to page 1
func (c *Control) First() bool {
	return c.set(Clamp(1, c.pages))
}

// Last jumps to the final page
func (c *Control) Last() bool {
	return c.set(c.pages)
}

func (c *Control) set(p int) bool {
	if c.pages == 0 || p == c.current {
		return false
	}
	c.current = p
	c.notify()
	return true
}

func (c *Control) notify() {
	if c.onChange != nil && c.pages > 0 {
		c.onChange(c.current)
	}
}

func (c *Control) bind() {
	if c.binder == nil {
		return
	}
	c.release = c.binder.Install(c.pages)
}

func (c *Control) unbind() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

func normalizePages(pages int) int {
	if pages < 0 {
		return 0
	}
	return pages
}
