// Package panel implements the headless presentation model of the
// download-history view: localized labels, search state, the rendered
// row view and the row actions the widget's context menu offered.
// Rendering itself stays with the caller.
package panel

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/histdl/histdl/common"
	"github.com/histdl/histdl/pkg/histlib"
	"github.com/histdl/histdl/pkg/logger"
)

// Row is one rendered line of the history view.
type Row struct {
	Url    string
	Status string
	Kind   common.StatusKind
}

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// OpenFunc opens a url in the user's browser.
type OpenFunc func(url string) error

// PanelOpts contains optional parameters for NewPanel.
type PanelOpts struct {
	Localization *Localization
	Logger       logger.Logger

	// Clipboard and Open replace the system clipboard and browser
	// integrations, mainly for tests.
	Clipboard ClipboardFunc
	Open      OpenFunc
}

// Panel drives a history store for a presentation layer. It renders
// rows newest first, remembers the last rendered view so row actions
// resolve against what the user actually saw, and owns the transient
// toast message.
//
// A Panel belongs to a single goroutine, like the event loop that owns
// a widget. The store underneath carries its own locking.
type Panel struct {
	store *histlib.Store
	loc   *Localization
	toast *Toast
	log   logger.Logger

	clipboard ClipboardFunc
	open      OpenFunc

	search string
	view   []histlib.Record
}

// NewPanel creates a panel around store.
func NewPanel(store *histlib.Store, opts *PanelOpts) *Panel {
	if opts == nil {
		opts = &PanelOpts{}
	}
	p := &Panel{
		store:     store,
		loc:       opts.Localization,
		toast:     NewToast(),
		log:       opts.Logger,
		clipboard: opts.Clipboard,
		open:      opts.Open,
	}
	if p.loc == nil {
		p.loc = NewLocalization()
	}
	if p.log == nil {
		p.log = logger.NewNopLogger()
	}
	if p.clipboard == nil {
		p.clipboard = clipboard.WriteAll
	}
	if p.open == nil {
		p.open = browser.OpenURL
	}
	return p
}

// Store returns the underlying history store.
func (p *Panel) Store() *histlib.Store {
	return p.store
}

// Localization returns the panel's localization table.
func (p *Panel) Localization() *Localization {
	return p.loc
}

// Toast returns the panel's toast.
func (p *Panel) Toast() *Toast {
	return p.toast
}

// SetSearch sets the active search text. Surrounding whitespace is
// trimmed the way the widget's search bar did.
func (p *Panel) SetSearch(q string) {
	p.search = strings.TrimSpace(q)
}

// Search returns the active search text.
func (p *Panel) Search() string {
	return p.search
}

// Rows renders the current view and remembers it for row actions.
func (p *Panel) Rows() []Row {
	p.view = p.store.Query(p.search)
	rows := make([]Row, len(p.view))
	for i, r := range p.view {
		rows[i] = Row{Url: r.Url, Status: r.Status, Kind: r.Kind()}
	}
	return rows
}

// Empty reports whether the current view has no rows.
func (p *Panel) Empty() bool {
	return len(p.store.Query(p.search)) == 0
}

// CanLoadMore reports whether a load-more action would reveal records.
func (p *Panel) CanLoadMore() bool {
	return p.store.HasMore(p.search)
}

// LoadMore reveals one more page.
func (p *Panel) LoadMore() {
	p.store.ShowMore()
}

// Add appends a record and re-renders the view.
func (p *Panel) Add(url, status string) {
	p.store.Add(url, status)
	p.view = p.store.Query(p.search)
}

// Clear removes all records. Asking the user first is the caller's
// concern.
func (p *Panel) Clear() {
	p.store.Clear()
	p.view = p.store.Query(p.search)
}

// Delete removes the record behind viewIndex of the last rendered
// view. A row whose record has meanwhile vanished from the store is
// ignored silently.
func (p *Panel) Delete(viewIndex int) error {
	if viewIndex < 0 || viewIndex >= len(p.view) {
		return histlib.ErrRowOutOfRange
	}
	p.store.DeleteAt(p.view, viewIndex)
	p.view = p.store.Query(p.search)
	return nil
}

// CopyLink puts the url of the given row on the clipboard and shows
// the copied toast.
func (p *Panel) CopyLink(viewIndex int) error {
	r, err := p.rowAt(viewIndex)
	if err != nil {
		return err
	}
	if err := p.clipboard(r.Url); err != nil {
		return fmt.Errorf("copy link: %w", err)
	}
	p.toast.Show(p.loc.GetText(KeyLinkCopied))
	return nil
}

// OpenLink opens the url of the given row in the user's browser.
func (p *Panel) OpenLink(viewIndex int) error {
	r, err := p.rowAt(viewIndex)
	if err != nil {
		return err
	}
	if err := p.open(r.Url); err != nil {
		return fmt.Errorf("open link: %w", err)
	}
	return nil
}

func (p *Panel) rowAt(viewIndex int) (histlib.Record, error) {
	if viewIndex < 0 || viewIndex >= len(p.view) {
		return histlib.Record{}, histlib.ErrRowOutOfRange
	}
	return p.view[viewIndex], nil
}

// ExportTo writes the history to path. An empty path means the user
// cancelled, which is not an error. On success the localized
// confirmation is shown as a toast; failures are logged and returned
// for the caller to surface.
func (p *Panel) ExportTo(path string) error {
	if path == "" {
		return nil
	}
	if err := p.store.ExportFile(path); err != nil {
		p.log.Error("export to %q failed: %v", path, err)
		return err
	}
	p.toast.Show(fmt.Sprintf(p.loc.GetText(KeyExportDone), path))
	return nil
}
