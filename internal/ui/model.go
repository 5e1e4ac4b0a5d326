package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"postgrid/internal/config"
	"postgrid/internal/domain"
	"postgrid/internal/eventbus"
	"postgrid/internal/pager"
	"postgrid/internal/ui/commands"
	"postgrid/internal/ui/handlers"
	"postgrid/internal/ui/input"
	inputtypes "postgrid/internal/ui/input/types"
	"postgrid/internal/ui/logic"
	"postgrid/internal/ui/state"
	"postgrid/internal/ui/viewmodels"
	"postgrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    zerolog.Logger

	// Pagination
	control   *pager.Control
	paginator paginator.Model // slice bounds of the current page
	layout    views.Layout    // where the last render put the pagination bar

	// Handlers
	navigator    *logic.GridNavigator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	viewer       Viewer
}

// NewModel creates a new UI model. The pagination control mounts in Init.
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger zerolog.Logger) *Model {
	appState := state.NewAppState()
	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		log:          logger.With().Str("component", "ui").Logger(),
		paginator:    paginator.New(paginator.WithPerPage(cfg.PageSize)),
		navigator:    logic.NewGridNavigator(cfg.Columns),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg.Columns),
		cmdExecutor:  commands.NewExecutor(appState, bus),
		inputHandler: input.New(keys),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.SetPosts, m.log)
	m.control = pager.New(0, m.onPageChange,
		pager.WithBinder(m.inputHandler.PagerBinder()),
		pager.WithNotifyOnMount(cfg.NotifyOnMount),
	)

	return m
}

// SetViewer sets the viewer used to read posts
func (m *Model) SetViewer(v Viewer) {
	m.viewer = v
}

// SetSource sets the source name shown in the title
func (m *Model) SetSource(name string) {
	m.state.Source = name
}

// SetPosts replaces the posts. A different page count resets the control to
// page 1; the same count keeps the current page.
func (m *Model) SetPosts(posts []domain.Post) {
	m.state.SetPosts(posts)
	pages := domain.PageCount(len(m.state.Posts), m.config.PageSize)

	if pages != m.control.Pages() {
		m.control.SetPages(pages)
		if m.control.Mounted() && pages > 0 {
			return // onPageChange already sliced
		}
	}

	cursor := m.state.Cursor
	m.showPage(m.control.Current())
	m.state.Cursor = m.navigator.Clamp(cursor, len(m.state.Visible))
}

// Control returns the pagination control
func (m *Model) Control() *pager.Control {
	return m.control
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init mounts the pagination control
func (m *Model) Init() tea.Cmd {
	m.control.Mount()
	if !m.config.NotifyOnMount {
		// Nothing told us about the first page; slice it ourselves
		m.showPage(m.control.Current())
	}
	return nil
}

// Close unmounts the pagination control and releases its binding
func (m *Model) Close() {
	m.control.Unmount()
}

// onPageChange is the control's change callback
func (m *Model) onPageChange(page int) {
	m.log.Debug().Int("page", page).Int("pages", m.control.Pages()).Msg("page changed")
	m.showPage(page)
}

// showPage slices the posts for page and puts the cursor on the first card
func (m *Model) showPage(page int) {
	m.state.Cursor = 0
	if page < 1 {
		m.state.SetVisible(0, 0)
		return
	}
	m.paginator.PerPage = m.config.PageSize
	m.paginator.SetTotalPages(len(m.state.Posts))
	m.paginator.Page = page - 1
	start, end := m.paginator.GetSliceBounds(len(m.state.Posts))
	m.state.SetVisible(start, end)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClear(msg)
		return m, nil

	case postViewedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("post", msg.postID).Msg("could not show post")
			return m, m.cmdExecutor.ExecuteStatus(fmt.Sprintf("Could not open post: %v", msg.err), true)
		}
		return m, nil
	}

	// Cursor blink and other messages for the prompt
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := &input.ModelContext{State: m.state, Control: m.control}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if _, ok := action.(inputtypes.QuitAction); ok {
			m.Close()
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleAction(action))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.MoveCursorAction:
		m.state.Cursor = m.navigator.Move(m.state.Cursor, len(m.state.Visible), a.Direction)

	case inputtypes.PageStepAction:
		if a.Delta < 0 {
			m.control.Prev()
		} else {
			m.control.Next()
		}

	case inputtypes.SelectPageAction:
		m.control.Select(a.Page)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto {
			return m.gotoPage(a.Text)
		}

	case inputtypes.OpenPostAction:
		post, ok := m.state.SelectedPost()
		if !ok {
			return nil
		}
		return m.openPost(post)

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
	}
	return nil
}

// gotoPage selects the page typed into the prompt, clamped into range
func (m *Model) gotoPage(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return m.cmdExecutor.ExecuteStatus(fmt.Sprintf("Not a page number: %q", text), true)
	}
	if m.control.Pages() == 0 {
		return m.cmdExecutor.ExecuteStatus("No pages to go to", true)
	}
	m.control.Select(n)
	return nil
}

// handleMouse turns clicks on the pagination bar into page changes
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	seg, ok := m.layout.PageAt(msg.X, msg.Y)
	if !ok || seg.Disabled {
		return nil
	}

	switch seg.Kind {
	case views.SegmentPrev:
		m.control.Prev()
	case views.SegmentNext:
		m.control.Next()
	case views.SegmentPage:
		m.control.Select(seg.Page)
	}
	return nil
}

func (m *Model) openPost(post domain.Post) tea.Cmd {
	if m.viewer == nil {
		return m.cmdExecutor.ExecuteStatus("No viewer available", true)
	}
	viewer := m.viewer
	return func() tea.Msg {
		err := viewer.Show(RenderPost(post))
		return postViewedMsg{postID: post.ID, err: err}
	}
}

func (m *Model) View() string {
	vs := m.viewModel.BuildViewState(m.control, m.inputHandler)
	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}
