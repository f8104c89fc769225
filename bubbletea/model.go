// Package bubbletea provides a terminal UI for submitting source files for
// review and reading the returned report, using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codereview"
)

const (
	appTitle = "Code Review Assistant"
	tagline  = "AI-powered code reviews with actionable insights."

	headerHeight    = 3 // title, tagline, blank line
	statusBarHeight = 1
)

// Status bar messages.
const (
	StatusCopied          = "Copied report to clipboard"
	StatusCopyFailed      = "Copy failed"
	StatusExportFailed    = "Export failed"
	StatusNothingToExport = "No report yet"
	StatusUnavailable     = "Not available"
)

var errNoReviewer = errors.New("no reviewer configured")

// State is the viewer's position in the submission lifecycle.
type State int

// States.
const (
	StateIdle State = iota
	StateFileSelected
	StateSubmitting
	StateComplete
	StateFailed
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file selected"
	case StateSubmitting:
		return "submitting"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SelectFileMsg selects the file at Path, from any state.
type SelectFileMsg struct {
	Path string
}

// reviewDoneMsg carries the result of a submission. seq identifies the
// submission; results for anything but the current one are dropped.
type reviewDoneMsg struct {
	seq    int
	report *codereview.Report
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copyDoneMsg struct {
	err error
}

type sourceLoadedMsg struct {
	path   string
	source string
	err    error
}

// Model is the Bubble Tea model for the review viewer.
type Model struct {
	// Collaborators
	ctx        context.Context
	reviewer   codereview.Reviewer
	exporter   codereview.Exporter
	saver      codereview.DocumentSaver
	clipboard  codereview.Clipboard
	formatter  codereview.ReportFormatter
	readSource func(*codereview.File) (string, error)
	logger     *slog.Logger

	// Lifecycle
	state  State
	file   *codereview.File
	source string // file preview, read on selection
	report *codereview.Report
	cards  []Card
	errMsg string
	prompt string
	status string
	seq    int

	// Syntax highlighting
	tokenizer        codereview.Tokenizer
	languageDetector codereview.LanguageDetector

	// Theme
	controller *codereview.ThemeController
	light      codereview.Theme
	dark       codereview.Theme
	mode       codereview.ThemeMode
	theme      codereview.Theme
	styles     viewStyles
	renderer   *lipgloss.Renderer

	// UI state
	picker     filepicker.Model
	pickerOpen bool
	viewport   viewport.Model
	spinner    spinner.Model
	help       help.Model
	keymap     KeyMap
	width      int
	height     int
	ready      bool
	pendingKey string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	ctx              context.Context
	reviewer         codereview.Reviewer
	exporter         codereview.Exporter
	saver            codereview.DocumentSaver
	clipboard        codereview.Clipboard
	formatter        codereview.ReportFormatter
	readSource       func(*codereview.File) (string, error)
	logger           *slog.Logger
	tokenizer        codereview.Tokenizer
	languageDetector codereview.LanguageDetector
	controller       *codereview.ThemeController
	light            codereview.Theme
	dark             codereview.Theme
	renderer         *lipgloss.Renderer
	initialFile      string
	pickerDir        string
}

// WithContext sets the context passed to the reviewer and theme store.
func WithContext(ctx context.Context) ModelOption {
	return func(cfg *modelConfig) {
		cfg.ctx = ctx
	}
}

// WithReviewer sets the service that reviews submitted files.
func WithReviewer(r codereview.Reviewer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.reviewer = r
	}
}

// WithExporter sets the PDF exporter.
func WithExporter(e codereview.Exporter) ModelOption {
	return func(cfg *modelConfig) {
		cfg.exporter = e
	}
}

// WithDocumentSaver sets where exported documents are written.
func WithDocumentSaver(s codereview.DocumentSaver) ModelOption {
	return func(cfg *modelConfig) {
		cfg.saver = s
	}
}

// WithClipboard enables copying the report text.
func WithClipboard(c codereview.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithFormatter sets the formatter used for copied text.
func WithFormatter(f codereview.ReportFormatter) ModelOption {
	return func(cfg *modelConfig) {
		cfg.formatter = f
	}
}

// WithSourceReader sets how a selected file is read for the code preview.
func WithSourceReader(read func(*codereview.File) (string, error)) ModelOption {
	return func(cfg *modelConfig) {
		cfg.readSource = read
	}
}

// WithLogger sets the logger. Submission failure causes are logged here.
func WithLogger(l *slog.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t codereview.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d codereview.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithThemes sets the light and dark themes.
func WithThemes(light, dark codereview.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.light = light
		cfg.dark = dark
	}
}

// WithThemeController sets the controller owning the persisted theme flag.
func WithThemeController(c *codereview.ThemeController) ModelOption {
	return func(cfg *modelConfig) {
		cfg.controller = c
	}
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithInitialFile starts the viewer with path selected.
func WithInitialFile(path string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.initialFile = path
	}
}

// WithPickerDir sets the directory the file picker opens in.
func WithPickerDir(dir string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.pickerDir = dir
	}
}

// NewModel creates a Model in the Idle state, or FileSelected when an
// initial file is given.
func NewModel(opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.formatter == nil {
		cfg.formatter = &codereview.TextFormatter{}
	}

	picker := filepicker.New()
	picker.AllowedTypes = slices.Clone(codereview.AcceptedExtensions)
	if cfg.pickerDir != "" {
		picker.CurrentDirectory = cfg.pickerDir
	}

	m := Model{
		ctx:              cfg.ctx,
		reviewer:         cfg.reviewer,
		exporter:         cfg.exporter,
		saver:            cfg.saver,
		clipboard:        cfg.clipboard,
		formatter:        cfg.formatter,
		readSource:       cfg.readSource,
		logger:           cfg.logger,
		tokenizer:        cfg.tokenizer,
		languageDetector: cfg.languageDetector,
		controller:       cfg.controller,
		light:            cfg.light,
		dark:             cfg.dark,
		renderer:         cfg.renderer,
		picker:           picker,
		spinner:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:             help.New(),
		keymap:           DefaultKeyMap(),
	}
	if cfg.controller != nil {
		m.mode = cfg.controller.Mode()
	}
	m.applyTheme()

	if cfg.initialFile != "" {
		m.file = codereview.NewFile(cfg.initialFile)
		m.state = StateFileSelected
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.picker.Init()}
	if m.file != nil {
		cmds = append(cmds, m.loadSource(m.file))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case SelectFileMsg:
		return m.selectFile(msg.Path)

	case sourceLoadedMsg:
		if m.file == nil || m.file.Path != msg.path {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("read source", "file", msg.path, "error", msg.err)
			return m, nil
		}
		m.source = msg.source
		m.refresh()
		return m, nil

	case reviewDoneMsg:
		return m.handleReviewDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Error("export pdf", "error", msg.err)
			m.status = StatusExportFailed
		} else {
			m.logger.Info("export pdf", "path", msg.path)
			m.status = "Saved " + msg.path
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.logger.Error("copy report", "error", msg.err)
			m.status = StatusCopyFailed
		} else {
			m.status = StatusCopied
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Directory listings and other picker internals.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The prompt blocks everything until a key is pressed.
	if m.prompt != "" {
		m.prompt = ""
		return m, nil
	}

	if m.pickerOpen {
		return m.handlePickerKey(msg)
	}

	// Handle multi-key sequences (gg for go to top)
	if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
		m.viewport.GotoTop()
		m.pendingKey = ""
		return m, nil
	}
	if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return m, nil
	}
	m.pendingKey = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keymap.OpenPicker):
		if m.state != StateSubmitting {
			m.pickerOpen = true
		}
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	case key.Matches(msg, m.keymap.ToggleCard):
		m.toggleCard(int(msg.String()[0] - '0'))
		return m, nil
	case key.Matches(msg, m.keymap.ToggleTheme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keymap.ExportPDF):
		return m.export()
	case key.Matches(msg, m.keymap.Copy):
		return m.copyReport()
	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keymap.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.viewport.ScrollDown(1)
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ClosePicker):
		m.pickerOpen = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		next, loadCmd := m.selectFile(path)
		return next, tea.Batch(cmd, loadCmd)
	}
	return m, cmd
}

// selectFile replaces the current file and clears the report and error.
// Any submission in flight is abandoned.
func (m Model) selectFile(path string) (Model, tea.Cmd) {
	m.file = codereview.NewFile(path)
	m.state = StateFileSelected
	m.report = nil
	m.cards = nil
	m.errMsg = ""
	m.status = ""
	m.source = ""
	m.seq++
	m.pickerOpen = false
	m.logger.Info("file selected", "file", m.file.Name)
	m.refresh()
	m.viewport.GotoTop()
	return m, m.loadSource(m.file)
}

func (m Model) loadSource(file *codereview.File) tea.Cmd {
	read := m.readSource
	if read == nil {
		return nil
	}
	return func() tea.Msg {
		src, err := read(file)
		return sourceLoadedMsg{path: file.Path, source: src, err: err}
	}
}

// submit starts a review of the selected file. Without a file it raises the
// blocking prompt instead.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state == StateSubmitting {
		return m, nil
	}
	if m.file == nil {
		m.prompt = codereview.NoFilePrompt
		return m, nil
	}

	m.state = StateSubmitting
	m.errMsg = ""
	m.status = ""
	m.seq++
	m.logger.Info("review submitted", "file", m.file.Name, "seq", m.seq)
	m.refresh()

	reviewer, ctx, file, seq := m.reviewer, m.ctx, m.file, m.seq
	review := func() tea.Msg {
		if reviewer == nil {
			return reviewDoneMsg{seq: seq, err: errNoReviewer}
		}
		report, err := reviewer.Review(ctx, file)
		return reviewDoneMsg{seq: seq, report: report, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, review)
}

func (m Model) handleReviewDone(msg reviewDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.state != StateSubmitting {
		m.logger.Debug("dropped stale review", "seq", msg.seq, "current", m.seq)
		return m, nil
	}

	if msg.err == nil && msg.report == nil {
		msg.err = errors.New("empty response")
	}
	if msg.err != nil {
		m.logger.Error("review failed", "file", m.file.Name, "error", msg.err)
		m.state = StateFailed
		m.errMsg = codereview.SubmissionFailedMessage
		m.report = nil
		m.cards = nil
		m.refresh()
		return m, nil
	}

	m.logger.Info("review complete", "file", m.file.Name)
	m.state = StateComplete
	m.report = msg.report
	m.cards = cards(msg.report)
	m.refresh()
	m.viewport.GotoTop()
	return m, nil
}

// toggleCard flips the card with the given 1-based index.
func (m *Model) toggleCard(index int) {
	if index < 1 || index > len(m.cards) {
		return
	}
	next := slices.Clone(m.cards)
	next[index-1].Toggle()
	m.cards = next
	m.refresh()
}

// toggleTheme flips the theme. The new mode applies even when persisting it
// fails.
func (m *Model) toggleTheme() {
	next := m.mode.Toggle()
	if m.controller != nil {
		var err error
		next, err = m.controller.Toggle(m.ctx)
		if err != nil {
			m.logger.Warn("persist theme", "error", err)
		}
	}
	m.mode = next
	m.applyTheme()
	m.refresh()
}

func (m *Model) applyTheme() {
	m.theme = m.themeFor(m.mode)
	m.styles = newViewStyles(m.theme, m.renderer)
	m.spinner.Style = m.styles.accent
}

func (m Model) themeFor(mode codereview.ThemeMode) codereview.Theme {
	if mode == codereview.ThemeDark && m.dark != nil {
		return m.dark
	}
	if mode == codereview.ThemeLight && m.light != nil {
		return m.light
	}
	return plainTheme{mode: mode}
}

func (m Model) export() (tea.Model, tea.Cmd) {
	if m.report == nil {
		m.status = StatusNothingToExport
		return m, nil
	}
	if m.exporter == nil || m.saver == nil {
		m.status = StatusUnavailable
		return m, nil
	}
	exporter, saver, report := m.exporter, m.saver, m.report
	return m, func() tea.Msg {
		doc, err := exporter.Export(report)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := saver.Save(doc)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) copyReport() (tea.Model, tea.Cmd) {
	if m.report == nil {
		m.status = StatusNothingToExport
		return m, nil
	}
	if m.clipboard == nil {
		m.status = StatusUnavailable
		return m, nil
	}
	clip, text := m.clipboard, m.formatter.Format(m.report)
	return m, func() tea.Msg {
		return copyDoneMsg{err: clip.Copy(text)}
	}
}

// resize fits the viewport between the header and the status bar.
func (m *Model) resize() {
	h := m.height - headerHeight - statusBarHeight
	if m.help.ShowAll {
		h -= lipgloss.Height(m.help.View(m.keymap))
	}
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch {
	case m.prompt != "":
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.promptView())
	case m.pickerOpen:
		body = m.picker.View()
	default:
		body = m.viewport.View()
	}

	parts := []string{m.headerView(), body, m.statusBarView()}
	if m.help.ShowAll {
		parts = append(parts, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	return m.styles.title.Render(appTitle) + "\n" + m.styles.subtitle.Render(tagline) + "\n"
}

func (m Model) promptView() string {
	text := m.prompt + "\n\n" + m.styles.muted.Render("Press any key to continue")
	return m.styles.prompt.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.border.GetForeground()).
		Render(text)
}

// renderContent renders the scrollable body: the selected file, any failure,
// the reviewer notes, the code and the cards.
func (m Model) renderContent() string {
	width := m.width
	if width < 20 {
		width = 20
	}

	var parts []string
	if m.file == nil {
		parts = append(parts, m.styles.muted.Render("No file selected. Press o to choose one."))
	} else {
		parts = append(parts, m.styles.body.Render("File: "+m.file.Name))
	}

	switch m.state {
	case StateSubmitting:
		parts = append(parts, m.spinner.View()+" "+m.styles.accent.Render("Analyzing..."))
	case StateFailed:
		parts = append(parts, m.styles.errorBar.Render(m.errMsg))
	}

	if m.report != nil && !m.report.Review.Notes.IsEmpty() {
		notes := NewCard(0, codereview.RenderCard("Reviewer output", m.report.Review.Notes))
		parts = append(parts, notes.view(m.styles, width))
	}

	if src, name := m.codeSource(); src != "" {
		code := renderCode(codeConfig{
			source:    src,
			fileName:  name,
			tokenizer: m.tokenizer,
			detector:  m.languageDetector,
			palette:   m.theme.Palette(),
			styles:    m.styles,
			renderer:  m.renderer,
			width:     width - 2,
		})
		box := m.styles.border.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.styles.border.GetForeground()).
			Width(width - 2).
			Render(code)
		parts = append(parts, box)
	}

	for _, c := range m.cards {
		parts = append(parts, c.view(m.styles, width))
	}

	return strings.Join(parts, "\n")
}

// codeSource returns the code to show: the reviewed code once a report is
// in, the local preview before that.
func (m Model) codeSource() (source, name string) {
	if m.report != nil && m.report.Code != "" {
		return m.report.Code, m.report.FileName
	}
	if m.file != nil {
		return m.source, m.file.Name
	}
	return "", ""
}

func (m Model) statusBarView() string {
	bar := m.styles.statusBar
	sep := bar.Render(" │ ")

	var state string
	switch m.state {
	case StateIdle:
		state = "Ready"
	case StateFileSelected:
		state = "File selected"
	case StateSubmitting:
		state = m.spinner.View() + bar.Render(" Analyzing...")
	case StateComplete:
		state = "Review complete"
	case StateFailed:
		state = "Review failed"
	}

	content := bar.Render(" ") + bar.Render(state) + sep
	if m.status != "" {
		content += bar.Render(m.status) + sep
	}
	content += bar.Render(m.theme.Mode().String()) + sep
	if !m.help.ShowAll {
		content += m.help.ShortHelpView(m.keymap.ShortHelp())
	}

	if w := lipgloss.Width(content); m.width > w {
		content += bar.Render(strings.Repeat(" ", m.width-w))
	}
	return content
}

// State returns the lifecycle state.
func (m Model) State() State {
	return m.state
}

// File returns the selected file, or nil.
func (m Model) File() *codereview.File {
	return m.file
}

// Report returns the last received report, or nil.
func (m Model) Report() *codereview.Report {
	return m.report
}

// Cards returns the report cards in display order.
func (m Model) Cards() []Card {
	return slices.Clone(m.cards)
}

// Prompt returns the blocking prompt text, or "" when none is shown.
func (m Model) Prompt() string {
	return m.prompt
}

// ErrorMessage returns the failure text shown in the Failed state.
func (m Model) ErrorMessage() string {
	return m.errMsg
}

// Status returns the last export or copy result.
func (m Model) Status() string {
	return m.status
}

// ThemeMode returns the active theme mode.
func (m Model) ThemeMode() codereview.ThemeMode {
	return m.mode
}

// PickerOpen reports whether the file picker is shown.
func (m Model) PickerOpen() bool {
	return m.pickerOpen
}
