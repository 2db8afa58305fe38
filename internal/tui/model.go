package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avani/mathflow/internal/attempt"
	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/notify"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
	"github.com/avani/mathflow/internal/ui/components"
	"github.com/avani/mathflow/internal/ui/theme"
)

// screen is the top-level UI state.
type screen int

const (
	screenMenu screen = iota
	screenQuiz
	screenSummary
)

// Deps are the collaborators the UI drives. All are required except Hub,
// which may be nil when nothing listens for completions.
type Deps struct {
	Ledger      progress.Ledger
	Synthesizer *quiz.Synthesizer
	Explainer   *quiz.Explainer
	Hub         *notify.Hub
	UserID      string
	StyleHint   quiz.StyleHint
	AttemptCfg  attempt.Config
}

// Model is the root Bubble Tea model: lesson menu, quiz loop, summary.
type Model struct {
	deps   Deps
	screen screen
	width  int
	height int

	menu components.Menu
	spin spinner.Model

	machine *attempt.Machine
	mc      components.MultiChoice

	// explanation is the remediation text for the current wrong answer,
	// empty while the explainer call is in flight.
	explanation string
	lastCorrect bool

	result    progress.Attempt
	appendErr error
	errMsg    string
}

// NewModel builds the root model on the lesson catalog.
func NewModel(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		deps:   deps,
		screen: screenMenu,
		menu:   newLessonMenu(),
		spin:   sp,
	}
}

// lessonPickedMsg carries the lesson chosen from the menu.
type lessonPickedMsg struct {
	Lesson content.Lesson
}

func newLessonMenu() components.Menu {
	var items []components.MenuItem
	for _, course := range content.Courses() {
		for _, lesson := range content.LessonsForCourse(course.ID) {
			l := lesson
			items = append(items, components.MenuItem{
				Label: l.Title,
				Desc:  l.Description,
				Action: func() tea.Cmd {
					return func() tea.Msg { return lessonPickedMsg{Lesson: l} }
				},
			})
		}
	}
	return components.NewMenu(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case lessonPickedMsg:
		return m.startAttempt(msg.Lesson, 0)

	case quizReadyMsg:
		return m.handleQuizReady(msg)

	case explanationMsg:
		// Stale replies from an earlier question are dropped.
		if m.machine != nil && m.machine.Phase() == attempt.PhaseExplanation &&
			m.machine.Current().ID == msg.QuestionID {
			m.explanation = msg.Text
		}
		return m, nil

	case advanceTickMsg:
		return m.advance()

	case appendDoneMsg:
		m.appendErr = msg.Err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		m.errMsg = ""
		m.screen = screenMenu
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case screenQuiz:
		return m.handleQuizKey(msg)

	case screenSummary:
		switch key {
		case "r":
			// Attempt numbers count recorded attempts, so a retake looks
			// the number up from the ledger instead of trusting the
			// in-memory machine (the append may have failed).
			return m.startAttempt(m.machine.Retake().Lesson(), 0)
		case "q", "esc", "enter":
			m.screen = screenMenu
			m.machine = nil
			m.menu = newLessonMenu()
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.machine == nil {
		return m, nil
	}

	switch m.machine.Phase() {
	case attempt.PhaseLoading:
		return m, nil

	case attempt.PhaseInProgress:
		// Answered correctly, waiting out the auto-advance delay.
		if m.mc.Submitted {
			return m, nil
		}
		var cmd tea.Cmd
		m.mc, cmd = m.mc.Update(msg)
		if m.mc.Submitted {
			return m.selected(m.mc.ChosenIndex)
		}
		return m, cmd

	case attempt.PhaseExplanation:
		// Explanation dismissed explicitly, never on a timer.
		if msg.String() == "enter" && m.explanation != "" {
			return m.advance()
		}
		return m, nil
	}

	return m, nil
}

// startAttempt kicks off synthesis for a fresh attempt. attemptNumber 0
// means "look it up from the ledger".
func (m Model) startAttempt(lesson content.Lesson, attemptNumber int) (tea.Model, tea.Cmd) {
	m.screen = screenQuiz
	m.machine = attempt.New(lesson, m.deps.UserID, 1)
	m.explanation = ""
	m.appendErr = nil

	return m, tea.Batch(m.spin.Tick, loadQuiz(m.deps, lesson, attemptNumber))
}

// loadQuiz resolves difficulty from recorded history and synthesizes the
// question set. attemptNumber 0 defers to the ledger's recorded count.
func loadQuiz(deps Deps, lesson content.Lesson, attemptNumber int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prior, err := deps.Ledger.ByUserAndLesson(ctx, deps.UserID, lesson.ID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		number := attemptNumber
		if number == 0 {
			number = progress.NextAttemptNumber(prior)
		}

		history, err := deps.Ledger.ByUser(ctx, deps.UserID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}

		difficulty := quiz.Resolve(derivePerformance(history), lesson.Difficulty)
		questions := deps.Synthesizer.Synthesize(ctx, lesson, difficulty, deps.StyleHint)

		return quizReadyMsg{
			Questions:     questions,
			AttemptNumber: number,
			Difficulty:    difficulty,
		}
	}
}

func (m Model) handleQuizReady(msg quizReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	if m.machine == nil || m.machine.Phase() != attempt.PhaseLoading {
		return m, nil
	}

	m.machine = attempt.New(m.machine.Lesson(), m.deps.UserID, msg.AttemptNumber)
	m.machine.Begin(msg.Questions, time.Now())
	m.mc = newChoice(m.machine.Current())
	return m, nil
}

// selected feeds the chosen option into the machine and reacts to the
// outcome: correct answers auto-advance after the configured delay,
// incorrect ones fetch a remediation explanation.
func (m Model) selected(k int) (tea.Model, tea.Cmd) {
	sel, ok := m.machine.Select(k)
	if !ok {
		return m, nil
	}
	m.lastCorrect = sel.Correct

	if sel.Correct {
		delay := m.deps.AttemptCfg.AutoAdvanceDelay
		return m, tea.Tick(delay, func(t time.Time) tea.Msg {
			return advanceTickMsg(t)
		})
	}

	m.explanation = ""
	q := m.machine.Current()
	lesson := m.machine.Lesson()
	explainer := m.deps.Explainer
	return m, func() tea.Msg {
		text := explainer.Explain(context.Background(), q, k, lesson)
		return explanationMsg{QuestionID: q.ID, Text: text}
	}
}

// advance moves the machine forward and finalizes on the last question.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.machine == nil {
		return m, nil
	}
	phase := m.machine.Phase()
	if phase != attempt.PhaseInProgress && phase != attempt.PhaseExplanation {
		return m, nil
	}

	m.machine.Advance(time.Now())
	m.explanation = ""

	if m.machine.Phase() == attempt.PhaseCompleted {
		result, _ := m.machine.Result()
		m.result = result
		m.screen = screenSummary
		return m, m.persist(result)
	}

	m.mc = newChoice(m.machine.Current())
	return m, nil
}

// persist appends the attempt and notifies observers. A failed append is
// surfaced on the summary screen but never blocks it.
func (m Model) persist(result progress.Attempt) tea.Cmd {
	ledger := m.deps.Ledger
	hub := m.deps.Hub
	return func() tea.Msg {
		err := ledger.Append(context.Background(), result)
		if err == nil && hub != nil {
			hub.Publish(notify.Completion{
				UserID:   result.UserID,
				LessonID: result.LessonID,
				Score:    result.Score,
				Passed:   result.Passed,
			})
		}
		return appendDoneMsg{Err: err}
	}
}

func newChoice(q quiz.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Text, q.Options, q.Correct)
}
