// Package menu implements the interactive menu loop that runs when docket
// is started without a subcommand. It presents a fixed set of actions,
// dispatches them against the task service, and keeps looping until the
// user exits. Core errors are rendered as short human-readable lines and
// never terminate the loop.
package menu

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/core/validate"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

// action is one entry in the main menu.
type action int

const (
	actionAdd action = iota + 1
	actionList
	actionUpdate
	actionDelete
	actionFilter
	actionSort
	actionExit
)

// Options configures the menu behavior.
type Options struct {
	App *docket.App
}

// Menu is the interactive menu loop.
type Menu struct {
	opts Options
	log  zerolog.Logger
}

// NewMenu creates a new menu.
func NewMenu(opts Options, log zerolog.Logger) *Menu {
	return &Menu{
		opts: opts,
		log:  log.With().Str("component", "menu").Logger(),
	}
}

// Run executes the menu loop until the user exits. Ctrl+C inside an action
// cancels that action and returns to the menu; at the menu itself it exits
// cleanly.
func (m *Menu) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	for {
		choice, err := m.promptChoice()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if choice == actionExit {
			p.Successf("Goodbye!")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			m.log.Error().Err(err).Int("choice", int(choice)).Msg("menu action failed")
			p.Errorf("%s", errorMessage(err))
		}
	}
}

func (m *Menu) promptChoice() (action, error) {
	var choice action
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[action]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Add task", actionAdd),
					huh.NewOption("List tasks", actionList),
					huh.NewOption("Update task", actionUpdate),
					huh.NewOption("Delete task", actionDelete),
					huh.NewOption("Filter by status", actionFilter),
					huh.NewOption("Sort by priority", actionSort),
					huh.NewOption("Exit", actionExit),
				).
				Value(&choice),
		),
	).WithTheme(styles.FormTheme()).Run()
	return choice, err
}

func (m *Menu) dispatch(ctx context.Context, choice action) error {
	switch choice {
	case actionAdd:
		return m.addTask(ctx)
	case actionList:
		return m.listTasks(ctx)
	case actionUpdate:
		return m.updateTask(ctx)
	case actionDelete:
		return m.deleteTask(ctx)
	case actionFilter:
		return m.filterByStatus(ctx)
	case actionSort:
		return m.sortByPriority(ctx)
	}
	return nil
}

func (m *Menu) addTask(ctx context.Context) error {
	p := printer.Ctx(ctx)

	var (
		title       string
		description string
		prio        = m.opts.App.Config.Defaults.TaskPriority()
		status      = m.opts.App.Config.Defaults.TaskStatus()
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.TaskTitle).
				Value(&title),
			huh.NewText().
				Title("Description").
				Description("Optional details").
				Value(&description),
			huh.NewSelect[task.Priority]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&prio),
			huh.NewSelect[task.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&status),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	created, err := m.opts.App.Tasks.Add(ctx, task.Task{
		Title:       title,
		Description: description,
		Priority:    prio,
		Status:      status,
	})
	if err != nil {
		return err
	}

	p.Successf("Task added")
	p.Printf("%s", taskRow(created))
	return nil
}

func (m *Menu) listTasks(ctx context.Context) error {
	tasks, err := m.opts.App.Tasks.List(ctx)
	if err != nil {
		return err
	}

	renderTasks(printer.Ctx(ctx), tasks)
	return nil
}

func (m *Menu) updateTask(ctx context.Context) error {
	p := printer.Ctx(ctx)

	tasks, err := m.opts.App.Tasks.List(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		p.Infof("No tasks yet")
		return nil
	}
	renderTasks(p, tasks)

	lookup, err := m.promptLookup("Update which task?")
	if err != nil {
		return err
	}

	current, err := m.opts.App.Tasks.Resolve(ctx, lookup)
	if err != nil {
		return err
	}

	opts, err := m.promptChanges(current)
	if err != nil {
		return err
	}

	updated, err := m.opts.App.Tasks.Update(ctx, current.ID, opts)
	if err != nil {
		return err
	}

	p.Successf("Task updated")
	p.Printf("%s", taskRow(updated))
	return nil
}

// promptChanges collects the fields to change on current. Empty title and
// description inputs mean "keep as is"; whitespace-only input is passed
// through so the store's title validation still applies.
func (m *Menu) promptChanges(current task.Task) (task.UpdateOptions, error) {
	var (
		opts        task.UpdateOptions
		title       string
		description string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New title").
				Description("Leave empty to keep: "+current.Title).
				Value(&title),
			huh.NewInput().
				Title("New description").
				Description("Leave empty to keep the current one").
				Value(&description),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return task.UpdateOptions{}, err
	}

	if title != "" {
		opts.Title = &title
	}
	if description != "" {
		opts.Description = &description
	}

	changePrio, err := m.confirm("Change priority?")
	if err != nil {
		return task.UpdateOptions{}, err
	}
	if changePrio {
		prio, err := m.selectPriority(current.Priority)
		if err != nil {
			return task.UpdateOptions{}, err
		}
		opts.Priority = &prio
	}

	changeStatus, err := m.confirm("Change status?")
	if err != nil {
		return task.UpdateOptions{}, err
	}
	if changeStatus {
		status, err := m.selectStatus(current.Status)
		if err != nil {
			return task.UpdateOptions{}, err
		}
		opts.Status = &status
	}

	return opts, nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	p := printer.Ctx(ctx)

	tasks, err := m.opts.App.Tasks.List(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		p.Infof("No tasks yet")
		return nil
	}
	renderTasks(p, tasks)

	lookup, err := m.promptLookup("Delete which task?")
	if err != nil {
		return err
	}

	removed, err := m.opts.App.Tasks.Remove(ctx, lookup)
	if err != nil {
		return err
	}

	p.Successf("Deleted %s", removed.Title)
	return nil
}

func (m *Menu) filterByStatus(ctx context.Context) error {
	status, err := m.selectStatus(task.StatusTodo)
	if err != nil {
		return err
	}

	tasks, err := m.opts.App.Tasks.Filter(ctx, task.StatusEquals(status))
	if err != nil {
		return err
	}

	renderTasks(printer.Ctx(ctx), tasks)
	return nil
}

func (m *Menu) sortByPriority(ctx context.Context) error {
	tasks, err := m.opts.App.Tasks.SortBy(ctx, task.ByPriorityDesc)
	if err != nil {
		return err
	}

	renderTasks(printer.Ctx(ctx), tasks)
	return nil
}

func (m *Menu) promptLookup(title string) (string, error) {
	var lookup string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Full id or a unique prefix").
				Value(&lookup),
		),
	).WithTheme(styles.FormTheme()).Run()
	return lookup, err
}

func (m *Menu) confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(title).Value(&confirmed),
		),
	).WithTheme(styles.FormTheme()).Run()
	return confirmed, err
}

func (m *Menu) selectPriority(value task.Priority) (task.Priority, error) {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[task.Priority]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&value),
		),
	).WithTheme(styles.FormTheme()).Run()
	return value, err
}

func (m *Menu) selectStatus(value task.Status) (task.Status, error) {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[task.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&value),
		),
	).WithTheme(styles.FormTheme()).Run()
	return value, err
}

func priorityOptions() []huh.Option[task.Priority] {
	opts := make([]huh.Option[task.Priority], 0, len(task.Priorities()))
	for _, p := range task.Priorities() {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	return opts
}

func statusOptions() []huh.Option[task.Status] {
	opts := make([]huh.Option[task.Status], 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}
