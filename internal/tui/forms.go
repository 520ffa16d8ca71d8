package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/lovedays/internal/timeline"
)

type SetupFormModel struct {
	Partner1Name string
	Partner2Name string
	StartDate    string
}

type MemoryFormModel struct {
	Title   string
	Content string
	Date    string
	Mood    string
}

type DateFormModel struct {
	Title string
	Date  string
	Type  string
}

func validateDate(s string) error {
	if _, err := timeline.ParseDate(s); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return nil
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// NewSetupForm builds the first-run form collecting the couple record.
func NewSetupForm(fm *SetupFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Partner 1").
				Value(&fm.Partner1Name).
				Validate(validateNonEmpty("name")),
			huh.NewInput().
				Title("Partner 2").
				Value(&fm.Partner2Name).
				Validate(validateNonEmpty("name")),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Description("The day you started counting").
				Value(&fm.StartDate).
				Validate(validateDate),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMemoryForm builds the add-memory form. Content accepts markdown.
func NewMemoryForm(fm *MemoryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(validateNonEmpty("title")),
			huh.NewText().
				Title("Content").
				Description("Markdown is supported").
				Value(&fm.Content),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Mood").
				Options(
					huh.NewOption("Happy", "happy"),
					huh.NewOption("Love", "love"),
					huh.NewOption("Excited", "excited"),
					huh.NewOption("Sad", "sad"),
					huh.NewOption("Nostalgic", "nostalgic"),
				).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewDateForm builds the add-important-date form.
func NewDateForm(fm *DateFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(validateNonEmpty("title")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Recurs yearly").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Birthday", "birthday"),
					huh.NewOption("Anniversary", "anniversary"),
					huh.NewOption("Special", "special"),
					huh.NewOption("Other", "other"),
				).
				Value(&fm.Type),
		),
	).WithTheme(huh.ThemeDracula())
}
