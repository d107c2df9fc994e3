package catalog

import "errors"

const (
	// MinLevel and MaxLevel bound the difficulty level of an exercise.
	MinLevel = 1
	MaxLevel = 5
)

var (
	// ErrInvalidCatalog wraps every decoding and validation failure.
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")

	// ErrEntryNotFound indicates Lookup was given an unknown entry ID.
	ErrEntryNotFound = errors.New("catalog: entry not found")

	// ErrTopicNotFound indicates Topic was given an unknown topic name.
	ErrTopicNotFound = errors.New("catalog: topic not found")

	// ErrChapterNotFound indicates Exercises was given an unknown chapter name.
	ErrChapterNotFound = errors.New("catalog: chapter not found")

	// ErrInvalidLevel indicates a level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("catalog: invalid level")

	// ErrNoDemo indicates an exercise has neither its own demo nor a solution to run.
	ErrNoDemo = errors.New("catalog: entry has no runnable demo")
)

// Entry is one template or exercise in the collection.
type Entry struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary,omitempty"`
	// Demo is the key of the driver that runs this entry. Exercises may omit it.
	Demo string `yaml:"demo,omitempty"`
	// Languages lists the languages the entry is published in.
	Languages []string `yaml:"languages,omitempty,flow"`

	// Level is the exercise difficulty, MinLevel..MaxLevel; zero for templates.
	Level int `yaml:"level,omitempty"`
	// Solved reports that a worked solution ships alongside the exercise.
	Solved bool `yaml:"solved,omitempty"`
	// Solution is the ID of the template entry that solves the exercise.
	Solution string `yaml:"solution,omitempty"`

	// Topic is filled from the enclosing topic of a template.
	Topic string `yaml:"-"`
	// Chapter is filled from the enclosing chapter of an exercise.
	Chapter string `yaml:"-"`
}

// IsExercise reports whether e came from an exercise chapter.
func (e Entry) IsExercise() bool { return e.Chapter != "" }

// HasLanguage reports whether e is published in lang.
func (e Entry) HasLanguage(lang string) bool {
	for _, l := range e.Languages {
		if l == lang {
			return true
		}
	}

	return false
}

// TopicGroup is a named, ordered group of template entries.
type TopicGroup struct {
	Name    string  `yaml:"name"`
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Chapter is a named, ordered group of graded exercises.
// Language applies to every entry that does not list its own.
type Chapter struct {
	Name     string  `yaml:"name"`
	Title    string  `yaml:"title"`
	Language string  `yaml:"language,omitempty"`
	Entries  []Entry `yaml:"entries"`
}

// Catalog is the decoded template collection.
type Catalog struct {
	Version          string       `yaml:"version,omitempty"`
	Topics           []TopicGroup `yaml:"topics"`
	ExerciseChapters []Chapter    `yaml:"exercises,omitempty"`
}
