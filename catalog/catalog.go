package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Load decodes and validates the embedded catalogue.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalogue, stamps each template with its topic and
// each exercise with its chapter (and the chapter language), then validates
// the result.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for ti := range c.Topics {
		for ei := range c.Topics[ti].Entries {
			c.Topics[ti].Entries[ei].Topic = c.Topics[ti].Name
		}
	}
	for ci := range c.ExerciseChapters {
		ch := &c.ExerciseChapters[ci]
		for ei := range ch.Entries {
			ch.Entries[ei].Chapter = ch.Name
			if len(ch.Entries[ei].Languages) == 0 && ch.Language != "" {
				ch.Entries[ei].Languages = []string{ch.Language}
			}
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the catalogue:
//   - at least one topic
//   - non-empty, unique topic and chapter names
//   - non-empty, catalogue-wide unique entry IDs
//   - every template names a demo
//   - every exercise level lies in [MinLevel, MaxLevel]
//   - every exercise solution names a template entry
func (c *Catalog) Validate() error {
	if len(c.Topics) == 0 {
		return fmt.Errorf("%w: no topics", ErrInvalidCatalog)
	}

	ids := make(map[string]bool)
	checkID := func(group string, ei int, e Entry) error {
		if e.ID == "" {
			return fmt.Errorf("%w: entry %d of %q has no id", ErrInvalidCatalog, ei, group)
		}
		if ids[e.ID] {
			return fmt.Errorf("%w: duplicate entry id %q", ErrInvalidCatalog, e.ID)
		}
		ids[e.ID] = true

		return nil
	}

	topics := make(map[string]bool, len(c.Topics))
	templates := make(map[string]bool)
	for ti, t := range c.Topics {
		if t.Name == "" {
			return fmt.Errorf("%w: topic %d has no name", ErrInvalidCatalog, ti)
		}
		if topics[t.Name] {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidCatalog, t.Name)
		}
		topics[t.Name] = true

		for ei, e := range t.Entries {
			if err := checkID(t.Name, ei, e); err != nil {
				return err
			}
			if e.Demo == "" {
				return fmt.Errorf("%w: entry %q has no demo", ErrInvalidCatalog, e.ID)
			}
			templates[e.ID] = true
		}
	}

	chapters := make(map[string]bool, len(c.ExerciseChapters))
	for ci, ch := range c.ExerciseChapters {
		if ch.Name == "" {
			return fmt.Errorf("%w: chapter %d has no name", ErrInvalidCatalog, ci)
		}
		if chapters[ch.Name] {
			return fmt.Errorf("%w: duplicate chapter %q", ErrInvalidCatalog, ch.Name)
		}
		chapters[ch.Name] = true

		for ei, e := range ch.Entries {
			if err := checkID(ch.Name, ei, e); err != nil {
				return err
			}
			if e.Level < MinLevel || e.Level > MaxLevel {
				return fmt.Errorf("%w: exercise %q: %w %d", ErrInvalidCatalog, e.ID, ErrInvalidLevel, e.Level)
			}
		}
	}

	// solutions may only point at templates, which all have demos
	for _, ch := range c.ExerciseChapters {
		for _, e := range ch.Entries {
			if e.Solution != "" && !templates[e.Solution] {
				return fmt.Errorf("%w: exercise %q names unknown solution %q", ErrInvalidCatalog, e.ID, e.Solution)
			}
		}
	}

	return nil
}

// Entries returns every template entry in catalogue order.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	for _, t := range c.Topics {
		out = append(out, t.Entries...)
	}

	return out
}

// Lookup returns the template or exercise with the given ID.
func (c *Catalog) Lookup(id string) (Entry, error) {
	for _, t := range c.Topics {
		for _, e := range t.Entries {
			if e.ID == id {
				return e, nil
			}
		}
	}
	for _, ch := range c.ExerciseChapters {
		for _, e := range ch.Entries {
			if e.ID == id {
				return e, nil
			}
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
}

// Topic returns a copy of the entries of the named topic.
func (c *Catalog) Topic(name string) ([]Entry, error) {
	for _, t := range c.Topics {
		if t.Name == name {
			return append([]Entry(nil), t.Entries...), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, name)
}

// Exercises returns the exercises of chapter at level, in catalogue order.
// An empty chapter selects every chapter; level 0 selects every level.
func (c *Catalog) Exercises(chapter string, level int) ([]Entry, error) {
	if level != 0 && (level < MinLevel || level > MaxLevel) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	found := chapter == ""
	out := []Entry{}
	for _, ch := range c.ExerciseChapters {
		if chapter != "" && ch.Name != chapter {
			continue
		}
		found = true
		for _, e := range ch.Entries {
			if level == 0 || e.Level == level {
				out = append(out, e)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrChapterNotFound, chapter)
	}

	return out, nil
}

// Chapters returns the exercise chapter names in catalogue order.
func (c *Catalog) Chapters() []string {
	names := make([]string, 0, len(c.ExerciseChapters))
	for _, ch := range c.ExerciseChapters {
		names = append(names, ch.Name)
	}

	return names
}

// Levels returns the distinct exercise levels present, ascending.
func (c *Catalog) Levels() []int {
	seen := make(map[int]bool)
	for _, ch := range c.ExerciseChapters {
		for _, e := range ch.Entries {
			seen[e.Level] = true
		}
	}
	levels := make([]int, 0, len(seen))
	for l := range seen {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	return levels
}

// DemoFor returns the demo key that runs e: its own demo, or the demo of
// the template named as its solution.
func (c *Catalog) DemoFor(e Entry) (string, error) {
	if e.Demo != "" {
		return e.Demo, nil
	}
	if e.Solution != "" {
		sol, err := c.Lookup(e.Solution)
		if err != nil {
			return "", err
		}
		return sol.Demo, nil
	}

	return "", fmt.Errorf("%w: %q", ErrNoDemo, e.ID)
}

// FilterLanguage returns the entries of es published in lang.
// An empty lang returns es unchanged.
func FilterLanguage(es []Entry, lang string) []Entry {
	if lang == "" {
		return es
	}
	out := []Entry{}
	for _, e := range es {
		if e.HasLanguage(lang) {
			out = append(out, e)
		}
	}

	return out
}
