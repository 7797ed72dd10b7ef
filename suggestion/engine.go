// Package suggestion picks the outfit suggested for a given day.
package suggestion

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed default_config.json
var defaultConfig []byte

// Config is the season table of the engine
type Config struct {
	Seasons         map[string]SeasonConfig `json:"seasons"`
	AllSeasonLabels []string                `json:"allSeasonLabels"`
}

// SeasonConfig lists the months of one season and the labels users may type for it
type SeasonConfig struct {
	Months  []int    `json:"months"`
	Aliases []string `json:"aliases"`
}

// Engine maps dates to seasons and picks the daily suggestion
type Engine struct {
	byMonth   map[time.Month]string
	canonical map[string]string // lowercased label or alias -> season
	allSeason map[string]bool
}

// NewEngine loads the season table from configPath, or the built-in table when empty
func NewEngine(configPath string) (*Engine, error) {
	data := defaultConfig
	source := "built-in season table"

	if configPath != "" {
		// Resolve config path
		if !filepath.IsAbs(configPath) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			configPath = filepath.Join(wd, configPath)
		}

		var err error
		data, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read suggestion config: %w", err)
		}
		source = configPath
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion config: %w", err)
	}

	engine, err := newEngine(config)
	if err != nil {
		return nil, fmt.Errorf("invalid suggestion config: %w", err)
	}

	log.Infof("✓ Suggestion engine loaded from %s", source)
	return engine, nil
}

func newEngine(config Config) (*Engine, error) {
	if len(config.Seasons) == 0 {
		return nil, fmt.Errorf("seasons are required")
	}

	e := &Engine{
		byMonth:   make(map[time.Month]string),
		canonical: make(map[string]string),
		allSeason: make(map[string]bool),
	}

	// sorted for deterministic error messages
	names := make([]string, 0, len(config.Seasons))
	for name := range config.Seasons {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		season := normalize(name)
		for _, m := range config.Seasons[name].Months {
			if m < 1 || m > 12 {
				return nil, fmt.Errorf("season %s: invalid month %d", name, m)
			}
			if other, taken := e.byMonth[time.Month(m)]; taken {
				return nil, fmt.Errorf("month %d belongs to both %s and %s", m, other, season)
			}
			e.byMonth[time.Month(m)] = season
		}
		e.canonical[season] = season
		for _, alias := range config.Seasons[name].Aliases {
			e.canonical[normalize(alias)] = season
		}
	}

	for m := time.January; m <= time.December; m++ {
		if _, ok := e.byMonth[m]; !ok {
			return nil, fmt.Errorf("month %d has no season", m)
		}
	}

	for _, label := range config.AllSeasonLabels {
		e.allSeason[normalize(label)] = true
	}
	return e, nil
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// SeasonFor returns the season of day
func (e *Engine) SeasonFor(day time.Time) string {
	return e.byMonth[day.Month()]
}

// Canonical maps a user-typed season label to its season name.
// Unknown labels are returned normalized.
func (e *Engine) Canonical(label string) string {
	n := normalize(label)
	if season, ok := e.canonical[n]; ok {
		return season
	}
	return n
}

// Matches reports whether an outfit labelled season can be worn on day
func (e *Engine) Matches(season string, day time.Time) bool {
	n := normalize(season)
	if e.allSeason[n] {
		return true
	}
	return e.Canonical(n) == e.SeasonFor(day)
}

// Title renders a season label for display.
// Casers keep state, so each call builds its own.
func (e *Engine) Title(season string) string {
	return cases.Title(language.English).String(normalize(season))
}

// Pick chooses the suggestion of day among n candidates whose seasons are
// given by seasonOf. The choice rotates daily and is stable within a day.
func (e *Engine) Pick(n int, seasonOf func(i int) string, day time.Time) (int, bool) {
	var matching []int
	for i := 0; i < n; i++ {
		if e.Matches(seasonOf(i), day) {
			matching = append(matching, i)
		}
	}
	if len(matching) == 0 {
		return -1, false
	}
	return matching[day.YearDay()%len(matching)], true
}
