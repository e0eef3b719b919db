package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const maxScores = 10

type Config struct {
	Theme         string `json:"theme"`
	Sound         bool   `json:"sound"`
	Volume        int    `json:"volume"`
	DasMs         int    `json:"das_ms"`
	ArrMs         int    `json:"arr_ms"`
	SoftDropArrMs int    `json:"sd_arr_ms"`
	Difficulty    int    `json:"difficulty"`
}

func defaultConfig() Config {
	return Config{
		Theme:  themes[0].Name,
		Sound:  true,
		Volume: 70,
		DasMs:  133,
	}
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "tetrs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func scoresPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "high_scores.json"), nil
}

func loadConfig() (Config, error) {
	config := defaultConfig()
	path, err := configPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), err
	}
	if config.Theme == "" {
		config.Theme = themes[0].Name
	}
	if config.Volume <= 0 || config.Volume > 100 {
		config.Volume = 70
	}
	if config.DasMs <= 0 {
		config.DasMs = 133
	}
	if config.ArrMs < 0 {
		config.ArrMs = 0
	}
	if config.SoftDropArrMs < 0 {
		config.SoftDropArrMs = 0
	}
	return config, nil
}

func saveConfig(config Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type SprintEntry struct {
	TimeMs int64  `json:"time_ms"`
	Lines  int    `json:"lines"`
	Pieces int    `json:"pieces"`
	When   string `json:"when"`
}

type EndlessEntry struct {
	Score int    `json:"score"`
	Level int    `json:"level"`
	Lines int    `json:"lines"`
	When  string `json:"when"`
}

type VersusEntry struct {
	Won        bool   `json:"won"`
	Difficulty string `json:"difficulty"`
	TimeMs     int64  `json:"time_ms"`
	DamageSent int    `json:"damage_sent"`
	When       string `json:"when"`
}

// HighScoreStore keeps the per-mode top-10 tables, persisted as one JSON
// file next to the config.
type HighScoreStore struct {
	Sprint  []SprintEntry  `json:"sprint"`
	Endless []EndlessEntry `json:"endless"`
	Versus  []VersusEntry  `json:"versus"`
}

func loadHighScores() HighScoreStore {
	var store HighScoreStore
	path, err := scoresPath()
	if err != nil {
		return store
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return store
	}
	if err := json.Unmarshal(data, &store); err != nil {
		return HighScoreStore{}
	}
	return store
}

// Save writes via a temp file so a crash can't truncate the table.
func (s *HighScoreStore) Save() error {
	path, err := scoresPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func scoreWhen() string {
	return time.Now().Format("2006-01-02 15:04")
}

// AddSprint records a finished sprint and reports whether it beats the
// previous best time.
func (s *HighScoreStore) AddSprint(timeMs int64, lines, pieces int) bool {
	isBest := len(s.Sprint) == 0 || timeMs < s.Sprint[0].TimeMs
	s.Sprint = append(s.Sprint, SprintEntry{
		TimeMs: timeMs,
		Lines:  lines,
		Pieces: pieces,
		When:   scoreWhen(),
	})
	sort.SliceStable(s.Sprint, func(i, j int) bool {
		return s.Sprint[i].TimeMs < s.Sprint[j].TimeMs
	})
	if len(s.Sprint) > maxScores {
		s.Sprint = s.Sprint[:maxScores]
	}
	return isBest
}

func (s *HighScoreStore) AddEndless(score, level, lines int) bool {
	isBest := len(s.Endless) == 0 || score > s.Endless[0].Score
	s.Endless = append(s.Endless, EndlessEntry{
		Score: score,
		Level: level,
		Lines: lines,
		When:  scoreWhen(),
	})
	sort.SliceStable(s.Endless, func(i, j int) bool {
		return s.Endless[i].Score > s.Endless[j].Score
	})
	if len(s.Endless) > maxScores {
		s.Endless = s.Endless[:maxScores]
	}
	return isBest
}

func (s *HighScoreStore) AddVersus(won bool, difficulty string, timeMs int64, damageSent int) bool {
	isBest := won && (len(s.Versus) == 0 || !s.Versus[0].Won)
	s.Versus = append(s.Versus, VersusEntry{
		Won:        won,
		Difficulty: difficulty,
		TimeMs:     timeMs,
		DamageSent: damageSent,
		When:       scoreWhen(),
	})
	// Wins first, then by damage sent.
	sort.SliceStable(s.Versus, func(i, j int) bool {
		if s.Versus[i].Won != s.Versus[j].Won {
			return s.Versus[i].Won
		}
		return s.Versus[i].DamageSent > s.Versus[j].DamageSent
	})
	if len(s.Versus) > maxScores {
		s.Versus = s.Versus[:maxScores]
	}
	return isBest
}
