package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"careercoach/dashboard-api/internal/models"
)

const (
	MaxSkills         = 10
	MaxQualifications = 10
	MaxLanguages      = 5
)

// DefaultAvatarURL matches the avatar shown before the user picks one.
const DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=Oliver&topType=ShortHairShortFlat&accessoriesType=Prescription02&hairColor=BrownDark&facialHairType=Blank&clotheType=BlazerShirt&clotheColor=Gray01&skinColor=Light"

// Store holds the process-wide profile state with best-effort write-through
// to a JSON file. Reads after Load never touch the disk.
type Store interface {
	Load() error
	Get() models.Profile
	Save(p models.Profile) models.Profile
}

type store struct {
	path    string
	mu      sync.RWMutex
	profile models.Profile
}

func NewStore(path string) Store {
	return &store{
		path:    path,
		profile: defaultProfile(),
	}
}

// Load initializes the in-memory profile from the store file. A missing file
// is not an error: the default profile stays in place until the first Save.
// On any failure the defaults remain in memory, so callers may log and
// continue.
func (s *store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read profile store: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse profile store: %w", err)
	}

	s.mu.Lock()
	s.profile = clamp(p)
	s.mu.Unlock()
	return nil
}

func (s *store) Get() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Save replaces the profile wholesale, clamping tag lists to their caps, and
// writes the result through to disk. A failed write keeps the in-memory
// update and is only logged.
func (s *store) Save(p models.Profile) models.Profile {
	clamped := clamp(p)
	if clamped.AvatarURL == "" {
		clamped.AvatarURL = DefaultAvatarURL
	}

	s.mu.Lock()
	s.profile = clamped
	s.mu.Unlock()

	if err := s.writeThrough(clamped); err != nil {
		log.Printf("⚠️  Failed to persist profile: %v\n", err)
	}

	return clamped
}

func (s *store) writeThrough(p models.Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}
	return nil
}

func clamp(p models.Profile) models.Profile {
	if len(p.Skills) > MaxSkills {
		p.Skills = p.Skills[:MaxSkills]
	}
	if len(p.Qualifications) > MaxQualifications {
		p.Qualifications = p.Qualifications[:MaxQualifications]
	}
	if len(p.Languages) > MaxLanguages {
		p.Languages = p.Languages[:MaxLanguages]
	}
	return p
}

func defaultProfile() models.Profile {
	return models.Profile{
		Skills:         []string{"法人営業", "Python", "英語"},
		Qualifications: []string{"TOEIC", "基本情報技術者"},
		Languages:      []models.LanguageSkill{{Lang: "英語", Level: "日常会話"}},
		AvatarURL:      DefaultAvatarURL,
	}
}
