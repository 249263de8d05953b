package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercoach/dashboard-api/internal/models"
)

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.json"))

	require.NoError(t, store.Load())

	p := store.Get()
	assert.Equal(t, DefaultAvatarURL, p.AvatarURL)
	assert.Equal(t, []string{"法人営業", "Python", "英語"}, p.Skills)
}

func TestLoad_CorruptFileFailsAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	assert.Error(t, store.Load())

	// The in-memory defaults stay usable after a failed load.
	p := store.Get()
	assert.Equal(t, DefaultAvatarURL, p.AvatarURL)
	assert.NotEmpty(t, p.Skills)
}

func TestSave_WritesThroughAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")

	store := NewStore(path)
	require.NoError(t, store.Load())

	saved := store.Save(models.Profile{
		Name:      "佐藤 花子",
		Skills:    []string{"英語"},
		AvatarURL: "https://example.com/avatar.svg",
	})
	assert.Equal(t, "佐藤 花子", saved.Name)

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "佐藤 花子", reloaded.Get().Name)
	assert.Equal(t, "https://example.com/avatar.svg", reloaded.Get().AvatarURL)
}

func TestSave_ClampsTagLists(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.json"))

	skills := make([]string, MaxSkills+3)
	for i := range skills {
		skills[i] = "skill"
	}
	languages := make([]models.LanguageSkill, MaxLanguages+2)

	saved := store.Save(models.Profile{Skills: skills, Languages: languages})

	assert.Len(t, saved.Skills, MaxSkills)
	assert.Len(t, saved.Languages, MaxLanguages)
}

func TestSave_EmptyAvatarFallsBackToDefault(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.json"))

	saved := store.Save(models.Profile{Name: "x"})

	assert.Equal(t, DefaultAvatarURL, saved.AvatarURL)
}
