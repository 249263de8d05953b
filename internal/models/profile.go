package models

// LanguageSkill pairs a language with a conversational level.
type LanguageSkill struct {
	Lang  string `json:"lang"`
	Level string `json:"level"`
}

type Profile struct {
	Name           string          `json:"name"`
	NameKana       string          `json:"name_kana"`
	BirthDate      string          `json:"birth_date"`
	Location       string          `json:"location"`
	Summary        string          `json:"summary"`
	Skills         []string        `json:"skills"`
	Qualifications []string        `json:"qualifications"`
	Languages      []LanguageSkill `json:"languages"`
	AvatarURL      string          `json:"avatar_url"`
}
