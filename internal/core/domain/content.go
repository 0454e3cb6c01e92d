package domain

// PrayerFormula is a supplication formula shown during a prayer, with the
// deceased's name substituted into the [Name] placeholder by the client.
type PrayerFormula struct {
	ID              string `json:"id" db:"id"`
	Arabic          string `json:"arabic" db:"arabic"`
	Transliteration string `json:"transliteration" db:"transliteration"`
	Translation     string `json:"translation" db:"translation"`
	Position        int    `json:"order" db:"position"`
}

// Verse is a short scripture excerpt shown on the home screen.
type Verse struct {
	ID              string `json:"id" db:"id"`
	Arabic          string `json:"arabic" db:"arabic"`
	Transliteration string `json:"transliteration" db:"transliteration"`
	Translation     string `json:"translation" db:"translation"`
	Reference       string `json:"reference" db:"reference"`
	Position        int    `json:"order" db:"position"`
}
