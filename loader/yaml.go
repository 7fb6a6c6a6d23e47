package loader

// YAML schemas for authored content. loader.yaml at the content root
// declares authors and categories; each challenge directory carries a
// challenge.yaml.

// LoaderYaml is the schema of loader.yaml.
type LoaderYaml struct {
	Authors    []AuthorYaml   `yaml:"authors" validate:"required,dive"`
	Categories []CategoryYaml `yaml:"categories" validate:"required,dive"`
}

// AuthorYaml declares one author. Name defaults to the stable id.
type AuthorYaml struct {
	StableID  string  `yaml:"stable_id" validate:"required"`
	Name      *string `yaml:"name"`
	Avatar    string  `yaml:"avatar" validate:"required,url"`
	DiscordID uint64  `yaml:"discord_id" validate:"required"`
}

// CategoryYaml declares one category. Name defaults to the stable id.
type CategoryYaml struct {
	StableID string  `yaml:"stable_id" validate:"required"`
	Name     *string `yaml:"name"`
	Color    string  `yaml:"color" validate:"required"`
}

// ChallengeYaml is the schema of challenge.yaml. Description is
// markdown and is rendered to HTML during loading.
type ChallengeYaml struct {
	StableID       string           `yaml:"stable_id" validate:"required"`
	Author         string           `yaml:"author" validate:"required"`
	Category       string           `yaml:"category" validate:"required"`
	Description    string           `yaml:"description"`
	Files          []AttachmentYaml `yaml:"files" validate:"dive"`
	Flag           string           `yaml:"flag" validate:"required"`
	Healthscript   *string          `yaml:"healthscript"`
	Name           *string          `yaml:"name"`
	TicketTemplate *string          `yaml:"ticket_template"`
	Points         *int64           `yaml:"points"`
	ScoreType      *string          `yaml:"score_type"`
}

// AttachmentYaml names a challenge file by either a local path (src,
// relative to the challenge.yaml) or an already-hosted url. Exactly one
// of the two must be set; that is enforced in the loader rather than by
// tags so the error can name the challenge.
type AttachmentYaml struct {
	Src string `yaml:"src"`
	URL string `yaml:"url" validate:"omitempty,url"`
	Dst string `yaml:"dst" validate:"required"`
}
