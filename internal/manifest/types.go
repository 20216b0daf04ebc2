package manifest

// SkillManifest represents a skill.json manifest.
type SkillManifest struct {
	Name        string                    `yaml:"name" json:"name"`
	Bridge      string                    `yaml:"bridge" json:"bridge"`
	Version     string                    `yaml:"version" json:"version"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Author      *Author                   `yaml:"author,omitempty" json:"author,omitempty"`
	Workflow    []string                  `yaml:"workflow,omitempty" json:"workflow,omitempty"`
	Actions     map[string]ActionManifest `yaml:"actions,omitempty" json:"actions,omitempty"`
	// BridgeVersion is a semver constraint on the bridge, e.g. ">= 1.2".
	BridgeVersion string `yaml:"bridge_version,omitempty" json:"bridge_version,omitempty"`
}

// Author identifies who maintains a skill.
type Author struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
}

// ActionManifest declares one action of a skill.
type ActionManifest struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Action types.
const (
	ActionLogic  = "logic"
	ActionDialog = "dialog"
)

// HasAction reports whether the manifest declares action. Manifests that
// declare no actions accept any.
func (m *SkillManifest) HasAction(action string) bool {
	if len(m.Actions) == 0 {
		return true
	}
	_, ok := m.Actions[action]
	return ok
}

// ManifestFiles are the file names searched for a skill manifest, in order.
var ManifestFiles = []string{"skill.json", "skill.yaml", "skill.yml"}
