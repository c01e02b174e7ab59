package types

// Category groups services in a definition listing
type Category string

const (
	CategoryMath Category = "math"
)

// Service describes a provider and the tools it exposes
type Service struct {
	ID           string   `json:"id" yaml:"id" toml:"id"`
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Category     Category `json:"category" yaml:"category" toml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools" toml:"tools"`
}

// Tool represents a single callable operation
type Tool struct {
	ID          string      `json:"id" yaml:"id" toml:"id"`
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters" toml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns" toml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Type        string `json:"type" yaml:"type" toml:"type"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
}

// Context carries caller information into Execute
type Context struct {
	RunID  *string `json:"run_id,omitempty"`
	Caller *string `json:"caller,omitempty"`
}

// Result represents a tool execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Tool looks up a tool by ID
func (s Service) Tool(id string) (Tool, bool) {
	for _, t := range s.Tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}
