package entity

// AgentProvider represents the service provider of an agent.
type AgentProvider struct {
	// Agent provider's organization name.
	Organization string `json:"organization"`
	// Agent provider's URL.
	URL string `json:"url"`
}

// AgentCapabilities declares the optional protocol features a remote agent
// supports, as advertised in its card.
type AgentCapabilities struct {
	// True if the agent supports streaming responses.
	Streaming bool `json:"streaming,omitempty"`
	// True if the agent supports push notifications for async task updates.
	PushNotifications bool `json:"pushNotifications,omitempty"`
	// True if the agent exposes a history of task state transitions.
	StateTransitionHistory bool `json:"stateTransitionHistory,omitempty"`
}

// AgentSkill is a unit of capability an agent advertises in its card.
type AgentSkill struct {
	// Unique identifier of the skill within the agent.
	ID string `json:"id"`
	// Human readable name of the skill.
	Name string `json:"name"`
	// A description of what the skill does.
	Description string `json:"description"`
	// Tags describing the skill's domain, used for matching and filtering.
	Tags []string `json:"tags,omitempty"`
	// Example utterances the skill is meant to handle.
	Examples []string `json:"examples,omitempty"`
	// Supported media types for input, overriding the card defaults.
	InputModes []string `json:"inputModes,omitempty"`
	// Supported media types for output, overriding the card defaults.
	OutputModes []string `json:"outputModes,omitempty"`
}

// AgentCard conveys key information about an agent:
// - Overall details (version, name, description, uses)
// - Skills: A set of capabilities the agent can perform
// - Default modalities/content types supported by the agent.
// - Authentication requirements
//
// A card is immutable once fetched; re-discovery replaces it wholesale.
type AgentCard struct {
	// Human readable name of the agent.
	// Example: "Recipe Agent"
	Name string `json:"name"`
	// A human-readable description of the agent. Used to assist users and
	// other agents in understanding what the agent can do.
	// Example: "Agent that helps users with recipes and cooking."
	Description string `json:"description"`
	// A URL to the address the agent is hosted at.
	URL string `json:"url"`
	// A URL to an icon for the agent.
	IconURL *string `json:"iconUrl,omitempty"`
	// The service provider of the agent.
	Provider *AgentProvider `json:"provider,omitempty"`
	// The version of the agent - format is up to the provider.
	// Example: "1.0.0"
	Version string `json:"version"`
	// A URL to documentation for the agent.
	DocumentationURL *string `json:"documentationUrl,omitempty"`
	// Optional protocol features the agent supports.
	Capabilities AgentCapabilities `json:"capabilities"`
	// The set of interaction modes that the agent supports across all skills.
	// This can be overridden per-skill.
	// Supported media types for input.
	DefaultInputModes []string `json:"defaultInputModes,omitempty"`
	// Supported media types for output.
	DefaultOutputModes []string `json:"defaultOutputModes,omitempty"`
	// The skills the agent can perform, in the order the agent advertises them.
	Skills []AgentSkill `json:"skills,omitempty"`
}
