package viewdef

// Definition represents the structure of a view definition file.
type Definition struct {
	Title      string   `yaml:"title"`
	Controller string   `yaml:"controller"`
	Root       *NodeDTO `yaml:"root"`
}

// NodeDTO represents one element of a view definition.
type NodeDTO struct {
	Type     string            `yaml:"type"`
	ID       string            `yaml:"id"`
	Text     string            `yaml:"text"`
	Props    map[string]string `yaml:"props"`
	Children []*NodeDTO        `yaml:"children"`
}
