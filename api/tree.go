package api

// TreeNode is a node of a rendered tree
type TreeNode interface {
	Pretty() Text
	GetChildren() []TreeNode
}

// TreeOptions configures how trees are rendered
type TreeOptions struct {
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	// Prefix characters for tree rendering
	BranchPrefix   string `json:"branch_prefix,omitempty" yaml:"branch_prefix,omitempty"`
	LastPrefix     string `json:"last_prefix,omitempty" yaml:"last_prefix,omitempty"`
	IndentPrefix   string `json:"indent_prefix,omitempty" yaml:"indent_prefix,omitempty"`
	ContinuePrefix string `json:"continue_prefix,omitempty" yaml:"continue_prefix,omitempty"`
}

func DefaultTreeOptions() *TreeOptions {
	return &TreeOptions{
		MaxDepth:       -1,
		BranchPrefix:   "├── ",
		LastPrefix:     "└── ",
		IndentPrefix:   "    ",
		ContinuePrefix: "│   ",
	}
}

func ASCIITreeOptions() *TreeOptions {
	opts := DefaultTreeOptions()
	opts.BranchPrefix = "+-- "
	opts.LastPrefix = "`-- "
	opts.ContinuePrefix = "|   "
	return opts
}

// RenderTree renders each root flush left and its descendants under
// branch prefixes, one node per line
func RenderTree(roots []TreeNode, opts *TreeOptions) Text {
	if opts == nil {
		opts = DefaultTreeOptions()
	}
	t := Text{}
	for _, root := range roots {
		t = t.Add(root.Pretty()).NewLine()
		t = renderChildren(t, root, "", 1, opts)
	}
	return t
}

func renderChildren(t Text, node TreeNode, indent string, depth int, opts *TreeOptions) Text {
	if opts.MaxDepth >= 0 && depth > opts.MaxDepth {
		return t
	}
	children := node.GetChildren()
	for i, child := range children {
		prefix, next := opts.BranchPrefix, opts.ContinuePrefix
		if i == len(children)-1 {
			prefix, next = opts.LastPrefix, opts.IndentPrefix
		}
		t = t.Append(indent+prefix, "muted").Add(child.Pretty()).NewLine()
		t = renderChildren(t, child, indent+next, depth+1, opts)
	}
	return t
}
