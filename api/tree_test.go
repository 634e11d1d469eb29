package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct {
	label    string
	children []TreeNode
}

func (n node) Pretty() Text            { return Text{Content: n.label} }
func (n node) GetChildren() []TreeNode { return n.children }

func TestRenderTree(t *testing.T) {
	root := node{label: "svg", children: []TreeNode{
		node{label: "g", children: []TreeNode{node{label: "rect"}}},
		node{label: "text"},
	}}

	assert.Equal(t, "svg\n+-- g\n|   `-- rect\n`-- text\n",
		RenderTree([]TreeNode{root}, ASCIITreeOptions()).String())

	opts := ASCIITreeOptions()
	opts.MaxDepth = 1
	assert.Equal(t, "svg\n+-- g\n`-- text\n", RenderTree([]TreeNode{root}, opts).String())

	assert.Equal(t, "svg\n├── g\n│   └── rect\n└── text\n", RenderTree([]TreeNode{root}, nil).String())
}
