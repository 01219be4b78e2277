package app

import (
	"io/fs"
	"os"

	"github.com/shuldan/standalone/pkg/contracts"
)

// Environment describes where an application lives: its root directory, the
// scope used to resolve named resources, and the mode it runs in.
type Environment struct {
	root      string
	resources fs.FS
	mode      contracts.Mode
}

func NewEnvironment(root string, resources fs.FS, mode contracts.Mode) Environment {
	if root == "" {
		root = "."
	}
	if resources == nil {
		resources = os.DirFS(root)
	}
	return Environment{
		root:      root,
		resources: resources,
		mode:      mode,
	}
}

// SimpleEnvironment is rooted at the working directory. Handy in tests.
func SimpleEnvironment(mode contracts.Mode) Environment {
	return NewEnvironment(".", nil, mode)
}

func (e Environment) Root() string {
	return e.root
}

func (e Environment) Resources() fs.FS {
	return e.resources
}

func (e Environment) Mode() contracts.Mode {
	return e.mode
}
