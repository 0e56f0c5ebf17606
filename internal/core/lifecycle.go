package core

import (
	"context"

	"gopkg.in/yaml.v3"
)

// Configurable is implemented by modules that accept YAML configuration.
// Called after instantiation and before Provision(). The node contains the
// raw YAML for this module's config section.
type Configurable interface {
	Configure(node *yaml.Node) error
}

// Provisioner is implemented by modules that need setup after configuration:
// building clients, resolving loggers, applying defaults.
type Provisioner interface {
	Provision(ctx *AppContext) error
}

// Validator is implemented by modules that can verify their configuration is
// complete and correct. Called after Provision(). Validate must be
// read-only.
type Validator interface {
	Validate() error
}

// Starter is implemented by modules that run background work (goroutines,
// connections, listeners). Called after all modules are provisioned and
// validated.
type Starter interface {
	Start() error
}

// Stopper is implemented by modules that need to release resources. Called
// during shutdown in reverse order of Start().
type Stopper interface {
	Stop(ctx context.Context) error
}
