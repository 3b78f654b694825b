package environments

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Staging     Environment = "staging"
	Test        Environment = "test"
)

// IsKnown reports whether env is one of the environments the service ships configs for.
func (e Environment) IsKnown() bool {
	switch e {
	case Production, Development, Staging, Test:
		return true
	}
	return false
}
