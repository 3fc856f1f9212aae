package filtering

import "errors"

var (
	// ErrCreateOutputDir indicates the artifact directory could not be created
	ErrCreateOutputDir = errors.New("cannot create output directory")

	// ErrWriteArtifact indicates the compiled ruleset could not be written
	ErrWriteArtifact = errors.New("cannot write compiled ruleset")

	// ErrEmptyRuleset indicates there was nothing to compile
	ErrEmptyRuleset = errors.New("empty ruleset")

	// ErrInvalidArtifact indicates a compiled ruleset with an unknown header
	ErrInvalidArtifact = errors.New("invalid ruleset artifact")
)
