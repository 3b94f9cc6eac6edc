package spec

import (
	"errors"
	"fmt"
)

// ErrSealed is raised when a builder is used after its declaring block returned.
var ErrSealed = errors.New("spec: group is sealed after declaration")

// UndefinedDescribedTargetError is returned when the subject is requested but
// no subject is defined anywhere in the chain and no target was described.
type UndefinedDescribedTargetError struct {
	Group string
}

func (e *UndefinedDescribedTargetError) Error() string {
	return fmt.Sprintf("spec: undefined described target for subject in %q", e.Group)
}

// OverrideWithoutAncestorError is returned when a definition calls super and
// no outer definition of the same name exists.
type OverrideWithoutAncestorError struct {
	Name  string
	Group string
}

func (e *OverrideWithoutAncestorError) Error() string {
	return fmt.Sprintf("spec: %q in %q has no outer definition to call", e.Name, e.Group)
}

// UndefinedHelperError is returned when a helper name is not declared by any
// ancestor of the example.
type UndefinedHelperError struct {
	Name  string
	Group string
}

func (e *UndefinedHelperError) Error() string {
	return fmt.Sprintf("spec: helper %q is not defined in %q", e.Name, e.Group)
}

// CyclicHelperError is returned when resolving a helper requires its own value.
type CyclicHelperError struct {
	Name string
}

func (e *CyclicHelperError) Error() string {
	return fmt.Sprintf("spec: helper %q depends on itself", e.Name)
}

// IsAuthoringError reports whether err signals a bug in the declarations
// rather than a failing example.
func IsAuthoringError(err error) bool {
	var (
		undefinedTarget *UndefinedDescribedTargetError
		override        *OverrideWithoutAncestorError
		undefined       *UndefinedHelperError
		cyclic          *CyclicHelperError
	)
	return errors.As(err, &undefinedTarget) ||
		errors.As(err, &override) ||
		errors.As(err, &undefined) ||
		errors.As(err, &cyclic) ||
		errors.Is(err, ErrSealed)
}

// authoringPanic carries an authoring error through panics raised by Get.
type authoringPanic struct {
	err error
}

// haltPanic stops an example body after its first unsatisfied expectation.
type haltPanic struct {
	outcome Outcome
}
