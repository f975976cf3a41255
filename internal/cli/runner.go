package cli

import (
	"fmt"
	"strings"

	"github.com/toyz/propgen/pkg/propgen"
)

// Runner drives sampling and resolution explanations over a repository
type Runner struct {
	repository  *propgen.Repository
	diagnostics *Diagnostics
}

// NewRunner creates a runner over the given repository
func NewRunner(repository *propgen.Repository, diagnostics *Diagnostics) *Runner {
	return &Runner{
		repository:  repository,
		diagnostics: diagnostics,
	}
}

// Sample resolves a type expression and prints count produced values
func (r *Runner) Sample(expression string, count int) error {
	generator, err := r.repository.GeneratorFor(expression)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", expression, err)
	}

	r.diagnostics.Section(expression)
	for i := 0; i < count; i++ {
		value := generator.Produce(r.repository.Source())
		r.diagnostics.Print("  %v", value)
	}
	return nil
}

// Explain resolves a type expression and prints the resulting
// generator tree instead of producing values.
func (r *Runner) Explain(expression string) error {
	generator, err := r.repository.GeneratorFor(expression)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", expression, err)
	}

	r.diagnostics.Section(expression)
	r.diagnostics.Print("%s", describe(generator, 1))
	return nil
}

// describe renders a resolved generator tree, one node per line
func describe(generator propgen.Generator, depth int) string {
	indent := strings.Repeat("  ", depth)

	switch g := generator.(type) {
	case *propgen.CompositeGenerator:
		candidates := g.Candidates()
		lines := []string{fmt.Sprintf("%scomposite (%d candidates)", indent, len(candidates))}
		for _, candidate := range candidates {
			lines = append(lines, describe(candidate, depth+1))
		}
		return strings.Join(lines, "\n")

	case *propgen.ArrayGenerator:
		return fmt.Sprintf("%sarray\n%s", indent, describe(g.ElementGenerator(), depth+1))

	case *propgen.EnumGenerator:
		return fmt.Sprintf("%senum %s", indent, g.Types()[0])

	case *propgen.FuncGenerator:
		return fmt.Sprintf("%sfunctional adapter %s\n%s", indent, g.Types()[0], describe(g.Delegate(), depth+1))

	default:
		return fmt.Sprintf("%s%s (%T)", indent, describeTypes(generator), generator)
	}
}

func describeTypes(generator propgen.Generator) string {
	names := generator.Types()
	if len(names) == 0 {
		return "anonymous"
	}

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}
