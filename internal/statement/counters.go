package statement

import "fmt"

// Counters tracks how the tables of a document were classified. Diagnostic
// only; never part of the structured output.
type Counters struct {
	Success int
	Failure int
	Ignore  int
}

// Add accumulates another document's counts.
func (c *Counters) Add(other Counters) {
	c.Success += other.Success
	c.Failure += other.Failure
	c.Ignore += other.Ignore
}

// Summary renders the fixed-width report fragment used by the CLI.
func (c Counters) Summary() string {
	return fmt.Sprintf("success: %2d | failure: %2d | ignore: %2d", c.Success, c.Failure, c.Ignore)
}
