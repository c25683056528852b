package testutil

import "fmt"

// FakePrompter answers Pick and Confirm from pre-configured queues.
type FakePrompter struct {
	// Picks holds the answers for successive Pick calls. An empty string
	// simulates the user cancelling the picker.
	Picks []string

	// Confirms holds the answers for successive Confirm calls.
	Confirms []bool

	// Err is returned from every call when set.
	Err error

	// PickTitles and Candidates record each Pick invocation.
	PickTitles []string
	Candidates [][]string

	// Messages records each Confirm invocation.
	Messages []string
}

// Pick pops the next answer from Picks.
func (p *FakePrompter) Pick(title string, candidates []string) (string, bool, error) {
	p.PickTitles = append(p.PickTitles, title)
	p.Candidates = append(p.Candidates, candidates)
	if p.Err != nil {
		return "", false, p.Err
	}
	if len(candidates) == 0 {
		return "", false, nil
	}
	if len(p.Picks) == 0 {
		return "", false, fmt.Errorf("FakePrompter: no pick queued for %q", title)
	}
	choice := p.Picks[0]
	p.Picks = p.Picks[1:]
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}

// Confirm pops the next answer from Confirms.
func (p *FakePrompter) Confirm(message string) (bool, error) {
	p.Messages = append(p.Messages, message)
	if p.Err != nil {
		return false, p.Err
	}
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("FakePrompter: no confirm queued for %q", message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}
