package claydraw

import (
	"strconv"
	"strings"
)

// Prompter supplies free-form input on behalf of the user.
//
// Prompt shows message with def as the suggested answer and returns the
// answer, or ok=false when the prompt was dismissed.
type Prompter interface {
	Prompt(message, def string) (answer string, ok bool)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(message, def string) (string, bool)

// Prompt calls f(message, def).
func (f PromptFunc) Prompt(message, def string) (string, bool) { return f(message, def) }

// NoPrompter dismisses every prompt.
type NoPrompter struct{}

// Prompt returns ok=false.
func (NoPrompter) Prompt(string, string) (string, bool) { return "", false }

// QueuePrompter answers prompts from a fixed queue, in order. Once the
// queue is empty every prompt is dismissed.
type QueuePrompter struct {
	answers []string
}

// NewQueuePrompter returns a prompter answering with answers in order.
func NewQueuePrompter(answers ...string) *QueuePrompter {
	return &QueuePrompter{answers: answers}
}

// Push appends answers to the queue.
func (q *QueuePrompter) Push(answers ...string) {
	q.answers = append(q.answers, answers...)
}

// Len returns the number of queued answers.
func (q *QueuePrompter) Len() int {
	return len(q.answers)
}

// Prompt pops the next answer.
func (q *QueuePrompter) Prompt(string, string) (string, bool) {
	if len(q.answers) == 0 {
		return "", false
	}
	a := q.answers[0]
	q.answers = q.answers[1:]
	return a, true
}

// promptInt asks for a positive integer. Leading digits are accepted the
// way a lenient form field would ("640px" is 640); anything else, zero or
// a dismissed prompt yields ok=false.
func promptInt(p Prompter, message string, def int) (int, bool) {
	s, ok := p.Prompt(message, strconv.Itoa(def))
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
