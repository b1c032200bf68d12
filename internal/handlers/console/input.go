package console

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	yesAnswers = map[string]bool{"y": true, "yes": true, "s": true, "sim": true}
	noAnswers  = map[string]bool{"n": true, "no": true, "nao": true}
)

// normalizeAnswer folds case and drops accents, so "NÃO" reads as "nao"
func normalizeAnswer(answer string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, strings.TrimSpace(answer))
	if err != nil {
		stripped = strings.TrimSpace(answer)
	}

	return cases.Fold().String(stripped)
}

// parseYesNo reports the answer and whether it was understood
func parseYesNo(answer string) (yes bool, ok bool) {
	answer = normalizeAnswer(answer)

	switch {
	case yesAnswers[answer]:
		return true, true
	case noAnswers[answer]:
		return false, true
	default:
		return false, false
	}
}

func (c *Console) waitEnter(ctx context.Context, prompt string) error {
	c.print(prompt)
	_, err := c.readLine(ctx)
	return err
}

// askYesNo asks until the player answers yes or no
func (c *Console) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		c.print(prompt)

		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}

		if yes, ok := parseYesNo(line); ok {
			return yes, nil
		}

		c.println(c.printer.Sprintf("Please answer y or n."))
	}
}

// askInt asks until the player types a whole number in [min, max]
func (c *Console) askInt(ctx context.Context, prompt string, min, max int) (int, error) {
	for {
		c.print(prompt)

		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n, nil
		}

		c.println(c.printer.Sprintf("Please type a number between %d and %d.", min, max))
	}
}

// askText asks until the player types something other than blanks
func (c *Console) askText(ctx context.Context, prompt string) (string, error) {
	for {
		c.print(prompt)

		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}

		if text := strings.TrimSpace(line); text != "" {
			return text, nil
		}

		c.println(c.printer.Sprintf("This cannot be blank."))
	}
}
